package di

import (
	"github.com/anupam2nd/mylavanya-sub003/jobs"
	"github.com/anupam2nd/mylavanya-sub003/transport/http"
)

// App bundles the long-running components started from main.
type App struct {
	HTTP      *http.HTTP
	Scheduler *jobs.Scheduler
}
