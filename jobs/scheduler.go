package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/config"
	otpService "github.com/anupam2nd/mylavanya-sub003/internal/domains/otp/service"
)

// Scheduler runs the recurring background jobs, currently only the
// purge of expired OTP codes.
type Scheduler struct {
	cron *cron.Cron
	otp  otpService.OTP
	cfg  *config.Config
}

func NewScheduler(otp otpService.OTP, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		otp:  otp,
		cfg:  cfg,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.cfg.OTP.PurgeSchedule, s.purgeExpiredOTPs)
	if err != nil {
		return fmt.Errorf("failed to schedule OTP purge job: %w", err)
	}

	s.cron.Start()

	log.Info().Str("schedule", s.cfg.OTP.PurgeSchedule).Msg("Background scheduler started")

	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()

	log.Info().Msg("Background scheduler stopped")
}

func (s *Scheduler) purgeExpiredOTPs() {
	purged, err := s.otp.PurgeExpired(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("failed to purge expired OTP codes")

		return
	}

	if purged > 0 {
		log.Info().Int64("purged", purged).Msg("expired OTP codes purged")
	}
}
