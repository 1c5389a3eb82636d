package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Mapping pairs a record field key with the header name used in the export.
type Mapping struct {
	Field  string
	Header string
}

// Write serializes rows as comma-delimited text with one header line. Fields
// containing commas, quotes or newlines are quoted so the output re-parses to
// the original values.
func Write(w io.Writer, mappings []Mapping, rows []map[string]any) error {
	writer := csv.NewWriter(w)

	headers := make([]string, len(mappings))
	for i, mapping := range mappings {
		headers[i] = mapping.Header
	}

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, len(mappings))

	for _, row := range rows {
		for i, mapping := range mappings {
			value, ok := row[mapping.Field]
			if !ok || value == nil {
				record[i] = ""

				continue
			}

			switch v := value.(type) {
			case string:
				record[i] = v
			default:
				record[i] = fmt.Sprintf("%v", v)
			}
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv output: %w", err)
	}

	return nil
}
