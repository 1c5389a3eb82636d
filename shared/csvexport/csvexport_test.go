package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/anupam2nd/mylavanya-sub003/shared/csvexport"
)

var mappings = []csvexport.Mapping{
	{Field: "booking_no", Header: "Booking No"},
	{Field: "customer_name", Header: "Customer Name"},
	{Field: "price", Header: "Price"},
}

func TestWrite(t *testing.T) {
	rows := []map[string]any{
		{"booking_no": "26090001", "customer_name": "Asha Verma", "price": 4500.0},
		{"booking_no": "26090002", "customer_name": "Smith, John", "price": 1200.5},
	}

	var buf bytes.Buffer

	if err := csvexport.Write(&buf, mappings, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Booking No,Customer Name,Price" {
		t.Errorf("unexpected header line: %s", lines[0])
	}
	if !strings.Contains(output, `"Smith, John"`) {
		t.Errorf("expected comma-containing value to be quoted, got %s", output)
	}
}

func TestWriteRoundTrips(t *testing.T) {
	rows := []map[string]any{
		{"booking_no": "26090001", "customer_name": "quote \" and, comma\nnewline", "price": 100},
	}

	var buf bytes.Buffer

	if err := csvexport.Write(&buf, mappings, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output does not reparse: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected header plus 1 record, got %d", len(records))
	}
	if records[1][1] != "quote \" and, comma\nnewline" {
		t.Errorf("value did not survive the round trip: %q", records[1][1])
	}
}

func TestWriteMissingAndNilFields(t *testing.T) {
	rows := []map[string]any{
		{"booking_no": "26090001", "customer_name": nil},
	}

	var buf bytes.Buffer

	if err := csvexport.Write(&buf, mappings, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	if lines[1] != "26090001,," {
		t.Errorf("expected missing and nil fields to render empty, got %s", lines[1])
	}
}

func TestWriteNoRows(t *testing.T) {
	var buf bytes.Buffer

	if err := csvexport.Write(&buf, mappings, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.TrimSpace(buf.String()) != "Booking No,Customer Name,Price" {
		t.Errorf("expected only the header line, got %q", buf.String())
	}
}
