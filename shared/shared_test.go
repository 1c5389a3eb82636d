package shared_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/anupam2nd/mylavanya-sub003/shared"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	"github.com/anupam2nd/mylavanya-sub003/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestSyntheticEmail(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		domain   string
		expected string
	}{
		{
			name:     "ten digit phone",
			phone:    "9876543210",
			domain:   "mylavanya.com",
			expected: "+919876543210@member.mylavanya.com",
		},
		{
			name:     "different domain",
			phone:    "9000000001",
			domain:   "example.org",
			expected: "+919000000001@member.example.org",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.SyntheticEmail(tt.phone, tt.domain)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestHumanizeCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{
			name:     "underscore separated",
			code:     "service_started",
			expected: "Service Started",
		},
		{
			name:     "single word",
			code:     "pending",
			expected: "Pending",
		},
		{
			name:     "mixed case input",
			code:     "Beautician_assigned",
			expected: "Beautician Assigned",
		},
		{
			name:     "dash separated",
			code:     "on-the-way",
			expected: "On The Way",
		},
		{
			name:     "empty string",
			code:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.HumanizeCode(tt.code)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type testStruct struct {
		Name       string `db:"name"`
		Email      string `db:"email"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
	}

	data := testStruct{
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		NoDBTag: "ignored",
	}

	result := shared.TransformFields(data, "admin-1")

	if result["name"] != "Asha Verma" {
		t.Errorf("expected name to be transformed, got %v", result["name"])
	}
	if result["email"] != "asha@example.com" {
		t.Errorf("expected email to be transformed, got %v", result["email"])
	}
	if _, exists := result["empty_field"]; exists {
		t.Error("zero-value fields should be skipped")
	}
	if result[constant.FieldModifiedBy] != "admin-1" {
		t.Errorf("expected modified_by to be admin-1, got %v", result[constant.FieldModifiedBy])
	}
	if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("some-id", "id", "bookings")

	if len(filter.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(filter.Filters))
	}

	f, ok := filter.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", filter.Filters[0])
	}

	expected := dto.Filter{
		Field:    "id",
		Value:    "some-id",
		Operator: dto.FilterOperatorEq,
		Table:    "bookings",
	}

	if !reflect.DeepEqual(f, expected) {
		t.Errorf("expected %+v, got %+v", expected, f)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("booking", "26090007"); key != "booking:26090007" {
		t.Errorf("expected booking:26090007, got %s", key)
	}
}

func TestBuildCacheKeyWithQueryIsDeterministic(t *testing.T) {
	params := dto.QueryParams{Limit: 10, Page: 2}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending", Table: "bookings"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	if first != second {
		t.Errorf("expected identical keys, got %s and %s", first, second)
	}

	other := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Limit: 20, Page: 1}, filter)
	if first == other {
		t.Error("expected different params to produce a different key")
	}
}

func boolPtr(b bool) *bool {
	return &b
}
