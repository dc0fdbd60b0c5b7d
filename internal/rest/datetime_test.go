package rest_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sanLimbu/tasklist-api/internal/rest"
)

func TestDateTime_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		output    time.Time
		withError bool
	}{
		{
			"OK: naive date-time",
			`"2000-01-30T15:00:00"`,
			time.Date(2000, 1, 30, 15, 0, 0, 0, time.UTC),
			false,
		},
		{
			"OK: RFC3339",
			`"2000-01-30T15:00:00Z"`,
			time.Date(2000, 1, 30, 15, 0, 0, 0, time.UTC),
			false,
		},
		{
			"OK: RFC3339 with offset",
			`"2000-01-30T15:00:00+02:00"`,
			time.Date(2000, 1, 30, 15, 0, 0, 0, time.FixedZone("", 2*60*60)),
			false,
		},
		{
			"ERR: date only",
			`"2000-01-30"`,
			time.Time{},
			true,
		},
		{
			"ERR: not a string",
			`1234`,
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var actual rest.DateTime

			actualErr := json.Unmarshal([]byte(tt.input), &actual)
			if (actualErr != nil) != tt.withError {
				t.Fatalf("expected error %t, got %s", tt.withError, actualErr)
			}

			if !tt.withError && !actual.Time().Equal(tt.output) {
				t.Fatalf("expected %v, got %v", tt.output, actual.Time())
			}
		})
	}
}

func TestDateTime_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  time.Time
		output string
	}{
		{
			"OK: no offset marshals naive",
			time.Date(2000, 1, 30, 15, 0, 0, 0, time.UTC),
			`"2000-01-30T15:00:00"`,
		},
		{
			"OK: offset marshals RFC3339",
			time.Date(2000, 1, 30, 15, 0, 0, 0, time.FixedZone("", 2*60*60)),
			`"2000-01-30T15:00:00+02:00"`,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			actual, err := json.Marshal(rest.DateTime(tt.input))
			if err != nil {
				t.Fatalf("unexpected error %s", err)
			}

			if string(actual) != tt.output {
				t.Fatalf("expected %s, got %s", tt.output, actual)
			}
		})
	}
}

func TestDateTime_RoundTrip(t *testing.T) {
	t.Parallel()

	input := `"2000-01-30T15:00:00"`

	var dt rest.DateTime
	if err := json.Unmarshal([]byte(input), &dt); err != nil {
		t.Fatalf("unexpected error %s", err)
	}

	actual, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}

	if string(actual) != input {
		t.Fatalf("expected %s, got %s", input, actual)
	}
}
