package internal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sanLimbu/tasklist-api/internal"
)

func TestPriority_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     internal.Priority
		withError bool
	}{
		{
			"OK: High",
			internal.PriorityHigh,
			false,
		},
		{
			"OK: Medium",
			internal.PriorityMedium,
			false,
		},
		{
			"OK: Low",
			internal.PriorityLow,
			false,
		},
		{
			"ERR: zero",
			internal.Priority(0),
			true,
		},
		{
			"ERR: out of range",
			internal.Priority(4),
			true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			actualErr := tt.input.Validate()
			if (actualErr != nil) != tt.withError {
				t.Fatalf("expected error %t, got %s", tt.withError, actualErr)
			}

			if tt.withError {
				var ierr *internal.Error
				if !errors.As(actualErr, &ierr) || ierr.Code() != internal.ErrorCodeInvalidArgument {
					t.Fatalf("expected invalid argument code, got %v", actualErr)
				}
			}
		})
	}
}

func TestCreateParams_Validate(t *testing.T) {
	t.Parallel()

	validParams := func() internal.CreateParams {
		return internal.CreateParams{
			Title:       "Buy milk",
			Description: "2% or whole",
			Priority:    internal.PriorityLow,
			DueDate:     time.Date(2000, 1, 30, 15, 0, 0, 0, time.UTC),
		}
	}

	tests := []struct {
		name      string
		input     func() internal.CreateParams
		withError bool
	}{
		{
			"OK",
			validParams,
			false,
		},
		{
			"ERR: Title missing",
			func() internal.CreateParams {
				params := validParams()
				params.Title = ""
				return params
			},
			true,
		},
		{
			"ERR: Priority invalid",
			func() internal.CreateParams {
				params := validParams()
				params.Priority = internal.Priority(9)
				return params
			},
			true,
		},
		{
			"ERR: DueDate missing",
			func() internal.CreateParams {
				params := validParams()
				params.DueDate = time.Time{}
				return params
			},
			true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			actualErr := tt.input().Validate()
			if (actualErr != nil) != tt.withError {
				t.Fatalf("expected error %t, got %s", tt.withError, actualErr)
			}
		})
	}
}

func TestUpdateParams_Validate(t *testing.T) {
	t.Parallel()

	newPtrStr := func(s string) *string {
		return &s
	}

	newPtrPriority := func(p internal.Priority) *internal.Priority {
		return &p
	}

	tests := []struct {
		name      string
		input     internal.UpdateParams
		withError bool
	}{
		{
			"OK: empty update",
			internal.UpdateParams{},
			false,
		},
		{
			"OK: all fields",
			internal.UpdateParams{
				Title:    newPtrStr("Buy milk"),
				Priority: newPtrPriority(internal.PriorityHigh),
			},
			false,
		},
		{
			"ERR: Title set to empty",
			internal.UpdateParams{
				Title: newPtrStr(""),
			},
			true,
		},
		{
			"ERR: Priority invalid",
			internal.UpdateParams{
				Priority: newPtrPriority(internal.Priority(0)),
			},
			true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			actualErr := tt.input.Validate()
			if (actualErr != nil) != tt.withError {
				t.Fatalf("expected error %t, got %s", tt.withError, actualErr)
			}
		})
	}
}

func TestUpdateParams_IsZero(t *testing.T) {
	t.Parallel()

	if !(internal.UpdateParams{}).IsZero() {
		t.Fatalf("expected empty update to be zero")
	}

	completed := true
	if (internal.UpdateParams{Completed: &completed}).IsZero() {
		t.Fatalf("expected update with fields to not be zero")
	}
}
