package internal_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sanLimbu/tasklist-api/internal"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("NewErrorf", func(t *testing.T) {
		t.Parallel()

		err := internal.NewErrorf(internal.ErrorCodeNotFound, "task %d not found", 42)

		var ierr *internal.Error
		if !errors.As(err, &ierr) {
			t.Fatalf("expected *internal.Error, got %T", err)
		}

		if ierr.Code() != internal.ErrorCodeNotFound {
			t.Fatalf("expected not found code, got %d", ierr.Code())
		}

		if ierr.Error() != "task 42 not found" {
			t.Fatalf("unexpected message %q", ierr.Error())
		}

		if ierr.Unwrap() != nil {
			t.Fatalf("expected no wrapped error")
		}
	})

	t.Run("WrapErrorf", func(t *testing.T) {
		t.Parallel()

		orig := errors.New("pgx failed")
		err := internal.WrapErrorf(orig, internal.ErrorCodeUnknown, "repo create")

		if !errors.Is(err, orig) {
			t.Fatalf("expected wrapped error to match original")
		}

		if err.Error() != "repo create: pgx failed" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})

	t.Run("Code survives fmt wrapping", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("params validate: %w", internal.NewErrorf(internal.ErrorCodeInvalidArgument, "unknown priority"))

		var ierr *internal.Error
		if !errors.As(err, &ierr) || ierr.Code() != internal.ErrorCodeInvalidArgument {
			t.Fatalf("expected invalid argument code, got %v", err)
		}
	})
}
