package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/sanLimbu/tasklist-api/internal"
	"github.com/sanLimbu/tasklist-api/internal/postgresql/db"
)

const otelName = "github.com/sanLimbu/tasklist-api/internal/postgresql"

// newTimestamp creates a pgtype.Timestamp from a time.Time.
func newTimestamp(t time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{
		Time:  t,
		Valid: !t.IsZero(),
	}
}

func convertTask(record db.Task) internal.Task {
	return internal.Task{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		Priority:    internal.Priority(record.Priority),
		DueDate:     record.DueDate.Time,
		Completed:   record.Completed,
	}
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemPostgreSQL)

	return span
}
