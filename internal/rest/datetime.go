package rest

import (
	"encoding/json"
	"time"

	"github.com/sanLimbu/tasklist-api/internal"
)

const naiveDateTime = "2006-01-02T15:04:05"

// DateTime wraps time.Time to accept ISO 8601 date-times with or without an offset, values
// received without one round-trip unchanged.
type DateTime time.Time

//UnmarshalJSON ...
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json.Unmarshal")
	}

	for _, layout := range []string{time.RFC3339, naiveDateTime} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = DateTime(t)
			return nil
		}
	}

	return internal.NewErrorf(internal.ErrorCodeInvalidArgument, "unsupported date-time value %q", s)
}

//MarshalJSON ...
func (d DateTime) MarshalJSON() ([]byte, error) {
	t := time.Time(d)

	layout := time.RFC3339
	if _, offset := t.Zone(); offset == 0 {
		layout = naiveDateTime
	}

	return json.Marshal(t.Format(layout))
}

//Time ...
func (d DateTime) Time() time.Time {
	return time.Time(d)
}
