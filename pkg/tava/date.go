package tava

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time component,
// serialized as "2006-01-02" on the wire.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(bytes []byte) error {
	date, err := time.Parse(`"2006-01-02"`, string(bytes))
	if err != nil {
		return err
	}
	d.Time = date
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(d.Format(`"2006-01-02"`)), nil
}

// Timestamp accepts the timestamp shapes the backend emits:
// RFC 3339, a local datetime and a bare date.
type Timestamp struct {
	time.Time
}

var timestampFormats = []string{
	`"` + time.RFC3339 + `"`,
	`"2006-01-02T15:04:05"`,
	`"2006-01-02"`,
}

func (t *Timestamp) UnmarshalJSON(bytes []byte) error {
	raw := string(bytes)

	for _, format := range timestampFormats {
		parsed, err := time.Parse(format, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("cannot parse timestamp: %s", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(t.Format(`"` + time.RFC3339 + `"`)), nil
}
