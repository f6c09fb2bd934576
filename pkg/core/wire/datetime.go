// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTimeLayout is the timestamp format the Watson services emit. It is
// used for values built in Go.
const DateTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// DateTime is a timestamp that re-encodes exactly as it was received.
// Decoding accepts any RFC 3339 timestamp and keeps its text; encoding
// writes that text back while it still denotes Time, and DateTimeLayout
// otherwise.
type DateTime struct {
	time.Time

	raw string
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.raw != "" {
		if t, err := time.Parse(time.RFC3339Nano, d.raw); err == nil && t.Equal(d.Time) {
			return json.Marshal(d.raw)
		}
	}
	return json.Marshal(d.Format(DateTimeLayout))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	d.Time = t
	d.raw = s
	return nil
}
