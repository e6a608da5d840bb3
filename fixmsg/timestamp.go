// timestamp.go
/*
fixwire — FIX protocol wire format tools
Copyright (C) 2026 Edgewater Markets Ltd.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

In accordance with section 13 of the AGPL, if you modify this program,
your modified version must prominently offer all users interacting with it
remotely through a computer network an opportunity to receive the source
code of your version.
*/
package fixmsg

import (
	"fmt"
	"time"
)

// timeNow supplies the current time for appenders given a zero
// time.Time; overridden in tests.
var timeNow = time.Now

// Fractional-second precision for timestamp fields.  Prior to FIX 5.0
// only seconds and milliseconds are standard-compliant.
const (
	PrecisionMinutes = -1 // TZTimeOnly only
	PrecisionSeconds = 0
	PrecisionMillis  = 3
	PrecisionMicros  = 6
)

const (
	layoutDate     = "20060102"
	layoutTime     = "15:04:05"
	layoutDateTime = "20060102-15:04:05"
)

func formatStamp(t time.Time, layout string, precision int) (string, error) {
	s := t.Format(layout)
	switch precision {
	case PrecisionSeconds:
		return s, nil
	case PrecisionMillis:
		return fmt.Sprintf("%s.%03d", s, t.Nanosecond()/1e6), nil
	case PrecisionMicros:
		return fmt.Sprintf("%s.%06d", s, t.Nanosecond()/1e3), nil
	}
	return "", fmt.Errorf("fixmsg: precision %d should be one of 0, 3 or 6 digits", precision)
}

// tzOffsetString renders an offset in minutes east of UTC per the FIX
// TZTimestamp grammar: "Z", "+HH", "-HH:MM" and so on.
func tzOffsetString(offset int) (string, error) {
	if offset == 0 {
		return "Z", nil
	}
	if offset < -1439 || offset > 1439 {
		return "", fmt.Errorf("fixmsg: timezone offset %d out of range -1439 to +1439 minutes", offset)
	}

	mins := offset % 60
	if mins < 0 {
		mins = -mins
	}
	if mins == 0 {
		return fmt.Sprintf("%+03d", offset/60), nil
	}
	return fmt.Sprintf("%+03d:%02d", offset/60, mins), nil
}

// AppendUTCTimestamp appends a UTCTimestamp field
// ("YYYYMMDD-HH:MM:SS[.sss[sss]]").  A zero t means the current time.
func (m *Message) AppendUTCTimestamp(tag int, t time.Time, precision int, header bool) error {
	if t.IsZero() {
		t = timeNow()
	}
	s, err := formatStamp(t.UTC(), layoutDateTime, precision)
	if err != nil {
		return err
	}
	m.AppendPair(tag, s, header)
	return nil
}

// AppendUTCTimeOnly appends a UTCTimeOnly field
// ("HH:MM:SS[.sss[sss]]").  A zero t means the current time.
func (m *Message) AppendUTCTimeOnly(tag int, t time.Time, precision int, header bool) error {
	if t.IsZero() {
		t = timeNow()
	}
	s, err := formatStamp(t.UTC(), layoutTime, precision)
	if err != nil {
		return err
	}
	m.AppendPair(tag, s, header)
	return nil
}

// AppendUTCDateOnly appends a UTCDateOnly field ("YYYYMMDD").  A zero
// t means the current time.
func (m *Message) AppendUTCDateOnly(tag int, t time.Time, header bool) {
	if t.IsZero() {
		t = timeNow()
	}
	m.AppendPair(tag, t.UTC().Format(layoutDate), header)
}

// AppendTZTimestamp appends a TZTimestamp field rendered in t's own
// location, with the offset suffix taken from t's zone.  A zero t
// means the current local time.
func (m *Message) AppendTZTimestamp(tag int, t time.Time, precision int, header bool) error {
	if t.IsZero() {
		t = timeNow()
	}
	s, err := formatStamp(t, layoutDateTime, precision)
	if err != nil {
		return err
	}
	_, secs := t.Zone()
	suffix, err := tzOffsetString(secs / 60)
	if err != nil {
		return err
	}
	m.AppendPair(tag, s+suffix, header)
	return nil
}

// AppendTZTimeOnly appends a TZTimeOnly field rendered in t's own
// location.  PrecisionMinutes drops the seconds component entirely.
// A zero t means the current local time.
func (m *Message) AppendTZTimeOnly(tag int, t time.Time, precision int, header bool) error {
	if t.IsZero() {
		t = timeNow()
	}

	var s string
	if precision == PrecisionMinutes {
		s = t.Format("15:04")
	} else {
		var err error
		if s, err = formatStamp(t, layoutTime, precision); err != nil {
			return err
		}
	}

	_, secs := t.Zone()
	suffix, err := tzOffsetString(secs / 60)
	if err != nil {
		return err
	}
	m.AppendPair(tag, s+suffix, header)
	return nil
}

// AppendUTCTimeOnlyParts appends a UTCTimeOnly field built from
// components.  Negative msec truncates precision at seconds; negative
// usec truncates at milliseconds.  Seconds are mandatory, unlike in
// TZTimeOnly; 60 is allowed for a leap second.
func (m *Message) AppendUTCTimeOnlyParts(tag, hour, min, sec, msec, usec int, header bool) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("fixmsg: hour value %d out of range 0 to 23", hour)
	}
	if min < 0 || min > 59 {
		return fmt.Errorf("fixmsg: minute value %d out of range 0 to 59", min)
	}
	if sec < 0 || sec > 60 {
		return fmt.Errorf("fixmsg: seconds value %d out of range 0 to 60", sec)
	}

	v := fmt.Sprintf("%02d:%02d:%02d", hour, min, sec)
	if msec >= 0 {
		if msec > 999 {
			return fmt.Errorf("fixmsg: milliseconds value %d out of range 0 to 999", msec)
		}
		v += fmt.Sprintf(".%03d", msec)

		if usec >= 0 {
			if usec > 999 {
				return fmt.Errorf("fixmsg: microseconds value %d out of range 0 to 999", usec)
			}
			v += fmt.Sprintf("%03d", usec)
		}
	}

	m.AppendPair(tag, v, header)
	return nil
}

// AppendTZTimeOnlyParts appends a TZTimeOnly field built from
// components plus an explicit offset in minutes east of UTC.  Negative
// sec truncates precision at minutes, negative msec at seconds,
// negative usec at milliseconds.
func (m *Message) AppendTZTimeOnlyParts(tag, hour, min, sec, msec, usec, offset int, header bool) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("fixmsg: hour value %d out of range 0 to 23", hour)
	}
	if min < 0 || min > 59 {
		return fmt.Errorf("fixmsg: minute value %d out of range 0 to 59", min)
	}

	v := fmt.Sprintf("%02d:%02d", hour, min)
	if sec >= 0 {
		if sec > 60 {
			return fmt.Errorf("fixmsg: seconds value %d out of range 0 to 60", sec)
		}
		v += fmt.Sprintf(":%02d", sec)

		if msec >= 0 {
			if msec > 999 {
				return fmt.Errorf("fixmsg: milliseconds value %d out of range 0 to 999", msec)
			}
			v += fmt.Sprintf(".%03d", msec)

			if usec >= 0 {
				if usec > 999 {
					return fmt.Errorf("fixmsg: microseconds value %d out of range 0 to 999", usec)
				}
				v += fmt.Sprintf("%03d", usec)
			}
		}
	}

	suffix, err := tzOffsetString(offset)
	if err != nil {
		return err
	}
	m.AppendPair(tag, v+suffix, header)
	return nil
}
