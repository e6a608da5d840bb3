// value.go
package fixmsg

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Typed append variants.  Each converts its value to the canonical FIX
// text representation before storage; nothing is kept in numeric form.

// AppendInt appends a tag with an integer value.
func (m *Message) AppendInt(tag int, value int64, header bool) {
	m.AppendPair(tag, strconv.FormatInt(value, 10), header)
}

// AppendFloat appends a tag with a float value, rendered with the
// shortest decimal text that round-trips.
func (m *Message) AppendFloat(tag int, value float64, header bool) {
	m.AppendPair(tag, strconv.FormatFloat(value, 'f', -1, 64), header)
}

// AppendDecimal appends a tag with an exact decimal value.  Prefer
// this over AppendFloat for prices and quantities.
func (m *Message) AppendDecimal(tag int, value decimal.Decimal, header bool) {
	m.AppendPair(tag, value.String(), header)
}

// Typed getters.  Each reads the first occurrence of tag and reports
// false when the tag is absent or the value does not convert.

// GetString returns the first occurrence of tag as a string.
func (m *Message) GetString(tag int) (string, bool) {
	v := m.Get(tag)
	if v == nil {
		return "", false
	}
	return string(v), true
}

// GetInt returns the first occurrence of tag as an int64.
func (m *Message) GetInt(tag int) (int64, bool) {
	v := m.Get(tag)
	if v == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// GetFloat returns the first occurrence of tag as a float64.
func (m *Message) GetFloat(tag int) (float64, bool) {
	v := m.Get(tag)
	if v == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// GetDecimal returns the first occurrence of tag as an exact decimal.
func (m *Message) GetDecimal(tag int) (decimal.Decimal, bool) {
	v := m.Get(tag)
	if v == nil {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(string(v))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
