// value_test.go
package fixmsg

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIntRoundTrip(t *testing.T) {
	msg := NewMessage()
	msg.AppendInt(34, 12345, false)
	msg.AppendInt(7, -9, false)

	if got := msg.Get(34); string(got) != "12345" {
		t.Errorf("Get(34) = %q, want 12345", got)
	}
	if n, ok := msg.GetInt(7); !ok || n != -9 {
		t.Errorf("GetInt(7) = %d,%v, want -9,true", n, ok)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	msg := NewMessage()
	msg.AppendFloat(44, 3.1415679, false)

	if got := msg.Get(44); string(got) != "3.1415679" {
		t.Errorf("Get(44) = %q, want 3.1415679", got)
	}
	if f, ok := msg.GetFloat(44); !ok || f != 3.1415679 {
		t.Errorf("GetFloat(44) = %v,%v, want 3.1415679,true", f, ok)
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	price := decimal.RequireFromString("1.08345")

	msg := NewMessage()
	msg.AppendDecimal(44, price, false)
	if got := msg.Get(44); string(got) != "1.08345" {
		t.Errorf("Get(44) = %q, want 1.08345", got)
	}

	d, ok := msg.GetDecimal(44)
	if !ok || !d.Equal(price) {
		t.Errorf("GetDecimal(44) = %v,%v, want 1.08345,true", d, ok)
	}
}

func TestGetStringMissing(t *testing.T) {
	msg := NewMessage()
	msg.AppendPair(55, "EURUSD", false)

	if s, ok := msg.GetString(55); !ok || s != "EURUSD" {
		t.Errorf("GetString(55) = %q,%v, want EURUSD,true", s, ok)
	}
	if _, ok := msg.GetString(56); ok {
		t.Error("GetString(56) reported present for a missing tag")
	}
}

func TestGetNumericMalformed(t *testing.T) {
	msg := NewMessage()
	msg.AppendPair(38, "lots", false)

	if _, ok := msg.GetInt(38); ok {
		t.Error("GetInt accepted a non-numeric value")
	}
	if _, ok := msg.GetFloat(38); ok {
		t.Error("GetFloat accepted a non-numeric value")
	}
	if _, ok := msg.GetDecimal(38); ok {
		t.Error("GetDecimal accepted a non-numeric value")
	}
	if _, ok := msg.GetInt(99); ok {
		t.Error("GetInt reported present for a missing tag")
	}
}
