// format_test.go
package dict

import (
	"strings"
	"testing"

	"github.com/edgewater/fixwire/fixmsg"
)

func TestFormatMessage(t *testing.T) {
	DisableColours()

	msg := fixmsg.NewMessage()
	msg.AppendPair(35, "D", false)
	msg.AppendPair(54, "1", false)
	msg.AppendPair(55, "EURUSD", false)

	got := FormatMessage(msg, Default())

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("FormatMessage() produced %d lines, want 3:\n%s", len(lines), got)
	}

	want := []string{
		"      35 (MsgType): D (NewOrderSingle)",
		"      54 (Side): 1 (BUY)",
		"      55 (Symbol): EURUSD",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestFormatMessageUnknownTag(t *testing.T) {
	DisableColours()

	msg := fixmsg.NewMessage()
	msg.AppendPair(99999, "?", false)

	got := FormatMessage(msg, Default())
	if !strings.Contains(got, "(99999): ?") {
		t.Errorf("FormatMessage() = %q, want numeric fallback name", got)
	}
}
