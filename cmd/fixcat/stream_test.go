// stream_test.go
package main

import (
	"strings"
	"testing"

	"github.com/edgewater/fixwire/dict"
)

func TestHandleLogLinePlainText(t *testing.T) {
	dict.DisableColours()

	var out strings.Builder
	handleLogLine("just an ordinary log line", dict.Default(), &out, "====\n")

	if got := out.String(); got != "just an ordinary log line\n" {
		t.Errorf("handleLogLine() = %q, want the line echoed", got)
	}
}

func TestHandleLogLineWithMessage(t *testing.T) {
	dict.DisableColours()

	line := "12:00:01 OUT 8=FIX.4.4\x019=5\x0135=0\x0110=163\x01 tail"
	var out strings.Builder
	handleLogLine(line, dict.Default(), &out, "====\n")

	got := out.String()
	if !strings.Contains(got, "12:00:01 OUT") || !strings.Contains(got, " tail") {
		t.Errorf("surrounding text lost:\n%s", got)
	}
	if !strings.Contains(got, "(MsgType): 0 (Heartbeat)") {
		t.Errorf("message not decoded:\n%s", got)
	}
	if got := strings.Count(got, "====\n"); got != 2 {
		t.Errorf("expected 2 separators, got %d", got)
	}
}

func TestHandleLogLineMultipleMessages(t *testing.T) {
	dict.DisableColours()

	line := "8=FIX.4.4\x019=5\x0135=0\x0110=163\x01 and 8=FIX.4.4\x019=5\x0135=1\x0110=164\x01"
	var out strings.Builder
	handleLogLine(line, dict.Default(), &out, "====\n")

	got := out.String()
	if !strings.Contains(got, "Heartbeat") || !strings.Contains(got, "TestRequest") {
		t.Errorf("expected both messages decoded:\n%s", got)
	}
}

func TestPrintFixMessageDecodeError(t *testing.T) {
	dict.DisableColours()

	// Matches the extraction pattern but violates field order.
	var out strings.Builder
	printFixMessage("8=FIX.4.4\x0134=1\x0110=163\x01", dict.Default(), &out)

	if !strings.Contains(out.String(), "==") {
		t.Errorf("expected a decode failure marker, got:\n%s", out.String())
	}
}

func TestExtractAndHighlight(t *testing.T) {
	dict.DisableColours()

	line := "head 8=FIX.4.4\x019=5\x0135=0\x0110=163\x01 tail"
	matches := fixMessageRe.FindAllStringIndex(line, -1)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	messages, formatted := extractAndHighlight(line, matches)
	if len(messages) != 1 {
		t.Fatalf("expected 1 extracted message, got %d", len(messages))
	}
	if messages[0] != "8=FIX.4.4\x019=5\x0135=0\x0110=163\x01" {
		t.Errorf("extracted message = %q", messages[0])
	}
	if !strings.HasSuffix(formatted, " tail\n") {
		t.Errorf("formatted line = %q, want trailing text preserved", formatted)
	}
}

func TestStreamLogReadsAllLines(t *testing.T) {
	dict.DisableColours()
	saved := getTermSize
	getTermSize = func(fd int) (int, int, error) { return 40, 24, nil }
	defer func() { getTermSize = saved }()

	in := strings.NewReader("plain line\n8=FIX.4.4\x019=5\x0135=0\x0110=163\x01\n")
	var out, errOut strings.Builder

	obf := dict.NewObfuscator(dict.SensitiveTags(), false)
	if err := streamLog(in, dict.Default(), obf, &out, &errOut); err != nil {
		t.Fatalf("streamLog() error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "plain line") {
		t.Errorf("plain line lost:\n%s", got)
	}
	if !strings.Contains(got, "Heartbeat") {
		t.Errorf("message not decoded:\n%s", got)
	}
	if !strings.Contains(got, strings.Repeat("=", 40)) {
		t.Errorf("separator not sized to the terminal:\n%s", got)
	}
}
