// main_test.go
package main

import (
	"os"
	"strings"
	"testing"

	"github.com/edgewater/fixwire/dict"
)

const expectedSetValueMsg = "Expected String to return the set value"

func TestTagFlagSet(t *testing.T) {
	var f tagFlag
	err := f.Set("35")
	if err != nil || f.value != "35" || !f.isSet {
		t.Error("Expected tagFlag to set correctly")
	}
	if !f.IsBoolFlag() {
		t.Error("Expected tagFlag to report IsBoolFlag true")
	}
	if f.String() != "35" {
		t.Error(expectedSetValueMsg)
	}
}

func TestColourFlagSet(t *testing.T) {
	var f colourFlag

	for _, s := range []string{"", "true", "yes"} {
		f = colourFlag{}
		if err := f.Set(s); err != nil || !f.value || !f.isSet {
			t.Errorf("Expected colourFlag.Set(%q) to enable colour", s)
		}
	}
	for _, s := range []string{"false", "no"} {
		f = colourFlag{}
		if err := f.Set(s); err != nil || f.value {
			t.Errorf("Expected colourFlag.Set(%q) to disable colour", s)
		}
	}
	if err := f.Set("maybe"); err == nil {
		t.Error("Expected colourFlag to reject invalid value")
	}
	if !f.IsBoolFlag() {
		t.Error("Expected colourFlag to report IsBoolFlag true")
	}
}

func TestParseFlagsArgs(t *testing.T) {
	var errOut strings.Builder
	opts, err := parseFlagsArgs([]string{"-info", "-obfuscate", "-column", "-tag=35", "-colour=no"}, &errOut)
	if err != nil {
		t.Fatalf("Expected flags to parse, got error: %v", err)
	}

	if !opts.Info || !opts.Obfuscate || !opts.Column {
		t.Error("Expected boolean flags to parse correctly")
	}
	if opts.Tag.value != "35" || !opts.Tag.isSet {
		t.Error("Expected -tag to capture its value")
	}
	if opts.Colour.value || !opts.Colour.isSet {
		t.Error("Expected -colour=no to parse as disabled")
	}
}

func TestParseFlagsArgsError(t *testing.T) {
	var errOut strings.Builder
	if _, err := parseFlagsArgs([]string{"-nosuchflag"}, &errOut); err == nil {
		t.Error("Expected parse error for unknown flag")
	}
}

func TestPrintUsage(t *testing.T) {
	var out strings.Builder
	PrintUsage(&out)

	for _, expected := range []string{"fixcat", "git clone", "Usage: fixcat"} {
		if !strings.Contains(out.String(), expected) {
			t.Errorf("Expected output to include %q, but it did not.\nFull output:\n%s", expected, out.String())
		}
	}
}

func TestExtractFileArgsOrStdinWithFiles(t *testing.T) {
	files := extractFileArgsOrStdin([]string{"input1.txt", "-v", "input2.txt"})
	if len(files) != 2 || files[0] != "input1.txt" || files[1] != "input2.txt" {
		t.Error("Expected file arguments extracted correctly")
	}
}

func TestExtractFileArgsOrStdinDefaultToStdin(t *testing.T) {
	files := extractFileArgsOrStdin([]string{"-v", "--flag"})
	if len(files) != 1 || files[0] != "-" {
		t.Error("Expected fallback to '-' for stdin")
	}
}

func TestLoadDictFromOptsDefault(t *testing.T) {
	d, err := loadDictFromOpts(CLIOptions{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if d.Version() != "FIX.4.4" {
		t.Errorf("Expected embedded FIX.4.4 dictionary, got: %s", d.Version())
	}
}

func TestLoadDictFromOptsExternalXML(t *testing.T) {
	sample := `<fix type='FIX' major='4' minor='2' servicepack='0'>
 <fields><field number='8' name='BeginString' type='STRING'/></fields>
</fix>`
	tmp, _ := os.CreateTemp("", "fix*.xml")
	defer os.Remove(tmp.Name())
	_ = os.WriteFile(tmp.Name(), []byte(sample), 0644)

	d, err := loadDictFromOpts(CLIOptions{DictPath: tmp.Name()})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if d.Version() != "FIX.4.2" {
		t.Errorf("Expected FIX.4.2, got: %s", d.Version())
	}
}

func TestLoadDictFromOptsMissingFile(t *testing.T) {
	if _, err := loadDictFromOpts(CLIOptions{DictPath: "nonexistent.xml"}); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadDictFromOptsUnmarshalError(t *testing.T) {
	tmp, _ := os.CreateTemp("", "bad*.xml")
	defer os.Remove(tmp.Name())
	_ = os.WriteFile(tmp.Name(), []byte("<fix><fields>"), 0644)

	if _, err := loadDictFromOpts(CLIOptions{DictPath: tmp.Name()}); err == nil {
		t.Error("Expected unmarshal error for bad XML")
	}
}

func TestHandleInfo(t *testing.T) {
	var out strings.Builder
	if !handleInfo(CLIOptions{Info: true}, dict.Default(), &out) {
		t.Fatal("Expected handleInfo to fire for -info")
	}
	if !strings.Contains(out.String(), "FIX Version: FIX.4.4") {
		t.Errorf("Expected version in summary, got:\n%s", out.String())
	}
	if handleInfo(CLIOptions{}, dict.Default(), &out) {
		t.Error("Expected handleInfo to skip without -info")
	}
}

func TestHandleSpecificTag(t *testing.T) {
	var out strings.Builder
	opts := CLIOptions{Tag: tagFlag{value: "35", isSet: true}}
	if !handleTag(opts, dict.Default(), &out) {
		t.Fatal("Expected handleTag to fire")
	}
	if !strings.Contains(out.String(), "MsgType") {
		t.Errorf("Expected tag details, got:\n%s", out.String())
	}
}

func TestHandleUnknownTag(t *testing.T) {
	var out strings.Builder
	handleTag(CLIOptions{Tag: tagFlag{value: "99999", isSet: true}}, dict.Default(), &out)
	if !strings.Contains(out.String(), "Tag not found: 99999") {
		t.Errorf("Expected not-found message, got:\n%s", out.String())
	}

	out.Reset()
	handleTag(CLIOptions{Tag: tagFlag{value: "abc", isSet: true}}, dict.Default(), &out)
	if !strings.Contains(out.String(), "Invalid tag: abc") {
		t.Errorf("Expected invalid-tag message, got:\n%s", out.String())
	}
}

func TestHandleBareTagListsAll(t *testing.T) {
	var out strings.Builder
	handleTag(CLIOptions{Tag: tagFlag{value: "true", isSet: true}}, dict.Default(), &out)

	for _, expected := range []string{"BeginString", "CheckSum", "Symbol"} {
		if !strings.Contains(out.String(), expected) {
			t.Errorf("Expected listing to include %q", expected)
		}
	}
}

func TestHandleBareTagColumns(t *testing.T) {
	saved := getTermSize
	getTermSize = func(fd int) (int, int, error) { return 120, 24, nil }
	defer func() { getTermSize = saved }()

	var out strings.Builder
	opts := CLIOptions{Tag: tagFlag{value: "true", isSet: true}, Column: true}
	handleTag(opts, dict.Default(), &out)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) >= dict.Default().FieldCount() {
		t.Errorf("Expected columnar output to use fewer lines than fields (%d lines)", len(lines))
	}
}

func TestRunHandlersNothingSet(t *testing.T) {
	var out strings.Builder
	if runHandlers(CLIOptions{}, dict.Default(), &out) {
		t.Error("Expected runHandlers to report unhandled with no flags")
	}
}

func TestProcessInfoPath(t *testing.T) {
	var out, errOut strings.Builder
	if code := Process([]string{"-info"}, &out, &errOut); code != 0 {
		t.Errorf("Expected 0 code from info path, got %d, err=%s", code, errOut.String())
	}
}

func TestProcessBadFlag(t *testing.T) {
	var out, errOut strings.Builder
	if code := Process([]string{"-nosuchflag"}, &out, &errOut); code != 1 {
		t.Errorf("Expected 1 code for unknown flag, got %d", code)
	}
}

func TestProcessMissingDictionary(t *testing.T) {
	var out, errOut strings.Builder
	if code := Process([]string{"-dict=nonexistent.xml"}, &out, &errOut); code != 1 {
		t.Errorf("Expected 1 code for missing dictionary, got %d", code)
	}
}

func TestProcessPrettifiesLogFile(t *testing.T) {
	tmp, _ := os.CreateTemp("", "test*.log")
	defer os.Remove(tmp.Name())
	log := "2026-08-31 12:00:00 IN  8=FIX.4.4\x019=21\x0135=0\x0134=7\x01112=ping\x0110=001\x01\n"
	_ = os.WriteFile(tmp.Name(), []byte(log), 0644)

	var out, errOut strings.Builder
	code := Process([]string{"-colour=no", tmp.Name()}, &out, &errOut)
	if code != 0 {
		t.Fatalf("Expected success, got code=%d, err=%s", code, errOut.String())
	}

	for _, expected := range []string{"Heartbeat", "TestReqID", "ping"} {
		if !strings.Contains(out.String(), expected) {
			t.Errorf("Expected decoded output to include %q.\nFull output:\n%s", expected, out.String())
		}
	}
}

func TestProcessObfuscatesLogFile(t *testing.T) {
	tmp, _ := os.CreateTemp("", "test*.log")
	defer os.Remove(tmp.Name())
	log := "8=FIX.4.4\x019=30\x0135=A\x01553=alice\x01554=hunter2\x0110=002\x01\n"
	_ = os.WriteFile(tmp.Name(), []byte(log), 0644)

	var out, errOut strings.Builder
	code := Process([]string{"-colour=no", "-obfuscate", tmp.Name()}, &out, &errOut)
	if code != 0 {
		t.Fatalf("Expected success, got code=%d, err=%s", code, errOut.String())
	}

	if strings.Contains(out.String(), "hunter2") {
		t.Errorf("Expected password to be obfuscated.\nFull output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Password0001") {
		t.Errorf("Expected alias in output.\nFull output:\n%s", out.String())
	}
}

func TestProcessMissingLogFile(t *testing.T) {
	var out, errOut strings.Builder
	if code := Process([]string{"-colour=no", "nonexistent.log"}, &out, &errOut); code != 1 {
		t.Errorf("Expected 1 code for missing log file, got %d", code)
	}
}
