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
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/edgewater/fixwire/dict"
	"github.com/edgewater/fixwire/fixmsg"
)

var fixMessageRe = regexp.MustCompile(`8=FIX.*?10=\d{3}\x01`)

// prettifyFiles decodes every FIX message found in the given files and
// renders them with dictionary lookups.  A single dash reads stdin.
func prettifyFiles(paths []string, d *dict.Dictionary, obfuscator *dict.Obfuscator, out, errOut io.Writer) int {
	hadError := false

	for _, path := range paths {
		var (
			r io.Reader
			c io.Closer // nil when reading stdin
		)

		if path == "-" {
			fmt.Fprint(out, "Processing: (stdin)\n\n")
			r = os.Stdin
		} else {
			fmt.Fprint(out, "Processing: ", dict.ColourFile, path, dict.ColourReset, "\n\n")

			f, err := os.Open(path)
			if err != nil {
				fmt.Fprintln(errOut, dict.ColourError+"Cannot open file:"+err.Error()+dict.ColourReset)
				hadError = true
				continue
			}
			r, c = f, f
		}

		if err := streamLog(r, d, obfuscator, out, errOut); err != nil {
			fmt.Fprintln(errOut, dict.ColourError+"Error reading file:"+err.Error()+dict.ColourReset)
			hadError = true
		}

		if c != nil {
			c.Close()
		}
	}

	if hadError {
		return 1
	}

	return 0
}

func streamLog(in io.Reader, d *dict.Dictionary, obfuscator *dict.Obfuscator, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	termWidth := terminalWidth()
	separator := dict.ColourTitle + strings.Repeat("=", termWidth) + dict.ColourReset + "\n"

	for scanner.Scan() {
		line := obfuscator.ObfuscateLine(scanner.Text(), errOut)
		handleLogLine(line, d, out, separator)
	}

	return scanner.Err()
}

func handleLogLine(line string, d *dict.Dictionary, out io.Writer, separator string) {
	matches := fixMessageRe.FindAllStringIndex(line, -1)

	if len(matches) == 0 {
		fmt.Fprint(out, dict.ColourLine, line, dict.ColourReset, "\n")
		return
	}

	messages, colouredLine := extractAndHighlight(line, matches)
	fmt.Fprint(out, colouredLine)
	fmt.Fprint(out, separator)

	for _, msg := range messages {
		printFixMessage(msg, d, out)
		fmt.Fprint(out, separator)
	}
}

// printFixMessage runs one extracted wire message through the codec
// and renders either the decoded fields or the decode failure.
func printFixMessage(msg string, d *dict.Dictionary, out io.Writer) {
	p := fixmsg.NewParser()
	p.SetAllowEmptyValues(true)
	p.AppendBuffer([]byte(msg))

	decoded, err := p.GetMessage()
	if err != nil {
		fmt.Fprintf(out, "%s== %v%s\n", dict.ColourError, err, dict.ColourReset)
		return
	}
	if decoded == nil {
		fmt.Fprintf(out, "%s== truncated message%s\n", dict.ColourError, dict.ColourReset)
		return
	}

	fmt.Fprint(out, dict.FormatMessage(decoded, d))
}

func extractAndHighlight(line string, matches [][]int) ([]string, string) {
	var (
		output    strings.Builder
		lastIndex int
		messages  []string
	)

	for _, match := range matches {
		start, end := match[0], match[1]
		before := line[lastIndex:start]
		fixPart := line[start:end]

		output.WriteString(dict.ColourLine + before + dict.ColourMsg + fixPart)
		messages = append(messages, fixPart)
		lastIndex = end
	}

	output.WriteString(dict.ColourLine + line[lastIndex:] + dict.ColourReset + "\n")

	return messages, output.String()
}

func terminalWidth() int {
	if w, _, err := getTermSize(int(os.Stdout.Fd())); err == nil {
		return w
	}
	return 80
}
