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
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/edgewater/fixwire/dict"
	"golang.org/x/term"
)

var getTermSize = term.GetSize // allow override in tests

// knownTags holds the tag numbers the bare -tag listing walks.  The
// dictionary API is keyed by number, so probe the plausible range and
// keep the hits.
func knownTags(d *dict.Dictionary) []int {
	var tags []int
	for tag := 1; tag <= 10000; tag++ {
		if d.TagName(tag) != strconv.Itoa(tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// handleInfo prints a summary of the dictionary. Returns true if handled.
func handleInfo(opts CLIOptions, d *dict.Dictionary, out io.Writer) bool {
	if !opts.Info {
		return false
	}

	fmt.Fprintf(out, "Current Dictionary:\n")
	fmt.Fprintf(out, "  FIX Version: %s\n", d.Version())
	fmt.Fprintf(out, "  Messages:    %d\n", d.MessageCount())
	fmt.Fprintf(out, "  Fields:      %d\n", d.FieldCount())

	return true
}

// handleTag processes the -tag flag. Returns true if handled.
func handleTag(opts CLIOptions, d *dict.Dictionary, out io.Writer) bool {
	if !opts.Tag.isSet {
		return false
	}

	switch opts.Tag.value {
	case "true": // bare -tag
		handleBareTag(opts, d, out)
	case "": // explicit -tag=
		PrintUsage(out)
	default:
		handleSpecificTag(opts, d, out)
	}

	return true
}

func handleBareTag(opts CLIOptions, d *dict.Dictionary, out io.Writer) {
	tags := knownTags(d)

	lines := make([]string, 0, len(tags))
	for _, tag := range tags {
		lines = append(lines, fmt.Sprintf("%4d: %s", tag, d.TagName(tag)))
	}
	sort.Strings(lines)

	if opts.Column {
		printStringColumns(lines, out)
	} else {
		for _, l := range lines {
			fmt.Fprintln(out, l)
		}
	}
}

func handleSpecificTag(opts CLIOptions, d *dict.Dictionary, out io.Writer) {
	id, err := strconv.Atoi(opts.Tag.value)
	if err != nil {
		fmt.Fprintf(out, "Invalid tag: %s\n", opts.Tag.value)
		return
	}

	name := d.TagName(id)
	if name == opts.Tag.value {
		fmt.Fprintf(out, "Tag not found: %d\n", id)
		return
	}

	fmt.Fprintf(out, "%-4d: %s (%s)\n", id, name, d.FieldType(id))
}

// printStringColumns prints a slice of strings in columns based on
// terminal width.
func printStringColumns(items []string, out io.Writer) {
	width, _, err := getTermSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 80
	}

	maxLen := 0
	for _, s := range items {
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}

	cols := width / (maxLen + 2)
	if cols == 0 {
		cols = 1
	}

	rows := (len(items) + cols - 1) / cols

	for r := range rows {
		for c := range cols {
			i := c*rows + r

			if i < len(items) {
				fmt.Fprintf(out, "%-*s", maxLen+2, items[i])
			}
		}

		fmt.Fprintln(out)
	}
}

// runHandlers invokes the "-info" and "-tag" handlers.  It returns
// true if any handler fired.
func runHandlers(opts CLIOptions, d *dict.Dictionary, out io.Writer) bool {
	handled := false

	if handleInfo(opts, d, out) {
		handled = true
	}

	if handleTag(opts, d, out) {
		handled = true
	}

	return handled
}
