// errors.go
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
	"errors"
	"fmt"
)

// ErrParserConfig reports an invalid combination of parser options.
var ErrParserConfig = errors.New(
	"fixmsg: allow-missing-begin-string and strip-fields-before-begin-string are mutually exclusive")

// Encoding failures for messages missing a mandatory field.
var (
	ErrNoBeginString = errors.New("fixmsg: no BeginString (8) field to encode")
	ErrNoMsgType     = errors.New("fixmsg: no MsgType (35) field to encode")
)

// TagNotNumberError reports tag text that is not a positive integer.
type TagNotNumberError struct {
	Text string
}

func (e *TagNotNumberError) Error() string {
	return fmt.Sprintf("fixmsg: tag %q is not a positive number", e.Text)
}

// FieldOrderError reports a mandatory leading tag out of position.
type FieldOrderError struct {
	Tag  int // tag found
	Want int // tag required at this position
}

func (e *FieldOrderError) Error() string {
	return fmt.Sprintf("fixmsg: tag %d out of order, expected tag %d", e.Tag, e.Want)
}

// EmptyValueError reports a zero-length value when not permitted.
type EmptyValueError struct {
	Tag int
}

func (e *EmptyValueError) Error() string {
	return fmt.Sprintf("fixmsg: tag %d has an empty value", e.Tag)
}

// RawLengthNotNumberError reports a registered raw length field whose
// value is not a base-10 byte count.
type RawLengthNotNumberError struct {
	Tag  int
	Text string
}

func (e *RawLengthNotNumberError) Error() string {
	return fmt.Sprintf("fixmsg: raw length tag %d value %q is not a number", e.Tag, e.Text)
}

// IncompleteTagError reports a stop byte read in the middle of a tag.
type IncompleteTagError struct {
	Text string
}

func (e *IncompleteTagError) Error() string {
	return fmt.Sprintf("fixmsg: stop byte read inside tag %q", e.Text)
}

// FormatError reports a malformed pre-composed "tag=value" string.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("fixmsg: malformed field %q: %s", e.Input, e.Reason)
}
