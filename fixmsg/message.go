// message.go
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

// Package fixmsg implements the FIX tag=value wire format: an ordered
// field container with header/body insertion discipline, deterministic
// encoding with derived BodyLength (9) and Checksum (10) fields, and a
// streaming parser that reassembles messages from arbitrary byte-stream
// fragments.
//
// The package performs no transport I/O and no message-level semantic
// validation: it stores and moves bytes, and leaves session behaviour
// to the caller.
package fixmsg

import (
	"bytes"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Field is a single tag=value pair.  The value is kept as raw bytes;
// use the typed accessors on Message for conversions.
type Field struct {
	Tag   int
	Value []byte
}

// Message is an ordered, mutable collection of FIX fields.
//
// Fields appended with the header flag are inserted at the end of the
// header run, ahead of all body fields; everything else appends to the
// tail.  Duplicate tags are allowed and represent repeating groups,
// addressed with a 1-based occurrence index.
//
// A Message carries no internal synchronisation.  It is plain data:
// mutate it from one goroutine, or share it read-only once built.
type Message struct {
	fields      []Field
	headerIndex int // insertion point: one past the last header field
}

// NewMessage returns an empty message.
func NewMessage() *Message {
	return &Message{}
}

func (m *Message) appendField(f Field, header bool) {
	if header {
		m.fields = slices.Insert(m.fields, m.headerIndex, f)
		m.headerIndex++
		return
	}
	m.fields = append(m.fields, f)
}

// AppendPair appends a tag=value pair.  Non-positive tags are ignored.
func (m *Message) AppendPair(tag int, value string, header bool) {
	if tag <= 0 {
		return
	}
	m.appendField(Field{Tag: tag, Value: []byte(value)}, header)
}

// AppendBytes appends a tag with a raw byte value.  A nil value is
// silently discarded and no field is appended; non-positive tags are
// ignored.
func (m *Message) AppendBytes(tag int, value []byte, header bool) {
	if tag <= 0 || value == nil {
		return
	}
	m.appendField(Field{Tag: tag, Value: bytes.Clone(value)}, header)
}

// AppendString appends a field from a pre-composed "tag=value" string.
func (m *Message) AppendString(field string, header bool) error {
	tagText, value, found := strings.Cut(field, "=")
	if !found {
		return &FormatError{Input: field, Reason: "missing '=' separator"}
	}

	tag, err := strconv.Atoi(tagText)
	if err != nil || tag <= 0 {
		return &FormatError{Input: field, Reason: "tag is not a positive integer"}
	}

	m.AppendPair(tag, value, header)
	return nil
}

// AppendStrings appends one field per "tag=value" string supplied.
func (m *Message) AppendStrings(fields []string, header bool) error {
	for _, f := range fields {
		if err := m.AppendString(f, header); err != nil {
			return err
		}
	}
	return nil
}

// AppendData appends a raw data field as its two wire components: the
// length field carrying len(data), immediately followed by the value
// field holding data verbatim.  The value may contain any byte,
// including SOH.  Example pairs: 95/96, 212/213, 354/355.
func (m *Message) AppendData(lengthTag, valueTag int, data []byte, header bool) {
	if data == nil {
		return
	}
	m.AppendPair(lengthTag, strconv.Itoa(len(data)), header)
	m.AppendBytes(valueTag, data, header)
}

// Len returns the number of fields in the message.
func (m *Message) Len() int {
	return len(m.fields)
}

// HeaderLen returns the number of leading fields appended as header
// fields.  Fields at indices below HeaderLen belong to the header run.
func (m *Message) HeaderLen() int {
	return m.headerIndex
}

// Count returns the number of occurrences of tag.
func (m *Message) Count(tag int) int {
	n := 0
	for _, f := range m.fields {
		if f.Tag == tag {
			n++
		}
	}
	return n
}

// Has reports whether at least one occurrence of tag is present.
func (m *Message) Has(tag int) bool {
	return m.Count(tag) > 0
}

// Get returns the value of the first occurrence of tag, or nil if
// absent.
func (m *Message) Get(tag int) []byte {
	return m.GetNth(tag, 1)
}

// GetNth returns the value of the nth occurrence of tag, counting from
// 1, or nil if there are fewer than nth occurrences.  The index base
// follows the FIX repeating-group convention.
func (m *Message) GetNth(tag, nth int) []byte {
	if nth < 1 {
		return nil
	}
	for _, f := range m.fields {
		if f.Tag != tag {
			continue
		}
		nth--
		if nth == 0 {
			return f.Value
		}
	}
	return nil
}

// Remove deletes the first occurrence of tag and returns its value, or
// nil if the tag is absent.
func (m *Message) Remove(tag int) []byte {
	return m.RemoveNth(tag, 1)
}

// RemoveNth deletes the nth occurrence of tag, counting from 1, and
// returns its value.  Later occurrences shift down by one.
func (m *Message) RemoveNth(tag, nth int) []byte {
	if nth < 1 {
		return nil
	}
	for i, f := range m.fields {
		if f.Tag != tag {
			continue
		}
		nth--
		if nth == 0 {
			m.fields = slices.Delete(m.fields, i, i+1)
			if i < m.headerIndex {
				m.headerIndex--
			}
			return f.Value
		}
	}
	return nil
}

// At returns the field at position i in storage order.
func (m *Message) At(i int) Field {
	return m.fields[i]
}

// All returns an iterator over the fields in storage order: the header
// run first, then the body.  The iterator reads live state; it may be
// ranged over more than once.
func (m *Message) All() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for _, f := range m.fields {
			if !yield(f) {
				return
			}
		}
	}
}

// Equal reports whether both messages hold the same multiset of
// tag=value pairs, regardless of field order.
func (m *Message) Equal(other *Message) bool {
	if other == nil || len(m.fields) != len(other.fields) {
		return false
	}

	remaining := slices.Clone(m.fields)
	for _, f := range other.fields {
		i := slices.IndexFunc(remaining, func(r Field) bool {
			return r.Tag == f.Tag && bytes.Equal(r.Value, f.Value)
		})
		if i < 0 {
			return false
		}
		remaining = slices.Delete(remaining, i, i+1)
	}
	return true
}

func writeField(buf *bytes.Buffer, tag int, value []byte) {
	buf.WriteString(strconv.Itoa(tag))
	buf.WriteByte(equalsByte)
	buf.Write(value)
	buf.WriteByte(SOH)
}

// EncodeRaw converts the message to wire format exactly as stored: no
// reordering, and no derivation of BodyLength or Checksum.  Useful for
// constructing deliberately malformed messages.
func (m *Message) EncodeRaw() []byte {
	var buf bytes.Buffer
	for _, f := range m.fields {
		writeField(&buf, f.Tag, f.Value)
	}
	return buf.Bytes()
}

// Encode converts the message to on-the-wire FIX format.
//
// BeginString (8) is placed first, BodyLength (9) second, MsgType (35)
// third and Checksum (10) last, regardless of where they were appended.
// BodyLength and Checksum are computed from the message content; any
// stored values for those tags are discarded.  All other fields keep
// their relative order.  No further validation is performed.
func (m *Message) Encode() ([]byte, error) {
	begin := m.Get(TagBeginString)
	if begin == nil {
		return nil, ErrNoBeginString
	}
	msgType := m.Get(TagMsgType)
	if msgType == nil {
		return nil, ErrNoMsgType
	}

	// Body runs from the MsgType field to the field before Checksum.
	var body bytes.Buffer
	writeField(&body, TagMsgType, msgType)
	for _, f := range m.fields {
		switch f.Tag {
		case TagBeginString, TagBodyLength, TagMsgType, TagChecksum:
			continue
		}
		writeField(&body, f.Tag, f.Value)
	}

	var buf bytes.Buffer
	writeField(&buf, TagBeginString, begin)
	writeField(&buf, TagBodyLength, []byte(strconv.Itoa(body.Len())))
	buf.Write(body.Bytes())

	sum := 0
	for _, b := range buf.Bytes() {
		sum += int(b)
	}
	writeField(&buf, TagChecksum, fmt.Appendf(nil, "%03d", sum%256))

	return buf.Bytes(), nil
}

// String renders the message with '|' separators.  The output is for
// humans and logs, not the wire; see Encode for that.
func (m *Message) String() string {
	return m.ToString("|")
}

// ToString renders the message using the given field separator.
func (m *Message) ToString(sep string) string {
	var sb strings.Builder
	for i, f := range m.fields {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(strconv.Itoa(f.Tag))
		sb.WriteByte(equalsByte)
		sb.Write(f.Value)
	}
	return sb.String()
}
