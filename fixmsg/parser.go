// parser.go
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
	"bytes"
)

// Parser is an incremental FIX message decoder.
//
// Bytes accumulate via AppendBuffer in whatever fragments the
// transport delivers; each GetMessage call removes at most one
// complete message from the head of the buffer.  Parse state persists
// across calls, so a message split at any byte offset, even inside a
// raw data value, resumes correctly once more bytes arrive.
//
// A Parser serves exactly one byte stream; use one instance per
// connection and do not share it between goroutines without external
// locking.  It performs no validation of field presence, types or
// enumerated values.
type Parser struct {
	buf    []byte
	fields []Field // consumed fields of the in-progress message

	// Raw data handling.  rawPairs maps a length tag to its value
	// tag.  After a length field is consumed, rawValTag/rawLen hold
	// the pending value tag and byte count until the value field is
	// read in full.
	rawPairs   map[int]int
	rawValTag  int
	rawLen     int
	rawPending bool

	allowEmptyValues             bool
	allowMissingBeginString      bool
	stripFieldsBeforeBeginString bool
	stopByte                     byte
	hasStopByte                  bool
	stopTag                      int
}

// NewParser returns a parser with default options: strict header
// ordering, empty values rejected, messages terminated by Checksum
// (10), and the FIX.5.0 raw data pair table active.
func NewParser() *Parser {
	p := &Parser{
		stopTag:  TagChecksum,
		rawPairs: make(map[int]int, len(defaultRawPairs)),
	}
	for _, rp := range defaultRawPairs {
		p.rawPairs[rp.LengthTag] = rp.ValueTag
	}
	return p
}

// AddRaw registers a private raw data field.  The parser will treat
// the value field as length-delimited by the preceding length field,
// so its content may include SOH bytes.
func (p *Parser) AddRaw(lengthTag, valueTag int) {
	p.rawPairs[lengthTag] = valueTag
}

// RemoveRaw drops a raw data field association, built-in or private,
// so both tags parse as ordinary delimited fields.
func (p *Parser) RemoveRaw(lengthTag, valueTag int) {
	if p.rawPairs[lengthTag] == valueTag {
		delete(p.rawPairs, lengthTag)
	}
}

// SetAllowEmptyValues controls whether a zero-length value is stored
// as empty bytes (true) or fails with EmptyValueError (false).
func (p *Parser) SetAllowEmptyValues(allow bool) {
	p.allowEmptyValues = allow
}

// SetAllowMissingBeginString disables the mandatory
// BeginString/BodyLength/MsgType leading-field checks.  Incompatible
// with SetStripFieldsBeforeBeginString.
func (p *Parser) SetAllowMissingBeginString(allow bool) error {
	if allow && p.stripFieldsBeforeBeginString {
		return ErrParserConfig
	}
	p.allowMissingBeginString = allow
	return nil
}

// SetStripFieldsBeforeBeginString makes the parser discard well-formed
// fields ahead of BeginString (8) instead of failing with
// FieldOrderError.  Incompatible with SetAllowMissingBeginString.
func (p *Parser) SetStripFieldsBeforeBeginString(strip bool) error {
	if strip && p.allowMissingBeginString {
		return ErrParserConfig
	}
	p.stripFieldsBeforeBeginString = strip
	return nil
}

// SetStopByte registers an additional terminator byte that ends both
// the current field and the current message.  Useful for logs that
// separate messages with newlines.
func (p *Parser) SetStopByte(b byte) {
	p.stopByte = b
	p.hasStopByte = true
}

// ClearStopByte removes a previously configured stop byte.
func (p *Parser) ClearStopByte() {
	p.hasStopByte = false
}

// SetStopTag changes the tag that marks the end of a message.  The
// default is Checksum (10).
func (p *Parser) SetStopTag(tag int) {
	if tag > 0 {
		p.stopTag = tag
	}
}

// AppendBuffer adds raw bytes to the internal buffer.  No parsing
// happens here, so appending a partial field is always safe.
func (p *Parser) AppendBuffer(buf []byte) {
	p.buf = append(p.buf, buf...)
}

// Buffer returns the bytes not yet consumed by GetMessage.  After a
// parse error the offending field sits at the head of this slice.
func (p *Parser) Buffer() []byte {
	return p.buf
}

// Reset discards all buffered bytes and any partially parsed message
// state, keeping the configured options and raw pair registry.
func (p *Parser) Reset() {
	p.buf = nil
	p.fields = nil
	p.rawPending = false
}

// GetMessage decodes at most one complete message from the head of
// the buffer.
//
// It returns (nil, nil) while the buffered bytes do not yet form a
// complete message; that is the normal steady state mid-stream, not
// an error.  On a structural violation it returns one of the typed
// errors from this package and leaves the offending bytes unconsumed,
// so the caller can inspect Buffer() and Reset() to resynchronise.
// Ownership of a returned Message passes to the caller; the parser
// keeps no reference to it.
func (p *Parser) GetMessage() (*Message, error) {
	for {
		// A stop byte at the head of the buffer is a message
		// boundary: the previous field was already terminated.
		if p.hasStopByte && len(p.buf) > 0 && p.buf[0] == p.stopByte {
			p.buf = p.buf[1:]
			if len(p.fields) > 0 {
				return p.emit(), nil
			}
			continue
		}

		if len(p.buf) == 0 {
			return nil, nil
		}

		eq := bytes.IndexByte(p.buf, equalsByte)
		if p.hasStopByte {
			if sb := bytes.IndexByte(p.buf, p.stopByte); sb >= 0 && (eq < 0 || sb < eq) {
				return nil, &IncompleteTagError{Text: string(p.buf[:sb])}
			}
		}
		if eq < 0 {
			return nil, nil // incomplete tag, wait for more bytes
		}

		tag, err := parseTag(p.buf[:eq])
		if err != nil {
			return nil, err
		}

		var (
			value    []byte
			consumed int // field bytes including the terminator
			stopped  bool
		)

		if p.rawPending && tag == p.rawValTag {
			// Length-delimited value: take exactly rawLen bytes plus
			// the terminator, ignoring any SOH bytes inside.
			need := eq + 1 + p.rawLen + 1
			if len(p.buf) < need {
				return nil, nil
			}
			value = p.buf[eq+1 : eq+1+p.rawLen]
			consumed = need
			if p.hasStopByte && p.buf[need-1] == p.stopByte {
				stopped = true
			}
		} else {
			p.rawPending = false

			term, stop := p.findTerminator(p.buf[eq+1:])
			if term < 0 {
				return nil, nil // incomplete value
			}
			value = p.buf[eq+1 : eq+1+term]
			consumed = eq + 1 + term + 1
			stopped = stop

			if len(value) == 0 && !p.allowEmptyValues {
				return nil, &EmptyValueError{Tag: tag}
			}
		}

		// Leading-field discipline: 8, then 9, then 35.
		if !p.allowMissingBeginString {
			switch want, pos := p.wantAt(len(p.fields)); {
			case want == 0 || tag == want:
				// in order
			case pos == 0 && p.stripFieldsBeforeBeginString:
				p.buf = p.buf[consumed:] // discard pre-BeginString field
				continue
			default:
				return nil, &FieldOrderError{Tag: tag, Want: want}
			}
		}

		// A registered raw length field arms length-delimited
		// consumption of its paired value field.
		if valTag, ok := p.rawPairs[tag]; ok && !p.rawPending {
			n, numOK := parseRawLen(value)
			if !numOK {
				return nil, &RawLengthNotNumberError{Tag: tag, Text: string(value)}
			}
			p.rawValTag, p.rawLen, p.rawPending = valTag, n, true
		} else {
			p.rawPending = false
		}

		p.buf = p.buf[consumed:]
		p.fields = append(p.fields, Field{Tag: tag, Value: bytes.Clone(value)})

		if stopped || tag == p.stopTag {
			return p.emit(), nil
		}
	}
}

// wantAt returns the tag required at field position pos, or 0 when
// any tag is acceptable.
func (p *Parser) wantAt(pos int) (want, position int) {
	switch pos {
	case 0:
		return TagBeginString, 0
	case 1:
		return TagBodyLength, 1
	case 2:
		return TagMsgType, 2
	}
	return 0, pos
}

// findTerminator locates the next SOH or stop byte in b.  It returns
// the index and whether the terminator was the stop byte, or -1 when
// neither is present yet.
func (p *Parser) findTerminator(b []byte) (int, bool) {
	for i, c := range b {
		if c == SOH {
			return i, false
		}
		if p.hasStopByte && c == p.stopByte {
			return i, true
		}
	}
	return -1, false
}

// emit hands the accumulated fields to a fresh Message and resets the
// in-progress state for the next message.
func (p *Parser) emit() *Message {
	m := NewMessage()
	m.fields = p.fields
	p.fields = nil
	p.rawPending = false
	return m
}

func parseTag(text []byte) (int, error) {
	if len(text) == 0 {
		return 0, &TagNotNumberError{Text: string(text)}
	}
	n := 0
	for _, c := range text {
		if c < '0' || c > '9' || n > 1<<24 {
			return 0, &TagNotNumberError{Text: string(text)}
		}
		n = n*10 + int(c-'0')
	}
	if n == 0 {
		return 0, &TagNotNumberError{Text: string(text)}
	}
	return n, nil
}

func parseRawLen(text []byte) (int, bool) {
	if len(text) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range text {
		if c < '0' || c > '9' || n > 1<<28 {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
