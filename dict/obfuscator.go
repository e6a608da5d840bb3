// obfuscator.go
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
package dict

import (
	"fmt"
	"io"
	"maps"
	"strconv"
	"strings"
	"sync"

	"github.com/edgewater/fixwire/fixmsg"
)

const soh = "\x01"

// SensitiveTags returns the default set of credential-bearing tags,
// keyed by tag number with the alias prefix as value.
func SensitiveTags() map[int]string {
	return map[int]string{
		553:  "Username",
		554:  "Password",
		925:  "NewPassword",
		1402: "EncryptedPassword",
		1404: "EncryptedNewPassword",
	}
}

// Obfuscator replaces values of sensitive FIX tags with stable
// aliases: the same input value always maps to the same alias within
// one Obfuscator's lifetime.  It is safe for concurrent use.
type Obfuscator struct {
	enabled  bool
	tags     map[int]string    // tag -> alias prefix
	mu       sync.Mutex        // protects aliasMap and counter
	aliasMap map[string]string // "tag=value" -> alias
	counter  map[int]int       // per-tag, for zero-padded suffixes
}

// NewObfuscator constructs an Obfuscator over the given tag set.  If
// enabled is false all rewriting methods pass input through unchanged.
func NewObfuscator(tags map[int]string, enabled bool) *Obfuscator {
	cp := make(map[int]string, len(tags))
	maps.Copy(cp, tags)

	return &Obfuscator{
		enabled:  enabled,
		tags:     cp,
		aliasMap: make(map[string]string),
		counter:  make(map[int]int),
	}
}

// alias returns the stable replacement for a sensitive tag=value pair,
// allocating a new one on first sight.  A first use is logged to log
// when non-nil.
func (o *Obfuscator) alias(tag int, prefix, value string, log io.Writer) string {
	key := strconv.Itoa(tag) + "=" + value

	o.mu.Lock()
	defer o.mu.Unlock()

	if a, ok := o.aliasMap[key]; ok {
		return a
	}

	o.counter[tag]++
	a := fmt.Sprintf("%s%04d", prefix, o.counter[tag])
	o.aliasMap[key] = a

	if log != nil {
		fmt.Fprintf(log, "first use: tag %d (%s) value [%s] -> [%s]\n",
			tag, prefix, value, a)
	}
	return a
}

// ObfuscateMessage returns a copy of m with every sensitive value
// replaced by its alias.  When disabled, or when m carries no
// sensitive tags, m itself is returned.
func (o *Obfuscator) ObfuscateMessage(m *fixmsg.Message, log io.Writer) *fixmsg.Message {
	if !o.enabled {
		return m
	}

	dirty := false
	for f := range m.All() {
		if _, ok := o.tags[f.Tag]; ok {
			dirty = true
			break
		}
	}
	if !dirty {
		return m
	}

	out := fixmsg.NewMessage()
	for i := 0; i < m.Len(); i++ {
		f := m.At(i)
		header := i < m.HeaderLen()
		if prefix, ok := o.tags[f.Tag]; ok {
			out.AppendPair(f.Tag, o.alias(f.Tag, prefix, string(f.Value), log), header)
		} else {
			out.AppendBytes(f.Tag, f.Value, header)
		}
	}
	return out
}

// ObfuscateLine rewrites a single SOH-delimited log line, replacing
// values of sensitive tags.  Fragments that are not tag=value pairs
// pass through untouched, so the method is safe on mixed log text.
func (o *Obfuscator) ObfuscateLine(line string, log io.Writer) string {
	if !o.enabled {
		return line
	}

	fields := strings.Split(line, soh)
	for i, f := range fields {
		tagText, value, ok := strings.Cut(f, "=")
		if !ok {
			continue
		}

		tag, err := strconv.Atoi(tagText)
		if err != nil {
			continue
		}

		prefix, sensitive := o.tags[tag]
		if !sensitive {
			continue
		}

		fields[i] = tagText + "=" + o.alias(tag, prefix, value, log)
	}

	return strings.Join(fields, soh)
}
