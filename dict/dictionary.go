// dictionary.go
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

// Package dict resolves FIX tag numbers to field names, enum value
// descriptions and field types using a QuickFIX-format XML dictionary.
// It exists for diagnostics and rendering; the codec in fixmsg never
// consults a dictionary.
package dict

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"io"
	"strconv"
	"sync"

	"golang.org/x/net/html/charset"
)

//go:embed FIX44.xml
var embeddedFIX44 []byte

// rawDictionary mirrors the QuickFIX XML layout.  Both the flat
// <value> and the wrapped <values><value> enum forms appear in the
// wild, so accept either.
type rawDictionary struct {
	XMLName     xml.Name `xml:"fix"`
	Type        string   `xml:"type,attr"`
	Major       string   `xml:"major,attr"`
	Minor       string   `xml:"minor,attr"`
	ServicePack string   `xml:"servicepack,attr"`

	Fields []struct {
		Name string `xml:"name,attr"`
		Tag  int    `xml:"number,attr"`
		Type string `xml:"type,attr"`

		Values []struct {
			Enum        string `xml:"enum,attr"`
			Description string `xml:"description,attr"`
		} `xml:"value"`

		ValuesWrapper []struct {
			Enum        string `xml:"enum,attr"`
			Description string `xml:"description,attr"`
		} `xml:"values>value"`
	} `xml:"fields>field"`

	Header struct {
		Fields []struct {
			Name string `xml:"name,attr"`
		} `xml:"field"`
	} `xml:"header"`

	Trailer struct {
		Fields []struct {
			Name string `xml:"name,attr"`
		} `xml:"field"`
	} `xml:"trailer"`

	Messages []struct {
		Name    string `xml:"name,attr"`
		MsgType string `xml:"msgtype,attr"`
	} `xml:"messages>message"`
}

// Dictionary answers tag and enum lookups for one FIX version.  All
// methods are read-only, so a Dictionary is safe for concurrent use.
type Dictionary struct {
	version      string
	tagNames     map[int]string
	nameToTag    map[string]int
	fieldTypes   map[int]string
	enumDescs    map[int]map[string]string
	headerTags   map[int]bool
	trailerTags  map[int]bool
	messageNames map[string]string
}

// Load parses a QuickFIX-format XML dictionary.  Non-UTF-8 encodings
// declared in the XML prolog are handled transparently.
func Load(r io.Reader) (*Dictionary, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var raw rawDictionary
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	d := &Dictionary{
		version:      raw.Type + "." + raw.Major + "." + raw.Minor,
		tagNames:     make(map[int]string, len(raw.Fields)),
		nameToTag:    make(map[string]int, len(raw.Fields)),
		fieldTypes:   make(map[int]string, len(raw.Fields)),
		enumDescs:    make(map[int]map[string]string),
		headerTags:   make(map[int]bool, len(raw.Header.Fields)),
		trailerTags:  make(map[int]bool, len(raw.Trailer.Fields)),
		messageNames: make(map[string]string, len(raw.Messages)),
	}
	if raw.ServicePack != "" && raw.ServicePack != "0" {
		d.version += "SP" + raw.ServicePack
	}

	for _, f := range raw.Fields {
		d.tagNames[f.Tag] = f.Name
		d.nameToTag[f.Name] = f.Tag
		d.fieldTypes[f.Tag] = f.Type

		enums := make(map[string]string, len(f.Values)+len(f.ValuesWrapper))
		for _, v := range f.Values {
			enums[v.Enum] = v.Description
		}
		for _, v := range f.ValuesWrapper {
			enums[v.Enum] = v.Description
		}
		if len(enums) > 0 {
			d.enumDescs[f.Tag] = enums
		}
	}

	for _, f := range raw.Header.Fields {
		if tag, ok := d.nameToTag[f.Name]; ok {
			d.headerTags[tag] = true
		}
	}
	for _, f := range raw.Trailer.Fields {
		if tag, ok := d.nameToTag[f.Name]; ok {
			d.trailerTags[tag] = true
		}
	}

	// Message names double as enum descriptions for MsgType (35).
	msgTypeEnums := d.enumDescs[35]
	if msgTypeEnums == nil {
		msgTypeEnums = make(map[string]string, len(raw.Messages))
		d.enumDescs[35] = msgTypeEnums
	}
	for _, m := range raw.Messages {
		d.messageNames[m.MsgType] = m.Name
		if _, ok := msgTypeEnums[m.MsgType]; !ok {
			msgTypeEnums[m.MsgType] = m.Name
		}
	}

	return d, nil
}

var defaultDict = sync.OnceValue(func() *Dictionary {
	d, err := Load(bytes.NewReader(embeddedFIX44))
	if err != nil {
		panic("dict: embedded FIX44.xml: " + err.Error())
	}
	return d
})

// Default returns the built-in FIX 4.4 dictionary, parsed once.
func Default() *Dictionary {
	return defaultDict()
}

// Version returns the dictionary's version string, e.g. "FIX.4.4".
func (d *Dictionary) Version() string {
	return d.version
}

// TagName returns the field name for tag, or the tag number in text
// when the dictionary does not know it.
func (d *Dictionary) TagName(tag int) string {
	if name, ok := d.tagNames[tag]; ok {
		return name
	}
	return strconv.Itoa(tag)
}

// Tag returns the tag number for a field name.
func (d *Dictionary) Tag(name string) (int, bool) {
	tag, ok := d.nameToTag[name]
	return tag, ok
}

// EnumDescription returns the description of an enumerated value, or
// "" when the tag or value is unknown.
func (d *Dictionary) EnumDescription(tag int, value string) string {
	return d.enumDescs[tag][value]
}

// FieldType returns the FIX data type name for tag, e.g. "PRICE".
func (d *Dictionary) FieldType(tag int) string {
	return d.fieldTypes[tag]
}

// IsHeaderField reports whether tag belongs to the standard header.
func (d *Dictionary) IsHeaderField(tag int) bool {
	return d.headerTags[tag]
}

// IsTrailerField reports whether tag belongs to the standard trailer.
func (d *Dictionary) IsTrailerField(tag int) bool {
	return d.trailerTags[tag]
}

// MessageName returns the message name for a MsgType value, or "".
func (d *Dictionary) MessageName(msgType string) string {
	return d.messageNames[msgType]
}

// FieldCount returns the number of fields the dictionary defines.
func (d *Dictionary) FieldCount() int {
	return len(d.tagNames)
}

// MessageCount returns the number of message types defined.
func (d *Dictionary) MessageCount() int {
	return len(d.messageNames)
}
