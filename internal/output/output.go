// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package output renders decoded records for the emvtlv command.
package output

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"codello.dev/emvtlv"
	"codello.dev/emvtlv/emv"
)

// ErrUnknownFormat is returned by [New] for unsupported format names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formatter writes a list of records to w.
type Formatter interface {
	Format(w io.Writer, records []emvtlv.Record) error
}

var formatters = map[string]Formatter{
	"text":    Text{},
	"json":    JSON{},
	"msgpack": MsgPack{},
}

// New returns the formatter registered under name.
func New(name string) (Formatter, error) {
	f, ok := formatters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Names returns the names of all formatters in ascending order.
func Names() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Entry is the serialized view of a single record.
type Entry struct {
	Tag         string `json:"tag" msgpack:"tag"`
	Name        string `json:"name,omitempty" msgpack:"name,omitempty"`
	Class       string `json:"class" msgpack:"class"`
	Constructed bool   `json:"constructed" msgpack:"constructed"`
	Number      uint32 `json:"number" msgpack:"number"`
	Length      int    `json:"length" msgpack:"length"`
	LengthField string `json:"length_field" msgpack:"length_field"`
	Value       string `json:"value" msgpack:"value"`
}

// NewEntry returns the view of r. Tag, length field and value are encoded as
// upper-case hexadecimal strings.
func NewEntry(r emvtlv.Record) Entry {
	return Entry{
		Tag:         upperHex(r.Tag()),
		Name:        emv.Name(r.TagID()),
		Class:       r.Class().String(),
		Constructed: r.Constructed(),
		Number:      r.TagNumber(),
		Length:      r.ValueLen(),
		LengthField: upperHex(r.LengthField()),
		Value:       upperHex(r.Value()),
	}
}

// Entries returns the views of records.
func Entries(records []emvtlv.Record) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = NewEntry(r)
	}
	return entries
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
