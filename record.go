// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emvtlv

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"

	"codello.dev/emvtlv/internal/vlq"
)

// Record is a single BER-TLV data object: a tag, the encoded length field and
// the value. Records are immutable. They own their bytes and all accessors
// return copies.
//
// Valid records are created by [Encode], [EncodeConstructed] or by decoding.
// The zero Record has no tag and is not valid.
type Record struct {
	raw    []byte // tag ++ length field ++ value
	tagLen int
	hdrLen int // tag and length field
}

// newRecord copies tag, field and value into a new Record.
func newRecord(tag, field, value []byte) Record {
	raw := make([]byte, 0, len(tag)+len(field)+len(value))
	raw = append(raw, tag...)
	raw = append(raw, field...)
	raw = append(raw, value...)
	return Record{raw: raw, tagLen: len(tag), hdrLen: len(tag) + len(field)}
}

// Tag returns the tag bytes of r.
func (r Record) Tag() []byte {
	return bytes.Clone(r.raw[:r.tagLen])
}

// LengthField returns the encoded length field of r exactly as it was read or
// written.
func (r Record) LengthField() []byte {
	return bytes.Clone(r.raw[r.tagLen:r.hdrLen])
}

// Value returns the value bytes of r. An empty value is returned as a
// zero-length slice.
func (r Record) Value() []byte {
	return append([]byte{}, r.raw[r.hdrLen:]...)
}

// ValueLen returns the number of value bytes in r.
func (r Record) ValueLen() int {
	return len(r.raw) - r.hdrLen
}

// Len returns the number of bytes of the serialized form of r.
func (r Record) Len() int {
	return len(r.raw)
}

// TagID returns the [TagID] of the tag of r.
func (r Record) TagID() uint64 {
	return TagID(r.raw[:r.tagLen])
}

// Class returns the class bits of the tag of r.
func (r Record) Class() Class {
	if r.tagLen == 0 {
		return ClassUniversal
	}
	return Class(r.raw[0] >> 6)
}

// Constructed reports whether the tag of r has the constructed bit set. The
// bit is informational; the value of r is only decoded as nested data objects
// if its tag is part of the [ExpansionSet] of a [Decoder].
func (r Record) Constructed() bool {
	return r.tagLen > 0 && r.raw[0]&0x20 != 0
}

// TagNumber returns the tag number encoded in the tag of r, i.e. the lower
// five bits of a single-byte tag or the base-128 number following the first
// byte of a multi-byte tag. Tag numbers that do not fit into 32 bits are
// returned as 0.
func (r Record) TagNumber() uint32 {
	switch {
	case r.tagLen == 0:
		return 0
	case r.tagLen == 1:
		return uint32(r.raw[0] & 0x1f)
	}
	n, _, err := vlq.Parse[uint32](r.raw[1:r.tagLen])
	if err != nil {
		return 0
	}
	return n
}

// Bytes returns the serialization of r: the tag, followed by the length field,
// followed by the value.
func (r Record) Bytes() []byte {
	return bytes.Clone(r.raw)
}

// AppendTo appends the serialization of r to dst and returns the extended
// slice.
func (r Record) AppendTo(dst []byte) []byte {
	return append(dst, r.raw...)
}

// Equal reports whether r and o have identical tags, length fields and values.
func (r Record) Equal(o Record) bool {
	return r.tagLen == o.tagLen && r.hdrLen == o.hdrLen && bytes.Equal(r.raw, o.raw)
}

// String returns a string representation of r in the form TAG:LENGTH:VALUE
// using hexadecimal tag and value bytes. Values longer than 32 bytes are
// abbreviated.
func (r Record) String() string {
	if r.tagLen == 0 {
		return "<invalid>"
	}
	s := strings.ToUpper(hex.EncodeToString(r.raw[:r.tagLen]))
	s += ":" + strconv.Itoa(r.ValueLen()) + ":"
	value := r.raw[r.hdrLen:]
	if len(value) > 32 {
		return s + strings.ToUpper(hex.EncodeToString(value[:32])) + "..."
	}
	return s + strings.ToUpper(hex.EncodeToString(value))
}

// Find returns the first record in records whose tag identifier is id.
func Find(records []Record, id uint64) (Record, bool) {
	for _, r := range records {
		if r.TagID() == id {
			return r, true
		}
	}
	return Record{}, false
}
