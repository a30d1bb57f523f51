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

// ReadTag reads the tag starting at buf[offset] and returns a copy of its bytes
// along with the offset of the first byte after the tag.
//
// If the lower five bits of the first byte are not all set the tag consists of
// that single byte. Otherwise the tag continues with every following byte that
// has its high bit set, up to and including the first byte where it is clear.
// If buf ends before that byte a [*SyntaxError] wrapping [ErrMalformedTag] is
// returned.
func ReadTag(buf []byte, offset int) ([]byte, int, error) {
	tag, next, err := readTag(buf, offset)
	if err != nil {
		return nil, offset, &SyntaxError{Err: err, ByteOffset: offset}
	}
	return bytes.Clone(tag), next, nil
}

// readTag implements [ReadTag]. The returned tag aliases buf.
func readTag(buf []byte, offset int) ([]byte, int, error) {
	if offset < 0 || offset >= len(buf) {
		return nil, offset, &detailError{ErrMalformedTag, "no bytes left for tag"}
	}
	if buf[offset]&0x1f != 0x1f {
		return buf[offset : offset+1], offset + 1, nil
	}
	n, err := vlq.Span(buf[offset+1:])
	if err != nil {
		return nil, offset, &detailError{ErrMalformedTag, "input ends inside multi-byte tag"}
	}
	next := offset + 1 + n
	return buf[offset:next], next, nil
}

// ValidateTag checks that tag is a syntactically well-formed tag. It returns an
// error wrapping [ErrInvalidTag] if tag is empty, longer than [MaxTagLen], has
// bytes after a single-byte tag, or if the subsequent bytes of a multi-byte tag
// do not follow the continuation rule described at [ReadTag].
//
// ValidateTag does not restrict the class or the constructed bit of a tag.
func ValidateTag(tag []byte) error {
	switch {
	case len(tag) == 0:
		return &detailError{ErrInvalidTag, "empty tag"}
	case len(tag) > MaxTagLen:
		return &detailError{ErrInvalidTag, "tag longer than 8 bytes"}
	case tag[0]&0x1f != 0x1f:
		if len(tag) > 1 {
			return &detailError{ErrInvalidTag, "unexpected bytes after single-byte tag"}
		}
		return nil
	case len(tag) == 1:
		return &detailError{ErrInvalidTag, "missing subsequent tag bytes"}
	}
	n, err := vlq.Span(tag[1:])
	if err != nil {
		return &detailError{ErrInvalidTag, "last tag byte has continuation bit set"}
	}
	if n != len(tag)-1 {
		return &detailError{ErrInvalidTag, "unexpected bytes after final tag byte"}
	}
	return nil
}

// TagID packs the bytes of tag into an unsigned integer, most significant byte
// first. The tag '9F02' has the identifier 0x9F02. Tag identifiers are the keys
// of an [ExpansionSet].
//
// TagID does not validate tag. Only the last 8 bytes of longer inputs
// contribute to the result.
func TagID(tag []byte) uint64 {
	var id uint64
	for _, b := range tag {
		id = id<<8 | uint64(b)
	}
	return id
}

// NewTag returns the minimal tag bytes for the given class, constructed bit and
// tag number. Numbers below 31 use the single-byte form, larger numbers the
// multi-byte form.
func NewTag(class Class, constructed bool, number uint32) []byte {
	b := byte(class&0b11) << 6
	if constructed {
		b |= 0x20
	}
	if number < 0x1f {
		return []byte{b | byte(number)}
	}
	return vlq.Append([]byte{b | 0x1f}, number)
}

// ParseTag parses the hexadecimal representation of a tag, such as "9F02" or
// "0x5f20", and validates it using [ValidateTag].
func ParseTag(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	tag, err := hex.DecodeString(s)
	if err != nil {
		return nil, &detailError{ErrInvalidTag, "not a hexadecimal tag: " + strconv.Quote(s)}
	}
	if err = ValidateTag(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// ParseTagID is like [ParseTag] but returns the [TagID] of the parsed tag.
func ParseTagID(s string) (uint64, error) {
	tag, err := ParseTag(s)
	if err != nil {
		return 0, err
	}
	return TagID(tag), nil
}
