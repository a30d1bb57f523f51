// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emvtlv

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
)

// Error kinds. Every error returned by this package matches exactly one of
// these values via [errors.Is].
var (
	// ErrInvalidTag indicates that tag bytes are empty, too long, or violate
	// the multi-byte continuation rule.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrMalformedTag indicates that the input ended inside a multi-byte tag.
	ErrMalformedTag = errors.New("malformed tag")

	// ErrMalformedLength indicates that the input ended inside a length field.
	ErrMalformedLength = errors.New("malformed length")

	// ErrUnsupportedLength indicates the indefinite-length form or a length
	// that exceeds [MaxLength].
	ErrUnsupportedLength = errors.New("unsupported length form")

	// ErrInvalidLength indicates a negative length or a length above
	// [MaxLength] passed to the encoder.
	ErrInvalidLength = errors.New("invalid length")

	// ErrRecursionLimit indicates that template expansion exceeded the nesting
	// limit of the [Decoder].
	ErrRecursionLimit = errors.New("nesting limit exceeded")

	// ErrTruncated indicates trailing data that cannot form a complete data
	// object. It is only reported by a strict [Decoder].
	ErrTruncated = errors.New("truncated data object")
)

// detailError attaches a description to one of the error kinds.
type detailError struct {
	kind   error
	detail string
}

func (e *detailError) Unwrap() error { return e.kind }
func (e *detailError) Error() string { return e.kind.Error() + ": " + e.detail }

// SyntaxError represents an error in the TLV encoding of a decoded buffer. The
// error value contains the location of the data object that could not be
// decoded as well as the tag of the surrounding expanded template.
type SyntaxError struct {
	requireKeyedLiterals
	nonComparable

	Err error // underlying error kind

	// ByteOffset is the location of the error in the top-level input. It is the
	// start of the data object containing the error.
	ByteOffset int

	// Tag is the tag of the expanded template whose value contained the
	// malformed data. Tag is nil for errors at the top level.
	Tag []byte
}

func (e *SyntaxError) Unwrap() error { return e.Err }
func (e *SyntaxError) Error() string {
	b := []byte("emvtlv: syntax error")
	if len(e.Tag) > 0 {
		b = append(b, " within "...)
		b = append(b, strings.ToUpper(hex.EncodeToString(e.Tag))...)
	}
	b = strconv.AppendInt(append(b, " at offset "...), int64(e.ByteOffset), 10)
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}

// EncodeError is returned by the encoding functions when the tag or the value
// of a data object cannot be encoded.
type EncodeError struct {
	Op  string // the failing step, e.g. "validate tag"
	Err error  // underlying error kind
}

func (e *EncodeError) Unwrap() error { return e.Err }
func (e *EncodeError) Error() string {
	return "emvtlv: " + e.Op + ": " + e.Err.Error()
}
