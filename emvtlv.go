// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emvtlv implements decoding and encoding of the BER-TLV data objects
// exchanged between EMV payment terminals and smart cards, following the tag
// and length conventions of ISO/IEC 7816-4 and [Rec. ITU-T X.690].
//
// This package deals with the syntactic layer only. It does not interpret
// values (there is no INTEGER, BOOLEAN or OID decoding) and it does not
// support the indefinite-length form.
//
// # Records
//
// A data object is represented by the [Record] type. A Record keeps the raw
// tag bytes, the length field exactly as it was encoded and the value bytes.
// Keeping the verbatim length field allows byte-exact re-serialization of
// decoded data even if the input used a non-minimal long-form length.
//
// Records are created by [Encode] or by decoding a buffer:
//
//	r, err := emvtlv.Encode([]byte{0x5A}, []byte{0x01, 0x02, 0x03})
//	if err != nil {
//		// handle error
//	}
//	b := r.Bytes() // 5A 03 01 02 03
//
// # Decoding and Templates
//
// [Decode] parses a buffer of concatenated data objects into a slice of
// records. Constructed data objects (templates such as the READ RECORD
// response template '70') are opaque by default. Their content is decoded in
// place if the tag identifier is a member of the [ExpansionSet] given to the
// decoder. The template itself does not appear in the output; its children
// take its place:
//
//	records, err := emvtlv.Decode(data, emvtlv.NewExpansionSet(0x70, 0x77))
//
// Use a [Decoder] to configure the nesting limit, strict truncation handling,
// padding skipping or debug logging.
//
// # Truncated Input
//
// Card data is frequently padded to a block size. By default the decoder
// treats trailing bytes that cannot form another complete data object as the
// end of the input and returns the records decoded so far. A [Decoder] with
// Strict set reports such input as [ErrTruncated] instead.
//
// # Errors
//
// All failures are reported as one of a closed set of error kinds
// ([ErrInvalidTag], [ErrMalformedTag], [ErrMalformedLength],
// [ErrUnsupportedLength], [ErrInvalidLength], [ErrRecursionLimit] and
// [ErrTruncated]). Decoding errors are wrapped in a [*SyntaxError] carrying the
// input offset, encoding errors in an [*EncodeError]. Use [errors.Is] to test
// for a specific kind.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package emvtlv

// Class holds the class bits of a tag (bits 8 and 7 of its first byte). The
// class is informational only; neither the decoder nor the encoder restricts
// it.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

const (
	// MaxTagLen is the maximum number of bytes in a tag. Longer tags are
	// rejected by [ValidateTag] because their identifier would not fit into the
	// uint64 returned by [TagID].
	MaxTagLen = 8

	// MaxLength is the largest value length that can be encoded or decoded.
	MaxLength = 1<<32 - 1

	// DefaultMaxDepth is the nesting limit used by a [Decoder] whose MaxDepth
	// is zero.
	DefaultMaxDepth = 32
)

// requireKeyedLiterals can be embedded in a struct to require keyed literals.
type requireKeyedLiterals struct{}

// nonComparable can be embedded in a struct to prevent comparability.
type nonComparable [0]func()
