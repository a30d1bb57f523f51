// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emvtlv

import (
	"bytes"
	"math"
	"math/bits"
)

// ReadLength reads the definite-length field starting at buf[offset]. It
// returns the decoded value length, a copy of the length field bytes and the
// offset of the first value byte.
//
// If the high bit of the first byte is clear, that byte is the length (0-127).
// Otherwise its lower seven bits give the number of big-endian length bytes
// that follow. Any number of length bytes is accepted as long as the value
// does not exceed [MaxLength], so leading zero bytes (as in 85 00 00 00 00 05)
// are permitted and kept in the returned field. The indefinite-length form
// (0x80) and lengths above [MaxLength] are reported as [ErrUnsupportedLength]. If buf ends before the length field is complete,
// [ErrMalformedLength] is reported. Errors are of type [*SyntaxError].
func ReadLength(buf []byte, offset int) (int, []byte, int, error) {
	n, field, next, err := readLength(buf, offset)
	if err != nil {
		return 0, nil, offset, &SyntaxError{Err: err, ByteOffset: offset}
	}
	return n, bytes.Clone(field), next, nil
}

// readLength implements [ReadLength]. The returned field aliases buf.
func readLength(buf []byte, offset int) (int, []byte, int, error) {
	if offset < 0 || offset >= len(buf) {
		return 0, nil, offset, &detailError{ErrMalformedLength, "no bytes left for length"}
	}
	b := buf[offset]
	if b&0x80 == 0 {
		return int(b), buf[offset : offset+1], offset + 1, nil
	}
	numBytes := int(b & 0x7f)
	if numBytes == 0 {
		return 0, nil, offset, &detailError{ErrUnsupportedLength, "indefinite length"}
	}
	next := offset + 1 + numBytes
	if next > len(buf) {
		return 0, nil, offset, &detailError{ErrMalformedLength, "input ends inside length field"}
	}
	var l uint64
	for _, c := range buf[offset+1 : next] {
		l = l<<8 | uint64(c)
		if l > MaxLength || l > math.MaxInt {
			return 0, nil, offset, &detailError{ErrUnsupportedLength, "length too large"}
		}
	}
	return int(l), buf[offset:next], next, nil
}

// EncodeLength returns the minimal BER definite-length encoding of n:
//
//	0-127                    n
//	128-255                  81 n
//	256-65535                82 n>>8 n
//	65536-16777215           83 n>>16 n>>8 n
//	16777216-4294967295      84 n>>24 n>>16 n>>8 n
//
// It fails with [ErrInvalidLength] if n is negative or exceeds [MaxLength].
func EncodeLength(n int) ([]byte, error) {
	return AppendLength(make([]byte, 0, 5), n)
}

// AppendLength appends the encoding produced by [EncodeLength] to dst. If n
// cannot be encoded dst is returned unmodified along with the error.
func AppendLength(dst []byte, n int) ([]byte, error) {
	if n < 0 || uint64(n) > MaxLength {
		return dst, &detailError{ErrInvalidLength, "length out of range"}
	}
	if n < 0x80 {
		return append(dst, byte(n)), nil
	}
	numBytes := (bits.Len(uint(n)) + 7) / 8
	dst = append(dst, 0x80|byte(numBytes))
	for ; numBytes > 0; numBytes-- {
		dst = append(dst, byte(n>>((numBytes-1)*8)))
	}
	return dst, nil
}
