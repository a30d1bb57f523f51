// Package vlq implements the base-128 [Variable-length quantity] encoding used
// by BER for high tag numbers. Every byte of a VLQ except the last has its
// eighth bit set. The lower seven bits of each byte carry the value,
// most-significant group first.
//
// The functions in this package operate on byte slices. They never read past
// the terminating byte of a VLQ.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
package vlq

import (
	"errors"
	"math/bits"
	"unsafe"
)

var (
	// ErrUnterminated indicates that the input ended before a byte with a
	// clear eighth bit was found.
	ErrUnterminated = errors.New("vlq: missing final byte")
	// ErrOverflow indicates that a VLQ does not fit into the target type.
	ErrOverflow = errors.New("vlq: value too large for target type")
)

// Unsigned is the set of types a VLQ can be parsed into.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Span returns the number of bytes that make up the VLQ at the start of b:
// all leading bytes with the eighth bit set plus the first byte where it is
// clear. If b contains no such byte, Span returns len(b) and ErrUnterminated.
func Span(b []byte) (int, error) {
	for i, c := range b {
		if c&0x80 == 0 {
			return i + 1, nil
		}
	}
	return len(b), ErrUnterminated
}

// Parse decodes the VLQ at the start of b and returns its value and the
// number of bytes it occupies. Leading 0x80 bytes are accepted. The maximum
// value is limited by the size of T.
func Parse[T Unsigned](b []byte) (ret T, n int, err error) {
	numBits := 0
	for i, c := range b {
		ret = ret<<7 | T(c&0x7f)
		if numBits == 0 {
			numBits = bits.Len8(c & 0x7f)
		} else {
			numBits += 7
		}
		if numBits > int(unsafe.Sizeof(ret)*8) {
			return 0, 0, ErrOverflow
		}
		if c&0x80 == 0 {
			return ret, i + 1, nil
		}
	}
	return 0, 0, ErrUnterminated
}

// Len returns the number of bytes needed to encode n as a VLQ.
func Len[T Unsigned](n T) int {
	if n == 0 {
		return 1
	}
	l := 0
	for i := n; i > 0; i >>= 7 {
		l++
	}
	return l
}

// Append appends the minimal VLQ encoding of n to dst and returns the
// extended slice.
func Append[T Unsigned](dst []byte, n T) []byte {
	for j := Len(n) - 1; j >= 0; j-- {
		b := byte(n>>(j*7)) & 0x7f
		if j > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}
