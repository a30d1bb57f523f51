// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emvtlv

import (
	"bytes"
	"errors"
	"strconv"
	"testing"
)

func TestEncodeLength(t *testing.T) {
	tests := []struct {
		n    int
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x81, 0x80}},
		{200, []byte{0x81, 0xC8}},
		{255, []byte{0x81, 0xFF}},
		{256, []byte{0x82, 0x01, 0x00}},
		{65535, []byte{0x82, 0xFF, 0xFF}},
		{65536, []byte{0x83, 0x01, 0x00, 0x00}},
		{16777215, []byte{0x83, 0xFF, 0xFF, 0xFF}},
		{16777216, []byte{0x84, 0x01, 0x00, 0x00, 0x00}},
		{4294967295, []byte{0x84, 0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, tc := range tests {
		t.Run(strconv.Itoa(tc.n), func(t *testing.T) {
			got, err := EncodeLength(tc.n)
			if err != nil {
				t.Fatalf("EncodeLength(%d) returned an unexpected error: %q", tc.n, err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("EncodeLength(%d) = %# x, want %# x", tc.n, got, tc.want)
			}

			n, field, next, err := ReadLength(got, 0)
			if err != nil {
				t.Fatalf("ReadLength(%# x) returned an unexpected error: %q", got, err)
			}
			if n != tc.n {
				t.Errorf("ReadLength(EncodeLength(%d)) = %d", tc.n, n)
			}
			if !bytes.Equal(field, got) || next != len(got) {
				t.Errorf("ReadLength(%# x) = (%# x, %d), want (%# x, %d)", got, field, next, got, len(got))
			}
		})
	}
}

func TestEncodeLength_Invalid(t *testing.T) {
	var tooLarge uint64 = MaxLength
	tooLarge++
	tests := map[string]int{
		"Negative": -1,
		"TooLarge": int(tooLarge),
	}
	for name, n := range tests {
		t.Run(name, func(t *testing.T) {
			if strconv.IntSize < 64 && name == "TooLarge" {
				t.Skip("not representable on this platform")
			}
			got, err := EncodeLength(n)
			if !errors.Is(err, ErrInvalidLength) {
				t.Errorf("EncodeLength(%d) = (%# x, %v), want error %v", n, got, err, ErrInvalidLength)
			}
		})
	}
}

func TestAppendLength(t *testing.T) {
	dst := []byte{0x5A}
	got, err := AppendLength(dst, 300)
	if err != nil {
		t.Fatalf("AppendLength() returned an unexpected error: %q", err)
	}
	if want := []byte{0x5A, 0x82, 0x01, 0x2C}; !bytes.Equal(got, want) {
		t.Errorf("AppendLength(%# x, 300) = %# x, want %# x", dst, got, want)
	}
	if got, err = AppendLength(dst, -5); err == nil || !bytes.Equal(got, dst) {
		t.Errorf("AppendLength(%# x, -5) = (%# x, %v), want unmodified input and error", dst, got, err)
	}
}

func TestReadLength(t *testing.T) {
	tests := map[string]struct {
		data    []byte
		offset  int
		want    int
		field   []byte
		next    int
		wantErr error
	}{
		"Short":         {[]byte{0x03, 0x01, 0x02, 0x03}, 0, 3, []byte{0x03}, 1, nil},
		"LongOneByte":   {[]byte{0x81, 0xC8}, 0, 200, []byte{0x81, 0xC8}, 2, nil},
		"NonMinimal":    {[]byte{0x82, 0x00, 0x03}, 0, 3, []byte{0x82, 0x00, 0x03}, 3, nil},
		"LeadingZeros":  {[]byte{0x88, 0, 0, 0, 0, 0, 0, 0, 5}, 0, 5, []byte{0x88, 0, 0, 0, 0, 0, 0, 0, 5}, 9, nil},
		"FivePrefix":    {[]byte{0x85, 0, 0, 0, 0, 5}, 0, 5, []byte{0x85, 0, 0, 0, 0, 5}, 6, nil},
		"Offset":        {[]byte{0xAA, 0x02}, 1, 2, []byte{0x02}, 2, nil},
		"Indefinite":    {[]byte{0x80, 0x00, 0x00}, 0, 0, nil, 0, ErrUnsupportedLength},
		"TooLarge":      {[]byte{0x85, 0x01, 0x00, 0x00, 0x00, 0x00}, 0, 0, nil, 0, ErrUnsupportedLength},
		"Truncated":     {[]byte{0x81}, 0, 0, nil, 0, ErrMalformedLength},
		"TruncatedLong": {[]byte{0x83, 0x01, 0x00}, 0, 0, nil, 0, ErrMalformedLength},
		"Empty":         {nil, 0, 0, nil, 0, ErrMalformedLength},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, field, next, err := ReadLength(tc.data, tc.offset)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ReadLength(%# x, %d) error = %v, wantErr %v", tc.data, tc.offset, err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if got != tc.want || next != tc.next {
				t.Errorf("ReadLength(%# x, %d) = (%d, %d), want (%d, %d)", tc.data, tc.offset, got, next, tc.want, tc.next)
			}
			if !bytes.Equal(field, tc.field) {
				t.Errorf("ReadLength(%# x, %d) field = %# x, want %# x", tc.data, tc.offset, field, tc.field)
			}
		})
	}
}
