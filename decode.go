// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emvtlv

import (
	"bytes"
	"encoding/hex"
	"log/slog"
	"strings"
)

// Decoder decodes buffers of concatenated BER-TLV data objects. The zero
// Decoder expands no templates, uses [DefaultMaxDepth] and tolerates truncated
// trailing data.
//
// A Decoder holds no state between calls. Its configuration must not be
// modified while a call to [Decoder.Decode] is in progress, but a single
// Decoder may be used by multiple goroutines concurrently.
type Decoder struct {
	// Expand contains the identifiers of the tags whose values are decoded in
	// place. The children of an expanded template replace it in the output.
	Expand ExpansionSet

	// MaxDepth limits how deeply expanded templates may be nested. Exceeding the
	// limit fails with [ErrRecursionLimit]. If MaxDepth is zero or negative,
	// DefaultMaxDepth is used.
	MaxDepth int

	// Strict reports trailing data that cannot form a complete data object as
	// [ErrTruncated]. By default such data ends the current buffer without an
	// error.
	Strict bool

	// SkipPadding skips 0x00 and 0xFF bytes found before, between or after data
	// objects, as permitted by EMV Book 3, Annex B.
	SkipPadding bool

	// Logger receives debug events about expansion and lenient truncation. A nil
	// Logger disables logging.
	Logger *slog.Logger
}

// Decode parses buf into records using a [Decoder] that expands the tags in
// expand. See [Decoder.Decode] for details.
func Decode(buf []byte, expand ExpansionSet) ([]Record, error) {
	d := Decoder{Expand: expand}
	return d.Decode(buf)
}

// frame is a buffer on the decoding work list. The top-level input is the
// first frame, every expanded template pushes one frame for its value.
type frame struct {
	buf  []byte
	off  int    // position of the next data object in buf
	base int    // offset of buf[0] within the top-level input
	tag  []byte // tag of the expanded template, nil at the top level
}

// remaining returns the number of unread bytes in f.
func (f *frame) remaining() int {
	return len(f.buf) - f.off
}

// skipPadding advances f past any 0x00 or 0xFF filler bytes.
func (f *frame) skipPadding() {
	for f.off < len(f.buf) && (f.buf[f.off] == 0x00 || f.buf[f.off] == 0xFF) {
		f.off++
	}
}

// Decode parses buf as a sequence of data objects and returns them in input
// order. Every data object whose tag identifier is contained in d.Expand is
// replaced by the data objects in its value, decoded with the same
// configuration.
//
// Decoding of a buffer stops without an error when the remaining bytes cannot
// hold another tag and length, when the length field is missing, or when fewer
// value bytes remain than the length declares. For an expanded template's value
// this ends only the template; decoding continues with the template's next
// sibling. With d.Strict set these conditions fail with [ErrTruncated].
//
// Decode never returns records together with an error. Errors are of type
// [*SyntaxError].
func (d *Decoder) Decode(buf []byte) ([]Record, error) {
	maxDepth := d.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var out []Record
	stack := make([]frame, 1, 4)
	stack[0] = frame{buf: buf}
	for len(stack) > 0 {
		depth := len(stack) - 1
		f := &stack[depth]
		if d.SkipPadding {
			f.skipPadding()
		}
		start := f.off
		if f.remaining() == 0 {
			stack = stack[:depth]
			continue
		}
		if f.remaining() < 2 {
			if err := d.truncated(f, start, "not enough bytes for tag and length"); err != nil {
				return nil, err
			}
			stack = stack[:depth]
			continue
		}

		tag, next, err := readTag(f.buf, f.off)
		if err != nil {
			return nil, d.syntaxError(f, start, err)
		}
		if err = ValidateTag(tag); err != nil {
			return nil, d.syntaxError(f, start, err)
		}
		if next >= len(f.buf) {
			if err = d.truncated(f, start, "missing length"); err != nil {
				return nil, err
			}
			stack = stack[:depth]
			continue
		}
		n, field, next, err := readLength(f.buf, next)
		if err != nil {
			return nil, d.syntaxError(f, start, err)
		}
		if n > len(f.buf)-next {
			if err = d.truncated(f, start, "value shorter than declared length"); err != nil {
				return nil, err
			}
			stack = stack[:depth]
			continue
		}
		value := f.buf[next : next+n]
		f.off = next + n

		if !d.Expand.Contains(TagID(tag)) {
			out = append(out, newRecord(tag, field, value))
			continue
		}
		if depth+1 > maxDepth {
			return nil, d.syntaxError(f, start, ErrRecursionLimit)
		}
		if d.Logger != nil {
			d.Logger.Debug("expanding template",
				"tag", strings.ToUpper(hex.EncodeToString(tag)),
				"offset", f.base+start,
				"length", n,
				"depth", depth+1)
		}
		// f is invalid after the append.
		stack = append(stack, frame{buf: value, base: f.base + next, tag: tag})
	}
	return out, nil
}

// truncated handles trailing data at position start of f that cannot form a
// complete data object. In strict mode it returns an error, otherwise it logs
// the condition and returns nil.
func (d *Decoder) truncated(f *frame, start int, reason string) error {
	if d.Strict {
		return d.syntaxError(f, start, &detailError{ErrTruncated, reason})
	}
	if d.Logger != nil {
		d.Logger.Debug("ignoring trailing bytes",
			"offset", f.base+start,
			"bytes", len(f.buf)-start,
			"reason", reason)
	}
	return nil
}

// syntaxError wraps err in a SyntaxError for the data object at position start
// of f.
func (d *Decoder) syntaxError(f *frame, start int, err error) error {
	return &SyntaxError{Err: err, ByteOffset: f.base + start, Tag: bytes.Clone(f.tag)}
}
