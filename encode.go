// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emvtlv

// Encode validates tag and returns a [Record] with the minimal length field for
// value. A nil value is encoded as an empty value. The returned Record owns
// copies of tag and value.
//
// If tag is invalid, the error wraps [ErrInvalidTag]. If value is too long to
// be encoded, the error wraps [ErrInvalidLength]. Errors are of type
// [*EncodeError].
func Encode(tag, value []byte) (Record, error) {
	if err := ValidateTag(tag); err != nil {
		return Record{}, &EncodeError{Op: "validate tag", Err: err}
	}
	field, err := EncodeLength(len(value))
	if err != nil {
		return Record{}, &EncodeError{Op: "encode length", Err: err}
	}
	return newRecord(tag, field, value), nil
}

// EncodeConstructed returns a [Record] for the template tag whose value is the
// serialization of children, in order. Decoding the result with tag in the
// [ExpansionSet] yields children again.
//
// EncodeConstructed does not require the constructed bit of tag to be set.
func EncodeConstructed(tag []byte, children ...Record) (Record, error) {
	return Encode(tag, Marshal(children...))
}

// Marshal returns the concatenated serializations of records.
func Marshal(records ...Record) []byte {
	n := 0
	for _, r := range records {
		n += r.Len()
	}
	b := make([]byte, 0, n)
	for _, r := range records {
		b = r.AppendTo(b)
	}
	return b
}
