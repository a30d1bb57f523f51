// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"codello.dev/emvtlv"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON writes the records as an indented JSON array of [Entry] values.
type JSON struct{}

func (JSON) Format(w io.Writer, records []emvtlv.Record) error {
	b, err := json.MarshalIndent(Entries(records), "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
