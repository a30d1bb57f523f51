// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"codello.dev/emvtlv"
)

// MsgPack writes the records as a MessagePack array of [Entry] values.
type MsgPack struct{}

func (MsgPack) Format(w io.Writer, records []emvtlv.Record) error {
	return msgpack.NewEncoder(w).Encode(Entries(records))
}
