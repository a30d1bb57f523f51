// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"codello.dev/emvtlv"
)

// Text writes one aligned line per record: tag, value length, value and, for
// tags in the EMV dictionary, the tag name.
type Text struct{}

func (Text) Format(w io.Writer, records []emvtlv.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range Entries(records) {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", e.Tag, e.Length, e.Value, e.Name); err != nil {
			return err
		}
	}
	return tw.Flush()
}
