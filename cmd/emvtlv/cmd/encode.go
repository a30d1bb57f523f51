// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"codello.dev/emvtlv"
)

// newEncodeCmd returns the encode command
func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <tag> [value]",
		Short: "Encode a single data object",
		Long: `Encode a data object from a hexadecimal tag and value and print its
serialization. A missing value is encoded as an empty value.

Example:
  emvtlv encode 9F02 000000001000`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := emvtlv.ParseTag(args[0])
			if err != nil {
				return errors.Wrapf(err, "tag %q", args[0])
			}
			var value []byte
			if len(args) == 2 {
				if value, err = parseHex(args[1]); err != nil {
					return err
				}
			}
			r, err := emvtlv.Encode(tag, value)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.ToUpper(hex.EncodeToString(r.Bytes())))
			return err
		},
	}
}
