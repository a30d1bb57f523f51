// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"codello.dev/emvtlv/emv"
)

// newTagsCmd returns the tags command
func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the EMV tag dictionary",
		Long: `List the known EMV tags. Tags marked as templates are expanded by
'emvtlv decode --templates'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range emv.Tags() {
				kind := "primitive"
				if t.Template {
					kind = "template"
				}
				if _, err := fmt.Fprintf(w, "%X\t%s\t%s\n", t.ID, kind, t.Name); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}
