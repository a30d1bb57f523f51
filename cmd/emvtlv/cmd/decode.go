// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"codello.dev/emvtlv"
	"codello.dev/emvtlv/internal/output"
)

type decodeFlags struct {
	expand      []string
	templates   bool
	strict      bool
	skipPadding bool
	maxDepth    int
	format      string
	output      string
}

// newDecodeCmd returns the decode command
func newDecodeCmd(opts *options) *cobra.Command {
	var flags decodeFlags
	cmd := &cobra.Command{
		Use:   "decode [hex...]",
		Short: "Decode hexadecimal data objects",
		Long: `Decode a sequence of data objects and print one line per record.

The input is read from the arguments or, if there are none, from standard
input. Values of expanded templates are decoded in place.

Example:
  emvtlv decode --templates 6F0E8407A0000000041010A503870101
  echo "70 03 5A 01 11" | emvtlv decode -e 70 -f json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, opts, &flags, args)
		},
	}
	f := cmd.Flags()
	f.StringSliceVarP(&flags.expand, "expand", "e", nil, "hexadecimal tags to expand (repeatable)")
	f.BoolVar(&flags.templates, "templates", false, "expand the EMV template tags")
	f.BoolVar(&flags.strict, "strict", false, "fail on truncated data objects")
	f.BoolVar(&flags.skipPadding, "skip-padding", false, "skip 00 and FF padding bytes")
	f.IntVar(&flags.maxDepth, "max-depth", 0, "maximum nesting depth of expanded templates")
	f.StringVarP(&flags.format, "format", "f", "", "output format ("+strings.Join(output.Names(), ", ")+")")
	f.StringVarP(&flags.output, "output", "o", "", "write output to a file instead of standard output")
	return cmd
}

func runDecode(cmd *cobra.Command, opts *options, flags *decodeFlags, args []string) error {
	c := *opts.config
	c.Decoder.Expand = append(c.Decoder.Expand[:len(c.Decoder.Expand):len(c.Decoder.Expand)], flags.expand...)
	f := cmd.Flags()
	if f.Changed("templates") {
		c.Decoder.Templates = flags.templates
	}
	if f.Changed("strict") {
		c.Decoder.Strict = flags.strict
	}
	if f.Changed("skip-padding") {
		c.Decoder.SkipPadding = flags.skipPadding
	}
	if f.Changed("max-depth") {
		c.Decoder.MaxDepth = flags.maxDepth
	}
	if f.Changed("format") {
		c.Output.Format = flags.format
	}
	if err := c.Validate(); err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	d, err := c.NewDecoder(opts.logger)
	if err != nil {
		return err
	}
	records, err := d.Decode(input)
	if err != nil {
		return errors.Wrap(err, "decode")
	}
	opts.logger.Info("decoded input", "bytes", len(input), "records", len(records))

	formatter, err := output.New(c.Output.Format)
	if err != nil {
		return err
	}
	if flags.output == "" {
		return formatter.Format(cmd.OutOrStdout(), records)
	}
	file, err := os.Create(flags.output)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	return formatAndClose(file, formatter, records)
}

// formatAndClose writes records to w and closes it. An error from Close is
// reported unless formatting failed first.
func formatAndClose(w io.WriteCloser, formatter output.Formatter, records []emvtlv.Record) error {
	err := formatter.Format(w, records)
	if cerr := w.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "close output file")
	}
	return err
}

// readInput returns the decoded hexadecimal input from args or stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return parseHex(strings.Join(args, ""))
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, errors.Wrap(err, "read standard input")
	}
	return parseHex(string(data))
}
