// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/hex"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"codello.dev/emvtlv/internal/config"
)

// options holds the state shared by the subcommands of one root command.
type options struct {
	configPath string
	logLevel   string

	config *config.Config
	logger *slog.Logger
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "emvtlv",
		Short: "Inspect EMV BER-TLV data objects",
		Long: `emvtlv decodes and encodes the BER-TLV data objects exchanged with EMV
payment cards and terminals.

Input and output data is hexadecimal. Whitespace and ':' separators in the
input are ignored.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newDecodeCmd(opts), newEncodeCmd(), newTagsCmd())
	return root
}

// load reads the configuration file and sets up logging.
func (o *options) load(cmd *cobra.Command) error {
	o.config = config.DefaultConfig()
	if o.configPath != "" {
		c, err := config.LoadConfig(o.configPath)
		if err != nil {
			return err
		}
		o.config = c
	}
	if o.logLevel != "" {
		o.config.Logging.Level = o.logLevel
	}
	level, err := o.config.LogLevel()
	if err != nil {
		return err
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// parseHex decodes s ignoring whitespace and ':' separators.
func parseHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ':' {
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hexadecimal input")
	}
	return b, nil
}
