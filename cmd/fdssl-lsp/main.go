// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/montymxb/FDSSL/internal/lsp"
)

var (
	verbosity int
	logFile   string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:           "fdssl-lsp",
	Short:         "FDSSL language server over stdio",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol, so logs go to stderr or a file
		var path *string
		if logFile != "" {
			path = &logFile
		}
		commonlog.Configure(verbosity, path)

		log := commonlog.GetLogger("fdssl.lsp")
		log.Infof("starting %s language server %s", lsp.Name, lsp.Version)

		if err := lsp.NewServer(debug).RunStdio(); err != nil {
			log.Errorf("language server stopped: %s", err.Error())
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVarP(&verbosity, "verbosity", "v", 1, "Log verbosity, 0 disables logging")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Log every JSON-RPC message")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
