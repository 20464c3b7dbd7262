/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/ttyclock/session"
)

// RootCmd is a main entry point
var RootCmd = &cobra.Command{
	Use:           "ttyclock",
	Short:         "Full screen block digit clock for the terminal. Press q to quit.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := ConfigureVerbosity(); err != nil {
			return err
		}
		return run(currentConfig())
	},
}

// flags
var rootVerboseFlag bool
var rootLogFileFlag string

func init() {
	RootCmd.PersistentFlags().BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().StringVar(&rootLogFileFlag, "log-file", "", "write logs to this file, the terminal is taken by the clock")
}

// ConfigureVerbosity configures log verbosity and destination based on parsed flags
func ConfigureVerbosity() error {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
	if rootLogFileFlag == "" {
		return nil
	}
	f, err := os.OpenFile(rootLogFileFlag, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %q: %w", rootLogFileFlag, err)
	}
	log.SetOutput(f)
	return nil
}

// Execute is the main entry point for CLI interface.
// The exit status is the errno behind a failure, or 1.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("ttyclock: %v", err))
		os.Exit(session.ExitCode(err))
	}
}
