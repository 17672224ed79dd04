// seehuhn.de/go/slides - a library for writing presentation files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seehuhn.de/go/slides/config"
	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/format/odp"
	"seehuhn.de/go/slides/format/pptx"
)

// app holds the state shared by the subcommands.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "slidepack",
		Short:         "Build presentation files from deck descriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides the configuration)")

	root.AddCommand(a.buildCmd(), a.formatsCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFrom(a.configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(a.cfg.Level())
	return nil
}

func registry() *export.Registry {
	return export.NewRegistry(pptx.New(), odp.New())
}

func (a *app) formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry()
			for _, name := range reg.Names() {
				f, _ := reg.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", name, f.Extension())
			}
			return nil
		},
	}
}
