// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command perfscope is the operator-facing entry point for this
// instrumentation library: it drives a demo workload through the
// manager/scope API and finalizes a report, which doubles as the
// end-to-end smoke test for an install.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/perfscope/perfscope/manager"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PERFSCOPE")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "perfscope",
		Short: "Drive and report on perfscope instrumentation runs",
	}

	root.PersistentFlags().Bool("enabled", true, "enable measurement")
	root.PersistentFlags().Int("max-depth", -1, "maximum tracked nesting depth (-1 for unlimited)")
	root.PersistentFlags().String("output-path", ".", "directory or basename prefix for reports")
	_ = v.BindPFlag("enabled", root.PersistentFlags().Lookup("enabled"))
	_ = v.BindPFlag("max_depth", root.PersistentFlags().Lookup("max-depth"))
	_ = v.BindPFlag("output_path", root.PersistentFlags().Lookup("output-path"))

	root.AddCommand(newDemoCmd(v))
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the perfscope CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "perfscope dev")
		},
	}
}

func configFromViper(v *viper.Viper) manager.Config {
	cfg := manager.ConfigFromEnv()
	cfg.Enabled = v.GetBool("enabled")
	if d := v.GetInt("max_depth"); d >= 0 {
		cfg.MaxDepth = d
	}
	if p := v.GetString("output_path"); p != "" {
		cfg.OutputPath = p
	}
	return cfg
}
