// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/perfscope/perfscope/component"
	"github.com/perfscope/perfscope/manager"
	"github.com/perfscope/perfscope/scope"
)

func init() {
	component.Register("counter", func() component.Component { return component.NewCounter() })
}

func newDemoCmd(v *viper.Viper) *cobra.Command {
	var laps int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a small nested workload under instrumentation and report it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromViper(v)
			m := manager.Master()
			m.SetEnabled(cfg.Enabled)
			m.SetMaxDepth(cfg.MaxDepth)
			m.SetOutput(cmd.OutOrStdout())
			m.SetOutputPath(cfg.OutputPath)
			m.SetKinds(append(m.Kinds(), "counter"))

			ctx, w := manager.AttachContext(context.Background())

			for i := 0; i < laps; i++ {
				runOuter(ctx)
			}
			w.Close()

			if err := m.Finalize(); err != nil {
				return fmt.Errorf("perfscope: finalize: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote report under %s\n", cfg.OutputPath)
			return nil
		},
	}
	cmd.Flags().IntVar(&laps, "laps", 3, "number of top-level iterations to run")
	return cmd
}

func runOuter(ctx context.Context) {
	ctx, h := scope.BeginHere(ctx, "", false)
	defer h.Stop()

	runInner(ctx)
	time.Sleep(time.Duration(rand.Intn(2)) * time.Millisecond)
}

func runInner(ctx context.Context) {
	_, h := scope.BeginHere(ctx, "", true)
	defer h.Stop()

	if c, ok := h.Component("counter").(*component.Counter); ok {
		c.Incr(1)
	}
	time.Sleep(time.Duration(rand.Intn(3)) * time.Millisecond)
}
