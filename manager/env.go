// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"os"
	"strconv"
	"strings"
)

// Config is the manager's startup configuration. The master manager
// is built from ConfigFromEnv on first use; tests and hosting
// applications that want isolation from the process environment can
// construct a Config directly and call New.
type Config struct {
	// Enabled gates whether scopes actually measure and record into
	// the call tree. Disabled still walks the balanced enter/exit
	// bookkeeping — it just skips the tree work.
	Enabled bool
	// MaxDepth caps how many nested scopes are tracked; deeper scopes
	// still enter/exit but measure into an ephemeral, unmerged bundle.
	MaxDepth int
	// AutoListInit names component kinds whose global/thread init
	// hooks should run eagerly on Attach, rather than lazily on first
	// scope that uses them.
	AutoListInit []string
	// OutputPath is the directory/basename prefix Finalize writes its
	// text and JSON reports under.
	OutputPath string
	// Kinds is the default component kind list new scopes measure.
	// Defaults to the six built-in kinds, in report-column order.
	Kinds []string
}

func defaultKinds() []string {
	return []string{"wall_clock", "cpu_clock", "user_time", "system_time", "cpu_util", "peak_rss"}
}

// noMaxDepth stands in for "unlimited" without importing math for a
// single constant.
const noMaxDepth = int(^uint(0) >> 1)

func defaultConfig() Config {
	return Config{
		Enabled:    true,
		MaxDepth:   noMaxDepth,
		OutputPath: ".",
		Kinds:      defaultKinds(),
	}
}

// ConfigFromEnv layers the following environment variables over
// defaultConfig:
//
//	ENABLED         bool, default true
//	MAX_DEPTH       non-negative int, default unlimited
//	AUTO_LIST_INIT  comma-separated kind names, default empty
//	OUTPUT_PATH     directory or basename prefix, default "."
//
// These are the library's own recognized variables, read bare.
// cmd/perfscope additionally binds a PERFSCOPE_-prefixed variant of
// ENABLED, MAX_DEPTH and OUTPUT_PATH (not AUTO_LIST_INIT) through
// viper, for operators who want a namespaced CLI
// surface; that prefix is a property of the CLI, not of the library.
func ConfigFromEnv() Config {
	cfg := defaultConfig()
	if v, ok := os.LookupEnv("ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v, ok := os.LookupEnv("MAX_DEPTH"); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxDepth = n
		}
	}
	if v, ok := os.LookupEnv("AUTO_LIST_INIT"); ok && v != "" {
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				cfg.AutoListInit = append(cfg.AutoListInit, k)
			}
		}
	}
	if v, ok := os.LookupEnv("OUTPUT_PATH"); ok && v != "" {
		cfg.OutputPath = v
	}
	return cfg
}
