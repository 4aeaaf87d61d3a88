// Copyright 2018 The go-aurora Authors
// This file is part of the go-aurora library.
//
// The go-aurora library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-aurora library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-aurora library. If not, see <http://www.gnu.org/licenses/>.

// Package debug interfaces the command line flags to the process logger and
// metrics.
package debug

import (
	"os"
	"time"

	"github.com/Aurorachain/go-intcode/log"
	"github.com/Aurorachain/go-intcode/metrics"
	"gopkg.in/urfave/cli.v1"
)

var (
	verbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: debug, info, warn, error",
		Value: "warn",
	}
	metricsFlag = cli.BoolFlag{
		Name:  metrics.MetricsEnabledFlag,
		Usage: "Enable metrics collection and reporting",
	}
)

// Flags holds all command-line flags required for debugging.
var Flags = []cli.Flag{
	verbosityFlag, metricsFlag,
}

var stopMetrics chan struct{}

// Setup initializes logging and metrics based on the CLI flags.
// It should be called as early as possible in the program.
func Setup(ctx *cli.Context) error {
	log.SetOutput(os.Stderr)
	log.SetLevel(ctx.GlobalString(verbosityFlag.Name))

	if metrics.Enabled {
		stopMetrics = make(chan struct{})
		go metrics.CollectProcessMetrics(3*time.Second, stopMetrics)
	}
	return nil
}

// Exit stops metric collection, reports the collected metrics and flushes
// the logger.
func Exit() {
	if stopMetrics != nil {
		close(stopMetrics)
		stopMetrics = nil
	}
	metrics.WriteOnce(os.Stderr)
	log.Sync()
}
