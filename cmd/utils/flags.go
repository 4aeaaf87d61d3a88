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

// Package utils contains internal helper functions for go-intcode commands.
package utils

import (
	"os"
	"path/filepath"

	"github.com/Aurorachain/go-intcode/core/program"
	"github.com/Aurorachain/go-intcode/core/vm/runtime"
	"github.com/Aurorachain/go-intcode/params"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"
)

// NewApp creates an app with sane defaults.
func NewApp(gitCommit, usage string) *cli.App {
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Author = ""
	app.Email = ""
	app.Version = params.VersionWithCommit(gitCommit)
	app.Usage = usage
	return app
}

var (
	// General settings
	ConfigFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	CacheSizeFlag = cli.IntFlag{
		Name:  "cache",
		Usage: "Number of parsed programs kept in memory",
		Value: params.ProgramCacheSize,
	}

	// Machine settings
	VMEnableDebugFlag = cli.BoolFlag{
		Name:  "vmdebug",
		Usage: "Record information useful for VM and program debugging",
	}
	MaxDepthFlag = cli.IntFlag{
		Name:  "maxdepth",
		Usage: "Copy-on-write layers a machine may stack before memory is flattened",
		Value: params.DefaultMaxLayerDepth,
	}
	StepLimitFlag = cli.Uint64Flag{
		Name:  "steplimit",
		Usage: "Abort after executing this many instructions (0 = unlimited)",
	}

	// Run settings
	InputFlag = cli.StringFlag{
		Name:  "input",
		Usage: "Comma separated input values",
	}
	InteractiveFlag = cli.BoolFlag{
		Name:  "interactive",
		Usage: "Prompt on the terminal whenever the program asks for input",
	}
	ASCIIFlag = cli.BoolFlag{
		Name:  "ascii",
		Usage: "Exchange text: outputs below 128 print as characters, input lines are sent as characters",
	}
	DumpFlag = cli.BoolFlag{
		Name:  "dump",
		Usage: "Print machine state and memory after the program halts",
	}

	// Chain settings
	SettingsFlag = cli.StringFlag{
		Name:  "settings",
		Usage: "Comma separated phase settings, one machine per value",
	}
	LoopFlag = cli.BoolFlag{
		Name:  "loop",
		Usage: "Wire the machines into a feedback loop instead of a series",
	}
	SignalFlag = cli.Int64Flag{
		Name:  "signal",
		Usage: "Initial signal fed to the first machine",
	}
)

// VMFlags are the machine flags accepted globally and by every command.
var VMFlags = []cli.Flag{
	VMEnableDebugFlag,
	MaxDepthFlag,
	StepLimitFlag,
}

// SetVMConfig applies machine related command line flags to the config.
func SetVMConfig(ctx *cli.Context, cfg *runtime.Config) {
	if ctx.GlobalIsSet(VMEnableDebugFlag.Name) {
		cfg.Debug = ctx.GlobalBool(VMEnableDebugFlag.Name)
	}
	if ctx.GlobalIsSet(MaxDepthFlag.Name) {
		cfg.MaxLayerDepth = ctx.GlobalInt(MaxDepthFlag.Name)
	}
	if ctx.GlobalIsSet(StepLimitFlag.Name) {
		cfg.StepLimit = ctx.GlobalUint64(StepLimitFlag.Name)
	}
}

// IntList parses a comma separated flag value. An unset flag yields nil.
func IntList(ctx *cli.Context, name string) ([]int64, error) {
	value := ctx.String(name)
	if value == "" {
		return nil, nil
	}
	list, err := program.Parse(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", name)
	}
	return list, nil
}

// MigrateFlags sets the global flag from a local flag when it's set.
// This is a temporary function used for migrating old command/flags to the
// new format.
//
// e.g. intcode run --maxdepth 8 prog.txt
//
// is equivalent after calling this method with:
//
// intcode --maxdepth 8 run prog.txt
//
// This allows the use of the existing configuration functionality.
// When all flags are migrated this function can be removed and the existing
// configuration functionality must be changed that is uses local flags
func MigrateFlags(action func(ctx *cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		for _, name := range ctx.FlagNames() {
			if ctx.IsSet(name) {
				ctx.GlobalSet(name, ctx.String(name))
			}
		}
		return action(ctx)
	}
}
