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

package main

import (
	"os"

	"github.com/Aurorachain/go-intcode/cmd/utils"
	"github.com/Aurorachain/go-intcode/common"
	"github.com/Aurorachain/go-intcode/common/mclock"
	"github.com/Aurorachain/go-intcode/console"
	"github.com/Aurorachain/go-intcode/core/program"
	"github.com/Aurorachain/go-intcode/core/vm"
	"github.com/Aurorachain/go-intcode/core/vm/runtime"
	"github.com/Aurorachain/go-intcode/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/urfave/cli.v1"
)

var runCommand = cli.Command{
	Action:    utils.MigrateFlags(runProgram),
	Name:      "run",
	Usage:     "Run a program to completion",
	ArgsUsage: "<program file>",
	Flags: append([]cli.Flag{
		utils.InputFlag,
		utils.InteractiveFlag,
		utils.ASCIIFlag,
		utils.DumpFlag,
	}, utils.VMFlags...),
	Category: "MACHINE COMMANDS",
	Description: `
Runs the comma separated program in the given file. Input values are taken
from --input, then from the terminal if --interactive is set. Every output is
printed on its own line, or as text with --ascii.`,
}

// loadProgram reads the program named by the first command argument.
func loadProgram(ctx *cli.Context, cfg intcodeConfig) ([]int64, error) {
	if ctx.NArg() < 1 {
		return nil, errors.New("program file required")
	}
	return program.NewLoader(cfg.CacheSize).Load(ctx.Args().First())
}

func runProgram(ctx *cli.Context) error {
	cfg := makeConfig(ctx)
	prog, err := loadProgram(ctx, cfg)
	if err != nil {
		return err
	}
	inputs, err := utils.IntList(ctx, utils.InputFlag.Name)
	if err != nil {
		return err
	}

	var (
		rc      = cfg.runtimeConfig()
		machine = runtime.NewMachine(prog, &rc)
		term    = console.New(console.Config{ASCII: ctx.Bool(utils.ASCIIFlag.Name)})
		queued  = vm.Inputs(inputs...)
		in      = queued
	)
	if ctx.Bool(utils.InteractiveFlag.Name) {
		in = func() (int64, error) {
			if v, err := queued(); err == nil {
				return v, nil
			}
			return term.Input()
		}
	}
	stop := utils.HandleInterrupt(machine)
	defer stop()

	start := mclock.Now()
	err = runtime.Run(machine, in, term.Output, &rc)
	log.LInfo("Program finished",
		zap.Uint64("steps", machine.Steps()),
		zap.Stringer("elapsed", common.PrettyDuration(mclock.Since(start))),
		zap.Int("layers", machine.Memory().Depth()),
		zap.Bool("halted", machine.Halted()),
	)
	if ctx.Bool(utils.DumpFlag.Name) {
		spew.Fdump(os.Stdout, machine.State())
		machine.Memory().Dump(os.Stdout)
	}
	if err != nil {
		return errors.Wrap(err, "program failed")
	}
	return nil
}
