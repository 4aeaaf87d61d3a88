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
	"fmt"

	"github.com/Aurorachain/go-intcode/cmd/utils"
	"github.com/Aurorachain/go-intcode/core/vm/runtime"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"
)

var chainCommand = cli.Command{
	Action:    utils.MigrateFlags(chainPrograms),
	Name:      "chain",
	Usage:     "Run a network of machines sharing one program",
	ArgsUsage: "<program file>",
	Flags: append([]cli.Flag{
		utils.SettingsFlag,
		utils.LoopFlag,
		utils.SignalFlag,
	}, utils.VMFlags...),
	Category: "MACHINE COMMANDS",
	Description: `
Starts one machine per phase setting. Each machine first reads its setting,
then the signal produced by the machine before it. Without --loop the final
machine's output is printed; with --loop the last machine feeds the first one
until they halt and the last signal is printed.`,
}

func chainPrograms(ctx *cli.Context) error {
	cfg := makeConfig(ctx)
	prog, err := loadProgram(ctx, cfg)
	if err != nil {
		return err
	}
	settings, err := utils.IntList(ctx, utils.SettingsFlag.Name)
	if err != nil {
		return err
	}
	if settings == nil {
		settings = cfg.Chain.Settings
	}
	if len(settings) == 0 {
		return errors.New("no phase settings given")
	}
	signal, loop := cfg.Chain.Signal, cfg.Chain.Loop
	if ctx.IsSet(utils.SignalFlag.Name) {
		signal = ctx.Int64(utils.SignalFlag.Name)
	}
	if ctx.IsSet(utils.LoopFlag.Name) {
		loop = ctx.Bool(utils.LoopFlag.Name)
	}

	rc := cfg.runtimeConfig()
	if loop {
		signal, err = runtime.FeedbackLoop(prog, settings, signal, &rc)
	} else {
		signal, err = runtime.Pipeline(prog, settings, signal, &rc)
	}
	if err != nil {
		return errors.Wrap(err, "chain failed")
	}
	fmt.Println(signal)
	return nil
}
