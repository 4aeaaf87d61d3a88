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
	"github.com/Aurorachain/go-intcode/cmd/utils"
	"github.com/Aurorachain/go-intcode/core/asm"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"gopkg.in/urfave/cli.v1"
)

var disasmCommand = cli.Command{
	Action:    utils.MigrateFlags(disasm),
	Name:      "disasm",
	Usage:     "Disassemble a program",
	ArgsUsage: "<program file>",
	Category:  "MACHINE COMMANDS",
	Description: `
Prints one instruction per line. Position operands are shown as [a],
relative ones as [rb+a] and immediates bare. Cells that do not decode are
listed as DATA.`,
}

func disasm(ctx *cli.Context) error {
	prog, err := loadProgram(ctx, makeConfig(ctx))
	if err != nil {
		return err
	}
	asm.Print(colorable.NewColorableStdout(), asm.Disassemble(prog), !color.NoColor)
	return nil
}
