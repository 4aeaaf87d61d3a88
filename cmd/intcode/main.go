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

// intcode is the command line interface to the Intcode virtual machine.
package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/Aurorachain/go-intcode/cmd/utils"
	"github.com/Aurorachain/go-intcode/console"
	"github.com/Aurorachain/go-intcode/internal/debug"
	"gopkg.in/urfave/cli.v1"
)

const (
	clientIdentifier = "intcode" // Client identifier printed by the version command
)

var (
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(gitCommit, "the go-intcode command line interface")
)

func init() {
	app.HideVersion = true // we have a command to print the version
	app.Copyright = "Copyright 2018-2019 The go-aurora Authors"
	app.Commands = []cli.Command{
		runCommand,
		chainCommand,
		disasmCommand,
		dumpConfigCommand,
		versionCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Flags = append(app.Flags, utils.ConfigFileFlag, utils.CacheSizeFlag)
	app.Flags = append(app.Flags, utils.VMFlags...)
	app.Flags = append(app.Flags, debug.Flags...)

	app.Before = func(ctx *cli.Context) error {
		runtime.GOMAXPROCS(runtime.NumCPU())
		return debug.Setup(ctx)
	}

	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		console.Stdin.Close()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
