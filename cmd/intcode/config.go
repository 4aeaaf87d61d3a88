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
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/Aurorachain/go-intcode/cmd/utils"
	"github.com/Aurorachain/go-intcode/core/vm/runtime"
	"github.com/Aurorachain/go-intcode/params"
	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"
)

var dumpConfigCommand = cli.Command{
	Action:      utils.MigrateFlags(dumpConfig),
	Name:        "dumpconfig",
	Usage:       "Show configuration values",
	ArgsUsage:   "",
	Flags:       append([]cli.Flag{utils.ConfigFileFlag, utils.CacheSizeFlag}, utils.VMFlags...),
	Category:    "MISCELLANEOUS COMMANDS",
	Description: `The dumpconfig command shows configuration values.`,
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// vmConfig is the TOML form of runtime.Config.
type vmConfig struct {
	Debug         bool
	MaxLayerDepth int
	StepLimit     uint64
}

type chainConfig struct {
	Settings []int64 `toml:",omitempty"`
	Signal   int64
	Loop     bool
}

type intcodeConfig struct {
	CacheSize int
	VM        vmConfig
	Chain     chainConfig
}

var defaultConfig = intcodeConfig{
	CacheSize: params.ProgramCacheSize,
	VM: vmConfig{
		MaxLayerDepth: params.DefaultMaxLayerDepth,
	},
}

func loadConfig(file string, cfg *intcodeConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig merges the defaults, the config file and the command line flags,
// in increasing order of precedence.
func makeConfig(ctx *cli.Context) intcodeConfig {
	cfg := defaultConfig
	if file := ctx.GlobalString(utils.ConfigFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			utils.Fatalf("%v", err)
		}
	}
	rc := cfg.runtimeConfig()
	utils.SetVMConfig(ctx, &rc)
	cfg.VM = vmConfig{Debug: rc.Debug, MaxLayerDepth: rc.MaxLayerDepth, StepLimit: rc.StepLimit}

	if ctx.GlobalIsSet(utils.CacheSizeFlag.Name) {
		cfg.CacheSize = ctx.GlobalInt(utils.CacheSizeFlag.Name)
	}
	return cfg
}

func (cfg *intcodeConfig) runtimeConfig() runtime.Config {
	return runtime.Config{
		Debug:         cfg.VM.Debug,
		MaxLayerDepth: cfg.VM.MaxLayerDepth,
		StepLimit:     cfg.VM.StepLimit,
	}
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg := makeConfig(ctx)
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	os.Stdout.Write(out)
	return nil
}
