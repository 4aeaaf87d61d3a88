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

package runtime

import (
	"errors"
	"fmt"

	"github.com/Aurorachain/go-intcode/common"
	"github.com/Aurorachain/go-intcode/common/mclock"
	"github.com/Aurorachain/go-intcode/core/vm"
	"github.com/Aurorachain/go-intcode/log"
	"github.com/Aurorachain/go-intcode/metrics"
	"github.com/Aurorachain/go-intcode/params"
)

var (
	// ErrStepLimit is returned when a run executes Config.StepLimit
	// instructions without halting.
	ErrStepLimit = errors.New("step limit reached")
	// ErrNoOutput is returned when a stage of a machine network halts
	// without producing a signal.
	ErrNoOutput = errors.New("machine halted without output")

	executeTimer = metrics.NewTimer("vm/runtime/execute")
)

// Config is a basic type specifying certain configuration flags for running
// the machine.
type Config struct {
	Debug         bool
	Tracer        vm.Tracer
	MaxLayerDepth int
	StepLimit     uint64 // zero means unlimited
}

// sets defaults on the config
func setDefaults(cfg *Config) {
	if cfg.MaxLayerDepth == 0 {
		cfg.MaxLayerDepth = params.DefaultMaxLayerDepth
	}
}

func (cfg *Config) vmConfig() vm.Config {
	return vm.Config{
		Debug:         cfg.Debug,
		Tracer:        cfg.Tracer,
		MaxLayerDepth: cfg.MaxLayerDepth,
	}
}

// NewMachine returns a machine for program configured by cfg.
func NewMachine(program []int64, cfg *Config) *vm.Machine {
	if cfg == nil {
		cfg = new(Config)
	}
	setDefaults(cfg)
	return vm.New(program, cfg.vmConfig())
}

// Execute runs program to completion with the given inputs and returns the
// outputs along with the halted machine for inspection.
//
// Execute sets up a fresh machine for every call; the program slice is not
// modified.
func Execute(program, inputs []int64, cfg *Config) ([]int64, *vm.Machine, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	setDefaults(cfg)

	var (
		machine = vm.New(program, cfg.vmConfig())
		ret     []int64
	)
	err := Run(machine, vm.Inputs(inputs...), vm.Collect(&ret), cfg)
	return ret, machine, err
}

// Run drives machine until it halts, honouring cfg.StepLimit. It is the
// callback driven vm.Machine.Run with timing and a step budget.
func Run(machine *vm.Machine, in vm.InputFunc, out vm.OutputFunc, cfg *Config) error {
	if cfg == nil {
		cfg = new(Config)
	}
	start := mclock.Now()
	defer func() { executeTimer.Update(mclock.Since(start)) }()

	for {
		status, err := machine.Step(in, out)
		if err != nil {
			return err
		}
		if status == vm.Halted {
			elapsed := mclock.Since(start)
			log.Debugf("Program halted after %d steps in %v (%s)", machine.Steps(), common.PrettyDuration(elapsed), common.StepRate(machine.Steps(), elapsed))
			return nil
		}
		if cfg.StepLimit != 0 && machine.Steps() >= cfg.StepLimit {
			return ErrStepLimit
		}
	}
}

// Pipeline runs one machine per phase setting in series. Machine i receives
// its setting followed by the signal from machine i-1, the first machine
// receives signal. The last machine's final output is returned.
func Pipeline(program, settings []int64, signal int64, cfg *Config) (int64, error) {
	for i, setting := range settings {
		out, _, err := Execute(program, []int64{setting, signal}, cfg)
		if err != nil {
			return 0, fmt.Errorf("stage %d: %w", i, err)
		}
		if len(out) == 0 {
			return 0, fmt.Errorf("stage %d: %w", i, ErrNoOutput)
		}
		signal = out[len(out)-1]
	}
	return signal, nil
}

// FeedbackLoop wires one machine per phase setting into a ring. Each machine
// is primed with its setting, then signal circulates through the ring one
// value at a time until a machine halts. The last signal produced is
// returned.
func FeedbackLoop(program, settings []int64, signal int64, cfg *Config) (int64, error) {
	if len(settings) == 0 {
		return signal, nil
	}
	root := NewMachine(program, cfg)
	defer root.Release()

	machines := make([]*vm.Machine, len(settings))
	for i, setting := range settings {
		machines[i] = root.Clone()
		defer machines[i].Release()

		halted, err := machines[i].Feed(setting)
		if err != nil {
			return 0, fmt.Errorf("stage %d: %w", i, err)
		}
		if halted {
			return 0, fmt.Errorf("stage %d: %w", i, ErrNoOutput)
		}
	}
	for round := 0; ; round++ {
		for i, m := range machines {
			out, ok, err := m.Exchange(signal)
			if err != nil {
				return 0, fmt.Errorf("stage %d: %w", i, err)
			}
			if !ok {
				log.Debugf("Feedback loop finished after %d rounds", round)
				return signal, nil
			}
			signal = out
		}
	}
}
