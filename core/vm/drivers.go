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

package vm

import (
	"github.com/Aurorachain/go-intcode/log"
	"go.uber.org/zap"
)

// Inputs returns an input callback that yields values in order and fails
// with ErrInputExhausted once they are used up.
func Inputs(values ...int64) InputFunc {
	queue := append([]int64(nil), values...)
	return func() (int64, error) {
		if len(queue) == 0 {
			return 0, ErrInputExhausted
		}
		v := queue[0]
		queue = queue[1:]
		return v, nil
	}
}

// Collect returns an output callback appending every value to dst.
func Collect(dst *[]int64) OutputFunc {
	return func(v int64) error {
		*dst = append(*dst, v)
		return nil
	}
}

// Run executes until the machine halts. Every input instruction calls in and
// every output instruction calls out. A callback error is fatal: it is
// returned inside an ExecError and the machine stays on the failing
// instruction.
func (m *Machine) Run(in InputFunc, out OutputFunc) error {
	for {
		status, err := m.Step(in, out)
		if err != nil {
			log.LDebug("Machine faulted", zap.Int64("pc", m.pc), zap.Error(err))
			return err
		}
		if status == Halted {
			log.LDebug("Machine halted", zap.Int64("pc", m.pc), zap.Uint64("steps", m.steps))
			return nil
		}
	}
}

// Exchange queues v and runs until the machine produces one output or halts.
// It returns the output and true, or false if the machine halted first.
//
// If the machine asks for input after the queue has drained, Exchange stops
// before that instruction and returns an ExecError wrapping
// ErrInputExhausted. The machine is left intact and may be resumed by
// another Exchange or Feed. Queued values not consumed stay queued.
func (m *Machine) Exchange(v int64) (int64, bool, error) {
	if m.halted {
		return 0, false, nil
	}
	m.Push(v)
	for {
		ev, err := m.Next()
		if err != nil {
			return 0, false, err
		}
		switch ev.Status {
		case Output:
			return ev.Value, true, nil
		case Halted:
			return 0, false, nil
		case NeedsInput:
			return 0, false, m.starved()
		}
	}
}

// Feed queues v and runs until the machine needs more input than is queued,
// or halts. It reports whether the machine halted. Reaching an output
// instruction fails with ErrUnexpectedOutput without executing it.
func (m *Machine) Feed(v int64) (bool, error) {
	if m.halted {
		return true, nil
	}
	m.Push(v)
	return m.resume(refuseOutput)
}

// Resume runs on the queued input until more input is needed or the machine
// halts, passing outputs to out. It reports whether the machine halted.
func (m *Machine) Resume(out OutputFunc) (bool, error) {
	if out == nil {
		out = discard
	}
	return m.resume(out)
}

func (m *Machine) resume(out OutputFunc) (bool, error) {
	for {
		status, err := m.step(m.popInput, out)
		if err != nil {
			return false, err
		}
		switch status {
		case NeedsInput:
			return false, nil
		case Halted:
			return true, nil
		}
	}
}

func refuseOutput(int64) error { return ErrUnexpectedOutput }

// starved describes an input instruction that found the queue empty. It is
// not a fault: the machine can carry on once input arrives.
func (m *Machine) starved() error {
	word, _ := m.mem.Get(m.pc)
	return &ExecError{Err: ErrInputExhausted, PC: m.pc, Word: word}
}
