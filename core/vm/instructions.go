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
	"github.com/Aurorachain/go-intcode/common/math"
	"github.com/Aurorachain/go-intcode/params"
)

type (
	executionFunc func(pc *int64, m *Machine, f *frame) error
)

// frame carries the decoded instruction and the I/O hooks of one step.
type frame struct {
	in     Instruction
	size   int64 // cells to advance past the instruction
	args   [params.MaxParams]int64
	input  InputFunc
	output OutputFunc
}

type operation struct {
	execute executionFunc
	params  int  // parameter cells following the instruction word
	jumps   bool // indicates whether the program counter should not increment
	halts   bool // indicates whether the operation should halt further execution
	emits   bool // indicates whether the operation produces an output value
	valid   bool // indication whether the retrieved operation is valid and known
}

var instructionSet = [100]operation{
	ADD: {
		execute: opAdd,
		params:  3,
		valid:   true,
	},
	MUL: {
		execute: opMul,
		params:  3,
		valid:   true,
	},
	INPUT: {
		execute: opInput,
		params:  1,
		valid:   true,
	},
	OUTPUT: {
		execute: opOutput,
		params:  1,
		emits:   true,
		valid:   true,
	},
	JUMPIFTRUE: {
		execute: opJumpIfTrue,
		params:  2,
		jumps:   true,
		valid:   true,
	},
	JUMPIFFALSE: {
		execute: opJumpIfFalse,
		params:  2,
		jumps:   true,
		valid:   true,
	},
	LT: {
		execute: opLt,
		params:  3,
		valid:   true,
	},
	EQ: {
		execute: opEq,
		params:  3,
		valid:   true,
	},
	ADJUSTBASE: {
		execute: opAdjustBase,
		params:  1,
		valid:   true,
	},
	HALT: {
		execute: opHalt,
		halts:   true,
		valid:   true,
	},
}

// value reads parameter i of the current instruction as an operand.
func (m *Machine) value(f *frame, i int) (int64, error) {
	op, err := f.in.Operand(i, f.args[i], m.base)
	if err != nil {
		return 0, err
	}
	if op.Immediate() {
		return op.Value, nil
	}
	return m.mem.Get(op.Value)
}

func (m *Machine) operands(f *frame) (x, y int64, err error) {
	if x, err = m.value(f, 0); err != nil {
		return
	}
	y, err = m.value(f, 1)
	return
}

// store writes v through parameter i used as a destination.
func (m *Machine) store(f *frame, i int, v int64) error {
	addr, err := f.in.Target(i, f.args[i], m.base)
	if err != nil {
		return err
	}
	return m.mem.Set(addr, v)
}

func boolToWord(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func opAdd(pc *int64, m *Machine, f *frame) error {
	x, y, err := m.operands(f)
	if err != nil {
		return err
	}
	sum, overflow := math.SafeAdd(x, y)
	if overflow {
		return &ExecError{Err: ErrArithmeticOverflow}
	}
	return m.store(f, 2, sum)
}

func opMul(pc *int64, m *Machine, f *frame) error {
	x, y, err := m.operands(f)
	if err != nil {
		return err
	}
	prod, overflow := math.SafeMul(x, y)
	if overflow {
		return &ExecError{Err: ErrArithmeticOverflow}
	}
	return m.store(f, 2, prod)
}

func opInput(pc *int64, m *Machine, f *frame) error {
	// Resolve the destination before consuming a value so that a bad
	// destination does not swallow input.
	addr, err := f.in.Target(0, f.args[0], m.base)
	if err != nil {
		return err
	}
	v, err := f.input()
	if err != nil {
		return callbackError{err}
	}
	return m.mem.Set(addr, v)
}

func opOutput(pc *int64, m *Machine, f *frame) error {
	v, err := m.value(f, 0)
	if err != nil {
		return err
	}
	if err := f.output(v); err != nil {
		return callbackError{err}
	}
	return nil
}

func opJumpIfTrue(pc *int64, m *Machine, f *frame) error {
	cond, target, err := m.operands(f)
	if err != nil {
		return err
	}
	if cond != 0 {
		*pc = target
	} else {
		*pc += f.size
	}
	return nil
}

func opJumpIfFalse(pc *int64, m *Machine, f *frame) error {
	cond, target, err := m.operands(f)
	if err != nil {
		return err
	}
	if cond == 0 {
		*pc = target
	} else {
		*pc += f.size
	}
	return nil
}

func opLt(pc *int64, m *Machine, f *frame) error {
	x, y, err := m.operands(f)
	if err != nil {
		return err
	}
	return m.store(f, 2, boolToWord(x < y))
}

func opEq(pc *int64, m *Machine, f *frame) error {
	x, y, err := m.operands(f)
	if err != nil {
		return err
	}
	return m.store(f, 2, boolToWord(x == y))
}

func opAdjustBase(pc *int64, m *Machine, f *frame) error {
	delta, err := m.value(f, 0)
	if err != nil {
		return err
	}
	base, overflow := math.SafeAdd(m.base, delta)
	if overflow {
		return &ExecError{Err: ErrArithmeticOverflow}
	}
	m.base = base
	return nil
}

func opHalt(pc *int64, m *Machine, f *frame) error {
	return nil
}
