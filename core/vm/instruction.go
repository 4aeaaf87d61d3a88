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

// Instruction is the transient decode of one instruction word.
type Instruction struct {
	Word  int64
	Op    OpCode
	modes [params.MaxParams]Mode
}

// Decode splits an instruction word into its opcode and the addressing modes
// of the parameters that opcode takes. Mode digits beyond the opcode's last
// parameter are ignored.
func Decode(word int64) (Instruction, error) {
	in := Instruction{Word: word, Op: OpCode(word % 100)}
	if in.Op < 0 || int(in.Op) >= len(instructionSet) || !instructionSet[in.Op].valid {
		return in, &ExecError{Err: ErrUnrecognisedOpcode, Word: word, Value: int64(in.Op)}
	}
	digits := word / 100
	for i := 0; i < instructionSet[in.Op].params; i++ {
		mode := Mode(digits % 10)
		if !mode.valid() {
			return in, &ExecError{Err: ErrInvalidAddressingMode, Word: word, Value: int64(mode), Param: i + 1}
		}
		in.modes[i] = mode
		digits /= 10
	}
	return in, nil
}

// NumParams returns how many parameter cells follow the instruction word.
func (in Instruction) NumParams() int {
	return instructionSet[in.Op].params
}

// Size returns the number of cells the instruction occupies.
func (in Instruction) Size() int64 {
	return int64(in.NumParams()) + 1
}

// Mode returns the addressing mode of parameter i (0-based).
func (in Instruction) Mode(i int) Mode {
	return in.modes[i]
}

// Operand is a parameter resolved for reading. In immediate mode Value is the
// literal operand, otherwise it is the absolute address holding the operand.
type Operand struct {
	Mode  Mode
	Value int64
}

// Immediate reports whether the operand is a literal rather than an address.
func (o Operand) Immediate() bool {
	return o.Mode == ImmediateMode
}

// Operand resolves raw parameter i for use as a value, given the current
// relative base. It does not touch memory.
func (in Instruction) Operand(i int, raw, base int64) (Operand, error) {
	mode := in.modes[i]
	addr := raw
	switch mode {
	case ImmediateMode:
		return Operand{Mode: mode, Value: raw}, nil
	case PositionMode:
	case RelativeMode:
		var overflow bool
		if addr, overflow = math.SafeAdd(base, raw); overflow {
			return Operand{}, &ExecError{Err: ErrArithmeticOverflow, Word: in.Word, Param: i + 1}
		}
	default:
		return Operand{}, &ExecError{Err: ErrInvalidAddressingMode, Word: in.Word, Value: int64(mode), Param: i + 1}
	}
	if addr < 0 {
		return Operand{}, &ExecError{Err: ErrAddress, Word: in.Word, Value: addr, Param: i + 1}
	}
	return Operand{Mode: mode, Value: addr}, nil
}

// Target resolves raw parameter i for use as a write address. Immediate mode
// has no address and is rejected.
func (in Instruction) Target(i int, raw, base int64) (int64, error) {
	if in.modes[i] == ImmediateMode {
		return 0, &ExecError{Err: ErrInvalidAddressingMode, Word: in.Word, Value: int64(ImmediateMode), Param: i + 1}
	}
	op, err := in.Operand(i, raw, base)
	if err != nil {
		return 0, err
	}
	return op.Value, nil
}
