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
	"fmt"
)

// OpCode is the operation selector held in the low two decimal digits of an
// instruction word.
type OpCode int64

const (
	ADD OpCode = iota + 1
	MUL
	INPUT
	OUTPUT
	JUMPIFTRUE
	JUMPIFFALSE
	LT
	EQ
	ADJUSTBASE

	HALT OpCode = 99
)

var opCodeToString = map[OpCode]string{
	ADD:         "ADD",
	MUL:         "MUL",
	INPUT:       "IN",
	OUTPUT:      "OUT",
	JUMPIFTRUE:  "JNZ",
	JUMPIFFALSE: "JZ",
	LT:          "LT",
	EQ:          "EQ",
	ADJUSTBASE:  "ARB",
	HALT:        "HALT",
}

func (op OpCode) String() string {
	str := opCodeToString[op]
	if len(str) == 0 {
		return fmt.Sprintf("Missing opcode %d", int64(op))
	}
	return str
}

var stringToOp = map[string]OpCode{
	"ADD":  ADD,
	"MUL":  MUL,
	"IN":   INPUT,
	"OUT":  OUTPUT,
	"JNZ":  JUMPIFTRUE,
	"JZ":   JUMPIFFALSE,
	"LT":   LT,
	"EQ":   EQ,
	"ARB":  ADJUSTBASE,
	"HALT": HALT,
}

// StringToOp finds the opcode whose name is stored in `str`.
func StringToOp(str string) OpCode {
	return stringToOp[str]
}

// Mode selects how a raw parameter maps to an operand.
type Mode int64

const (
	PositionMode  Mode = 0 // operand is the cell at the literal address
	ImmediateMode Mode = 1 // operand is the literal itself
	RelativeMode  Mode = 2 // operand is the cell at relative base + literal
)

func (m Mode) String() string {
	switch m {
	case PositionMode:
		return "position"
	case ImmediateMode:
		return "immediate"
	case RelativeMode:
		return "relative"
	}
	return fmt.Sprintf("mode(%d)", int64(m))
}

func (m Mode) valid() bool {
	return m == PositionMode || m == ImmediateMode || m == RelativeMode
}
