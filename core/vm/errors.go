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
	"errors"
	"fmt"
)

var (
	ErrUnrecognisedOpcode    = errors.New("unrecognised opcode")
	ErrInvalidAddressingMode = errors.New("invalid addressing mode")
	ErrAddress               = errors.New("negative address")
	ErrInputExhausted        = errors.New("input exhausted")
	ErrUnexpectedOutput      = errors.New("unexpected output")
	ErrArithmeticOverflow    = errors.New("arithmetic overflow")
	ErrAborted               = errors.New("execution aborted")

	ErrTraceLimitReached = errors.New("the number of logs reached the specified limit")
)

// ExecError is the single error value through which every fatal execution
// condition reaches the caller. Err is one of the sentinel errors above or
// an error returned by an input/output callback.
type ExecError struct {
	Err   error
	PC    int64 // program counter of the failing instruction
	Word  int64 // raw instruction word at PC
	Value int64 // offending opcode, mode digit or address
	Param int   // 1-based parameter index, 0 when not tied to a parameter
}

func (e *ExecError) Error() string {
	switch e.Err {
	case ErrUnrecognisedOpcode:
		return fmt.Sprintf("%v %d at pc %d", e.Err, e.Value, e.PC)
	case ErrInvalidAddressingMode:
		return fmt.Sprintf("%v %d for parameter %d of instruction %d at pc %d", e.Err, e.Value, e.Param, e.Word, e.PC)
	case ErrAddress:
		return fmt.Sprintf("%v %d at pc %d", e.Err, e.Value, e.PC)
	}
	return fmt.Sprintf("%v at pc %d (instruction %d)", e.Err, e.PC, e.Word)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Location returns the program counter of the failure, if err carries one.
func Location(err error) (int64, bool) {
	var ee *ExecError
	if errors.As(err, &ee) {
		return ee.PC, true
	}
	return 0, false
}
