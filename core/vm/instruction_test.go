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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		word  int64
		op    OpCode
		modes []Mode
	}{
		{1, ADD, []Mode{PositionMode, PositionMode, PositionMode}},
		{1002, MUL, []Mode{PositionMode, ImmediateMode, PositionMode}},
		{21101, ADD, []Mode{ImmediateMode, ImmediateMode, RelativeMode}},
		{203, INPUT, []Mode{RelativeMode}},
		{104, OUTPUT, []Mode{ImmediateMode}},
		{1105, JUMPIFTRUE, []Mode{ImmediateMode, ImmediateMode}},
		{99, HALT, nil},
		// Mode digits past the last parameter are ignored.
		{99999, HALT, nil},
		{9109, ADJUSTBASE, []Mode{ImmediateMode}},
	}
	for _, tt := range tests {
		in, err := Decode(tt.word)
		require.NoError(t, err, "word %d", tt.word)
		assert.Equal(t, tt.op, in.Op, "word %d", tt.word)
		require.Equal(t, len(tt.modes), in.NumParams(), "word %d", tt.word)
		assert.Equal(t, int64(len(tt.modes)+1), in.Size())
		for i, mode := range tt.modes {
			assert.Equal(t, mode, in.Mode(i), "word %d param %d", tt.word, i)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		word  int64
		err   error
		value int64
		param int
	}{
		{0, ErrUnrecognisedOpcode, 0, 0},
		{10, ErrUnrecognisedOpcode, 10, 0},
		{98, ErrUnrecognisedOpcode, 98, 0},
		{-1, ErrUnrecognisedOpcode, -1, 0},
		{301, ErrInvalidAddressingMode, 3, 1},
		{9001, ErrInvalidAddressingMode, 9, 2},
		{90002, ErrInvalidAddressingMode, 9, 3},
	}
	for _, tt := range tests {
		_, err := Decode(tt.word)
		var ee *ExecError
		require.True(t, errors.As(err, &ee), "word %d: %v", tt.word, err)
		assert.Equal(t, tt.err, ee.Err, "word %d", tt.word)
		assert.Equal(t, tt.value, ee.Value, "word %d", tt.word)
		assert.Equal(t, tt.param, ee.Param, "word %d", tt.word)
	}
}

func TestOperandResolution(t *testing.T) {
	in, err := Decode(21001) // position, immediate, relative
	require.NoError(t, err)

	op, err := in.Operand(0, 7, 100)
	require.NoError(t, err)
	assert.Equal(t, Operand{Mode: PositionMode, Value: 7}, op)

	op, err = in.Operand(1, -7, 100)
	require.NoError(t, err)
	assert.True(t, op.Immediate())
	assert.Equal(t, int64(-7), op.Value)

	op, err = in.Operand(2, -7, 100)
	require.NoError(t, err)
	assert.Equal(t, Operand{Mode: RelativeMode, Value: 93}, op)

	_, err = in.Operand(0, -1, 100)
	assert.True(t, errors.Is(err, ErrAddress))
	_, err = in.Operand(2, -101, 100)
	assert.True(t, errors.Is(err, ErrAddress))
}

func TestTargetResolution(t *testing.T) {
	in, err := Decode(21001)
	require.NoError(t, err)

	addr, err := in.Target(0, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), addr)

	addr, err = in.Target(2, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), addr)

	_, err = in.Target(1, 5, 10)
	var ee *ExecError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, ErrInvalidAddressingMode, ee.Err)
	assert.Equal(t, 2, ee.Param)
}

func TestOpCodeNames(t *testing.T) {
	for op := OpCode(0); op < 100; op++ {
		if !instructionSet[op].valid {
			continue
		}
		assert.Equal(t, op, StringToOp(op.String()))
	}
	assert.Equal(t, "Missing opcode 42", OpCode(42).String())
}
