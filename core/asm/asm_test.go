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

package asm

import (
	"bytes"
	"testing"

	"github.com/Aurorachain/go-intcode/core/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisassemble(t *testing.T) {
	prog := []int64{1002, 4, 3, 4, 109, -2, 21101, 7, 8, 3, 99, 42, 1}
	lines := Disassemble(prog)
	require.Len(t, lines, 6)

	assert.Equal(t, vm.MUL, lines[0].Op)
	assert.Equal(t, []string{"[4]", "3", "[4]"}, lines[0].Operands)
	assert.Equal(t, "000000  MUL   [4] 3 [4]", lines[0].String())

	assert.Equal(t, int64(4), lines[1].Addr)
	assert.Equal(t, "000004  ARB   -2", lines[1].String())

	assert.Equal(t, []string{"7", "8", "[rb+3]"}, lines[2].Operands)
	assert.Equal(t, "000010  HALT", lines[3].String())

	assert.True(t, lines[4].Data)
	assert.Equal(t, "000011  DATA  42", lines[4].String())

	// A trailing opcode without room for its parameters is data too.
	assert.True(t, lines[5].Data)
	assert.Equal(t, int64(12), lines[5].Addr)
}

func TestOperandRendering(t *testing.T) {
	assert.Equal(t, "[rb-5]", operand(vm.RelativeMode, -5))
	assert.Equal(t, "[rb+0]", operand(vm.RelativeMode, 0))
	assert.Equal(t, "-5", operand(vm.ImmediateMode, -5))
	assert.Equal(t, "[17]", operand(vm.PositionMode, 17))
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, Disassemble([]int64{3, 0, 4, 0, 99}), false)
	assert.Equal(t, "000000  IN    [0]\n000002  OUT   [0]\n000004  HALT\n", buf.String())

	buf.Reset()
	Print(&buf, Disassemble([]int64{104, 1, 7}), true)
	assert.Contains(t, buf.String(), "OUT")
	assert.Contains(t, buf.String(), "DATA")
}
