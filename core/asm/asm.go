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

// Package asm provides a disassembler for Intcode program images.
package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Aurorachain/go-intcode/core/vm"
	"github.com/fatih/color"
)

// Line is one disassembled instruction, or a single data cell that does not
// decode to a complete instruction.
type Line struct {
	Addr     int64
	Op       vm.OpCode
	Data     bool
	Words    []int64
	Operands []string
}

// Mnemonic returns the instruction name, or DATA.
func (l Line) Mnemonic() string {
	if l.Data {
		return "DATA"
	}
	return l.Op.String()
}

func (l Line) String() string {
	if l.Data {
		return fmt.Sprintf("%06d  %-5s %d", l.Addr, l.Mnemonic(), l.Words[0])
	}
	if len(l.Operands) == 0 {
		return fmt.Sprintf("%06d  %s", l.Addr, l.Mnemonic())
	}
	return fmt.Sprintf("%06d  %-5s %s", l.Addr, l.Mnemonic(), strings.Join(l.Operands, " "))
}

// Disassemble walks prog from address zero. Cells that do not decode, or
// whose parameters run past the end of prog, are emitted as DATA and the walk
// continues at the next cell.
func Disassemble(prog []int64) []Line {
	var (
		lines []Line
		n     = int64(len(prog))
	)
	for pc := int64(0); pc < n; {
		in, err := vm.Decode(prog[pc])
		if err != nil || pc+in.Size() > n {
			lines = append(lines, Line{Addr: pc, Data: true, Words: prog[pc : pc+1]})
			pc++
			continue
		}
		line := Line{Addr: pc, Op: in.Op, Words: prog[pc : pc+in.Size()]}
		for i := 0; i < in.NumParams(); i++ {
			line.Operands = append(line.Operands, operand(in.Mode(i), prog[pc+int64(i)+1]))
		}
		lines = append(lines, line)
		pc += in.Size()
	}
	return lines
}

func operand(mode vm.Mode, raw int64) string {
	switch mode {
	case vm.PositionMode:
		return "[" + strconv.FormatInt(raw, 10) + "]"
	case vm.RelativeMode:
		if raw < 0 {
			return "[rb" + strconv.FormatInt(raw, 10) + "]"
		}
		return "[rb+" + strconv.FormatInt(raw, 10) + "]"
	}
	return strconv.FormatInt(raw, 10)
}

var (
	addrColor = color.New(color.Faint).SprintFunc()
	opColor   = color.New(color.FgCyan, color.Bold).SprintFunc()
	dataColor = color.New(color.FgYellow).SprintFunc()
)

// Print writes lines to w, one per row, highlighting mnemonics if colored
// is set.
func Print(w io.Writer, lines []Line, colored bool) {
	if !colored {
		for _, l := range lines {
			fmt.Fprintln(w, l)
		}
		return
	}
	for _, l := range lines {
		addr := addrColor(fmt.Sprintf("%06d", l.Addr))
		if l.Data {
			fmt.Fprintf(w, "%s  %s %d\n", addr, dataColor(fmt.Sprintf("%-5s", "DATA")), l.Words[0])
			continue
		}
		fmt.Fprintf(w, "%s  %s %s\n", addr, opColor(fmt.Sprintf("%-5s", l.Mnemonic())), strings.Join(l.Operands, " "))
	}
}
