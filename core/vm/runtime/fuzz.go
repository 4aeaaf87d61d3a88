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

// +build gofuzz

package runtime

import (
	"errors"

	"github.com/Aurorachain/go-intcode/core/program"
	"github.com/Aurorachain/go-intcode/core/vm"
)

// Fuzz is the basic entry point for the go-fuzz tool
//
// This returns 1 for valid parsable/runable code, 0
// for invalid opcode.
func Fuzz(input []byte) int {
	prog, err := program.Parse(string(input))
	if err != nil {
		return 0
	}
	_, _, err = Execute(prog, []int64{0, 1, 2, 3, 4}, &Config{
		StepLimit: 100000,
	})
	if errors.Is(err, vm.ErrUnrecognisedOpcode) || errors.Is(err, vm.ErrInvalidAddressingMode) {
		return 0
	}
	return 1
}
