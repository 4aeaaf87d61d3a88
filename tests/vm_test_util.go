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

package tests

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/Aurorachain/go-intcode/common/math"
	"github.com/Aurorachain/go-intcode/core/program"
	"github.com/Aurorachain/go-intcode/core/vm"
)

// VMTest checks a single program against expected outputs, final memory and
// registers. See testdata/VMTests for the fixture format.
type VMTest struct {
	json vmJSON
}

func (t *VMTest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.json)
}

type vmJSON struct {
	Program      string                            `json:"program"`
	Inputs       []int64                           `json:"inputs"`
	Outputs      []int64                           `json:"outputs"`
	Cases        []vmCase                          `json:"cases"`
	Memory       map[math.Decimal64]math.Decimal64 `json:"memory"`
	Error        string                            `json:"error"`
	Steps        *uint64                           `json:"steps"`
	RelativeBase *int64                            `json:"relativeBase"`
}

type vmCase struct {
	Inputs  []int64 `json:"inputs"`
	Outputs []int64 `json:"outputs"`
}

// Run executes the test. Programs with several input cases run every case on
// a clone of the same loaded machine.
func (t *VMTest) Run(vmconfig vm.Config) error {
	prog, err := program.Parse(t.json.Program)
	if err != nil {
		return err
	}
	root := vm.New(prog, vmconfig)
	defer root.Release()

	if len(t.json.Cases) == 0 {
		return t.check(root, t.json.Inputs, t.json.Outputs)
	}
	for i, c := range t.json.Cases {
		m := root.Clone()
		err := t.check(m, c.Inputs, c.Outputs)
		m.Release()
		if err != nil {
			return fmt.Errorf("case %d: %v", i, err)
		}
	}
	if root.Steps() != 0 {
		return fmt.Errorf("root machine ran %d steps", root.Steps())
	}
	return nil
}

func (t *VMTest) check(m *vm.Machine, inputs, want []int64) error {
	var outputs []int64
	err := m.Run(vm.Inputs(inputs...), vm.Collect(&outputs))
	if t.json.Error == "" && err != nil {
		return err
	}
	if t.json.Error != "" {
		if err == nil {
			return fmt.Errorf("expected error %q, got none", t.json.Error)
		}
		if !strings.Contains(err.Error(), t.json.Error) {
			return fmt.Errorf("error mismatch: got %q, want %q", err, t.json.Error)
		}
	}
	if len(outputs) != 0 || len(want) != 0 {
		if !reflect.DeepEqual(outputs, want) {
			return fmt.Errorf("output mismatch: got %v, want %v", outputs, want)
		}
	}
	for addr, wantv := range t.json.Memory {
		have, err := m.Get(int64(addr))
		if err != nil {
			return err
		}
		if have != int64(wantv) {
			return fmt.Errorf("memory mismatch at %d: got %d, want %d", addr, have, wantv)
		}
	}
	if t.json.Steps != nil && m.Steps() != *t.json.Steps {
		return fmt.Errorf("step count mismatch: got %d, want %d", m.Steps(), *t.json.Steps)
	}
	if t.json.RelativeBase != nil && m.RelativeBase() != *t.json.RelativeBase {
		return fmt.Errorf("relative base mismatch: got %d, want %d", m.RelativeBase(), *t.json.RelativeBase)
	}
	if t.json.Error == "" && !m.Halted() {
		return fmt.Errorf("machine did not halt")
	}
	return nil
}
