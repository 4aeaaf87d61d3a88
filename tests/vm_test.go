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
	"bufio"
	"bytes"
	"reflect"
	"testing"

	"github.com/Aurorachain/go-intcode/core/vm"
	"github.com/Aurorachain/go-intcode/params"
)

func TestVM(t *testing.T) {
	t.Parallel()
	vmt := new(testMatcher)
	vmt.skipShortMode("^performance.json")
	vmt.config("^modes.json", vm.Config{MaxLayerDepth: params.MinLayerDepth})

	vmt.walk(t, vmTestDir, func(t *testing.T, name string, test *VMTest) {
		cfg := vmt.findConfig(name)
		withTrace(t, cfg, func(vmconfig vm.Config) error {
			return vmt.checkFailure(t, name, test.Run(vmconfig))
		})
	})
}

// withTrace runs test once and, if it fails, again with a struct logger
// attached so the instruction trace ends up in the test log.
func withTrace(t *testing.T, cfg vm.Config, test func(vm.Config) error) {
	err := test(cfg)
	if err == nil {
		return
	}
	t.Error(err)

	buf := new(bytes.Buffer)
	w := bufio.NewWriter(buf)
	tracer := vm.NewStructLogger(&vm.LogConfig{Limit: 2000})
	cfg.Debug, cfg.Tracer = true, tracer
	err2 := test(cfg)
	if !reflect.DeepEqual(err, err2) {
		t.Errorf("different error for second run: %v", err2)
	}
	vm.WriteTrace(w, tracer.StructLogs())
	w.Flush()
	if buf.Len() == 0 {
		t.Log("no operation logs generated")
	} else {
		t.Log("operation log:\n" + buf.String())
	}
}
