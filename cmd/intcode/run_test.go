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

package main

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/Aurorachain/go-intcode/internal/cmdtest"
	"github.com/docker/docker/pkg/reexec"
)

type testintcode struct {
	*cmdtest.TestCmd
}

func init() {
	// Run the app if we've been exec'd as "intcode-test" in runIntcode.
	reexec.Register("intcode-test", func() {
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	})
}

func TestMain(m *testing.M) {
	// check if we have been reexec'd
	if reexec.Init() {
		return
	}
	os.Exit(m.Run())
}

// spawns intcode with the given command line args.
func runIntcode(t *testing.T, args ...string) *testintcode {
	tt := &testintcode{}
	tt.TestCmd = cmdtest.NewTestCmd(t)
	tt.Run("intcode-test", args...)
	return tt
}

func TestRunWithInput(t *testing.T) {
	intcode := runIntcode(t, "run", "--input", "42", "testdata/echo.txt")
	intcode.Expect("42\n")
	intcode.ExpectExit()
}

func TestRunASCII(t *testing.T) {
	intcode := runIntcode(t, "run", "--ascii", "testdata/hello.txt")
	intcode.Expect("Hi\n")
	intcode.ExpectExit()
}

func TestRunDump(t *testing.T) {
	intcode := runIntcode(t, "--maxdepth", "4", "run", "--dump", "testdata/sum.txt")
	intcode.ExpectRegexp(`(?s)Halted: \(bool\) true.*000000: \[3500 9 10 70 2 3 11 0 99 30\]`)
	intcode.WaitExit()
	if code := intcode.ExitCode(); code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, intcode.StderrText())
	}
}

func TestRunDumpSparse(t *testing.T) {
	intcode := runIntcode(t, "run", "--dump", "testdata/sparse.txt")
	intcode.ExpectRegexp(`(?s)000000: \[1101 1 1 1000000000000 99 0 0 0 0 0\]\n\.\.\. 999999999990 zero cells \.\.\.\n1000000000000: \[2\]`)
	intcode.WaitExit()
	if code := intcode.ExitCode(); code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, intcode.StderrText())
	}
}

func TestRunLogsElapsed(t *testing.T) {
	intcode := runIntcode(t, "--verbosity", "info", "run", "testdata/sum.txt")
	intcode.WaitExit()
	if stderr := intcode.StderrText(); !strings.Contains(stderr, "Program finished") || !strings.Contains(stderr, `"elapsed"`) {
		t.Errorf("missing run timing in stderr:\n%s", stderr)
	}
}

func TestRunInteractive(t *testing.T) {
	intcode := runIntcode(t, "run", "--interactive", "testdata/echo.txt")
	intcode.InputLine("7")
	intcode.ExpectRegexp(`7\n`)
	intcode.CloseStdin()
	intcode.WaitExit()
}

func TestRunFault(t *testing.T) {
	intcode := runIntcode(t, "run", "testdata/bad.txt")
	intcode.ExpectExit()
	if code := intcode.ExitCode(); code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	if stderr := intcode.StderrText(); !strings.Contains(stderr, "unrecognised opcode 98 at pc 0") {
		t.Errorf("unexpected stderr:\n%s", stderr)
	}
}

func TestRunStarved(t *testing.T) {
	intcode := runIntcode(t, "run", "testdata/echo.txt")
	intcode.ExpectExit()
	if stderr := intcode.StderrText(); !strings.Contains(stderr, "input exhausted") {
		t.Errorf("unexpected stderr:\n%s", stderr)
	}
}

func TestRunMissingFile(t *testing.T) {
	intcode := runIntcode(t, "run")
	intcode.ExpectExit()
	if stderr := intcode.StderrText(); !strings.Contains(stderr, "program file required") {
		t.Errorf("unexpected stderr:\n%s", stderr)
	}
}

func TestChainPipeline(t *testing.T) {
	intcode := runIntcode(t, "chain", "--settings", "4,3,2,1,0", "testdata/amp.txt")
	intcode.Expect("43210\n")
	intcode.ExpectExit()
}

func TestChainConfigFile(t *testing.T) {
	intcode := runIntcode(t, "--config", "testdata/chain.toml", "chain", "testdata/amp.txt")
	intcode.Expect("43210\n")
	intcode.ExpectExit()
}

func TestChainLoop(t *testing.T) {
	intcode := runIntcode(t, "chain", "--loop", "--settings", "9,8,7,6,5", "testdata/amp_loop.txt")
	intcode.Expect("139629729\n")
	intcode.ExpectExit()
}

func TestDisasm(t *testing.T) {
	intcode := runIntcode(t, "disasm", "testdata/echo.txt")
	intcode.Expect(`
000000  IN    [0]
000002  OUT   [0]
000004  HALT
`)
	intcode.ExpectExit()
}

func TestDumpConfig(t *testing.T) {
	intcode := runIntcode(t, "--config", "testdata/chain.toml", "dumpconfig", "--steplimit", "1000")
	intcode.ExpectRegexp(`(?s)MaxLayerDepth = 4.*StepLimit = 1000`)
	intcode.WaitExit()
}

func TestVersion(t *testing.T) {
	intcode := runIntcode(t, "version")
	intcode.ExpectRegexp(`Intcode\nVersion: \d+\.\d+\.\d+`)
	intcode.WaitExit()
}
