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

package utils

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/Aurorachain/go-intcode/core/vm"
	"github.com/Aurorachain/go-intcode/internal/debug"
	"github.com/Aurorachain/go-intcode/log"
)

// Fatalf formats a message to standard error and exits the program.
// The message is also printed to standard output if standard error
// is redirected to a different file.
func Fatalf(format string, args ...interface{}) {
	w := io.MultiWriter(os.Stdout, os.Stderr)
	if runtime.GOOS == "windows" {
		// The SameFile check below doesn't work on Windows.
		// stdout is unlikely to get redirected though, so just print there.
		w = os.Stdout
	} else {
		outf, _ := os.Stdout.Stat()
		errf, _ := os.Stderr.Stat()
		if outf != nil && errf != nil && os.SameFile(outf, errf) {
			w = os.Stderr
		}
	}
	fmt.Fprintf(w, "Fatal: "+format+"\n", args...)
	os.Exit(1)
}

// HandleInterrupt aborts m on the first interrupt. Ten more interrupts while
// the program is still winding down panic with all goroutine stacks. The
// returned function stops the handler.
func HandleInterrupt(m *vm.Machine) func() {
	var (
		sigc = make(chan os.Signal, 1)
		done = make(chan struct{})
	)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		select {
		case <-sigc:
		case <-done:
			return
		}
		log.Info("Got interrupt, aborting program...")
		m.Abort()
		for i := 10; i > 0; i-- {
			select {
			case <-sigc:
			case <-done:
				return
			}
			if i > 1 {
				log.Warnf("Already aborting, interrupt %d more times to panic.", i-1)
			}
		}
		debug.Exit()
		debug.LoudPanic("boom")
	}()
	return func() {
		signal.Stop(sigc)
		close(done)
	}
}
