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
	"sync/atomic"

	"github.com/Aurorachain/go-intcode/metrics"
)

var (
	cloneCounter   = metrics.NewCounter("vm/clones")
	forkCounter    = metrics.NewCounter("vm/memory/forks")
	flattenCounter = metrics.NewCounter("vm/memory/flattens")
	haltCounter    = metrics.NewCounter("vm/halts")
	faultCounter   = metrics.NewCounter("vm/faults")
	stepMeter      = metrics.NewMeter("vm/steps")
)

// Config are the configuration options for the Machine
type Config struct {
	// Debug enabled debugging Machine options
	Debug bool
	// Tracer is the op code logger
	Tracer Tracer
	// MaxLayerDepth bounds the copy-on-write layer chain before it is
	// flattened. Zero selects the default.
	MaxLayerDepth int
}

// InputFunc supplies the value for an input instruction.
type InputFunc func() (int64, error)

// OutputFunc receives the value of an output instruction.
type OutputFunc func(int64) error

// Status is the outcome of a single step.
type Status int

const (
	Running    Status = iota // an instruction executed, more may follow
	NeedsInput               // the input queue is empty; nothing executed
	Output                   // an output instruction executed
	Halted                   // the machine has halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case NeedsInput:
		return "needs-input"
	case Output:
		return "output"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// Event is the tagged result of Next. Value is set for Output only.
type Event struct {
	Status Status
	Value  int64
}

// errSuspend is returned by the pending queue when it runs dry.
var errSuspend = errors.New("suspend")

// callbackError marks an error raised by an I/O callback.
type callbackError struct{ err error }

func (e callbackError) Error() string { return e.err.Error() }

// Machine is the execution state of one Intcode program: a memory handle, the
// program counter and the relative base register.
//
// A Machine must not be used from several goroutines at once. Clones are
// independent and may run on other goroutines.
type Machine struct {
	mem     *Memory
	pc      int64
	base    int64
	halted  bool
	steps   uint64
	pending []int64
	cfg     Config

	abort int32 // set by Abort, checked before every step
}

// New returns a machine whose memory starts as a copy of program.
func New(program []int64, cfg Config) *Machine {
	if cfg.Debug && cfg.Tracer == nil {
		cfg.Tracer = LogTracer{}
	}
	return &Machine{
		mem: NewMemory(program, cfg.MaxLayerDepth),
		cfg: cfg,
	}
}

// Clone returns an independent machine in the same state. The clone shares
// memory with m until either side writes.
func (m *Machine) Clone() *Machine {
	cloneCounter.Inc(1)
	return &Machine{
		mem:     m.mem.Clone(),
		pc:      m.pc,
		base:    m.base,
		halted:  m.halted,
		steps:   m.steps,
		pending: append([]int64(nil), m.pending...),
		cfg:     m.cfg,
	}
}

// Release drops the machine's memory references. The machine must not be
// used afterwards.
func (m *Machine) Release() {
	m.mem.Release()
	m.pending = nil
}

// Abort makes every further step fail with ErrAborted. It is safe to call
// from any goroutine.
func (m *Machine) Abort() {
	atomic.StoreInt32(&m.abort, 1)
}

func (m *Machine) PC() int64 { return m.pc }

func (m *Machine) RelativeBase() int64 { return m.base }

func (m *Machine) Halted() bool { return m.halted }

// Steps returns the number of instructions executed so far.
func (m *Machine) Steps() uint64 { return m.steps }

func (m *Machine) Memory() *Memory { return m.mem }

func (m *Machine) Get(addr int64) (int64, error) { return m.mem.Get(addr) }

func (m *Machine) Set(addr, v int64) error { return m.mem.Set(addr, v) }

// Push queues input values for Next and the queue based drivers.
func (m *Machine) Push(values ...int64) {
	m.pending = append(m.pending, values...)
}

// Pending returns the number of queued input values.
func (m *Machine) Pending() int {
	return len(m.pending)
}

func (m *Machine) popInput() (int64, error) {
	if len(m.pending) == 0 {
		return 0, errSuspend
	}
	v := m.pending[0]
	m.pending = m.pending[1:]
	return v, nil
}

// State is a point in time summary of a machine.
type State struct {
	PC           int64
	RelativeBase int64
	Halted       bool
	Steps        uint64
	Pending      int
	Depth        int
	LenHint      int64
}

// State returns a snapshot of the machine registers and memory shape.
func (m *Machine) State() State {
	return State{
		PC:           m.pc,
		RelativeBase: m.base,
		Halted:       m.halted,
		Steps:        m.steps,
		Pending:      len(m.pending),
		Depth:        m.mem.Depth(),
		LenHint:      m.mem.LenHint(),
	}
}

// Next executes one instruction, taking input from the pending queue. An
// input instruction met with an empty queue is not executed and reported as
// NeedsInput; the machine can resume once values are pushed.
func (m *Machine) Next() (Event, error) {
	var ev Event
	status, err := m.step(m.popInput, func(v int64) error {
		ev.Value = v
		return nil
	})
	ev.Status = status
	return ev, err
}

// Step executes one instruction with the given callbacks. A nil input fails
// any input instruction with ErrInputExhausted and a nil output discards
// values. If a callback returns an error the instruction has no effect, the
// program counter is left on it and the error is returned inside an
// ExecError.
func (m *Machine) Step(in InputFunc, out OutputFunc) (Status, error) {
	if in == nil {
		in = noInput
	}
	if out == nil {
		out = discard
	}
	return m.step(in, out)
}

func noInput() (int64, error) { return 0, ErrInputExhausted }

func discard(int64) error { return nil }

func (m *Machine) step(input InputFunc, output OutputFunc) (Status, error) {
	if m.halted {
		return Halted, nil
	}
	pc := m.pc
	word, err := m.mem.Get(pc)
	if err != nil {
		return Running, m.fault(pc, 0, err)
	}
	if atomic.LoadInt32(&m.abort) != 0 {
		return Running, m.fault(pc, word, &ExecError{Err: ErrAborted})
	}
	in, err := Decode(word)
	if err != nil {
		return Running, m.fault(pc, word, err)
	}
	f := frame{in: in, size: in.Size(), input: input, output: output}
	n := in.NumParams()
	for i := 0; i < n; i++ {
		// pc+i+1 cannot be negative here since pc was readable.
		if f.args[i], err = m.mem.Get(pc + int64(i) + 1); err != nil {
			return Running, m.fault(pc, word, err)
		}
	}
	base := m.base
	operation := instructionSet[in.Op]
	err = operation.execute(&m.pc, m, &f)
	if cb, ok := err.(callbackError); ok && cb.err == errSuspend {
		// Nothing ran, so nothing is traced.
		return NeedsInput, nil
	}
	if m.cfg.Debug {
		m.cfg.Tracer.CaptureState(m, pc, base, in, f.args[:n])
	}
	if err != nil {
		return Running, m.fault(pc, word, err)
	}
	m.steps++
	stepMeter.Mark(1)

	switch {
	case operation.halts:
		m.halted = true
		haltCounter.Inc(1)
		return Halted, nil
	case !operation.jumps:
		m.pc += in.Size()
	}
	if operation.emits {
		return Output, nil
	}
	return Running, nil
}

// fault stamps err with the failing location and reports it to the tracer.
func (m *Machine) fault(pc, word int64, err error) error {
	var ee *ExecError
	switch e := err.(type) {
	case *ExecError:
		ee = e
	case callbackError:
		ee = &ExecError{Err: e.err}
	default:
		ee = &ExecError{Err: err}
	}
	ee.PC, ee.Word = pc, word
	faultCounter.Inc(1)
	if m.cfg.Debug {
		m.cfg.Tracer.CaptureFault(m, pc, OpCode(word%100), ee)
	}
	return ee
}
