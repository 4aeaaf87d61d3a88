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
	"fmt"
	"io"

	"github.com/Aurorachain/go-intcode/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Tracer is used to collect execution traces from a Machine. CaptureState
// is called once for every instruction that ran or failed, with the relative
// base it started from. An input instruction suspended on an empty queue is
// not reported. CaptureFault is called when a step fails.
//
// Note that the machine passed in is live: a tracer must not retain it or
// mutate it.
type Tracer interface {
	CaptureState(m *Machine, pc, base int64, in Instruction, args []int64) error
	CaptureFault(m *Machine, pc int64, op OpCode, err error) error
}

// LogConfig are the configuration options for structured logger the Machine
type LogConfig struct {
	Limit int // maximum length of output, but zero means unlimited
}

// StructLog is emitted to the Machine each cycle and lists information about
// the current internal state prior to the execution of the statement.
type StructLog struct {
	Pc           int64   `json:"pc"`
	Op           OpCode  `json:"op"`
	Word         int64   `json:"word"`
	Args         []int64 `json:"args"`
	RelativeBase int64   `json:"relativeBase"`
	Step         uint64  `json:"step"`
	Err          error   `json:"-"`
}

// OpName formats the operand name in a human-readable format.
func (s *StructLog) OpName() string {
	return s.Op.String()
}

// ErrorString formats the log's error as a string.
func (s *StructLog) ErrorString() string {
	if s.Err != nil {
		return s.Err.Error()
	}
	return ""
}

// StructLogger is a Machine state logger and implements Tracer.
//
// StructLogger can capture state based on the given Log configuration and also
// keeps a track record of executed instructions which can be used for
// debugging.
type StructLogger struct {
	cfg LogConfig

	logs []StructLog
	err  error
}

// NewStructLogger returns a new logger
func NewStructLogger(cfg *LogConfig) *StructLogger {
	logger := &StructLogger{}
	if cfg != nil {
		logger.cfg = *cfg
	}
	return logger
}

// CaptureState logs a new structured log message and pushes it out to the
// environment.
func (l *StructLogger) CaptureState(m *Machine, pc, base int64, in Instruction, args []int64) error {
	if l.cfg.Limit != 0 && l.cfg.Limit <= len(l.logs) {
		return ErrTraceLimitReached
	}
	l.logs = append(l.logs, StructLog{
		Pc:           pc,
		Op:           in.Op,
		Word:         in.Word,
		Args:         append([]int64(nil), args...),
		RelativeBase: base,
		Step:         m.steps,
	})
	return nil
}

// CaptureFault records the error against the last captured state, or as a
// new entry if the fault happened before the instruction was decoded.
func (l *StructLogger) CaptureFault(m *Machine, pc int64, op OpCode, err error) error {
	l.err = err
	if n := len(l.logs); n > 0 && l.logs[n-1].Pc == pc && l.logs[n-1].Err == nil {
		l.logs[n-1].Err = err
		return nil
	}
	l.logs = append(l.logs, StructLog{Pc: pc, Op: op, RelativeBase: m.base, Step: m.steps, Err: err})
	return nil
}

// StructLogs returns the captured log entries.
func (l *StructLogger) StructLogs() []StructLog { return l.logs }

// Error returns the VM error captured by the trace.
func (l *StructLogger) Error() error { return l.err }

// WriteTrace writes a formatted trace to the given writer
func WriteTrace(writer io.Writer, logs []StructLog) {
	for _, l := range logs {
		fmt.Fprintf(writer, "%-5spc=%08d base=%d step=%d", l.OpName(), l.Pc, l.RelativeBase, l.Step)
		if len(l.Args) > 0 {
			fmt.Fprintf(writer, " args=%v", l.Args)
		}
		if l.Err != nil {
			fmt.Fprintf(writer, " ERROR: %v", l.Err)
		}
		fmt.Fprintln(writer)
	}
}

// LogTracer writes every step to the process logger at debug level.
type LogTracer struct{}

func (LogTracer) CaptureState(m *Machine, pc, base int64, in Instruction, args []int64) error {
	if !log.Enabled(zapcore.DebugLevel) {
		return nil
	}
	log.LDebug("Step",
		zap.Int64("pc", pc),
		zap.Stringer("op", in.Op),
		zap.Int64s("args", args),
		zap.Int64("base", base),
	)
	return nil
}

func (LogTracer) CaptureFault(m *Machine, pc int64, op OpCode, err error) error {
	log.LWarn("Fault", zap.Int64("pc", pc), zap.Stringer("op", op), zap.Error(err))
	return nil
}
