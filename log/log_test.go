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

package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevelFiltering(t *testing.T) {
	buf := new(bytes.Buffer)
	SetOutput(buf)
	defer SetOutput(os.Stderr)
	defer SetLevel("info")

	SetLevel("warn")
	Info("hidden line")
	Warnf("visible %s", "line")
	LInfo("hidden structured")
	LWarn("machine halted", zap.Int64("pc", 8))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible line")
	assert.Contains(t, out, "machine halted")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, `"pc"`)
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	defer SetLevel("info")
	SetLevel("chatty")
	assert.Equal(t, zapcore.InfoLevel, LogLevel)
	assert.True(t, Enabled(zapcore.InfoLevel))
	assert.False(t, Enabled(zapcore.DebugLevel))

	SetLevel("debug")
	assert.True(t, Enabled(zapcore.DebugLevel))
}
