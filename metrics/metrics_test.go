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

package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
)

func TestDisabledReturnsStubs(t *testing.T) {
	if Enabled {
		t.Skip("metrics enabled by command line")
	}
	assert.IsType(t, new(metrics.NilCounter), NewCounter("test/counter"))
	assert.IsType(t, new(metrics.NilMeter), NewMeter("test/meter"))
	assert.IsType(t, new(metrics.NilTimer), NewTimer("test/timer"))

	buf := new(bytes.Buffer)
	WriteOnce(buf)
	assert.Zero(t, buf.Len())

	// Returns immediately while disabled.
	CollectProcessMetrics(time.Millisecond, nil)
}

func TestEnabledRegistersMetrics(t *testing.T) {
	prev := Enabled
	Enabled = true
	defer func() { Enabled = prev }()

	c := NewCounter("test/enabled/counter")
	c.Inc(3)
	assert.Equal(t, int64(3), NewCounter("test/enabled/counter").Count())

	buf := new(bytes.Buffer)
	WriteOnce(buf)
	assert.Contains(t, buf.String(), "test/enabled/counter")
}
