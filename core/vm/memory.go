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
	"sort"
	"sync/atomic"

	"github.com/Aurorachain/go-intcode/params"
)

// layer is one sparse diff in a copy-on-write chain. A layer with more than
// one reference is frozen: it is never written again and new writes land in
// a fresh child layer instead.
type layer struct {
	cells  map[int64]int64
	parent *layer
	refs   int32
	depth  int   // layers in the chain ending here, including this one
	high   int64 // highest address written in this chain, -1 if none
}

func newLayer(parent *layer) *layer {
	l := &layer{cells: make(map[int64]int64), parent: parent, refs: 1, depth: 1, high: -1}
	if parent != nil {
		l.depth = parent.depth + 1
		l.high = parent.high
	}
	return l
}

func (l *layer) retain()        { atomic.AddInt32(&l.refs, 1) }
func (l *layer) release() int32 { return atomic.AddInt32(&l.refs, -1) }
func (l *layer) shared() bool   { return atomic.LoadInt32(&l.refs) > 1 }

// releaseChain drops one reference to l, cascading to the parent of every
// layer whose count reaches zero.
func releaseChain(l *layer) {
	for l != nil && l.release() == 0 {
		l = l.parent
	}
}

// Memory is a logically infinite array of integers. Cells beyond the initial
// image read as zero. Clones share every existing layer and the image; the
// first write on either side after a clone materialises a new layer for the
// writer only.
//
// A Memory handle is not safe for concurrent use, but distinct handles that
// share layers may be used from different goroutines.
type Memory struct {
	image    []int64
	top      *layer
	maxDepth int
}

// NewMemory returns a memory whose low addresses hold a copy of image.
// maxDepth bounds the layer chain length; values below one select
// params.DefaultMaxLayerDepth.
func NewMemory(image []int64, maxDepth int) *Memory {
	if maxDepth < params.MinLayerDepth {
		maxDepth = params.DefaultMaxLayerDepth
	}
	return &Memory{
		image:    append([]int64(nil), image...),
		maxDepth: maxDepth,
	}
}

// Get returns the value stored at addr.
func (m *Memory) Get(addr int64) (int64, error) {
	if addr < 0 {
		return 0, &ExecError{Err: ErrAddress, Value: addr}
	}
	for l := m.top; l != nil; l = l.parent {
		if v, ok := l.cells[addr]; ok {
			return v, nil
		}
	}
	if addr < int64(len(m.image)) {
		return m.image[addr], nil
	}
	return 0, nil
}

// Set stores value at addr, materialising a private layer first if the
// current one is shared.
func (m *Memory) Set(addr, value int64) error {
	if addr < 0 {
		return &ExecError{Err: ErrAddress, Value: addr}
	}
	if m.top == nil || m.top.shared() {
		m.materialize()
	}
	m.top.cells[addr] = value
	if addr > m.top.high {
		m.top.high = addr
	}
	return nil
}

func (m *Memory) materialize() {
	old := m.top
	switch {
	case old == nil:
		m.top = newLayer(nil)
	case old.depth >= m.maxDepth:
		m.top = flatten(old)
		releaseChain(old)
		flattenCounter.Inc(1)
	default:
		// The handle's reference to old passes to the new layer.
		m.top = newLayer(old)
	}
	forkCounter.Inc(1)
}

// flatten collapses the chain ending at top into one unshared layer.
func flatten(top *layer) *layer {
	var (
		chain = make([]*layer, 0, top.depth)
		size  int
	)
	for l := top; l != nil; l = l.parent {
		chain = append(chain, l)
		size += len(l.cells)
	}
	fresh := &layer{cells: make(map[int64]int64, size), refs: 1, depth: 1, high: top.high}
	for i := len(chain) - 1; i >= 0; i-- {
		for addr, v := range chain[i].cells {
			fresh.cells[addr] = v
		}
	}
	return fresh
}

// Clone returns a handle sharing all state with m. It runs in constant time.
func (m *Memory) Clone() *Memory {
	if m.top != nil {
		m.top.retain()
	}
	return &Memory{image: m.image, top: m.top, maxDepth: m.maxDepth}
}

// Release drops the handle's reference to its layers. Sibling clones are
// unaffected. m must not be used afterwards.
func (m *Memory) Release() {
	releaseChain(m.top)
	m.top = nil
	m.image = nil
}

// Slice returns the values of addresses [lo, hi).
func (m *Memory) Slice(lo, hi int64) ([]int64, error) {
	if lo < 0 {
		return nil, &ExecError{Err: ErrAddress, Value: lo}
	}
	if hi < lo {
		return nil, fmt.Errorf("invalid memory range [%d, %d)", lo, hi)
	}
	if hi-lo > params.MaxSliceCells {
		return nil, fmt.Errorf("memory range [%d, %d) exceeds %d cells", lo, hi, params.MaxSliceCells)
	}
	out := make([]int64, 0, hi-lo)
	for addr := lo; addr < hi; addr++ {
		v, _ := m.Get(addr)
		out = append(out, v)
	}
	return out, nil
}

// LenHint reports one past the highest address that holds a value, either
// from the image or from a write. It is meant for printing only.
func (m *Memory) LenHint() int64 {
	n := int64(len(m.image))
	if m.top != nil && m.top.high >= n {
		n = m.top.high + 1
	}
	return n
}

// Depth returns the number of layers in the handle's chain.
func (m *Memory) Depth() int {
	if m.top == nil {
		return 0
	}
	return m.top.depth
}

// rows returns the sorted start addresses of the ten cell rows that hold
// image cells or written cells.
func (m *Memory) rows() []int64 {
	seen := make(map[int64]struct{})
	for row := int64(0); row < int64(len(m.image)); row += 10 {
		seen[row] = struct{}{}
	}
	for l := m.top; l != nil; l = l.parent {
		for addr := range l.cells {
			seen[addr-addr%10] = struct{}{}
		}
	}
	rows := make([]int64, 0, len(seen))
	for row := range seen {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i] < rows[j] })
	return rows
}

// Dump writes the image and every written cell to w, ten per row. Runs of
// rows that were never written are summarised on one line.
func (m *Memory) Dump(w io.Writer) {
	n := m.LenHint()
	fmt.Fprintf(w, "### mem %d cells, %d layers ###\n", n, m.Depth())
	if n == 0 {
		fmt.Fprintln(w, "-- empty --")
	}
	next := int64(0)
	for _, row := range m.rows() {
		if row > next {
			fmt.Fprintf(w, "... %d zero cells ...\n", row-next)
		}
		end := row + 10
		if end > n {
			end = n
		}
		cells, _ := m.Slice(row, end)
		fmt.Fprintf(w, "%06d: %v\n", row, cells)
		next = row + 10
	}
	fmt.Fprintln(w, "####################")
}
