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

package params

const (
	// DefaultMaxLayerDepth is the longest copy-on-write layer chain a memory
	// handle keeps before collapsing it into a single layer.
	DefaultMaxLayerDepth = 32

	MinLayerDepth = 1 // A chain always has room for the layer being written.

	// MaxParams is the widest instruction in the instruction set.
	MaxParams = 3

	ProgramCacheSize = 16 // Parsed program images kept by a loader.

	MaxSliceCells = 1 << 20 // Widest range a single memory slice may read.
)
