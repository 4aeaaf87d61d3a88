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

/*
Package vm implements the Intcode virtual machine.

A Machine holds a program counter, a relative base register and a handle into
a persistent memory store. Memory is a chain of sparse copy-on-write layers
over the immutable program image, so Clone is constant time no matter how much
memory a program has touched; the first write after a clone allocates one new
layer for the writer and leaves every sibling untouched. Chains are flattened
once they grow past Config.MaxLayerDepth to keep reads bounded.

Instructions are dispatched through a table indexed by opcode. Next executes a
single instruction against the pending input queue and returns a tagged Event
(Running, NeedsInput, Output, Halted); Step does the same with caller supplied
callbacks. Run, Exchange, Feed and Resume are the drivers built on top of them
and differ only in how many I/O events they allow before returning.

Every fatal condition is returned as an *ExecError carrying the program
counter, the instruction word and one of the package's sentinel errors.
*/
package vm
