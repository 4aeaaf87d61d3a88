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

// Package search explores the futures of a machine by forking it once per
// candidate input.
package search

import (
	"github.com/Aurorachain/go-intcode/core/vm"
	"github.com/Aurorachain/go-intcode/log"
	"gopkg.in/fatih/set.v0"
	"gopkg.in/karalabe/cookiejar.v2/collections/prque"
)

// Move is a candidate input to try from a node.
type Move struct {
	Input int64
	Key   interface{} // identity of the state the move leads to
	Cost  int         // added to the parent's cost, zero counts as one
}

// Node is an explored state. Machine is released once the node has been
// expanded or the search ends, so only the goal carries a usable machine
// after Search returns. The caller releases it.
type Node struct {
	Machine *vm.Machine
	Key     interface{}
	Parent  *Node
	Input   int64 // input that led here from Parent
	Output  int64 // output the machine answered with
	Cost    int
}

// Path returns the inputs leading from the root to n.
func (n *Node) Path() []int64 {
	var path []int64
	for ; n.Parent != nil; n = n.Parent {
		path = append(path, n.Input)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Verdict classifies the answer a forked machine gave to a move.
type Verdict int

const (
	Reject Verdict = iota // dead end, the state is not explored further
	Accept                // new state joins the frontier
	Goal                  // new state ends the search
)

// Expander lists the moves to try from a node.
type Expander func(n *Node) []Move

// Judge classifies the output a move produced.
type Judge func(parent *Node, move Move, output int64) Verdict

// Result summarises a search. Goal is nil if the frontier ran dry. Last is
// the final node expanded, which for unit costs is the farthest reachable
// state.
type Result struct {
	Goal     *Node
	Last     *Node
	Expanded int
}

// Search runs a cheapest-first search from root. Every move clones the
// parent's machine and performs one Exchange with the move's input. States
// are identified by key and visited at most once. root itself is never
// modified or released.
func Search(root *vm.Machine, rootKey interface{}, expand Expander, judge Judge) (Result, error) {
	var (
		res      Result
		visited  = set.NewNonTS()
		frontier = prque.New()
	)
	start := &Node{Machine: root.Clone(), Key: rootKey}
	visited.Add(rootKey)
	frontier.Push(start, 0)

	for !frontier.Empty() {
		n := frontier.PopItem().(*Node)
		res.Last = n
		res.Expanded++

		for _, move := range expand(n) {
			if visited.Has(move.Key) {
				continue
			}
			visited.Add(move.Key)

			machine := n.Machine.Clone()
			out, ok, err := machine.Exchange(move.Input)
			if err != nil {
				machine.Release()
				releaseAll(n, frontier)
				return res, err
			}
			if !ok {
				machine.Release()
				continue
			}
			cost := move.Cost
			if cost == 0 {
				cost = 1
			}
			child := &Node{
				Machine: machine,
				Key:     move.Key,
				Parent:  n,
				Input:   move.Input,
				Output:  out,
				Cost:    n.Cost + cost,
			}
			switch judge(n, move, out) {
			case Reject:
				machine.Release()
			case Accept:
				frontier.Push(child, -float32(child.Cost))
			case Goal:
				log.Debugf("Search reached goal at cost %d after %d expansions", child.Cost, res.Expanded)
				res.Goal = child
				releaseAll(n, frontier)
				return res, nil
			}
		}
		n.Machine.Release()
		n.Machine = nil
	}
	log.Debugf("Search exhausted after %d expansions", res.Expanded)
	return res, nil
}

// releaseAll drops the machines of the node being expanded and of every node
// left on the frontier.
func releaseAll(n *Node, frontier *prque.Prque) {
	n.Machine.Release()
	n.Machine = nil
	for !frontier.Empty() {
		node := frontier.PopItem().(*Node)
		node.Machine.Release()
		node.Machine = nil
	}
}
