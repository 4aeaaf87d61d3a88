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

// Package program reads and writes Intcode program images.
package program

import (
	"strconv"
	"strings"

	"github.com/Aurorachain/go-intcode/common/math"
	"github.com/pkg/errors"
)

var errEmptyProgram = errors.New("empty program")

// Parse decodes a comma separated list of integers. Whitespace around the
// list and around each field is ignored.
func Parse(text string) ([]int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errEmptyProgram
	}
	fields := strings.Split(text, ",")
	prog := make([]int64, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, errors.Errorf("empty field %d", i)
		}
		v, ok := math.ParseInt64(f)
		if !ok {
			return nil, errors.Errorf("invalid integer %q in field %d", f, i)
		}
		prog[i] = v
	}
	return prog, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) []int64 {
	prog, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return prog
}

// Format encodes prog in the form accepted by Parse.
func Format(prog []int64) string {
	var b strings.Builder
	for i, v := range prog {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}
