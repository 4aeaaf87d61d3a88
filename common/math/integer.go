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

// Package math provides integer limits and overflow-checked arithmetic for the
// signed cells of machine memory.
package math

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MaxInt32 = 1<<31 - 1
	MinInt32 = -1 << 31
	MaxInt64 = 1<<63 - 1
	MinInt64 = -1 << 63
)

// Decimal64 marshals as a plain decimal string and accepts either decimal or
// 0x-prefixed hex when unmarshalling.
type Decimal64 int64

func (i *Decimal64) UnmarshalText(input []byte) error {
	v, ok := ParseInt64(string(input))
	if !ok {
		return fmt.Errorf("invalid hex or decimal integer %q", input)
	}
	*i = Decimal64(v)
	return nil
}

func (i Decimal64) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(i), 10)), nil
}

// ParseInt64 parses s as a signed integer in decimal or hex syntax. Leading
// and trailing whitespace is ignored. The empty string parses as zero.
func ParseInt64(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	neg := false
	body := s
	switch body[0] {
	case '-':
		neg, body = true, body[1:]
	case '+':
		body = body[1:]
	}
	if len(body) >= 2 && (body[:2] == "0x" || body[:2] == "0X") {
		u, err := strconv.ParseUint(body[2:], 16, 64)
		if err != nil {
			return 0, false
		}
		if neg {
			if u > 1<<63 {
				return 0, false
			}
			return int64(-u), true
		}
		if u > MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	v, err := strconv.ParseInt(s, 10, 64)
	return v, err == nil
}

func MustParseInt64(s string) int64 {
	v, ok := ParseInt64(s)
	if !ok {
		panic("invalid signed 64 bit integer: " + s)
	}
	return v
}

// SafeAdd returns x+y and whether the addition overflowed.
func SafeAdd(x, y int64) (int64, bool) {
	sum := x + y
	return sum, (x > 0 && y > 0 && sum < 0) || (x < 0 && y < 0 && sum >= 0)
}

// SafeMul returns x*y and whether the multiplication overflowed.
func SafeMul(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, false
	}
	if (x == -1 && y == MinInt64) || (y == -1 && x == MinInt64) {
		return MinInt64, true
	}
	p := x * y
	return p, p/y != x
}
