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

package console

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/Aurorachain/go-intcode/core/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hookedPrompter implements UserPrompter to simulate use input via channels.
type hookedPrompter struct {
	lines   []string
	history []string
	prompts []string
}

func (p *hookedPrompter) PromptInput(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func (p *hookedPrompter) PromptConfirm(prompt string) (bool, error) {
	return false, errors.New("not implemented")
}

func (p *hookedPrompter) SetHistory(history []string) { p.history = history }

func (p *hookedPrompter) AppendHistory(line string) { p.history = append(p.history, line) }

func (p *hookedPrompter) ClearHistory() { p.history = nil }

func TestConsoleIntegers(t *testing.T) {
	var (
		printer  bytes.Buffer
		prompter = &hookedPrompter{lines: []string{"abc", " 21 ", "-4"}}
		c        = New(Config{Prompter: prompter, Printer: &printer})
	)
	m := vm.New([]int64{3, 0, 3, 1, 1, 0, 1, 0, 4, 0, 99}, vm.Config{})
	require.NoError(t, m.Run(c.Input, c.Output))

	assert.Equal(t, "Invalid integer \"abc\"\n17\n", printer.String())
	assert.Equal(t, []string{"abc", " 21 ", "-4"}, prompter.history)
	assert.Equal(t, DefaultPrompt, prompter.prompts[0])
}

func TestConsoleASCII(t *testing.T) {
	var (
		printer  bytes.Buffer
		prompter = &hookedPrompter{lines: []string{"hi"}}
		c        = New(Config{Prompter: prompter, Printer: &printer, ASCII: true})
	)
	// Echo three characters, then print a large value.
	m := vm.New([]int64{3, 100, 4, 100, 3, 100, 4, 100, 3, 100, 4, 100, 104, 1000, 99}, vm.Config{})
	require.NoError(t, m.Run(c.Input, c.Output))
	assert.Equal(t, "hi\n1000\n", printer.String())
}

func TestConsoleEOF(t *testing.T) {
	c := New(Config{Prompter: &hookedPrompter{}, Printer: new(bytes.Buffer)})
	m := vm.New([]int64{3, 0, 99}, vm.Config{})
	err := m.Run(c.Input, c.Output)
	assert.True(t, errors.Is(err, vm.ErrInputExhausted))
}
