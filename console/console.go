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

// Package console connects a running machine to an interactive terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/Aurorachain/go-intcode/common/math"
	"github.com/Aurorachain/go-intcode/core/vm"
	"github.com/mattn/go-colorable"
	"github.com/peterh/liner"
)

// DefaultPrompt is the default prompt line prefix to use for user input querying.
const DefaultPrompt = "> "

// Config is the collection of configurations to fine tune the behavior of the
// console.
type Config struct {
	Prompt   string       // Input prompt prefix string (defaults to DefaultPrompt)
	Prompter UserPrompter // Input prompter to allow interactive user feedback (defaults to Stdin)
	Printer  io.Writer    // Output writer to serialize any display strings to (defaults to os.Stdout)
	ASCII    bool         // Exchange text instead of integers
}

// Console feeds a machine with values typed by the user and prints what the
// machine outputs. In ASCII mode every entered line is sent as character
// codes followed by a newline, and outputs below 128 are printed as
// characters.
type Console struct {
	prompt   string
	prompter UserPrompter
	printer  io.Writer
	ascii    bool

	buffered []int64 // characters of the current line not yet consumed
	column   int     // characters printed since the last newline
}

// New initializes a console for the given configuration.
func New(config Config) *Console {
	if config.Prompter == nil {
		config.Prompter = Stdin
	}
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
	if config.Printer == nil {
		config.Printer = colorable.NewColorableStdout()
	}
	return &Console{
		prompt:   config.Prompt,
		prompter: config.Prompter,
		printer:  config.Printer,
		ascii:    config.ASCII,
	}
}

// Input is a vm.InputFunc. End of input or an aborted prompt is reported as
// vm.ErrInputExhausted.
func (c *Console) Input() (int64, error) {
	if c.ascii {
		return c.nextChar()
	}
	for {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		if v, ok := math.ParseInt64(line); ok && strings.TrimSpace(line) != "" {
			return v, nil
		}
		fmt.Fprintf(c.printer, "Invalid integer %q\n", line)
	}
}

func (c *Console) nextChar() (int64, error) {
	if len(c.buffered) == 0 {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		for _, r := range line {
			c.buffered = append(c.buffered, int64(r))
		}
		c.buffered = append(c.buffered, '\n')
	}
	v := c.buffered[0]
	c.buffered = c.buffered[1:]
	return v, nil
}

func (c *Console) readLine() (string, error) {
	prompt := c.prompt
	if c.column > 0 {
		// The machine printed a partial line, which serves as the prompt.
		prompt = ""
	}
	line, err := c.prompter.PromptInput(prompt)
	if err == io.EOF || err == liner.ErrPromptAborted {
		return "", vm.ErrInputExhausted
	}
	if err != nil {
		return "", err
	}
	c.column = 0
	if strings.TrimSpace(line) != "" {
		c.prompter.AppendHistory(line)
	}
	return line, nil
}

// Output is a vm.OutputFunc.
func (c *Console) Output(v int64) error {
	if c.ascii && v >= 0 && v < 128 {
		if v == '\n' {
			c.column = 0
		} else {
			c.column++
		}
		_, err := fmt.Fprintf(c.printer, "%c", rune(v))
		return err
	}
	if c.column > 0 {
		fmt.Fprintln(c.printer)
		c.column = 0
	}
	_, err := fmt.Fprintln(c.printer, v)
	return err
}
