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

package program

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/Aurorachain/go-intcode/log"
	"github.com/Aurorachain/go-intcode/params"
	"github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

type cacheKey struct {
	path    string
	modTime time.Time
	size    int64
}

// Loader reads program files, keeping recently parsed images in memory. A
// file is parsed again once its modification time or size changes.
type Loader struct {
	cache *lru.Cache
}

// NewLoader creates a loader caching up to size images. A size below one
// selects params.ProgramCacheSize.
func NewLoader(size int) *Loader {
	if size < 1 {
		size = params.ProgramCacheSize
	}
	cache, _ := lru.New(size)
	return &Loader{cache: cache}
}

// Load returns the program stored at path. The returned slice belongs to the
// caller.
func (l *Loader) Load(path string) ([]int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load program")
	}
	key := cacheKey{path: path, modTime: info.ModTime(), size: info.Size()}
	if cached, ok := l.cache.Get(key); ok {
		return copyProgram(cached.([]int64)), nil
	}
	blob, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load program")
	}
	prog, err := Parse(string(blob))
	if err != nil {
		return nil, errors.Wrapf(err, "malformed program %s", path)
	}
	log.Debugf("Loaded program %s, %d cells", path, len(prog))
	l.cache.Add(key, prog)
	return copyProgram(prog), nil
}

// Len returns the number of cached images.
func (l *Loader) Len() int {
	return l.cache.Len()
}

func copyProgram(prog []int64) []int64 {
	return append([]int64(nil), prog...)
}
