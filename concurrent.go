// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rs274parser

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/kirberich/rs274-parser/dialect"
	"github.com/kirberich/rs274-parser/types"
)

// ParseConcurrently parses each of sources independently and concurrently,
// one fresh Parser (and so one fresh machine.State) per source: a semaphore
// bounds how many sources are parsed at once, and an errgroup collects the
// first error across all of them. Independent MachineStates share nothing,
// so this needs no locking beyond the semaphore that limits parallelism.
//
// maxParallelism caps the number of sources parsed at once; a value <= 0
// defaults to min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)).
//
// Results are returned in the same order as sources. opts is used as a
// template: every source gets its own Parser built from an identical copy
// of opts, so all of them start from the same seed.
func ParseConcurrently(ctx context.Context, d dialect.Dialect, sources []string, opts ConstructionOptions, maxParallelism int) ([][]types.Line, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	par := maxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}

	sem := semaphore.NewWeighted(int64(par))
	g, gctx := errgroup.WithContext(ctx)
	results := make([][]types.Line, len(sources))

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			p := New(d, opts)
			lines, err := p.Parse(src)
			if err != nil {
				return err
			}
			results[i] = lines
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
