// Copyright (c) 2025 adofm
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:adofm/rainbow-crack/rainbow/table.go

// Package rainbow implements a Hellman-style rainbow table with a distinct
// reduction function per chain position. A table is generated offline from
// random heads and inverts a digest online by reconstructing the chain
// position the digest could occupy and replaying the stored chain.
package rainbow

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/adofm/rainbow-crack/prng"
	"github.com/adofm/rainbow-crack/safe"
)

// Params configures a table. Immutable after New.
type Params struct {
	Algorithm   Algorithm
	Charset     string
	MinLength   int
	MaxLength   int
	ChainLength int
	NumChains   int
}

func (p Params) check() error {
	if !p.Algorithm.valid() {
		return errors.Wrapf(ErrUnsupportedAlgorithm, "tag %d", p.Algorithm)
	}
	if len(p.Charset) == 0 {
		return errors.Wrap(ErrInvalidParameters, "empty charset")
	}
	if p.MinLength < 1 {
		return errors.Wrapf(ErrInvalidParameters, "min length %d", p.MinLength)
	}
	if p.MaxLength < p.MinLength {
		return errors.Wrapf(ErrInvalidParameters,
			"max length %d below min length %d", p.MaxLength, p.MinLength)
	}
	if p.MaxLength > math.MaxUint16 {
		return errors.Wrapf(ErrInvalidParameters, "max length %d", p.MaxLength)
	}
	if p.ChainLength < 1 {
		return errors.Wrapf(ErrInvalidParameters, "chain length %d", p.ChainLength)
	}
	if p.NumChains < 1 {
		return errors.Wrapf(ErrInvalidParameters, "number of chains %d", p.NumChains)
	}
	return nil
}

// Table owns the configuration and the tail index, drives generation and
// answers inversion queries. Lookup does not mutate the table, so a frozen
// table may serve concurrent lookups.
type Table struct {
	params  Params
	index   *tailIndex
	log     *zap.Logger
	rnd     *rand.Rand
	workers int
	audit   io.Writer
}

type Option func(*Table)

// WithLogger injects the diagnostic logger. Logging is observational only;
// nothing reads it back.
func WithLogger(log *zap.Logger) Option {
	return func(t *Table) { t.log = log }
}

// WithSource replaces the random source used to sample chain heads.
func WithSource(src rand.Source64) Option {
	return func(t *Table) { t.rnd = rand.New(src) }
}

// WithSeed fixes the random source to a deterministic stream, for
// reproducible tables.
func WithSeed(seed uint64) Option {
	return WithSource(prng.NewSeeded(seed))
}

// WithWorkers distributes chain construction over n goroutines during
// generation. Each worker owns its own substream of the table's source.
func WithWorkers(n int) Option {
	return func(t *Table) { t.workers = n }
}

// WithAudit appends one "<password> -> <tail_hex>" line per generated chain
// to w.
func WithAudit(w io.Writer) Option {
	return func(t *Table) { t.audit = w }
}

// New validates params and returns an empty table.
func New(params Params, opts ...Option) (*Table, error) {
	if err := params.check(); err != nil {
		return nil, err
	}
	t := &Table{
		params:  params,
		index:   newIndex(),
		log:     zap.NewNop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.rnd == nil {
		t.rnd = rand.New(prng.NewSeeded(uint64(time.Now().UnixNano())))
	}
	return t, nil
}

// Params returns the table configuration.
func (t *Table) Params() Params {
	return t.params
}

// Len returns the number of stored chains. Collisions make this smaller than
// the configured chain count.
func (t *Table) Len() int {
	return t.index.len()
}

func (t *Table) randomHead(rnd *rand.Rand) []byte {
	n := t.params.MinLength + rnd.Intn(t.params.MaxLength-t.params.MinLength+1)
	head := make([]byte, n)
	for i := range head {
		head[i] = t.params.Charset[rnd.Intn(len(t.params.Charset))]
	}
	return head
}

func (t *Table) auditChain(w io.Writer, head, tail []byte) error {
	if w == nil {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s -> %s\n", head, hex.EncodeToString(tail))
	return errors.Wrap(err, "write audit line")
}

// Generate clears the index and populates it with NumChains freshly sampled
// chains. It returns the number of tail collisions observed. The context is
// checked at every chain boundary; on cancellation the index is incomplete
// but safe.
func (t *Table) Generate(ctx context.Context) (int, error) {
	t.index = newIndex()
	if t.workers > 1 {
		return t.generateParallel(ctx)
	}

	collisions := 0
	for n := 0; n < t.params.NumChains; n++ {
		if err := ctx.Err(); err != nil {
			return collisions, err
		}
		head := t.randomHead(t.rnd)
		tail := t.chain(head)
		if t.index.insert(tail, head) {
			collisions++
		}
		if err := t.auditChain(t.audit, head, tail); err != nil {
			return collisions, err
		}
		t.log.Debug("chain generated",
			zap.ByteString("head", head),
			zap.String("tail", hex.EncodeToString(tail)))
	}
	t.log.Info("generation finished",
		zap.Int("chains", t.params.NumChains),
		zap.Int("stored", t.index.len()),
		zap.Int("collisions", collisions))
	return collisions, nil
}

func (t *Table) generateParallel(ctx context.Context) (int, error) {
	var (
		mu         sync.Mutex
		collisions int
		audit      io.Writer
	)
	if t.audit != nil {
		audit = safe.NewWriter(t.audit)
	}

	g, ctx := errgroup.WithContext(ctx)
	share := t.params.NumChains / t.workers
	extra := t.params.NumChains % t.workers
	for w := 0; w < t.workers; w++ {
		count := share
		if w < extra {
			count++
		}
		if count == 0 {
			continue
		}
		seed := t.rnd.Uint64()
		g.Go(func() error {
			rnd := rand.New(prng.NewSeeded(seed))
			for n := 0; n < count; n++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				head := t.randomHead(rnd)
				tail := t.chain(head)
				mu.Lock()
				if t.index.insert(tail, head) {
					collisions++
				}
				mu.Unlock()
				if err := t.auditChain(audit, head, tail); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return collisions, err
	}
	t.log.Info("generation finished",
		zap.Int("chains", t.params.NumChains),
		zap.Int("workers", t.workers),
		zap.Int("stored", t.index.len()),
		zap.Int("collisions", collisions))
	return collisions, nil
}

// Lookup attempts to invert hexHash. It returns the recovered plaintext and
// true on success, and false when no stored chain reaches the target. The
// context is checked once per outer reconstruction step.
func (t *Table) Lookup(ctx context.Context, hexHash string) (string, bool, error) {
	target, err := hex.DecodeString(hexHash)
	if err != nil {
		return "", false, errors.Wrapf(ErrInvalidHash, "not hexadecimal: %q", hexHash)
	}
	if len(target) != t.params.Algorithm.Size() {
		return "", false, errors.Wrapf(ErrInvalidHash,
			"%s digests are %d bytes, got %d",
			t.params.Algorithm, t.params.Algorithm.Size(), len(target))
	}

	// First chance: the target may itself be a stored tail. Replay still
	// verifies, because a matching tail can belong to a chain whose head is
	// the preimage of an intermediate digest rather than of the target.
	if head, ok := t.index.searchOrdered(target); ok {
		if psw, ok := t.replay(head, target); ok {
			t.log.Debug("first chain matched",
				zap.ByteString("head", head),
				zap.String("target", hexHash))
			return string(psw), true, nil
		}
	}

	// Reconstruct from successively earlier chain positions. Walking the
	// reduce/hash pipeline from step i lands on a stored tail exactly when
	// the target sits at position i of that chain; every digest along the
	// walk is checked because the tail appears before the walk completes.
	for i := t.params.ChainLength - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		h := target
		for j := i; j < t.params.ChainLength; j++ {
			h = t.params.Algorithm.Sum(t.reduce(h, j))
			head, ok := t.index.get(h)
			if !ok {
				continue
			}
			if psw, ok := t.replay(head, target); ok {
				t.log.Debug("chain matched",
					zap.ByteString("head", head),
					zap.String("target", hexHash),
					zap.Int("iterations", t.params.ChainLength-i))
				return string(psw), true, nil
			}
			// False alarm, keep searching.
		}
	}
	return "", false, nil
}
