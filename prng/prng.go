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
// github.com:adofm/rainbow-crack/prng/prng.go

// Package prng provides a deterministic random source built on a SHA-1 hash
// chain. It is not cryptographically strong; its purpose is a seedable,
// machine-independent stream so that generated tables can be reproduced.
package prng

import (
	"crypto/sha1"
	"encoding/binary"
)

// Source draws 64-bit values from a SHA-1 ring: each exhausted digest is
// rehashed to produce the next. Satisfies math/rand.Source64.
type Source struct {
	state [sha1.Size]byte
	buf   [sha1.Size]byte
	off   int
}

// NewSeeded constructs a source from one or more seed words. The words are
// laid out big-endian and hashed into the initial state, so the full stream
// is a pure function of the seeds.
func NewSeeded(seed uint64, more ...uint64) *Source {
	bytes := make([]byte, 8*(1+len(more)))
	binary.BigEndian.PutUint64(bytes, seed)
	for i, m := range more {
		binary.BigEndian.PutUint64(bytes[8*(i+1):], m)
	}
	s := &Source{state: sha1.Sum(bytes)}
	s.refill()
	return s
}

func (s *Source) refill() {
	s.buf = s.state
	s.state = sha1.Sum(s.state[:])
	s.off = 0
}

// Uint64 returns the next 64 bits of the stream. The four bytes left over at
// the end of each digest are discarded to keep draws word-aligned.
func (s *Source) Uint64() uint64 {
	if s.off+8 > len(s.buf) {
		s.refill()
	}
	v := binary.BigEndian.Uint64(s.buf[s.off:])
	s.off += 8
	return v
}

// Int63 implements math/rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed reinitializes the source, restarting the stream for the given seed.
func (s *Source) Seed(seed int64) {
	*s = *NewSeeded(uint64(seed))
}
