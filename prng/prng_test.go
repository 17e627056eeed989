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
// github.com:adofm/rainbow-crack/prng/prng_test.go

package prng_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adofm/rainbow-crack/prng"
)

func drawn(src *prng.Source, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = src.Uint64()
	}
	return out
}

func TestSameSeedSameStream(t *testing.T) {
	assert.Equal(t, drawn(prng.NewSeeded(1), 64), drawn(prng.NewSeeded(1), 64))
	assert.Equal(t, drawn(prng.NewSeeded(1, 2, 3), 64), drawn(prng.NewSeeded(1, 2, 3), 64))
}

func TestDistinctSeedsDiverge(t *testing.T) {
	assert.NotEqual(t, drawn(prng.NewSeeded(1), 8), drawn(prng.NewSeeded(2), 8))
	assert.NotEqual(t, drawn(prng.NewSeeded(1), 8), drawn(prng.NewSeeded(1, 2), 8))
}

func TestSeedRestartsStream(t *testing.T) {
	src := prng.NewSeeded(7)
	first := drawn(src, 16)
	src.Seed(7)
	assert.Equal(t, first, drawn(src, 16))
}

func TestUsableAsRandSource(t *testing.T) {
	var _ rand.Source64 = (*prng.Source)(nil)

	rnd := rand.New(prng.NewSeeded(9))
	for i := 0; i < 1000; i++ {
		v := rnd.Intn(10)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}
}

func TestInt63NonNegative(t *testing.T) {
	src := prng.NewSeeded(11)
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, src.Int63(), int64(0))
	}
}
