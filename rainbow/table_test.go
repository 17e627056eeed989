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
// github.com:adofm/rainbow-crack/rainbow/table_test.go

package rainbow

import (
	"bytes"
	"context"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyMD5Params() Params {
	return Params{
		Algorithm:   MD5,
		Charset:     "abc",
		MinLength:   2,
		MaxLength:   2,
		ChainLength: 1,
		NumChains:   9,
	}
}

func sha1ChainParams() Params {
	return Params{
		Algorithm:   SHA1,
		Charset:     "abcdef",
		MinLength:   3,
		MaxLength:   3,
		ChainLength: 4,
		NumChains:   5,
	}
}

func generated(t *testing.T, params Params, seed uint64, opts ...Option) *Table {
	t.Helper()
	opts = append([]Option{WithSeed(seed)}, opts...)
	table := mustTable(t, params, opts...)
	_, err := table.Generate(context.Background())
	require.NoError(t, err)
	return table
}

func entries(table *Table) map[string]string {
	out := make(map[string]string)
	table.index.ascend(func(tail, head []byte) bool {
		out[string(tail)] = string(head)
		return true
	})
	return out
}

func TestNewRejectsInvalidParams(t *testing.T) {
	valid := tinyMD5Params()

	tests := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"zero algorithm", func(p *Params) { p.Algorithm = 0 }, ErrUnsupportedAlgorithm},
		{"unknown algorithm", func(p *Params) { p.Algorithm = 9 }, ErrUnsupportedAlgorithm},
		{"empty charset", func(p *Params) { p.Charset = "" }, ErrInvalidParameters},
		{"zero min length", func(p *Params) { p.MinLength = 0 }, ErrInvalidParameters},
		{"max below min", func(p *Params) { p.MaxLength = 1 }, ErrInvalidParameters},
		{"oversized max", func(p *Params) { p.MaxLength = 1 << 17 }, ErrInvalidParameters},
		{"zero chain length", func(p *Params) { p.ChainLength = 0 }, ErrInvalidParameters},
		{"zero chains", func(p *Params) { p.NumChains = 0 }, ErrInvalidParameters},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.mutate(&params)
			_, err := New(params)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerateIndexConsistency(t *testing.T) {
	params := Params{
		Algorithm:   SHA1,
		Charset:     "abcdef",
		MinLength:   2,
		MaxLength:   4,
		ChainLength: 3,
		NumChains:   50,
	}
	table := generated(t, params, 11)

	require.Positive(t, table.Len())
	table.index.ascend(func(tail, head []byte) bool {
		assert.Equal(t, tail, table.chain(head))
		assert.GreaterOrEqual(t, len(head), params.MinLength)
		assert.LessOrEqual(t, len(head), params.MaxLength)
		for _, b := range head {
			assert.True(t, strings.ContainsRune(params.Charset, rune(b)))
		}
		return true
	})
}

func TestLookupDirectHit(t *testing.T) {
	table := generated(t, tinyMD5Params(), 1)

	// Every stored tail inverts to a plaintext hashing to that tail.
	for tailKey := range entries(table) {
		tail := []byte(tailKey)
		psw, found, err := table.Lookup(context.Background(), hex.EncodeToString(tail))
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, tail, MD5.Sum([]byte(psw)))
	}
}

func TestLookupKnownChain(t *testing.T) {
	table := mustTable(t, tinyMD5Params())
	target := MD5.Sum([]byte("ab"))
	table.index.insert(target, []byte("ab"))

	psw, found, err := table.Lookup(context.Background(), hex.EncodeToString(target))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "ab", psw)
}

func TestLookupMidChainRecovery(t *testing.T) {
	table := generated(t, sha1ChainParams(), 42)
	ctx := context.Background()

	for tailKey, headVal := range entries(table) {
		reduced := []byte(headVal)
		for i := 0; i < table.params.ChainLength; i++ {
			digest := SHA1.Sum(reduced)
			psw, found, err := table.Lookup(ctx, hex.EncodeToString(digest))
			require.NoError(t, err)
			require.True(t, found,
				"intermediate %d of chain %x not recovered", i, tailKey)
			assert.Equal(t, digest, SHA1.Sum([]byte(psw)))
			reduced = table.reduce(digest, i)
		}
	}
}

func TestLookupAbsent(t *testing.T) {
	table := generated(t, tinyMD5Params(), 1)
	ctx := context.Background()

	// Right width, but md5("zz") is unreachable: "z" is outside the charset
	// and the single-round chains only store digests of charset passwords.
	_, found, err := table.Lookup(ctx, hex.EncodeToString(MD5.Sum([]byte("zz"))))
	require.NoError(t, err)
	assert.False(t, found)

	// A sha1 digest is the wrong width for an md5 table.
	_, _, err = table.Lookup(ctx, hex.EncodeToString(SHA1.Sum([]byte("zz"))))
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestLookupMalformedHex(t *testing.T) {
	table := mustTable(t, tinyMD5Params())
	ctx := context.Background()

	_, _, err := table.Lookup(ctx, "nothex")
	assert.ErrorIs(t, err, ErrInvalidHash)
	_, _, err = table.Lookup(ctx, "abc")
	assert.ErrorIs(t, err, ErrInvalidHash)
	_, _, err = table.Lookup(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestCollisionCounter(t *testing.T) {
	params := Params{
		Algorithm:   MD5,
		Charset:     "ab",
		MinLength:   1,
		MaxLength:   1,
		ChainLength: 1,
		NumChains:   100,
	}
	table := mustTable(t, params, WithSeed(3))
	collisions, err := table.Generate(context.Background())
	require.NoError(t, err)

	// Only two distinct heads exist, so at least 98 of 100 chains collide.
	assert.Greater(t, collisions, 0)
	assert.LessOrEqual(t, collisions, params.NumChains)
	assert.LessOrEqual(t, table.Len(), 2)
	assert.Equal(t, params.NumChains, table.Len()+collisions)
}

func TestGenerateReproducible(t *testing.T) {
	params := sha1ChainParams()
	first := generated(t, params, 99)
	second := generated(t, params, 99)
	assert.Equal(t, entries(first), entries(second))

	third := generated(t, params, 100)
	// A different seed should sample different heads.
	assert.NotEqual(t, entries(first), entries(third))
}

func TestGenerateAuditLines(t *testing.T) {
	var audit bytes.Buffer
	params := tinyMD5Params()
	table := generated(t, params, 5, WithAudit(&audit))

	lines := strings.Split(strings.TrimRight(audit.String(), "\n"), "\n")
	require.Len(t, lines, params.NumChains)
	for _, line := range lines {
		parts := strings.Split(line, " -> ")
		require.Len(t, parts, 2)
		tail, err := hex.DecodeString(parts[1])
		require.NoError(t, err)
		assert.Equal(t, tail, table.chain([]byte(parts[0])))
	}
}

func TestGenerateParallel(t *testing.T) {
	var audit bytes.Buffer
	params := Params{
		Algorithm:   SHA1,
		Charset:     "abcdef",
		MinLength:   2,
		MaxLength:   3,
		ChainLength: 3,
		NumChains:   40,
	}
	table := generated(t, params, 7, WithWorkers(4), WithAudit(&audit))

	assert.Equal(t, params.NumChains, strings.Count(audit.String(), "\n"))
	table.index.ascend(func(tail, head []byte) bool {
		assert.Equal(t, tail, table.chain(head))
		return true
	})
}

func TestGenerateCancelled(t *testing.T) {
	table := mustTable(t, tinyMD5Params(), WithSeed(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := table.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLookupCancelled(t *testing.T) {
	table := mustTable(t, sha1ChainParams(), WithSeed(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := table.Lookup(ctx, hex.EncodeToString(SHA1.Sum([]byte("abc"))))
	assert.ErrorIs(t, err, context.Canceled)
}
