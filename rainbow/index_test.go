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
// github.com:adofm/rainbow-crack/rainbow/index_test.go

package rainbow

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexInsertOverwrites(t *testing.T) {
	ix := newIndex()
	tail := []byte{0xaa, 0xbb}

	assert.False(t, ix.insert(tail, []byte("first")))
	assert.True(t, ix.insert(tail, []byte("second")))
	assert.Equal(t, 1, ix.len())

	head, ok := ix.get(tail)
	require.True(t, ok)
	assert.Equal(t, []byte("second"), head)
}

func TestIndexOrderedSearchAgreesWithGet(t *testing.T) {
	ix := newIndex()
	tails := [][]byte{
		{0x02, 0x00}, {0x01, 0xff}, {0xf0, 0x0d}, {0x00, 0x01}, {0x7f, 0x7f},
	}
	for i, tail := range tails {
		ix.insert(tail, []byte{byte(i)})
	}

	for _, tail := range tails {
		fromMap, okMap := ix.get(tail)
		fromTree, okTree := ix.searchOrdered(tail)
		require.True(t, okMap)
		require.True(t, okTree)
		assert.Equal(t, fromMap, fromTree)
	}

	_, ok := ix.get([]byte{0xde, 0xad})
	assert.False(t, ok)
	_, ok = ix.searchOrdered([]byte{0xde, 0xad})
	assert.False(t, ok)
}

func TestIndexAscendsInTailOrder(t *testing.T) {
	ix := newIndex()
	for _, tail := range [][]byte{
		{0x90}, {0x10}, {0xff}, {0x00}, {0x42}, {0x41},
	} {
		ix.insert(tail, []byte("h"))
	}

	var prev []byte
	count := 0
	ix.ascend(func(tail, head []byte) bool {
		if prev != nil {
			assert.Negative(t, bytes.Compare(prev, tail))
		}
		prev = append([]byte(nil), tail...)
		count++
		return true
	})
	assert.Equal(t, ix.len(), count)
}
