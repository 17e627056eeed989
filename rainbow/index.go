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
// github.com:adofm/rainbow-crack/rainbow/index.go

package rainbow

import (
	"bytes"

	"github.com/google/btree"
)

// Minimum degree of the ordered index tree.
const treeDegree = 5

type entry struct {
	tail []byte
	head []byte
}

// tailIndex maps tail digests to chain heads. Point lookups go through the
// hash map; the B-tree keeps the entries ordered by tail for the first-chance
// search and for deterministic save order.
type tailIndex struct {
	byTail map[string][]byte
	tree   *btree.BTreeG[entry]
}

func newIndex() *tailIndex {
	return &tailIndex{
		byTail: make(map[string][]byte),
		tree: btree.NewG(treeDegree, func(a, b entry) bool {
			return bytes.Compare(a.tail, b.tail) < 0
		}),
	}
}

// insert stores head under tail, overwriting any prior entry. It reports
// whether an entry was already present, which is what the generator counts
// as a collision.
func (ix *tailIndex) insert(tail, head []byte) bool {
	_, had := ix.byTail[string(tail)]
	ix.byTail[string(tail)] = head
	ix.tree.ReplaceOrInsert(entry{tail: tail, head: head})
	return had
}

func (ix *tailIndex) get(tail []byte) ([]byte, bool) {
	head, ok := ix.byTail[string(tail)]
	return head, ok
}

// searchOrdered is the ordered-tree counterpart of get.
func (ix *tailIndex) searchOrdered(tail []byte) ([]byte, bool) {
	e, ok := ix.tree.Get(entry{tail: tail})
	if !ok {
		return nil, false
	}
	return e.head, true
}

func (ix *tailIndex) len() int {
	return len(ix.byTail)
}

// ascend visits every entry in ascending tail order until fn returns false.
func (ix *tailIndex) ascend(fn func(tail, head []byte) bool) {
	ix.tree.Ascend(func(e entry) bool {
		return fn(e.tail, e.head)
	})
}
