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
// github.com:adofm/rainbow-crack/rainbow/reduce.go

package rainbow

import "bytes"

// reduce maps a digest to a plaintext. The step index selects a different
// member of the reduction family per chain position so that colliding chains
// merge less often.
//
// The password length is taken from the second digest byte; the offset is
// load-bearing for compatibility with existing tables and must not change.
func (t *Table) reduce(digest []byte, step int) []byte {
	span := t.params.MaxLength - t.params.MinLength + 1
	n := int(digest[1])%span + t.params.MinLength
	out := make([]byte, n)
	for k := 0; k < n; k++ {
		b := digest[(step+k)%len(digest)]
		out[k] = t.params.Charset[int(b)%len(t.params.Charset)]
	}
	return out
}

// chain maps a head plaintext to its tail digest after ChainLength rounds.
// The tail is the last digest computed inside the loop, not the digest of the
// final reduced value.
func (t *Table) chain(head []byte) []byte {
	reduced := head
	var digest []byte
	for i := 0; i < t.params.ChainLength; i++ {
		digest = t.params.Algorithm.Sum(reduced)
		reduced = t.reduce(digest, i)
	}
	return digest
}

// replay re-executes the chain from head, comparing every digest against
// target. On a match it returns the pre-hash plaintext. A completed loop with
// no match is a false alarm from a reduction collision; the caller keeps
// searching.
func (t *Table) replay(head, target []byte) ([]byte, bool) {
	reduced := head
	for i := 0; i < t.params.ChainLength; i++ {
		h := t.params.Algorithm.Sum(reduced)
		if bytes.Equal(h, target) {
			return reduced, true
		}
		reduced = t.reduce(h, i)
	}
	return nil, false
}
