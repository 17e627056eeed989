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
// github.com:adofm/rainbow-crack/rainbow/algorithm.go

package rainbow

import (
	"crypto/md5"
	"crypto/sha1"
	"strings"

	"github.com/pkg/errors"
)

// Algorithm selects the digest used by a table. The numeric values are part
// of the table file format and must not be reordered.
type Algorithm uint8

const (
	SHA1 Algorithm = 1
	MD5  Algorithm = 2
)

// ParseAlgorithm maps a case-insensitive algorithm name to its tag.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "sha1":
		return SHA1, nil
	case "md5":
		return MD5, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedAlgorithm, "%q", name)
}

func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "sha1"
	case MD5:
		return "md5"
	}
	return "unknown"
}

// Size returns the digest width in bytes.
func (a Algorithm) Size() int {
	switch a {
	case SHA1:
		return sha1.Size
	case MD5:
		return md5.Size
	}
	return 0
}

func (a Algorithm) valid() bool {
	return a == SHA1 || a == MD5
}

// Sum computes the digest of plaintext. Exactly the standard SHA-1 or MD5
// output; no salt, no truncation.
func (a Algorithm) Sum(plaintext []byte) []byte {
	switch a {
	case SHA1:
		d := sha1.Sum(plaintext)
		return d[:]
	case MD5:
		d := md5.Sum(plaintext)
		return d[:]
	}
	panic("rainbow: Sum on invalid algorithm")
}
