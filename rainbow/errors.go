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
// github.com:adofm/rainbow-crack/rainbow/errors.go

package rainbow

import "errors"

var (
	// ErrUnsupportedAlgorithm reports an algorithm outside {sha1, md5}.
	ErrUnsupportedAlgorithm = errors.New("algorithm not supported")

	// ErrInvalidParameters reports a violated length or count invariant.
	ErrInvalidParameters = errors.New("invalid table parameters")

	// ErrInvalidHash reports a lookup input that is not valid hex or does
	// not decode to the algorithm's digest width.
	ErrInvalidHash = errors.New("invalid hash")

	// ErrInvalidTableFile reports a table file with a bad header, an
	// unsupported version, truncated contents, or inconsistent framing.
	ErrInvalidTableFile = errors.New("invalid table file")
)
