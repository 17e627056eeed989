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
// github.com:adofm/rainbow-crack/rainbow/encode.go

package rainbow

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Table file layout, big-endian throughout:
//
//	magic "RBTB"
//	uint16 version (1)
//	uint8  algorithm tag
//	uint32 min length, max length, chain length
//	uint64 number of chains
//	uint32 charset length, charset bytes
//	uint64 entry count
//	per entry: tail (digest width), uint16 head length, head bytes
var tableMagic = [4]byte{'R', 'B', 'T', 'B'}

const tableVersion uint16 = 1

// Charset length guard when reading untrusted files.
const maxCharsetLen = 1 << 20

// Save serializes the table to path. Entries are written in ascending tail
// order, so saving an unmodified table twice produces byte-identical files.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create table file")
	}
	w := bufio.NewWriter(f)
	if err := t.encode(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrap(err, "write table file")
	}
	return errors.Wrap(f.Close(), "close table file")
}

func (t *Table) encode(w io.Writer) error {
	if _, err := w.Write(tableMagic[:]); err != nil {
		return errors.Wrap(err, "write header")
	}
	fields := []any{
		tableVersion,
		uint8(t.params.Algorithm),
		uint32(t.params.MinLength),
		uint32(t.params.MaxLength),
		uint32(t.params.ChainLength),
		uint64(t.params.NumChains),
		uint32(len(t.params.Charset)),
	}
	for _, v := range fields {
		if err := binary.Write(w, binary.BigEndian, v); err != nil {
			return errors.Wrap(err, "write header")
		}
	}
	if _, err := io.WriteString(w, t.params.Charset); err != nil {
		return errors.Wrap(err, "write charset")
	}
	if err := binary.Write(w, binary.BigEndian, uint64(t.index.len())); err != nil {
		return errors.Wrap(err, "write entry count")
	}

	var encErr error
	t.index.ascend(func(tail, head []byte) bool {
		if _, err := w.Write(tail); err != nil {
			encErr = errors.Wrap(err, "write entry")
			return false
		}
		if err := binary.Write(w, binary.BigEndian, uint16(len(head))); err != nil {
			encErr = errors.Wrap(err, "write entry")
			return false
		}
		if _, err := w.Write(head); err != nil {
			encErr = errors.Wrap(err, "write entry")
			return false
		}
		return true
	})
	return encErr
}

// Load reads a table file written by Save and rebuilds the in-memory index.
// The loaded table is read-only in intent: call Lookup, not Generate.
func Load(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open table file")
	}
	defer f.Close()
	return decode(bufio.NewReader(f), opts...)
}

// readFull reads exactly len(buf) bytes, mapping a short read to
// ErrInvalidTableFile since the file declared more content than it holds.
func readFull(r io.Reader, buf []byte, what string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errors.Wrapf(ErrInvalidTableFile, "truncated %s", what)
		}
		return errors.Wrapf(err, "read %s", what)
	}
	return nil
}

func decode(r io.Reader, opts ...Option) (*Table, error) {
	var magic [4]byte
	if err := readFull(r, magic[:], "magic"); err != nil {
		return nil, err
	}
	if magic != tableMagic {
		return nil, errors.Wrapf(ErrInvalidTableFile, "bad magic %q", magic[:])
	}

	hdr := make([]byte, 2+1+4+4+4+8+4)
	if err := readFull(r, hdr, "header"); err != nil {
		return nil, err
	}
	version := binary.BigEndian.Uint16(hdr[0:2])
	if version != tableVersion {
		return nil, errors.Wrapf(ErrInvalidTableFile, "unsupported version %d", version)
	}
	charsetLen := binary.BigEndian.Uint32(hdr[23:27])
	if charsetLen == 0 || charsetLen > maxCharsetLen {
		return nil, errors.Wrapf(ErrInvalidTableFile, "charset length %d", charsetLen)
	}
	charset := make([]byte, charsetLen)
	if err := readFull(r, charset, "charset"); err != nil {
		return nil, err
	}

	params := Params{
		Algorithm:   Algorithm(hdr[2]),
		Charset:     string(charset),
		MinLength:   int(binary.BigEndian.Uint32(hdr[3:7])),
		MaxLength:   int(binary.BigEndian.Uint32(hdr[7:11])),
		ChainLength: int(binary.BigEndian.Uint32(hdr[11:15])),
		NumChains:   int(binary.BigEndian.Uint64(hdr[15:23])),
	}
	if err := params.check(); err != nil {
		return nil, errors.Wrapf(ErrInvalidTableFile, "unsupported parameters: %v", err)
	}

	t, err := New(params, opts...)
	if err != nil {
		return nil, err
	}

	var countBuf [8]byte
	if err := readFull(r, countBuf[:], "entry count"); err != nil {
		return nil, err
	}
	count := binary.BigEndian.Uint64(countBuf[:])

	width := params.Algorithm.Size()
	var lenBuf [2]byte
	for i := uint64(0); i < count; i++ {
		tail := make([]byte, width)
		if err := readFull(r, tail, "entry tail"); err != nil {
			return nil, err
		}
		if err := readFull(r, lenBuf[:], "entry head length"); err != nil {
			return nil, err
		}
		n := int(binary.BigEndian.Uint16(lenBuf[:]))
		if n < params.MinLength || n > params.MaxLength {
			return nil, errors.Wrapf(ErrInvalidTableFile, "entry head length %d", n)
		}
		head := make([]byte, n)
		if err := readFull(r, head, "entry head"); err != nil {
			return nil, err
		}
		t.index.insert(tail, head)
	}

	// The declared entry count must account for the whole file.
	var trailing [1]byte
	if _, err := io.ReadFull(r, trailing[:]); err != io.EOF {
		return nil, errors.Wrap(ErrInvalidTableFile, "trailing bytes after entries")
	}
	return t, nil
}
