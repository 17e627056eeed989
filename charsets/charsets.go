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
// github.com:adofm/rainbow-crack/charsets/charsets.go

// Package charsets resolves a named character set to its literal alphabet.
// The table engine only ever sees the expanded alphabet; names live here.
package charsets

import (
	"errors"
	"os"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCharset reports a charset name absent from the configuration.
var ErrUnknownCharset = errors.New("charset not supported")

// Config maps charset names to alphabets.
type Config struct {
	Charsets map[string]string `yaml:"charsets"`
}

// Default returns the built-in charsets, used when no configuration file is
// present.
func Default() Config {
	return Config{Charsets: map[string]string{
		"numeric":      "0123456789",
		"alpha":        "abcdefghijklmnopqrstuvwxyz",
		"alpha-upper":  "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		"alphanumeric": "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
		"ascii": "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
			"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~",
	}}
}

// Load reads a charsets configuration file. A missing file falls back to the
// built-in defaults; a present but unreadable or malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, pkgerrors.Wrap(err, "read charsets config")
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, pkgerrors.Wrap(err, "parse charsets config")
	}
	if len(cfg.Charsets) == 0 {
		return Config{}, pkgerrors.Errorf("no charsets section in %s", path)
	}
	return cfg, nil
}

// Lookup expands a charset name to its alphabet.
func (c Config) Lookup(name string) (string, error) {
	alphabet, ok := c.Charsets[name]
	if !ok {
		return "", pkgerrors.Wrapf(ErrUnknownCharset,
			"%q (add custom charsets to the config file)", name)
	}
	return alphabet, nil
}
