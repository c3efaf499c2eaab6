// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"errors"
	"fmt"

	"github.com/filiphrenic/compression/trie"
)

// Code is a dictionary code.
type Code = trie.Code

// DefaultCodeWidth is the default width of a code in bits.
const DefaultCodeWidth = 16

// Config provides the parameters shared by encoder and decoder. Both
// sides must use the same Capacity and CodeWidth.
type Config struct {
	// Capacity is the maximum number of codes including the 256
	// single-byte codes. (default: 65535)
	Capacity int
	// CodeWidth is the number of bits of a code on the wire. Only 16
	// and 24 are supported. (default: 16)
	CodeWidth int
	// Backend selects the trie used by the encoder. The decoder
	// doesn't use a trie. (default: trie.Dense)
	Backend trie.Kind
}

// SetDefaults replaces zero values with default values.
func (cfg *Config) SetDefaults() {
	if cfg.CodeWidth == 0 {
		cfg.CodeWidth = DefaultCodeWidth
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = trie.DefaultCapacity
	}
}

// Verify checks the configuration for errors. Call SetDefaults before
// this method.
func (cfg *Config) Verify() error {
	if cfg == nil {
		return errors.New("lzw: Config pointer must not be nil")
	}
	if err := verifyCodeWidth(cfg.CodeWidth); err != nil {
		return err
	}
	if cfg.Capacity < trie.Alphabet {
		return fmt.Errorf("lzw: capacity %d less than %d",
			cfg.Capacity, trie.Alphabet)
	}
	if maxCap := 1<<cfg.CodeWidth - 1; cfg.Capacity > maxCap {
		return fmt.Errorf(
			"lzw: capacity %d not representable with %d-bit codes",
			cfg.Capacity, cfg.CodeWidth)
	}
	return cfg.Backend.Verify()
}
