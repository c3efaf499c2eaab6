// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/filiphrenic/compression/trie"
)

func randomBytes(seed int64, n int) []byte {
	rng := rand.New(rand.NewSource(seed))
	p := make([]byte, n)
	rng.Read(p)
	return p
}

func cycleBytes(alphabet string, n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = alphabet[i%len(alphabet)]
	}
	return p
}

var roundTripInputs = []struct {
	name string
	data []byte
}{
	{"empty", nil},
	{"single", []byte{0}},
	{"abab", []byte("ABABABAB")},
	{"zeros", make([]byte, 5000)},
	{"tobeornot", []byte(strings.Repeat("TOBEORNOTTOBEORTOBEORNOT", 40))},
	{"random", randomBytes(1, 10000)},
	{"alphabet", cycleBytes("abcdefghijklmnopqrstuvwxyz", 20000)},
}

func roundTrip(t *testing.T, data []byte, wcfg WriterConfig) (encoded []byte) {
	t.Helper()
	encoded, err := Encode(data, wcfg)
	if err != nil {
		t.Fatalf("Encode error %s", err)
	}
	rcfg := ReaderConfig{Config: wcfg.Config, Framed: wcfg.Framed}
	decoded, err := Decode(encoded, rcfg)
	if err != nil {
		t.Fatalf("Decode error %s", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatalf("decoded data differs from original; len %d; want %d",
			len(decoded), len(data))
	}
	return encoded
}

func TestRoundTrip(t *testing.T) {
	configs := []struct {
		name string
		cfg  WriterConfig
	}{
		{"dense", WriterConfig{}},
		{"sparse", WriterConfig{Config: Config{Backend: trie.Sparse}}},
		{"small", WriterConfig{Config: Config{Capacity: 300}}},
		{"frozen", WriterConfig{Config: Config{Capacity: 256}}},
		{"wide", WriterConfig{Config: Config{
			CodeWidth: 24, Capacity: 1 << 20,
			Backend: trie.Sparse}}},
		{"framed", WriterConfig{Framed: true}},
		{"framed-small", WriterConfig{Framed: true,
			Config: Config{Capacity: 260, Backend: trie.Sparse}}},
	}
	for _, c := range configs {
		for _, in := range roundTripInputs {
			t.Run(c.name+"/"+in.name, func(t *testing.T) {
				roundTrip(t, in.data, c.cfg)
			})
		}
	}
}

func TestEmptyInput(t *testing.T) {
	encoded := roundTrip(t, nil, WriterConfig{})
	if len(encoded) != 0 {
		t.Fatalf("Encode(nil) = % x; want empty", encoded)
	}
	decoded, err := Decode(nil, ReaderConfig{})
	if err != nil {
		t.Fatalf("Decode(nil) error %s", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("Decode(nil) = %q; want empty", decoded)
	}
}

func TestSelfReferentialRoundTrip(t *testing.T) {
	data := []byte{'A', 'B', 'A', 'B', 'A', 'B', 'A', 'B'}
	encoded := roundTrip(t, data, WriterConfig{})
	want := []byte{0x41, 0, 0x42, 0, 0, 1, 0x02, 1, 0x42, 0}
	if !bytes.Equal(encoded, want) {
		t.Fatalf("Encode(%q) = % x; want % x", data, encoded, want)
	}
}

// About 130000 codes are required for random data, twice the default
// capacity.
func TestCapacityBoundary(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	data := randomBytes(7, 1<<18)
	for _, k := range backends {
		t.Run(k.String(), func(t *testing.T) {
			cfg := Config{Backend: k}
			codes, err := EncodeCodes(data, cfg)
			if err != nil {
				t.Fatalf("EncodeCodes error %s", err)
			}
			e, err := NewEncoder(&CodeSlice{}, cfg)
			if err != nil {
				t.Fatalf("NewEncoder error %s", err)
			}
			if _, err = e.Write(data); err != nil {
				t.Fatalf("e.Write error %s", err)
			}
			if err = e.Close(); err != nil {
				t.Fatalf("e.Close error %s", err)
			}
			es := e.Stats()
			if !es.Frozen || es.Entries != trie.DefaultCapacity {
				t.Fatalf("encoder stats %+v; want frozen dictionary",
					es)
			}
			for _, c := range codes {
				if c >= trie.DefaultCapacity {
					t.Fatalf("code %d not below capacity", c)
				}
			}

			d, err := NewDecoder(cfg)
			if err != nil {
				t.Fatalf("NewDecoder error %s", err)
			}
			var out []byte
			for _, c := range codes {
				p, err := d.Decode(c)
				if err != nil {
					t.Fatalf("Decode(%d) error %s", c, err)
				}
				out = append(out, p...)
			}
			if !bytes.Equal(out, data) {
				t.Fatalf("decoded data differs")
			}
			if ds := d.Stats(); ds.Entries != es.Entries ||
				ds.Frozen != es.Frozen || ds.Codes != es.Codes {
				t.Fatalf("decoder stats %+v; encoder stats %+v",
					ds, es)
			}
		})
	}
}

func TestCapacityBoundaryCycle(t *testing.T) {
	data := cycleBytes("abcdefghijklmnopqrstuvwxyz", 100000)
	for _, capacity := range []int{256, 257, 300, 1000} {
		for _, k := range backends {
			cfg := Config{Capacity: capacity, Backend: k}
			codes, err := EncodeCodes(data, cfg)
			if err != nil {
				t.Fatalf("EncodeCodes error %s", err)
			}
			out, err := DecodeCodes(codes, cfg)
			if err != nil {
				t.Fatalf("DecodeCodes error %s", err)
			}
			if !bytes.Equal(out, data) {
				t.Fatalf("capacity %d %v: round trip failed",
					capacity, k)
			}
		}
	}
}

func TestBackendsProduceSameCodes(t *testing.T) {
	for _, in := range roundTripInputs {
		a, err := EncodeCodes(in.data, Config{Backend: trie.Dense})
		if err != nil {
			t.Fatalf("EncodeCodes error %s", err)
		}
		b, err := EncodeCodes(in.data, Config{Backend: trie.Sparse})
		if err != nil {
			t.Fatalf("EncodeCodes error %s", err)
		}
		if len(a) != len(b) {
			t.Fatalf("%s: %d dense codes; %d sparse codes",
				in.name, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%s: code %d: dense %d; sparse %d",
					in.name, i, a[i], b[i])
			}
		}
	}
}

func TestReaderWrappers(t *testing.T) {
	data := []byte(strings.Repeat("TOBEORNOTTOBEORTOBEORNOT", 100))
	for _, framed := range []bool{false, true} {
		encoded, err := Encode(data, WriterConfig{Framed: framed})
		if err != nil {
			t.Fatalf("Encode error %s", err)
		}
		wrappers := []func(io.Reader) io.Reader{
			iotest.OneByteReader,
			iotest.HalfReader,
			iotest.DataErrReader,
		}
		for i, wrap := range wrappers {
			r, err := NewReaderConfig(wrap(bytes.NewReader(encoded)),
				ReaderConfig{Framed: framed})
			if err != nil {
				t.Fatalf("NewReaderConfig error %s", err)
			}
			out, err := io.ReadAll(iotest.OneByteReader(r))
			if err != nil {
				t.Fatalf("wrapper %d framed %t: ReadAll error %s",
					i, framed, err)
			}
			if !bytes.Equal(out, data) {
				t.Fatalf("wrapper %d framed %t: data differs",
					i, framed)
			}
		}
	}
}

func TestReaderTruncated(t *testing.T) {
	encoded, err := Encode([]byte("ABABABAB"), WriterConfig{})
	if err != nil {
		t.Fatalf("Encode error %s", err)
	}
	_, err = Decode(encoded[:len(encoded)-1], ReaderConfig{})
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("Decode of truncated stream error %v; want %v",
			err, io.ErrUnexpectedEOF)
	}
}

func TestReaderMalformed(t *testing.T) {
	// first code 256
	out, err := Decode([]byte{0, 1, 0x41, 0}, ReaderConfig{})
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Decode error %v; want %v", err, ErrMalformed)
	}
	if len(out) != 0 {
		t.Fatalf("Decode returned %q", out)
	}
	// 0x0200 is far beyond the next code
	out, err = Decode([]byte{0x41, 0, 0x42, 0, 0, 2}, ReaderConfig{})
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Decode error %v; want %v", err, ErrMalformed)
	}
	if string(out) != "AB" {
		t.Fatalf("partial output %q; want %q", out, "AB")
	}
}

func TestWriterClose(t *testing.T) {
	buf := new(bytes.Buffer)
	w, err := NewWriter(buf)
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	if _, err = io.WriteString(w, "aaaaaaa"); err != nil {
		t.Fatalf("WriteString error %s", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("codes written before Close")
	}
	if err = w.Close(); err != nil {
		t.Fatalf("w.Close() error %s", err)
	}
	if err = w.Close(); err != nil {
		t.Fatalf("second w.Close() error %s", err)
	}
	if buf.Len() != 8 {
		t.Fatalf("got %d bytes; want 8", buf.Len())
	}
	if _, err = w.Write([]byte("x")); err != ErrClosed {
		t.Fatalf("Write after Close error %v; want %v", err, ErrClosed)
	}
	if s := w.Stats(); s.Codes != 4 || s.Bytes != 7 {
		t.Fatalf("Stats() = %+v", s)
	}
}
