// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trie

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/kr/pretty"
)

var (
	_ Dictionary = (*DenseTrie)(nil)
	_ Dictionary = (*SparseTrie)(nil)
)

var kinds = []Kind{Dense, Sparse}

func newDict(t *testing.T, k Kind, capacity int) Dictionary {
	t.Helper()
	d, err := New(k, capacity)
	if err != nil {
		t.Fatalf("New(%v, %d) error %s", k, capacity, err)
	}
	return d
}

func TestSingletons(t *testing.T) {
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			d := newDict(t, k, DefaultCapacity)
			if n := d.Len(); n != Alphabet {
				t.Fatalf("Len() = %d; want %d", n, Alphabet)
			}
			if n := d.Nodes(); n != Alphabet+1 {
				t.Fatalf("Nodes() = %d; want %d", n, Alphabet+1)
			}
			if n := d.ChildCount(Root); n != Alphabet {
				t.Fatalf("ChildCount(Root) = %d; want %d",
					n, Alphabet)
			}
			if _, ok := d.Code(Root); ok {
				t.Fatalf("root has a code")
			}
			for i := 0; i < Alphabet; i++ {
				c, ok := d.Lookup([]byte{byte(i)})
				if !ok || c != Code(i) {
					t.Fatalf("Lookup(%#02x) = %d, %t; want %d, true",
						i, c, ok, i)
				}
			}
			if _, ok := d.Lookup(nil); ok {
				t.Fatalf("Lookup(nil) found a code")
			}
		})
	}
}

func TestInsertLookup(t *testing.T) {
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			d := newDict(t, k, DefaultCapacity)
			c, ok := d.Insert([]byte("ab"))
			if !ok || c != 256 {
				t.Fatalf("Insert(%q) = %d, %t; want 256, true",
					"ab", c, ok)
			}
			c, ok = d.Insert([]byte("abc"))
			if !ok || c != 257 {
				t.Fatalf("Insert(%q) = %d, %t; want 257, true",
					"abc", c, ok)
			}
			c, ok = d.Insert([]byte("ab"))
			if ok || c != 256 {
				t.Fatalf("second Insert(%q) = %d, %t; want 256, false",
					"ab", c, ok)
			}
			if n := d.Len(); n != 258 {
				t.Fatalf("Len() = %d; want %d", n, 258)
			}
			if c, ok = d.Lookup([]byte("abc")); !ok || c != 257 {
				t.Fatalf("Lookup(%q) = %d, %t; want 257, true",
					"abc", c, ok)
			}
			if _, ok = d.Lookup([]byte("abd")); ok {
				t.Fatalf("Lookup(%q) found a code", "abd")
			}
			if _, ok = d.Lookup([]byte("abcd")); ok {
				t.Fatalf("Lookup(%q) found a code", "abcd")
			}
			if _, ok = d.Insert(nil); ok {
				t.Fatalf("Insert(nil) assigned a code")
			}
		})
	}
}

func TestCodelessNodes(t *testing.T) {
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			d := newDict(t, k, DefaultCapacity)
			// the intermediate node for "xy" has no code
			if c, ok := d.Insert([]byte("xyz")); !ok || c != 256 {
				t.Fatalf("Insert(%q) = %d, %t", "xyz", c, ok)
			}
			if _, ok := d.Lookup([]byte("xy")); ok {
				t.Fatalf("Lookup(%q) found a code", "xy")
			}
			if n := d.Nodes(); n != Alphabet+3 {
				t.Fatalf("Nodes() = %d; want %d", n, Alphabet+3)
			}
			if c, ok := d.Insert([]byte("xy")); !ok || c != 257 {
				t.Fatalf("Insert(%q) = %d, %t", "xy", c, ok)
			}
			if n := d.Nodes(); n != Alphabet+3 {
				t.Fatalf("Nodes() = %d; want %d", n, Alphabet+3)
			}
		})
	}
}

func TestLookupOrCreateChild(t *testing.T) {
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			d := newDict(t, k, DefaultCapacity)
			a, ok := d.Child(Root, 'a')
			if !ok {
				t.Fatalf("Child(Root, 'a') not found")
			}
			if _, ok = d.Child(a, 'b'); ok {
				t.Fatalf("Child(a, 'b') exists")
			}
			ab := d.LookupOrCreateChild(a, 'b')
			if ab == Root {
				t.Fatalf("LookupOrCreateChild returned root")
			}
			if _, ok = d.Code(ab); ok {
				t.Fatalf("new child has a code")
			}
			if g := d.LookupOrCreateChild(a, 'b'); g != ab {
				t.Fatalf("LookupOrCreateChild(a, 'b') = %d; want %d",
					g, ab)
			}
			if n := d.ChildCount(a); n != 1 {
				t.Fatalf("ChildCount(a) = %d; want 1", n)
			}
			if n := d.Len(); n != Alphabet {
				t.Fatalf("Len() = %d; want %d", n, Alphabet)
			}
		})
	}
}

func TestAssign(t *testing.T) {
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			d := newDict(t, k, Alphabet+1)
			a, _ := d.Child(Root, 'a')
			if c, ok := d.Assign(a); ok || c != 'a' {
				t.Fatalf("Assign(a) = %d, %t; want %d, false",
					c, ok, 'a')
			}
			ab := d.LookupOrCreateChild(a, 'b')
			if c, ok := d.Assign(ab); !ok || c != Alphabet {
				t.Fatalf("Assign(ab) = %d, %t; want %d, true",
					c, ok, Alphabet)
			}
			if c, ok := d.Lookup([]byte("ab")); !ok || c != Alphabet {
				t.Fatalf("Lookup(%q) = %d, %t", "ab", c, ok)
			}
			abc := d.LookupOrCreateChild(ab, 'c')
			if _, ok := d.Assign(abc); ok {
				t.Fatalf("Assign into full dictionary succeeded")
			}
			if _, ok := d.Code(abc); ok {
				t.Fatalf("full dictionary assigned a code")
			}
			if d.Len() != Alphabet+1 {
				t.Fatalf("Len() = %d; want %d", d.Len(), Alphabet+1)
			}
		})
	}
}

func TestCapacity(t *testing.T) {
	const capacity = Alphabet + 2
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			d := newDict(t, k, capacity)
			for i, s := range []string{"aa", "bb"} {
				c, ok := d.Insert([]byte(s))
				if !ok || c != Code(Alphabet+i) {
					t.Fatalf("Insert(%q) = %d, %t", s, c, ok)
				}
			}
			nodes := d.Nodes()
			if _, ok := d.Insert([]byte("ccc")); ok {
				t.Fatalf("Insert into full dictionary succeeded")
			}
			if d.Len() != capacity {
				t.Fatalf("Len() = %d; want %d", d.Len(), capacity)
			}
			if d.Nodes() != nodes {
				t.Fatalf("full dictionary created nodes")
			}
			if _, ok := d.Lookup([]byte("cc")); ok {
				t.Fatalf("Lookup(%q) found a code", "cc")
			}
		})
	}
}

func TestNewErrors(t *testing.T) {
	for _, capacity := range []int{-1, 0, Alphabet - 1, MaxCapacity + 1} {
		for _, k := range kinds {
			if _, err := New(k, capacity); !errors.Is(err, errCapacity) {
				t.Errorf("New(%v, %d) error %v; want %v",
					k, capacity, err, errCapacity)
			}
		}
	}
	if _, err := New(Kind(7), DefaultCapacity); err == nil {
		t.Errorf("New(Kind(7)) returned no error")
	}
}

// op records an operation and its result for comparing the backends.
type op struct {
	Insert bool
	Seq    string
	Code   Code
	OK     bool
}

func randomOps(d Dictionary, seed int64, n int) []op {
	rng := rand.New(rand.NewSource(seed))
	ops := make([]op, 0, n)
	for i := 0; i < n; i++ {
		// small alphabet to get hits
		p := make([]byte, 1+rng.Intn(6))
		for j := range p {
			p[j] = 'a' + byte(rng.Intn(4))
		}
		o := op{Insert: rng.Intn(2) == 0, Seq: string(p)}
		if o.Insert {
			o.Code, o.OK = d.Insert(p)
		} else {
			o.Code, o.OK = d.Lookup(p)
		}
		ops = append(ops, o)
	}
	return ops
}

func TestBackendEquivalence(t *testing.T) {
	for _, capacity := range []int{Alphabet, Alphabet + 100, DefaultCapacity} {
		for seed := int64(1); seed <= 5; seed++ {
			dense := newDict(t, Dense, capacity)
			sparse := newDict(t, Sparse, capacity)
			a := randomOps(dense, seed, 3000)
			b := randomOps(sparse, seed, 3000)
			if diff := pretty.Diff(a, b); len(diff) > 0 {
				t.Fatalf("capacity %d seed %d: backends differ: %v",
					capacity, seed, diff[:1])
			}
			if dense.Len() != sparse.Len() {
				t.Fatalf("Len() dense %d; sparse %d",
					dense.Len(), sparse.Len())
			}
			if dense.Nodes() != sparse.Nodes() {
				t.Fatalf("Nodes() dense %d; sparse %d",
					dense.Nodes(), sparse.Nodes())
			}
			if dense.Len() > capacity {
				t.Fatalf("Len() %d exceeds capacity %d",
					dense.Len(), capacity)
			}
		}
	}
}

func TestMonotonicCodes(t *testing.T) {
	const capacity = Alphabet + 50
	for _, k := range kinds {
		d := newDict(t, k, capacity)
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 1000; i++ {
			before := d.Len()
			p := []byte{byte(rng.Intn(256)), byte(rng.Intn(256))}
			c, ok := d.Insert(p)
			switch {
			case ok && (int(c) != before || d.Len() != before+1):
				t.Fatalf("%v: Insert assigned %d; Len %d -> %d",
					k, c, before, d.Len())
			case !ok && d.Len() != before:
				t.Fatalf("%v: Len changed from %d to %d without insert",
					k, before, d.Len())
			}
		}
		if d.Len() != capacity {
			t.Fatalf("%v: Len() = %d; want %d", k, d.Len(), capacity)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{Dense, "dense"},
		{Sparse, "sparse"},
		{Kind(3), "Kind(3)"},
	}
	for _, tc := range tests {
		if g := tc.k.String(); g != tc.want {
			t.Errorf("Kind(%d).String() = %q; want %q",
				int(tc.k), g, tc.want)
		}
	}
}
