// seehuhn.de/go/slides - a library for writing presentation files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package slides

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"
	"reflect"
)

// Digest is a fingerprint of the semantic content of an object.
//
// Digests are deterministic: two objects with the same observable content
// have the same digest, independent of where and when they were allocated.
// The hash function is chosen for speed and a low collision rate, not for
// security.
type Digest [md5.Size]byte

// String returns the digest in lower case hexadecimal notation.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether d is the zero digest.  The zero digest is never
// returned by [Hasher.Sum] in practice, so it can be used to mark
// "not yet computed".
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// Hashable is implemented by all objects which take part in resource
// deduplication.
type Hashable interface {
	Digest() Digest
}

// SumBytes returns the digest of a byte string.
// This is used for media files, where the content is the data itself.
func SumBytes(data []byte) Digest {
	return Digest(md5.Sum(data))
}

// Hasher accumulates the fields of an object for computing its digest.
//
// All fields are framed (length prefixes, presence markers), so that
// different sequences of field values cannot produce the same input to the
// hash function.  Callers must write the fields of an object in a fixed,
// documented order.
type Hasher struct {
	h   hash.Hash
	buf [binary.MaxVarintLen64]byte
}

// NewHasher starts a new digest computation.  The magic number identifies the
// object type, so that objects of different types with equal field values
// get different digests.
func NewHasher(magic uint32) *Hasher {
	h := &Hasher{h: md5.New()}
	binary.BigEndian.PutUint32(h.buf[:4], magic)
	h.h.Write(h.buf[:4])
	return h
}

// Uint writes an unsigned integer.
func (h *Hasher) Uint(x uint64) {
	k := binary.PutUvarint(h.buf[:], x)
	h.h.Write(h.buf[:k])
}

// Int writes a signed integer.
func (h *Hasher) Int(x int64) {
	k := binary.PutVarint(h.buf[:], x)
	h.h.Write(h.buf[:k])
}

// Float writes a floating point number.  Negative zero is written as zero.
func (h *Hasher) Float(x float64) {
	if x == 0 {
		x = 0
	}
	binary.BigEndian.PutUint64(h.buf[:8], math.Float64bits(x))
	h.h.Write(h.buf[:8])
}

// Bool writes a boolean value.
func (h *Hasher) Bool(b bool) {
	if b {
		h.buf[0] = 1
	} else {
		h.buf[0] = 0
	}
	h.h.Write(h.buf[:1])
}

// String writes a length-prefixed string.
func (h *Hasher) String(s string) {
	h.Uint(uint64(len(s)))
	h.h.Write([]byte(s))
}

// Bytes writes a length-prefixed byte string.
func (h *Hasher) Bytes(b []byte) {
	h.Uint(uint64(len(b)))
	h.h.Write(b)
}

// Child writes the digest of an owned sub-object.
//
// Absent sub-objects (nil interfaces and nil pointers) are written as a
// sentinel which cannot be confused with any digest.
func (h *Hasher) Child(c Hashable) {
	if isNil(c) {
		h.h.Write(absentMarker[:])
		return
	}
	d := c.Digest()
	h.buf[0] = 1
	h.h.Write(h.buf[:1])
	h.h.Write(d[:])
}

// Sum returns the digest of everything written so far.
func (h *Hasher) Sum() Digest {
	var d Digest
	copy(d[:], h.h.Sum(nil))
	return d
}

// absentMarker has a different first byte from the marker written before a
// digest, so that the two can never collide.
var absentMarker = [2]byte{0, 0xff}

func isNil(c Hashable) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return v.IsNil()
	}
	return false
}

// DigestCache memoizes the digest of a mutable object.
//
// Every method which changes the content of the object must call
// [DigestCache.Invalidate].  The zero value is an empty cache.
type DigestCache struct {
	d     Digest
	valid bool
}

// Get returns the cached digest, calling compute if the cache is empty.
func (c *DigestCache) Get(compute func() Digest) Digest {
	if !c.valid {
		c.d = compute()
		c.valid = true
	}
	return c.d
}

// Invalidate empties the cache.
func (c *DigestCache) Invalidate() {
	c.valid = false
}

// Valid reports whether the cache currently holds a digest.
func (c *DigestCache) Valid() bool {
	return c.valid
}
