// Package xxhash implements the xxHash32 and xxHash64 non-cryptographic
// digest algorithms: a one-shot function per width plus a streaming
// hash.Hash32/hash.Hash64-compatible digester built around a small
// fixed-size internal buffer bridging Write calls across the algorithm's
// natural chunk size.
package xxhash

import (
	"math/bits"

	"github.com/valarauca/xxcrc/leload"
)

const (
	prime32v1 uint32 = 2654435761
	prime32v2 uint32 = 2246822519
	prime32v3 uint32 = 3266489917
	prime32v4 uint32 = 668265263
	prime32v5 uint32 = 374761393
)

// round32 is the basic convolution every 4-byte lane undergoes.
func round32(acc, input uint32) uint32 {
	acc += input * prime32v2
	acc = bits.RotateLeft32(acc, 13)
	return acc * prime32v1
}

func avalanche32(h uint32) uint32 {
	h ^= h >> 15
	h *= prime32v2
	h ^= h >> 13
	h *= prime32v3
	h ^= h >> 16
	return h
}

// finalize32 folds the trailing <16 bytes of the stream into h.
func finalize32(h uint32, tail []byte) uint32 {
	for len(tail) >= 4 {
		h += leload.ReadU32(tail) * prime32v3
		h = bits.RotateLeft32(h, 17) * prime32v4
		tail = tail[4:]
	}
	for _, b := range tail {
		h += uint32(b) * prime32v5
		h = bits.RotateLeft32(h, 11) * prime32v1
	}
	return avalanche32(h)
}

// Sum32 computes the xxHash32 digest of data in one call, using seed 0.
func Sum32(data []byte) uint32 {
	return Sum32WithSeed(0, data)
}

// Sum32WithSeed computes the xxHash32 digest of data under the given seed.
func Sum32WithSeed(seed uint32, data []byte) uint32 {
	var h uint32
	n := len(data)

	if n >= 16 {
		v1 := seed + prime32v1 + prime32v2
		v2 := seed + prime32v2
		v3 := seed
		v4 := seed - prime32v1

		body := data
		for len(body) >= 16 {
			v1 = round32(v1, leload.ReadU32(body[0:4]))
			v2 = round32(v2, leload.ReadU32(body[4:8]))
			v3 = round32(v3, leload.ReadU32(body[8:12]))
			v4 = round32(v4, leload.ReadU32(body[12:16]))
			body = body[16:]
		}
		h = bits.RotateLeft32(v1, 1) + bits.RotateLeft32(v2, 7) +
			bits.RotateLeft32(v3, 12) + bits.RotateLeft32(v4, 18)
		data = body
	} else {
		h = seed + prime32v5
	}

	h += uint32(n)
	return finalize32(h, data)
}

// XXHash32 is a streaming xxHash32 digester. The zero value is not usable;
// construct one with New32 or New32WithSeed. It implements hash.Hash32.
type XXHash32 struct {
	seed   uint32
	state  [4]uint32
	buf    [16]byte
	buflen int
	total  uint64
}

// New32 builds an XXHash32 seeded with 0.
func New32() *XXHash32 {
	return New32WithSeed(0)
}

// New32WithSeed builds an XXHash32 seeded with seed.
func New32WithSeed(seed uint32) *XXHash32 {
	h := &XXHash32{seed: seed}
	h.Reset()
	return h
}

// Reset restores the digester to its freshly-constructed state for its seed.
func (h *XXHash32) Reset() {
	h.state[0] = h.seed + prime32v1 + prime32v2
	h.state[1] = h.seed + prime32v2
	h.state[2] = h.seed
	h.state[3] = h.seed - prime32v1
	h.buflen = 0
	h.total = 0
}

// Size returns the number of bytes Sum will append: 4.
func (h *XXHash32) Size() int { return 4 }

// BlockSize returns the digester's natural chunk size: 16 bytes.
func (h *XXHash32) BlockSize() int { return 16 }

// Write folds p into the in-flight state, buffering any tail shorter than
// 16 bytes until a later Write or Sum32 completes it. It never errors: digest
// accumulation is a total function over its input.
func (h *XXHash32) Write(p []byte) (int, error) {
	n := len(p)
	h.total += uint64(n)

	if h.buflen > 0 {
		room := 16 - h.buflen
		if room > len(p) {
			room = len(p)
		}
		copy(h.buf[h.buflen:], p[:room])
		h.buflen += room
		p = p[room:]
		if h.buflen < 16 {
			return n, nil
		}
		h.state[0] = round32(h.state[0], leload.ReadU32(h.buf[0:4]))
		h.state[1] = round32(h.state[1], leload.ReadU32(h.buf[4:8]))
		h.state[2] = round32(h.state[2], leload.ReadU32(h.buf[8:12]))
		h.state[3] = round32(h.state[3], leload.ReadU32(h.buf[12:16]))
		h.buflen = 0
	}

	for len(p) >= 16 {
		h.state[0] = round32(h.state[0], leload.ReadU32(p[0:4]))
		h.state[1] = round32(h.state[1], leload.ReadU32(p[4:8]))
		h.state[2] = round32(h.state[2], leload.ReadU32(p[8:12]))
		h.state[3] = round32(h.state[3], leload.ReadU32(p[12:16]))
		p = p[16:]
	}

	if len(p) > 0 {
		copy(h.buf[:], p)
		h.buflen = len(p)
	}
	return n, nil
}

// Sum32 returns the digest of the bytes written so far. It does not mutate
// the digester and may be called repeatedly.
func (h *XXHash32) Sum32() uint32 {
	var acc uint32
	if h.total >= 16 {
		acc = bits.RotateLeft32(h.state[0], 1) + bits.RotateLeft32(h.state[1], 7) +
			bits.RotateLeft32(h.state[2], 12) + bits.RotateLeft32(h.state[3], 18)
	} else {
		acc = h.seed + prime32v5
	}
	acc += uint32(h.total)
	return finalize32(acc, h.buf[:h.buflen])
}

// Sum appends the big-endian digest to b, matching hash.Hash's contract.
func (h *XXHash32) Sum(b []byte) []byte {
	s := h.Sum32()
	return append(b, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
