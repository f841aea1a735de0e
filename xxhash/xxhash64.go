package xxhash

import (
	"math/bits"

	"github.com/valarauca/xxcrc/leload"
)

const (
	prime64v1 uint64 = 11400714785074694791
	prime64v2 uint64 = 14029467366897019727
	prime64v3 uint64 = 1609587929392839161
	prime64v4 uint64 = 9650029242287828579
	prime64v5 uint64 = 2870177450012600261
)

// round64 is the basic convolution every 8-byte lane undergoes.
func round64(acc, input uint64) uint64 {
	acc += input * prime64v2
	acc = bits.RotateLeft64(acc, 31)
	return acc * prime64v1
}

// mergeRound64 folds one of the four lane accumulators into the final hash.
func mergeRound64(acc, val uint64) uint64 {
	val = round64(0, val)
	acc ^= val
	return acc*prime64v1 + prime64v4
}

func avalanche64(h uint64) uint64 {
	h ^= h >> 33
	h *= prime64v2
	h ^= h >> 29
	h *= prime64v3
	h ^= h >> 32
	return h
}

// finalize64 folds the trailing <32 bytes of the stream into h. The 8-byte
// lane step uses the canonical single-multiplication tail form: each lane is
// folded with round64(0, lane) and merged via rotl27-then-multiply-add,
// matching upstream xxHash64 (not the double-multiply variant that appears
// in some transliterations).
func finalize64(h uint64, tail []byte) uint64 {
	for len(tail) >= 8 {
		k1 := round64(0, leload.ReadU64(tail))
		h ^= k1
		h = bits.RotateLeft64(h, 27)*prime64v1 + prime64v4
		tail = tail[8:]
	}
	if len(tail) >= 4 {
		h ^= uint64(leload.ReadU32(tail)) * prime64v1
		h = bits.RotateLeft64(h, 23)*prime64v2 + prime64v3
		tail = tail[4:]
	}
	for _, b := range tail {
		h ^= uint64(b) * prime64v5
		h = bits.RotateLeft64(h, 11) * prime64v1
	}
	return avalanche64(h)
}

// Sum64 computes the xxHash64 digest of data in one call, using seed 0.
func Sum64(data []byte) uint64 {
	return Sum64WithSeed(0, data)
}

// Sum64WithSeed computes the xxHash64 digest of data under the given seed.
func Sum64WithSeed(seed uint64, data []byte) uint64 {
	var h uint64
	n := len(data)

	if n >= 32 {
		v1 := seed + prime64v1 + prime64v2
		v2 := seed + prime64v2
		v3 := seed
		v4 := seed - prime64v1

		body := data
		for len(body) >= 32 {
			v1 = round64(v1, leload.ReadU64(body[0:8]))
			v2 = round64(v2, leload.ReadU64(body[8:16]))
			v3 = round64(v3, leload.ReadU64(body[16:24]))
			v4 = round64(v4, leload.ReadU64(body[24:32]))
			body = body[32:]
		}
		h = bits.RotateLeft64(v1, 1) + bits.RotateLeft64(v2, 7) +
			bits.RotateLeft64(v3, 12) + bits.RotateLeft64(v4, 18)
		h = mergeRound64(h, v1)
		h = mergeRound64(h, v2)
		h = mergeRound64(h, v3)
		h = mergeRound64(h, v4)
		data = body
	} else {
		h = seed + prime64v5
	}

	h += uint64(n)
	return finalize64(h, data)
}

// XXHash64 is a streaming xxHash64 digester. The zero value is not usable;
// construct one with New64 or New64WithSeed. It implements hash.Hash64.
type XXHash64 struct {
	seed   uint64
	state  [4]uint64
	buf    [32]byte
	buflen int
	total  uint64
}

// New64 builds an XXHash64 seeded with 0.
func New64() *XXHash64 {
	return New64WithSeed(0)
}

// New64WithSeed builds an XXHash64 seeded with seed.
func New64WithSeed(seed uint64) *XXHash64 {
	h := &XXHash64{seed: seed}
	h.Reset()
	return h
}

// Reset restores the digester to its freshly-constructed state for its seed.
func (h *XXHash64) Reset() {
	h.state[0] = h.seed + prime64v1 + prime64v2
	h.state[1] = h.seed + prime64v2
	h.state[2] = h.seed
	h.state[3] = h.seed - prime64v1
	h.buflen = 0
	h.total = 0
}

// Size returns the number of bytes Sum will append: 8.
func (h *XXHash64) Size() int { return 8 }

// BlockSize returns the digester's natural chunk size: 32 bytes.
func (h *XXHash64) BlockSize() int { return 32 }

// Write folds p into the in-flight state, buffering any tail shorter than
// 32 bytes until a later Write or Sum64 completes it. It never errors.
func (h *XXHash64) Write(p []byte) (int, error) {
	n := len(p)
	h.total += uint64(n)

	if h.buflen > 0 {
		room := 32 - h.buflen
		if room > len(p) {
			room = len(p)
		}
		copy(h.buf[h.buflen:], p[:room])
		h.buflen += room
		p = p[room:]
		if h.buflen < 32 {
			return n, nil
		}
		h.state[0] = round64(h.state[0], leload.ReadU64(h.buf[0:8]))
		h.state[1] = round64(h.state[1], leload.ReadU64(h.buf[8:16]))
		h.state[2] = round64(h.state[2], leload.ReadU64(h.buf[16:24]))
		h.state[3] = round64(h.state[3], leload.ReadU64(h.buf[24:32]))
		h.buflen = 0
	}

	for len(p) >= 32 {
		h.state[0] = round64(h.state[0], leload.ReadU64(p[0:8]))
		h.state[1] = round64(h.state[1], leload.ReadU64(p[8:16]))
		h.state[2] = round64(h.state[2], leload.ReadU64(p[16:24]))
		h.state[3] = round64(h.state[3], leload.ReadU64(p[24:32]))
		p = p[32:]
	}

	if len(p) > 0 {
		copy(h.buf[:], p)
		h.buflen = len(p)
	}
	return n, nil
}

// Sum64 returns the digest of the bytes written so far. It does not mutate
// the digester and may be called repeatedly.
func (h *XXHash64) Sum64() uint64 {
	var acc uint64
	if h.total >= 32 {
		acc = bits.RotateLeft64(h.state[0], 1) + bits.RotateLeft64(h.state[1], 7) +
			bits.RotateLeft64(h.state[2], 12) + bits.RotateLeft64(h.state[3], 18)
		acc = mergeRound64(acc, h.state[0])
		acc = mergeRound64(acc, h.state[1])
		acc = mergeRound64(acc, h.state[2])
		acc = mergeRound64(acc, h.state[3])
	} else {
		acc = h.seed + prime64v5
	}
	acc += h.total
	return finalize64(acc, h.buf[:h.buflen])
}

// Sum appends the big-endian digest to b, matching hash.Hash's contract.
func (h *XXHash64) Sum(b []byte) []byte {
	s := h.Sum64()
	return append(b,
		byte(s>>56), byte(s>>48), byte(s>>40), byte(s>>32),
		byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
