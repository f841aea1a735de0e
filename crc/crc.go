// Copyright 2016, S&K Software Development Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crc implements generic CRC calculations up to 64 bits wide: a
// bit-by-bit reference implementation used as a correctness oracle, and a
// table-driven engine (one-shot and streaming) built from the lookup-table
// generator in table.go.
//
// This package has been largely inspired by Ross Williams' 1993 paper "A
// Painless Guide to CRC Error Detection Algorithms". A good list of
// parameter sets for various CRC algorithms can be found at
// http://reveng.sourceforge.net/crc-catalogue/.
package crc

import "fmt"

// Parameters represents the set of parameters defining a particular CRC
// algorithm: its polynomial, initial register value, input/output
// reflection, and final XOR mask.
type Parameters struct {
	Width      uint   // Width of the CRC, in bits. Must be 16, 32 or 64.
	Polynomial uint64 // Polynomial used in this CRC calculation.
	ReflectIn  bool   // Whether input bytes should be reflected before processing.
	ReflectOut bool   // Whether the final register should be reflected.
	Init       uint64 // Initial value for the CRC register.
	FinalXor   uint64 // Value XORed with the register before it is returned.
}

func (p *Parameters) validate() {
	switch p.Width {
	case 16, 32, 64:
	default:
		panic(fmt.Sprintf("crc: unsupported width %d (must be 16, 32 or 64)", p.Width))
	}
	if p.Polynomial == 0 {
		panic("crc: polynomial must not be zero")
	}
}

func (p *Parameters) mask() uint64 {
	return (uint64(1) << p.Width) - 1
}

// reflect reverses the order of the low count bits of in.
func reflect(in uint64, count uint) uint64 {
	ret := in
	for idx := uint(0); idx < count; idx++ {
		srcbit := uint64(1) << idx
		dstbit := uint64(1) << (count - idx - 1)
		if (in & srcbit) != 0 {
			ret |= dstbit
		} else {
			ret = ret &^ dstbit
		}
	}
	return ret
}

// CalculateCRC implements the straightforward bit-by-bit calculation: no
// precomputed table required. It is the correctness oracle that the
// table-driven Hash below is checked against, and is not the intended hot
// path for large inputs.
func CalculateCRC(params *Parameters, data []byte) uint64 {
	params.validate()

	curValue := params.Init
	topbit := uint64(1) << (params.Width - 1)

	for _, b := range data {
		curByte := uint64(b)
		if params.ReflectIn {
			curByte = reflect(curByte, 8)
		}
		curValue ^= curByte << (params.Width - 8)
		for j := 0; j < 8; j++ {
			if curValue&topbit != 0 {
				curValue = (curValue << 1) ^ params.Polynomial
			} else {
				curValue = curValue << 1
			}
		}
	}

	if params.ReflectOut {
		curValue = reflect(curValue, params.Width)
	}
	return (curValue ^ params.FinalXor) & params.mask()
}

// Hash is the partial evaluation of a table-driven CRC calculation. It
// implements the hash.Hash contract (Size/BlockSize/Write/Sum/Reset) the
// way the teacher package's own Hash type does.
type Hash struct {
	params   Parameters
	table    []uint64 // widened to uint64 regardless of Width; see table.go
	curValue uint64
	size     uint
}

// NewHash builds a Hash for the given parameter set, generating its lookup
// table via BuildTable16/32/64 according to params.Width. Panics if params
// is invalid (width not in {16,32,64}, or a zero polynomial) — CRC
// parameter sets are rejected at construction, never at digest time.
func NewHash(params *Parameters) *Hash {
	p := *params
	p.validate()

	h := &Hash{
		params: p,
		size:   (p.Width + 7) / 8,
	}

	switch p.Width {
	case 16:
		h.table = widenTable16(BuildTable16(uint16(p.Polynomial), p.ReflectIn))
	case 32:
		h.table = widenTable32(BuildTable32(uint32(p.Polynomial), p.ReflectIn))
	case 64:
		h.table = widenTable64(BuildTable64(p.Polynomial, p.ReflectIn))
	}
	h.Reset()
	return h
}

// Size returns the number of bytes Sum will return. See hash.Hash.
func (h *Hash) Size() int { return int(h.size) }

// BlockSize returns the hash's underlying block size. See hash.Hash.
func (h *Hash) BlockSize() int { return 1 }

// Reset restores the Hash to its initial, freshly-constructed state.
func (h *Hash) Reset() {
	h.curValue = h.params.Init
	if h.params.ReflectIn {
		h.curValue = reflect(h.params.Init, h.params.Width)
	}
}

// Sum appends the current CRC to b, most significant byte first, and
// returns the resulting slice. It does not mutate the Hash.
func (h *Hash) Sum(in []byte) []byte {
	s := h.CRC()
	for i := h.size; i > 0; {
		i--
		in = append(in, byte(s>>(8*i)))
	}
	return in
}

// Write implements io.Writer via Update. It never returns an error: CRC
// accumulation is a total function over its input.
func (h *Hash) Write(p []byte) (n int, err error) {
	h.Update(p)
	return len(p), nil
}

// Update folds p into the in-flight CRC register.
func (h *Hash) Update(p []byte) {
	if h.params.ReflectIn {
		for _, v := range p {
			h.curValue = h.table[(byte(h.curValue)^v)&0xFF] ^ (h.curValue >> 8)
		}
	} else {
		shift := h.params.Width - 8
		for _, v := range p {
			h.curValue = h.table[(byte(h.curValue>>shift)^v)&0xFF] ^ (h.curValue << 8)
		}
	}
}

// CRC returns the CRC value for the data processed so far. Calling CRC
// repeatedly without an intervening Update/Write returns the same value and
// never mutates the accumulator.
func (h *Hash) CRC() uint64 {
	ret := h.curValue
	if h.params.ReflectOut != h.params.ReflectIn {
		ret = reflect(ret, h.params.Width)
	}
	return (ret ^ h.params.FinalXor) & h.params.mask()
}

// CalculateCRC resets the Hash, processes data in one call, and returns the
// resulting CRC — the table-driven one-shot convenience wrapper.
func (h *Hash) CalculateCRC(data []byte) uint64 {
	h.Reset()
	h.Update(data)
	return h.CRC()
}

// CRC16 is a convenience accessor sparing callers an explicit conversion
// when working with a 16-bit parameter set.
func (h *Hash) CRC16() uint16 { return uint16(h.CRC()) }

// CRC32 is a convenience accessor sparing callers an explicit conversion
// when working with a 32-bit parameter set.
func (h *Hash) CRC32() uint32 { return uint32(h.CRC()) }

// CRC64 is a convenience accessor sparing callers an explicit conversion
// when working with a 64-bit parameter set.
func (h *Hash) CRC64() uint64 { return h.CRC() }

// Checksum computes the CRC of data in one call using the table-driven
// engine, without the caller needing to manage a Hash instance.
func Checksum(params *Parameters, data []byte) uint64 {
	return NewHash(params).CalculateCRC(data)
}
