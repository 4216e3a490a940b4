// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Memory represents the CPU's fixed-size, zero-initialized address space.
// Unlike a 16-bit machine, addresses and values here are both plain bytes;
// there is no addressing-mode indirection to model.
type Memory struct {
	b []byte
}

// NewMemory allocates a zero-initialized memory of the given size.
func NewMemory(size int) *Memory {
	return &Memory{b: make([]byte, size)}
}

// Size returns the number of addressable bytes.
func (m *Memory) Size() int {
	return len(m.b)
}

// LoadByte loads a single byte from addr.
func (m *Memory) LoadByte(addr int) byte {
	return m.b[addr]
}

// StoreByte stores v at addr.
func (m *Memory) StoreByte(addr int, v byte) {
	m.b[addr] = v
}

// Window returns a copy of count bytes starting at start, for inspection
// (e.g. the driver's memory-dump display).
func (m *Memory) Window(start, count int) []byte {
	end := start + count
	if end > len(m.b) {
		end = len(m.b)
	}
	if start > end {
		start = end
	}
	out := make([]byte, end-start)
	copy(out, m.b[start:end])
	return out
}
