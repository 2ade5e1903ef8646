// This file is part of GopherKart.
//
// GopherKart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherKart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherKart.  If not, see <https://www.gnu.org/licenses/>.

package hostmem

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// RAM is the simulation-side implementation of the Memory and CodeMemory
// interfaces: a bounded, big-endian image addressed from a base address. A
// production binding would hand the controllers a window onto the live game
// process where the host guarantees every catalogued address is valid; RAM
// exists so the controllers can run, and be tested, off-console.
//
// All access is bounds-checked against the image. RAM additionally keeps a
// record of WriteCode() and SyncICache() calls so that tests can assert the
// instruction-cache contract.
type RAM struct {
	base uint32
	data []byte

	syncs    []SyncRange
	unsynced []uint32
}

// SyncRange records one SyncICache call.
type SyncRange struct {
	Address uint32
	Length  uint32
}

// Contains reports whether the range covers the given address.
func (s SyncRange) Contains(address uint32) bool {
	return address >= s.Address && address < s.Address+s.Length
}

// NewRAM allocates a zeroed image of the given size, addressed from base.
func NewRAM(base uint32, size uint32) *RAM {
	return &RAM{
		base: base,
		data: make([]byte, size),
	}
}

// Contains reports whether n bytes at the given address fall inside the
// image.
func (ram *RAM) Contains(address uint32, n uint32) bool {
	return address >= ram.base && uint64(address)-uint64(ram.base)+uint64(n) <= uint64(len(ram.data))
}

func (ram *RAM) offset(address uint32, n uint32) (uint32, error) {
	if !ram.Contains(address, n) {
		return 0, errors.Errorf("hostmem: address out of range: %08x (%d bytes)", address, n)
	}
	return address - ram.base, nil
}

// Read8 implements the Memory interface.
func (ram *RAM) Read8(address uint32) (uint8, error) {
	o, err := ram.offset(address, 1)
	if err != nil {
		return 0, err
	}
	return ram.data[o], nil
}

// Read16 implements the Memory interface.
func (ram *RAM) Read16(address uint32) (uint16, error) {
	o, err := ram.offset(address, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(ram.data[o:]), nil
}

// Read32 implements the Memory interface.
func (ram *RAM) Read32(address uint32) (uint32, error) {
	o, err := ram.offset(address, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(ram.data[o:]), nil
}

// ReadF32 implements the Memory interface.
func (ram *RAM) ReadF32(address uint32) (float32, error) {
	v, err := ram.Read32(address)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// Write8 implements the Memory interface.
func (ram *RAM) Write8(address uint32, value uint8) error {
	o, err := ram.offset(address, 1)
	if err != nil {
		return err
	}
	ram.data[o] = value
	return nil
}

// Write16 implements the Memory interface.
func (ram *RAM) Write16(address uint32, value uint16) error {
	o, err := ram.offset(address, 2)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(ram.data[o:], value)
	return nil
}

// Write32 implements the Memory interface.
func (ram *RAM) Write32(address uint32, value uint32) error {
	o, err := ram.offset(address, 4)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(ram.data[o:], value)
	return nil
}

// WriteF32 implements the Memory interface.
func (ram *RAM) WriteF32(address uint32, value float32) error {
	return ram.Write32(address, math.Float32bits(value))
}

// WriteCode implements the CodeMemory interface. The written address is
// recorded as unsynced until a SyncICache call covers it.
func (ram *RAM) WriteCode(address uint32, instruction uint32) error {
	if err := ram.Write32(address, instruction); err != nil {
		return err
	}
	ram.unsynced = append(ram.unsynced, address)
	return nil
}

// SyncICache implements the CodeMemory interface. The simulated RAM has no
// instruction cache so the only effect is the recording of the call.
func (ram *RAM) SyncICache(address uint32, length uint32) error {
	if _, err := ram.offset(address, length); err != nil {
		return err
	}

	s := SyncRange{Address: address, Length: length}
	ram.syncs = append(ram.syncs, s)

	u := ram.unsynced[:0]
	for _, a := range ram.unsynced {
		if !s.Contains(a) {
			u = append(u, a)
		}
	}
	ram.unsynced = u

	return nil
}

// Syncs returns every SyncICache call recorded since construction or since
// the last ClearSyncLog.
func (ram *RAM) Syncs() []SyncRange {
	return ram.syncs
}

// UnsyncedCode returns the addresses of code writes not yet covered by a
// SyncICache call. A non-empty result at the end of a fan-out is a violation
// of the instruction-cache contract.
func (ram *RAM) UnsyncedCode() []uint32 {
	return ram.unsynced
}

// ClearSyncLog forgets all recorded SyncICache calls. Unsynced code writes
// are not forgotten.
func (ram *RAM) ClearSyncLog() {
	ram.syncs = ram.syncs[:0]
}

// WriteBytes copies a byte slice into the image. Used when seeding the
// simulation; the controllers only ever use the typed Memory interface.
func (ram *RAM) WriteBytes(address uint32, b []byte) error {
	o, err := ram.offset(address, uint32(len(b)))
	if err != nil {
		return err
	}
	copy(ram.data[o:], b)
	return nil
}

// ReadBytes copies n bytes out of the image.
func (ram *RAM) ReadBytes(address uint32, n uint32) ([]byte, error) {
	o, err := ram.offset(address, n)
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	copy(b, ram.data[o:])
	return b, nil
}
