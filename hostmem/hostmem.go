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

// Package hostmem defines the boundary through which the patch controllers
// touch the memory of the host game process. The controllers never own the
// memory they mutate; they have read/write access by convention, at absolute
// addresses recorded in the addresses package.
//
// GameCube main memory is big-endian. Every multi-byte access through these
// interfaces is big-endian regardless of the byte order of the machine this
// package is compiled for.
//
// Writes through the Memory interface take effect immediately. There is no
// caching and no batching; the next read sees the new value. The one
// exception is a write that lands inside a patched instruction, for which
// the CodeMemory interface exists: the PowerPC instruction cache is not
// coherent with data writes, so after WriteCode() the caller must call
// SyncICache() over the written range before the instruction can next
// execute. A data write never requires the sync. A code write always does.
package hostmem

// Memory provides typed access to host game memory at absolute 32-bit
// addresses.
type Memory interface {
	Read8(address uint32) (uint8, error)
	Read16(address uint32) (uint16, error)
	Read32(address uint32) (uint32, error)
	ReadF32(address uint32) (float32, error)

	Write8(address uint32, value uint8) error
	Write16(address uint32, value uint16) error
	Write32(address uint32, value uint32) error
	WriteF32(address uint32, value float32) error
}

// CodeMemory provides access to host game memory that holds instructions
// rather than data. Implementations record enough information for the
// instruction-cache contract described in the package documentation to be
// honoured (and, in the case of the simulated RAM type, asserted in tests).
type CodeMemory interface {
	WriteCode(address uint32, instruction uint32) error
	SyncICache(address uint32, length uint32) error
}

// The bounds of the console's main memory (mem1) as the game sees it through
// the cached address window. Every address in the addresses package falls
// inside these bounds.
const (
	OriginRAM = uint32(0x80000000)
	MemtopRAM = uint32(0x817fffff)
)
