package astar

import "encoding/binary"

// Buffer layout.
//
// A State's backing buffer is a fixed-size header followed by a
// power-of-two-sized array of fixed-size slots:
//
//	[ header (headerSize bytes) ][ slot 0 ][ slot 1 ] ... [ slot cap-1 ]
//
// Every field is little-endian, matching the byte-level layout convention
// used throughout this codebase's binary formats. There is no magic/version
// stamp and no checksum: unlike an on-disk cache, this buffer is never a
// valid interchange format (it is rebuilt fresh by New for every process)
// and is not read or written outside of this package.

// Header field offsets (bytes from buffer start).
const (
	offPow2       = 0x00 // uint32: capacity exponent, capacity = 1<<pow2
	offReserved   = 0x04 // uint32: padding, always zero
	offCapacity   = 0x08 // uint64: 1<<pow2, cached for convenience
	offEpoch      = 0x10 // uint64: current query generation
	offListHead   = 0x18 // uint64: slot index of open-list head, or slotNone
	offLiveCount  = 0x20 // uint64: number of live slots in the current query
	offTerminal   = 0x28 // uint64: terminal slot index of the last query, or slotNone
	offPathLength = 0x30 // uint64 (signed int64 bit pattern): path length of the last query
	offQueried    = 0x38 // uint64: 0 until the first Find call completes, 1 after

	headerSize = 0x40 // 64 bytes
)

// Slot field offsets (bytes from the start of a slot record).
const (
	slotOffEpoch    = 0x00 // uint64
	slotOffCoord    = 0x08 // uint32
	slotOffReserved = 0x0C // uint32: padding, always zero
	slotOffGscore   = 0x10 // uint64
	slotOffFscore   = 0x18 // uint64
	slotOffCamefrom = 0x20 // uint64: slot index
	slotOffNext     = 0x28 // uint64: slot index, or slotNone

	slotSize = 0x30 // 48 bytes
)

// slotNone is the sentinel slot index meaning "no slot" (end of list, no
// predecessor, no terminal found yet). It never collides with a real index
// because capacity is always well below 1<<64.
const slotNone = ^uint64(0)

func readUint32(buf []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(buf[off:])
}

func writeUint32(buf []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(buf[off:], v)
}

func readUint64(buf []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(buf[off:])
}

func writeUint64(buf []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(buf[off:], v)
}
