package astar

// slotOffset returns the byte offset of slot idx within the buffer.
func (s *State) slotOffset(idx uint64) int {
	assert(idx < s.capacity, "slot index %d out of range (capacity %d)", idx, s.capacity)
	return headerSize + int(idx)*slotSize
}

func (s *State) slotEpoch(idx uint64) uint64 {
	return readUint64(s.buf, s.slotOffset(idx)+slotOffEpoch)
}

func (s *State) setSlotEpoch(idx uint64, v uint64) {
	writeUint64(s.buf, s.slotOffset(idx)+slotOffEpoch, v)
}

func (s *State) slotCoord(idx uint64) Coord {
	return Coord(readUint32(s.buf, s.slotOffset(idx)+slotOffCoord))
}

func (s *State) setSlotCoord(idx uint64, v Coord) {
	writeUint32(s.buf, s.slotOffset(idx)+slotOffCoord, uint32(v))
}

func (s *State) slotGscore(idx uint64) uint64 {
	return readUint64(s.buf, s.slotOffset(idx)+slotOffGscore)
}

func (s *State) setSlotGscore(idx uint64, v uint64) {
	writeUint64(s.buf, s.slotOffset(idx)+slotOffGscore, v)
}

func (s *State) slotFscore(idx uint64) uint64 {
	return readUint64(s.buf, s.slotOffset(idx)+slotOffFscore)
}

func (s *State) setSlotFscore(idx uint64, v uint64) {
	writeUint64(s.buf, s.slotOffset(idx)+slotOffFscore, v)
}

func (s *State) slotCamefrom(idx uint64) uint64 {
	return readUint64(s.buf, s.slotOffset(idx)+slotOffCamefrom)
}

func (s *State) setSlotCamefrom(idx uint64, v uint64) {
	writeUint64(s.buf, s.slotOffset(idx)+slotOffCamefrom, v)
}

func (s *State) slotNext(idx uint64) uint64 {
	return readUint64(s.buf, s.slotOffset(idx)+slotOffNext)
}

func (s *State) setSlotNext(idx uint64, v uint64) {
	writeUint64(s.buf, s.slotOffset(idx)+slotOffNext, v)
}

// live reports whether slot idx belongs to the current epoch.
func (s *State) live(idx uint64) bool {
	return s.slotEpoch(idx) == s.epoch()
}

// hash computes the Fibonacci/Knuth multiplicative hash of coord into the
// table, matching the engine's fixed constant so probe sequences are
// reproducible across implementations.
func (s *State) hash(coord Coord) uint64 {
	const knuth = 2654435761
	return (uint64(knuth) * uint64(coord) >> (32 - s.pow2)) & (s.capacity - 1)
}

// findSlot probes starting at hash(coord) and returns the first slot that
// either already holds coord in the current epoch (hit) or is not live
// (empty). It never fails to terminate because the driver's budget check
// (see budget) stops the search while at least one slot is still not live,
// so the table can never fill.
func (s *State) findSlot(coord Coord) uint64 {
	idx := s.hash(coord)
	for {
		if !s.live(idx) || s.slotCoord(idx) == coord {
			return idx
		}
		idx++
		if idx >= s.capacity {
			idx = 0
		}
	}
}

// beginEpoch advances the generation counter for a new query, sweeping the
// whole table to invalidate every slot whenever the increment lands on the
// sentinel epoch zero. New seeds the header's epoch at the all-ones
// sentinel, so the very first query (sentinel+1 wraps to 0) and any future
// 64-bit wraparound are the same code path: no special-casing "first query"
// is needed. Every other query is O(1) to set up.
func (s *State) beginEpoch() uint64 {
	e := s.epoch() + 1 // wraps slotNone -> 0 on the first ever query
	s.setEpoch(e)

	if e == 0 {
		stamp := e - 1 // wraps back to slotNone; guaranteed != e
		for i := uint64(0); i < s.capacity; i++ {
			s.setSlotEpoch(i, stamp)
		}
	}

	return e
}
