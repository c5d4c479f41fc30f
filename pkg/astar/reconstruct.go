package astar

// reconstructLength counts the predecessor chain from terminal back to the
// start slot (identified by gscore == 0, not by camefrom == self) and
// returns the path length.
func (s *State) reconstructLength(terminal uint64) int64 {
	count := int64(1)
	n := terminal
	for s.slotGscore(n) != 0 {
		n = s.slotCamefrom(n)
		count++
	}
	return count
}

// skipPredecessors walks n steps back from the terminal slot of the last
// query and returns the slot index reached.
func (s *State) skipPredecessors(n int64) uint64 {
	idx := s.terminal()
	for i := int64(0); i < n; i++ {
		idx = s.slotCamefrom(idx)
	}
	return idx
}

// Path copies the path reconstructed by the last call to Find into out and
// returns the true path length (which may exceed len(out)).
//
// If len(out) equals the true length, out is filled start-to-goal. If out is
// shorter, the path is truncated toward the start: only the len(out)
// coordinates nearest the goal are written, still in start-to-goal order
// within that window. If out is longer than needed, only out[0:length] is
// written and the remainder of out is left untouched.
//
// Path returns ErrNoQuery if no Find call has completed on this State.
func (s *State) Path(out []Coord) (int, error) {
	if !s.queried() {
		return 0, ErrNoQuery
	}

	length := s.pathLength()
	if length == 0 {
		return 0, nil
	}

	fillLen := len(out)
	idx := s.terminal()

	switch {
	case fillLen == int(length):
		// fill back-to-front over the whole window below
	case int64(fillLen) < length:
		// keep idx at the terminal: the fill below then writes the fillLen
		// coordinates nearest the goal
	default:
		fillLen = int(length)
	}

	for i := fillLen - 1; i >= 0; i-- {
		out[i] = s.slotCoord(idx)
		idx = s.slotCamefrom(idx)
	}

	return int(length), nil
}
