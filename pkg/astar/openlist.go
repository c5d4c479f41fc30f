package astar

// The open list is a singly-linked chain threaded through each slot's next
// field, kept sorted ascending by fscore. Ties retain insertion order (a new
// entry at fscore f is spliced in after any existing entries at the same
// fscore). There is no auxiliary heap and no allocation: every operation
// below only rewrites next fields already living in the slot table.

// insertList splices slot idx (not currently in the list) into the list
// headed by head, preserving ascending-fscore order with FIFO among ties.
// It returns the new head.
func (s *State) insertList(head, idx uint64) uint64 {
	if head == slotNone || s.slotFscore(idx) < s.slotFscore(head) {
		s.setSlotNext(idx, head)
		return idx
	}

	current := head
	for {
		next := s.slotNext(current)
		if next == slotNone {
			s.setSlotNext(current, idx)
			s.setSlotNext(idx, slotNone)
			return head
		}
		if s.slotFscore(idx) < s.slotFscore(next) {
			s.setSlotNext(idx, next)
			s.setSlotNext(current, idx)
			return head
		}
		current = next
	}
}

// unlinkAt removes removeIdx from the list by walking forward from fromIdx
// until a node's next field points at removeIdx, then splicing replacement
// in its place. Unlike a rescan from head, the caller supplies a starting
// point already known to precede removeIdx in the (possibly momentarily
// inconsistent, mid-splice) chain, so this only ever walks the short tail
// between fromIdx and removeIdx's old predecessor.
func (s *State) unlinkAt(fromIdx, removeIdx, replacement uint64) {
	current := fromIdx
	for s.slotNext(current) != removeIdx {
		next := s.slotNext(current)
		assert(next != slotNone, "unlinkAt: %d not found walking from %d", removeIdx, fromIdx)
		current = next
	}
	s.setSlotNext(current, replacement)
}

// advanceList re-sorts slot idx (decrease-key) after its fscore has just
// been lowered in place. idx must already be linked into the list headed by
// head. Returns the new head.
//
// This splices idx into its new position first and only afterwards removes
// it from its old position, walking forward from idx's new successor rather
// than rescanning from head: idx's new position is always closer to the
// head than its old one, so the old predecessor is still reachable by
// continuing forward from there.
func (s *State) advanceList(head, idx uint64) uint64 {
	if idx == head {
		return head // already at the front; a lower fscore can't move it further
	}

	oldNext := s.slotNext(idx)

	if s.slotFscore(idx) <= s.slotFscore(head) {
		s.setSlotNext(idx, head)
		s.unlinkAt(head, idx, oldNext)
		return idx
	}

	current := head
	for {
		next := s.slotNext(current)
		if next == idx {
			// Already correctly placed relative to current.
			return head
		}
		if next == slotNone {
			s.setSlotNext(current, idx)
			s.setSlotNext(idx, slotNone)
			return head
		}
		if s.slotFscore(idx) <= s.slotFscore(next) {
			s.setSlotNext(idx, next)
			s.setSlotNext(current, idx)
			s.unlinkAt(next, idx, oldNext)
			return head
		}
		current = next
	}
}
