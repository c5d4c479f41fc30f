package astar

import "fmt"

// Find runs one query against state, seeding args.Start and expanding nodes
// via args.Neighbors until args.Goal is reached, the open list drains, or the
// live-slot budget (capacity/2 by default; see SetBudgetFraction) is
// exhausted.
//
// The sign of the return value classifies the outcome (see package doc):
// positive is a complete path to the goal, negative is a best-effort path to
// the nearest frontier node, zero means the open list drained without
// reaching the goal.
// A subsequent call to Path or Image operates on this query's result until
// the next Find call overwrites it.
func (s *State) Find(args Args) (int, error) {
	epoch := s.beginEpoch()

	start := s.findSlot(args.Start)
	s.setSlotEpoch(start, epoch)
	s.setSlotCoord(start, args.Start)
	s.setSlotGscore(start, 0)
	s.setSlotFscore(start, 0)
	s.setSlotCamefrom(start, start)
	s.setSlotNext(start, slotNone)

	s.setListHead(start)
	s.setLiveCount(1)

	terminal, found, err := s.run(args)
	if err != nil {
		return 0, err
	}

	s.setQueried()

	if !found {
		s.setTerminal(slotNone)
		s.setPathLength(0)
		return 0, nil
	}

	s.setTerminal(terminal)
	length := s.reconstructLength(terminal)
	s.setPathLength(length)

	if s.slotCoord(terminal) != args.Goal {
		return -int(length), nil
	}
	return int(length), nil
}

// run is the A* main loop. It returns the terminal slot index and whether
// any node (goal or best-effort frontier) was found; found is false only
// when the open list drains with no frontier left to report.
func (s *State) run(args Args) (terminal uint64, found bool, err error) {
	var neighbors [MaxNeighbors]Neighbor

	head := s.listHead()
	budget := s.budget()
	live := s.liveCount()

	for head != slotNone {
		current := head

		if s.slotCoord(current) == args.Goal {
			return current, true, nil
		}

		n := args.Neighbors(s.slotCoord(current), neighbors[:])
		if n < 0 || n > MaxNeighbors {
			return 0, false, fmt.Errorf("%w: got %d", ErrTooManyNeighbors, n)
		}

		if n == 0 && s.slotNext(current) == slotNone {
			// current is the last open node and a dead end: no path exists.
			return 0, false, nil
		}

		// Close current and advance the list head before relaxing its
		// neighbors, matching the reference engine's ordering so a neighbor
		// that loops back to current sees it as closed, not as the head.
		s.setSlotFscore(current, 0)
		head = s.slotNext(current)

		currentG := s.slotGscore(current)

		for i := 0; i < n; i++ {
			d := neighbors[i]
			tentativeG := currentG + uint64(d.Dist)

			slot := s.findSlot(d.Pos)
			switch {
			case !s.live(slot):
				s.setSlotEpoch(slot, s.epoch())
				s.setSlotCoord(slot, d.Pos)
				s.setSlotGscore(slot, tentativeG)
				s.setSlotFscore(slot, tentativeG+uint64(d.Estimate))
				s.setSlotCamefrom(slot, current)
				head = s.insertList(head, slot)
				live++

			case tentativeG < s.slotGscore(slot):
				wasOpen := s.slotFscore(slot) != 0
				s.setSlotGscore(slot, tentativeG)
				s.setSlotFscore(slot, tentativeG+uint64(d.Estimate))
				s.setSlotCamefrom(slot, current)

				if wasOpen {
					head = s.advanceList(head, slot)
				} else {
					head = s.insertList(head, slot)
				}

			default:
				// Equal or worse path to an already-known node: ignore.
			}
		}

		s.setListHead(head)
		s.setLiveCount(live)

		if live > budget {
			// Memory exhaustion fallback: the current head is the best
			// reachable frontier node (lowest fscore among the open set).
			return head, true, nil
		}
	}

	return 0, false, nil
}
