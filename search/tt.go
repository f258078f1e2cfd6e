package search

// Flag classifies how a stored score bounds the true value.
type Flag uint8

const (
	Exact Flag = iota
	LowerBound
	UpperBound
)

// entry is one transposition-table slot. Key is kept alongside generation
// so a collision on index can be told apart from a genuine hit.
type entry struct {
	key        uint64
	score      int16 // normalised: stored = result - points[0] at store time
	move       uint8
	flag       Flag
	depth      uint8
	generation uint32
	used       bool
}

// Table is a fixed-size, open-addressed, generation-tagged transposition
// table. It is always-overwrite on store; entries from a prior generation
// are treated as absent rather than physically cleared, which is what lets
// the same table be reused across consecutive solves on one worker.
type Table struct {
	slots      []entry
	mask       uint64
	generation uint32
}

// NewTable allocates a table of 2^sizeLog2 slots.
func NewTable(sizeLog2 uint) *Table {
	size := uint64(1) << sizeLog2
	return &Table{
		slots: make([]entry, size),
		mask:  size - 1,
	}
}

// Bump advances the generation counter, logically invalidating every
// existing entry without touching the backing array.
func (t *Table) Bump() {
	t.generation++
}

func (t *Table) index(hash uint64) uint64 { return hash & t.mask }

// Probe looks up hash, returning the slot and whether it belongs to the
// current generation with a matching key.
func (t *Table) Probe(hash uint64) (entry, bool) {
	e := t.slots[t.index(hash)]
	if !e.used || e.generation != t.generation || e.key != hash {
		return entry{}, false
	}
	return e, true
}

// Store writes a result for hash, normalised against pointsAtStore (team
// 0's accumulated points at the time of the store).
func (t *Table) Store(hash uint64, result int, pointsAtStore uint16, move uint8, flag Flag, depth uint8) {
	t.slots[t.index(hash)] = entry{
		key:        hash,
		score:      int16(result - int(pointsAtStore)),
		move:       move,
		flag:       flag,
		depth:      depth,
		generation: t.generation,
		used:       true,
	}
}

// renormalise adds the current points[0] back onto a stored normalised score.
func renormalise(score int16, pointsNow uint16) int {
	return int(score) + int(pointsNow)
}

// ttMoveHint returns the TT's recorded best move for hash, if any.
// alphaBeta takes its move-ordering hint from its own Probe call instead.
func ttMoveHint(t *Table, hash uint64) (uint8, bool) {
	e, ok := t.Probe(hash)
	if !ok {
		return 0, false
	}
	return e.move, true
}
