package text

import "sync"

// coverageMap memoizes which runes a font covers, two bits per rune:
// bit 0 marks the rune as looked up, bit 1 holds the answer.
// Blocks of 256 runes are allocated on first use, so sparse scripts stay
// cheap.
//
// coverageMap is safe for concurrent use.
type coverageMap struct {
	mu     sync.RWMutex
	blocks map[uint32]*coverageBlock
}

// coverageBlock holds 256 runes in 512 bits.
type coverageBlock [8]uint64

func newCoverageMap() *coverageMap {
	return &coverageMap{blocks: make(map[uint32]*coverageBlock)}
}

// bitPos returns the block index, word index and bit offset of r.
func bitPos(r rune) (blockIdx, word, shift uint32) {
	i := (uint32(r) & 0xFF) * 2
	return uint32(r) >> 8, i / 64, i % 64
}

// get reports whether r is covered, and whether it was looked up at all.
func (m *coverageMap) get(r rune) (covered, known bool) {
	blockIdx, word, shift := bitPos(r)

	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.blocks[blockIdx]
	if !ok {
		return false, false
	}
	w := b[word] >> shift
	return w&2 != 0, w&1 != 0
}

// set records the coverage of r.
func (m *coverageMap) set(r rune, covered bool) {
	blockIdx, word, shift := bitPos(r)

	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blocks[blockIdx]
	if !ok {
		b = &coverageBlock{}
		m.blocks[blockIdx] = b
	}
	b[word] |= 1 << shift
	if covered {
		b[word] |= 2 << shift
	} else {
		b[word] &^= 2 << shift
	}
}

// lookup returns the memoized coverage of r, calling has on a miss.
func (m *coverageMap) lookup(r rune, has func(rune) bool) bool {
	if covered, known := m.get(r); known {
		return covered
	}
	covered := has(r)
	m.set(r, covered)
	return covered
}
