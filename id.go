package guikit

import "sync/atomic"

// ID is an opaque widget handle issued by the host toolkit.
// The zero ID means "none": no parent, or the default font.
type ID uint64

// ItemID returns the ID itself, so a plain []ID satisfies Positioned.
func (id ID) ItemID() ID { return id }

// Positioned is anything that names a widget: a bare ID, or a row type
// whose first column is the widget's ID.
type Positioned interface {
	ItemID() ID
}

// IDSequence hands out increasing IDs. It is the generator behind
// MemoryHost and can back any host that has no native id source.
// The zero value starts at 1.
type IDSequence struct {
	last atomic.Uint64
}

// NewIDSequence returns a sequence whose first ID is first.
func NewIDSequence(first ID) *IDSequence {
	s := &IDSequence{}
	if first > 0 {
		s.last.Store(uint64(first) - 1)
	}
	return s
}

// GenerateID returns the next ID in the sequence.
func (s *IDSequence) GenerateID() ID {
	return ID(s.last.Add(1))
}

// Skip makes sure the sequence never returns id or anything below it.
// Used when callers register items under IDs they picked themselves.
func (s *IDSequence) Skip(id ID) {
	for {
		cur := s.last.Load()
		if cur >= uint64(id) || s.last.CompareAndSwap(cur, uint64(id)) {
			return
		}
	}
}
