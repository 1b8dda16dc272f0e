package ids

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator hands out identifiers for new records.
type Generator interface {
	NewID() string
}

// UUID generates random v4 UUIDs.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates "<prefix><n>" identifiers starting at 1. It is safe for
// concurrent use and is mostly useful where ids must be predictable.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++

	return fmt.Sprintf("%s%d", s.prefix, s.next)
}
