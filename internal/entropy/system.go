package entropy

import (
	cryptorand "crypto/rand"
	"math/rand/v2"
	"sync"
	"time"
)

// NewSystem returns a Source backed by the operating system CSPRNG.
// The warn function is called once if the system source fails and the
// deterministic last-resort filler takes over.
func NewSystem(warn func(format string, args ...any)) *System {
	if warn == nil {
		warn = func(format string, args ...any) {}
	}
	return &System{warn: warn}
}

// System reads from crypto/rand, which covers the platform entropy
// syscall with a device-read fallback. Should both be unavailable, it
// degrades to a time-seeded PCG stream. That mode is not
// cryptographically secure and is reported through warn exactly once.
type System struct {
	warn func(format string, args ...any)

	once sync.Once
	mu   sync.Mutex
	weak *rand.Rand
}

func (s *System) Fill(p []byte) {
	if len(p) == 0 {
		return
	}

	if _, err := cryptorand.Read(p); err != nil {
		s.degraded(p, err)
	}
}

func (s *System) degraded(p []byte, cause error) {
	s.once.Do(func() {
		seed := uint64(time.Now().UnixNano())
		s.weak = rand.New(rand.NewPCG(seed, seed>>17))
		s.warn("system entropy unavailable, degrading to a deterministic filler: %v", cause)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range p {
		p[i] = byte(s.weak.Uint64())
	}
}
