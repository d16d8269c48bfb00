package entropy

import "sync/atomic"

// Source fills a buffer with random bytes. Implementations must write
// exactly len(p) bytes and be safe for concurrent use.
type Source interface {
	Fill(p []byte)
}

// NewHandle returns a Handle that lazily installs a System source on
// first use. The warn function is invoked if that source ever degrades
// to its non-cryptographic filler.
func NewHandle(warn func(format string, args ...any)) *Handle {
	return &Handle{
		newDefault: func() Source {
			return NewSystem(warn)
		},
	}
}

// Handle is an atomically swappable reference to a Source. A reader
// always observes either the default source or a fully installed
// replacement; a single Fill never mixes two sources.
type Handle struct {
	current    atomic.Pointer[holder]
	newDefault func() Source
}

// holder keeps the interface value behind a single pointer so the swap
// is one atomic store.
type holder struct {
	src Source
}

// Configure installs src as the active source. A nil src resets to the
// default. Safe to call concurrently with in-flight Fill calls.
func (h *Handle) Configure(src Source) {
	if src == nil {
		src = h.newDefault()
	}
	h.current.Store(&holder{src: src})
}

// Fill writes len(p) random bytes from the active source.
func (h *Handle) Fill(p []byte) {
	h.source().Fill(p)
}

func (h *Handle) source() Source {
	if hold := h.current.Load(); hold != nil {
		return hold.src
	}

	// First use without configuration. Concurrent first-callers race
	// the CAS; losers adopt the winner's source, and the source they
	// constructed themselves is discarded without side effects.
	h.current.CompareAndSwap(nil, &holder{src: h.newDefault()})

	return h.current.Load().src
}
