package sequencer

import "sync/atomic"

const (
	seqBits = 12
	seqMask = 1<<seqBits - 1
)

// New returns a Sequencer reading wall-clock milliseconds from now and
// fresh sequence seeds from seed.
func New(now func() uint64, seed func() uint16) *Sequencer {
	return &Sequencer{
		now:  now,
		seed: seed,
	}
}

// Sequencer reserves (millisecond, sequence) pairs that are strictly
// increasing when packed as (ms<<12)|seq. All state lives in a single
// 64 bit word updated with compare-and-swap, so any number of
// goroutines can reserve concurrently without locks.
type Sequencer struct {
	now   func() uint64
	seed  func() uint16
	state atomic.Uint64
}

// Reserve returns a (millisecond, sequence) pair owned exclusively by
// the caller. The pair is never handed out twice.
//
// The millisecond is clamped to be non-decreasing, so a clock that
// jumps backwards keeps issuing pairs on the last observed millisecond.
// A fresh millisecond starts from a non-zero random seed. If the 12 bit
// sequence is exhausted within one millisecond, Reserve busy-waits for
// the clock to tick before trying again; that wait is bounded by real
// time, not by contention.
func (s *Sequencer) Reserve() (uint64, uint16) {
	for {
		var (
			nowMS   = s.now()
			prev    = s.state.Load()
			prevMS  = prev >> seqBits
			prevSeq = uint16(prev & seqMask)
			useMS   = max(nowMS, prevMS)
			seq     uint16
		)

		if useMS == prevMS {
			seq = prevSeq + 1
			if seq > seqMask {
				// 4096 reservations in one millisecond. Wait out the
				// clock in a tight loop; the tick is sub-millisecond
				// away so sleeping would only add latency.
				for s.now() <= prevMS {
				}
				continue
			}
		} else {
			seq = s.seed() & seqMask
			if seq == 0 {
				seq = 1
			}
		}

		next := useMS<<seqBits | uint64(seq)
		if s.state.CompareAndSwap(prev, next) {
			return useMS, seq
		}
		// Lost the race to a concurrent caller, reload and retry.
	}
}
