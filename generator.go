package uuidv7

import (
	"context"
	"errors"
	"fmt"

	"github.com/kyuff/uuidv7/internal/entropy"
	"github.com/kyuff/uuidv7/internal/sequencer"
)

// ErrShortDestination is reported by Fill when the destination buffer
// cannot hold an identifier.
var ErrShortDestination = errors.New("destination shorter than 16 bytes")

// RandomSource supplies random bytes for sequence seeding and the
// entropy tail of generated identifiers. Implementations must write
// exactly len(p) bytes and be safe for concurrent use.
type RandomSource interface {
	Fill(p []byte)
}

// New returns a Generator with its own monotonic state. Identifiers
// from one Generator are unique and time-ordered among each other;
// independent Generators only collide with the odds of their random
// tails.
func New(opts ...Option) (*Generator, error) {
	cfg := applyOptions(defaultOptions(), opts...)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("[uuidv7] invalid configuration: %w", err)
	}

	g := &Generator{
		cfg: cfg,
		rand: entropy.NewHandle(func(format string, args ...any) {
			cfg.logger.WarnfCtx(context.Background(), format, args...)
		}),
	}
	if cfg.rand != nil {
		g.rand.Configure(cfg.rand)
	}

	g.seq = sequencer.New(
		func() uint64 {
			return uint64(cfg.clock().UnixMilli())
		},
		g.seedSequence,
	)

	return g, nil
}

// Generator mints identifiers. Safe for concurrent use.
type Generator struct {
	cfg  *Config
	rand *entropy.Handle
	seq  *sequencer.Sequencer
}

// NewV7 returns a version 7 identifier. Two calls that do not overlap
// in time yield strictly increasing values; overlapping calls yield
// distinct values.
func (g *Generator) NewV7() UUID {
	ms, seq := g.seq.Reserve()

	var tail [8]byte
	g.rand.Fill(tail[:])

	var id UUID

	// 48 bit millisecond timestamp, big-endian
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)

	// version 7 | high 4 bits of the sequence, then the low 8 bits
	id[6] = 0x70 | byte(seq>>8)&0x0F
	id[7] = byte(seq)

	// RFC variant 10 | top 6 bits of the tail, then the rest verbatim
	id[8] = tail[0]&0x3F | 0x80
	copy(id[9:], tail[1:])

	return id
}

// NewV4 returns a purely random version 4 identifier.
func (g *Generator) NewV4() UUID {
	var id UUID
	g.rand.Fill(id[:])

	id[6] = id[6]&0x0F | 0x40
	id[8] = id[8]&0x3F | 0x80

	return id
}

// Fill writes a fresh version 7 identifier into dst. A nil or short
// destination reports ErrShortDestination and nothing is written.
func (g *Generator) Fill(dst []byte) error {
	if len(dst) < Size {
		return fmt.Errorf("[uuidv7] got len %d: %w", len(dst), ErrShortDestination)
	}

	id := g.NewV7()
	copy(dst, id[:])
	return nil
}

// SetRandomSource replaces the randomness provider. A nil src resets
// to the default system source. Safe to call concurrently with
// generation; in-flight calls use either the old or the new source.
func (g *Generator) SetRandomSource(src RandomSource) {
	g.rand.Configure(src)
}

// seedSequence draws the 12 bit starting sequence for a fresh
// millisecond. The sequencer masks and forces it non-zero.
func (g *Generator) seedSequence() uint16 {
	var b [2]byte
	g.rand.Fill(b[:])
	return uint16(b[0])<<8 | uint16(b[1])
}
