package uuidv7_test

import (
	"testing"
	"time"

	"github.com/kyuff/uuidv7"
	"github.com/kyuff/uuidv7/internal/assert"
)

var sample = uuidv7.UUID{
	0x01, 0x23, 0x45, 0x67, 0x89, 0xAB,
	0x7F, 0xA3,
	0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x11, 0x22,
}

func TestUUID(t *testing.T) {
	t.Run("should format as plain lowercase hex", func(t *testing.T) {
		assert.Equal(t, "0123456789ab7fa3aabbccddeeff1122", sample.Hex())
	})

	t.Run("should format in canonical form", func(t *testing.T) {
		assert.Equal(t, "01234567-89ab-7fa3-aabb-ccddeeff1122", sample.String())
	})

	t.Run("should expose the embedded fields", func(t *testing.T) {
		assert.Equal(t, time.UnixMilli(0x0123456789AB).UTC(), sample.Time().UTC())
		assert.Equal(t, 0x0FA3, sample.Sequence())
		assert.Equal(t, 7, sample.Version())
		assert.Equal(t, 0b10, sample.Variant())
	})

	t.Run("should copy the raw bytes", func(t *testing.T) {
		// act
		got := sample.Bytes()
		got[0] = 0xFF

		// assert
		assert.Equal(t, 0x01, sample[0])
		assert.Equal(t, 16, len(got))
	})
}

func TestParse(t *testing.T) {
	t.Run("should parse the Hex form", func(t *testing.T) {
		// act
		got, err := uuidv7.Parse(sample.Hex())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, sample, got)
	})

	t.Run("should parse the canonical form", func(t *testing.T) {
		// act
		got, err := uuidv7.Parse(sample.String())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, sample, got)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		// act
		_, err := uuidv7.Parse("not-an-identifier")

		// assert
		assert.Error(t, err)
	})
}

func TestFromBytes(t *testing.T) {
	t.Run("should decode 16 raw bytes", func(t *testing.T) {
		// act
		got, err := uuidv7.FromBytes(sample.Bytes())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, sample, got)
	})

	t.Run("should reject a wrong length", func(t *testing.T) {
		// act
		_, err := uuidv7.FromBytes(sample.Bytes()[:10])

		// assert
		assert.Error(t, err)
	})
}

func TestMarshalText(t *testing.T) {
	t.Run("should round-trip through text", func(t *testing.T) {
		// arrange
		text, err := sample.MarshalText()
		assert.NoError(t, err)

		// act
		var got uuidv7.UUID
		err = got.UnmarshalText(text)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, sample, got)
	})

	t.Run("should reject invalid text", func(t *testing.T) {
		// act
		var got uuidv7.UUID
		err := got.UnmarshalText([]byte("nope"))

		// assert
		assert.Error(t, err)
		assert.Equal(t, uuidv7.Nil, got)
	})
}
