// Package gameid generates sortable game identifiers: a UUIDv7 encoded as
// 26 characters of lowercase Crockford base32. IDs generated later sort
// after earlier ones.
package gameid

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"
	"time"

	"github.com/coder/quartz"
)

// Length is the number of characters in an encoded ID
const Length = 26

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator creates game IDs from a clock and a source of randomness
type Generator struct {
	clock quartz.Clock
	rng   *mrand.Rand // nil uses crypto/rand
}

// NewGenerator creates a generator. A nil clock uses the real clock and a
// nil rng uses crypto/rand; tests pass both for reproducible IDs.
func NewGenerator(clock quartz.Clock, rng *mrand.Rand) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rng: rng}
}

// Generate creates a new game ID with the real clock and crypto/rand
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate creates a new game ID
func (g *Generator) Generate() string {
	var id [16]byte

	// 48-bit millisecond timestamp, big-endian
	ms := uint64(g.clock.Now().UnixMilli())
	binary.BigEndian.PutUint64(id[0:8], ms<<16)

	if g.rng != nil {
		binary.BigEndian.PutUint64(id[6:14], g.rng.Uint64())
		binary.BigEndian.PutUint16(id[14:16], uint16(g.rng.Uint32()))
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10

	return encoding.EncodeToString(id[:])
}

// Validate checks that id is a well-formed game ID
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	raw, err := encoding.DecodeString(id)
	if err != nil {
		return fmt.Errorf("invalid game ID %q: %w", id, err)
	}
	if raw[6]>>4 != 7 {
		return fmt.Errorf("game ID %q is not a version 7 UUID", id)
	}
	return nil
}

// Time returns the creation time embedded in id
func Time(id string) (time.Time, error) {
	if err := Validate(id); err != nil {
		return time.Time{}, err
	}
	raw, _ := encoding.DecodeString(id)
	ms := binary.BigEndian.Uint64(raw[0:8]) >> 16
	return time.UnixMilli(int64(ms)), nil
}
