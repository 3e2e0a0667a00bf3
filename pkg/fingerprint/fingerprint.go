package fingerprint

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/yelinaung/go-haikunator"

	"vplot-go/pkg/vertex"
)

// Fingerprint identifies a vertex sequence by a stable sum over its
// coordinate bits. The same data always fingerprints the same, so the
// haiku name can be reused as a deterministic output filename.
type Fingerprint struct {
	Sum uint64
}

// Of computes the fingerprint of seq (FNV-1a over the IEEE 754 bits of
// every coordinate, in order).
func Of(seq vertex.Sequence) Fingerprint {
	h := fnv.New64a()
	var buf [8]byte
	for _, pt := range seq {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(pt.X))
		h.Write(buf[:])
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(pt.Y))
		h.Write(buf[:])
	}
	return Fingerprint{Sum: h.Sum64()}
}

// Haiku returns a haiku string representation of the fingerprint
func (fg Fingerprint) Haiku() string {
	return haikunator.New(int64(fg.Sum)).Haikunate()
}

// String returns a string representation of the fingerprint
func (fg Fingerprint) String() string { return fg.Haiku() }

// MatchesHaiku reports whether the fingerprint renders to haiku.
func (fg Fingerprint) MatchesHaiku(haiku string) bool { return fg.Haiku() == haiku }
