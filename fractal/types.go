package fractal

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// AreaFormula maps a shape's dimensional arguments to its area.
// It is treated as opaque: any error it returns reaches the caller unchanged.
type AreaFormula func(dims ...float64) (float64, error)

// Level is one iteration level: Count sub-shapes, each of area AreaPerShape.
type Level struct {
	Count        uint64
	AreaPerShape float64
}

func (l Level) String() string {
	return fmt.Sprintf("(%d, %v)", l.Count, l.AreaPerShape)
}

// Sequence holds one Level per iteration, index 0 being the unscaled shape.
type Sequence []Level

// TotalArea returns the sum of Count × AreaPerShape over every level.
func (s Sequence) TotalArea() float64 {
	total := 0.0
	for _, l := range s {
		total += float64(l.Count) * l.AreaPerShape
	}
	return total
}

// Fingerprint hashes the exact bit patterns of every level. Two sequences share a
// fingerprint only if they are bit-identical (barring hash collisions).
func (s Sequence) Fingerprint() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 16)
	for _, l := range s {
		buf = binary.BigEndian.AppendUint64(buf[:0], l.Count)
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(l.AreaPerShape))
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, l := range s {
		parts[i] = l.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
