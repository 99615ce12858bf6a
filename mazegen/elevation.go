package mazegen

import (
	"math"
	"math/rand"
)

// octaves is the number of sinusoid layers summed by Elevations.
const octaves = 3

// Elevations returns a smooth width×height field, indexed [i][j], scaled to
// [0, 1]. Each octave is a product of a column and a row sinusoid with random
// phase; octave k has frequency roughly 2^k times the first and half the
// amplitude of the one before.
func Elevations(width, height int, rng *rand.Rand) [][]float64 {
	type wave struct{ fi, fj, pi, pj, amp float64 }
	waves := make([]wave, octaves)
	for k := range waves {
		scale := math.Pow(2, float64(k))
		waves[k] = wave{
			fi:  scale * (0.5 + rng.Float64()) * 2 * math.Pi / float64(max(width, 1)),
			fj:  scale * (0.5 + rng.Float64()) * 2 * math.Pi / float64(max(height, 1)),
			pi:  rng.Float64() * 2 * math.Pi,
			pj:  rng.Float64() * 2 * math.Pi,
			amp: 1 / scale,
		}
	}

	field := make([][]float64, width)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range field {
		field[i] = make([]float64, height)
		for j := range field[i] {
			var v float64
			for _, w := range waves {
				v += w.amp * math.Sin(w.fi*float64(i)+w.pi) * math.Sin(w.fj*float64(j)+w.pj)
			}
			field[i][j] = v
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}

	span := hi - lo
	for i := range field {
		for j := range field[i] {
			if span <= 0 {
				field[i][j] = 0.5
				continue
			}
			field[i][j] = (field[i][j] - lo) / span
		}
	}
	return field
}
