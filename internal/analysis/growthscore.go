package analysis

import (
	"hash/fnv"
	"math"
)

// GrowthScore is an illustrative long-term growth indicator: a 0-100 score
// plus a 12-point bar series with seed-deterministic variation so the same
// municipality always renders the same waveform.
type GrowthScore struct {
	Score int       `json:"score"`
	Bars  []float64 `json:"bars"`
}

// ComputeGrowthScore derives the score from the growth figures and shapes
// the bars from a wavy baseline plus xorshift noise seeded by seedKey.
func ComputeGrowthScore(seedKey string, yoy, fiveYear float64) GrowthScore {
	base := clamp(30+fiveYear*0.8+yoy*1.2, 0, 100)

	h := fnv.New32a()
	h.Write([]byte(seedKey))
	rng := xorshift32{state: h.Sum32()}

	bars := make([]float64, 0, 12)
	for i := 0; i < 12; i++ {
		wave := math.Sin(float64(i)/12*math.Pi*1.6) * 8
		noise := (rng.next() - 0.5) * 10
		drift := float64(i) * 0.6
		bars = append(bars, clamp(base+wave+noise+drift, 0, 100))
	}

	return GrowthScore{Score: int(math.Round(base)), Bars: bars}
}

// xorshift32 is a tiny deterministic generator; quality does not matter
// here, only reproducibility per seed.
type xorshift32 struct {
	state uint32
}

func (x *xorshift32) next() float64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return float64(s) / math.MaxUint32
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
