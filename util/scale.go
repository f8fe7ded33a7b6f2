package util

// Range is a closed interval with Low <= High, used as the source or
// destination domain of Scale.
type Range struct {
	Low  float64
	High float64
}

// Scale linearly maps v from src to dst, clamping to the destination
// bounds when v falls outside src. src.Low must differ from src.High;
// a degenerate source range is the caller's bug, not handled here.
func Scale(v float64, src, dst Range) float64 {
	if v < src.Low {
		return dst.Low
	}
	if v > src.High {
		return dst.High
	}
	return (v-src.Low)/(src.High-src.Low)*(dst.High-dst.Low) + dst.Low
}
