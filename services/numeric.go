package services

import (
	"math"

	"github.com/spf13/cast"
)

// toNumber coerces arbitrary survey input to a finite float64. Survey
// data arrives from forms and stored JSON, so nil, empty strings,
// non-numeric strings, NaN and infinities all resolve to 0 because
// pricing must stay total over whatever the editor sends.
func toNumber(v any) float64 {
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// finite guards an already-typed float against NaN and infinities.
func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
