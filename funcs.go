package scicalc

import (
	"math"
	"sort"
)

// Func is a function from reals to reals.
type Func func(x float64) float64

var globalfuncs = map[string]Func{
	"sqrt": math.Sqrt,
	"cbrt": math.Cbrt,

	// trig, in degrees
	"sin":  func(x float64) float64 { return math.Sin(radians(x)) },
	"cos":  func(x float64) float64 { return math.Cos(radians(x)) },
	"tan":  func(x float64) float64 { return math.Tan(radians(x)) },
	"asin": func(x float64) float64 { return degrees(math.Asin(x)) },
	"acos": func(x float64) float64 { return degrees(math.Acos(x)) },
	"atan": func(x float64) float64 { return degrees(math.Atan(x)) },

	"log":   math.Log,
	"log10": math.Log10,
	"exp":   math.Exp,
	"abs":   math.Abs,
	"fact":  func(x float64) float64 { return float64(Factorial(truncate(x))) },
}

// digitfuncs lists the function names that contain digits. The cursor needs
// these to know when digits following letters are part of a name.
var digitfuncs = []string{"log10"}

// Funcs returns the names of the functions recognized by the parser in sorted
// order.
func Funcs() []string {
	v := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		v = append(v, k)
	}
	sort.Strings(v)
	return v
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// truncate converts x to an int32-ranged integer, rounding toward zero. NaN
// becomes 0 and values beyond the int32 range saturate.
func truncate(x float64) int {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt32:
		return math.MaxInt32
	case x <= math.MinInt32:
		return math.MinInt32
	}
	return int(x)
}
