package roomapi

import (
	"math"
	"strconv"
	"strings"
)

// Coerce converts a raw input string to the most specific JSON-serializable
// value it can represent. The policy is ordered: boolean, then integer, then
// float, then the original string. It is total - every input maps to exactly
// one output and no error is ever produced.
//
//	"true", "TRUE"  -> true
//	"42"            -> int64(42)
//	"3.14"          -> float64(3.14)
//	"abc"           -> "abc"
//
// Float results that are not representable in JSON (infinities, NaN) fall
// through to the string branch, preserving the invariant that every coerced
// value marshals cleanly.
func Coerce(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		if !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f
		}
	}

	return raw
}
