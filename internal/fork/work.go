package fork

import "math"

// workFor returns 16^difficulty, saturating to math.MaxUint64 instead of
// wrapping. 16^16 == 2^64 exactly overflows a uint64, and difficulty is
// only capped at 64 by block validation, so any block of difficulty 16 or
// higher contributes the maximum possible work rather than silently
// wrapping to a small number.
func workFor(difficulty uint32) uint64 {
	if difficulty >= 16 {
		return math.MaxUint64
	}
	return uint64(1) << (4 * difficulty)
}

// saturatingAdd returns a+b, clamped to math.MaxUint64 on overflow.
func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
