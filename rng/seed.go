package rng

// DeriveSeed sums the code points of s, wrapping at 2^32. Invalid UTF-8
// bytes count as U+FFFD. The empty string maps to 0.
func DeriveSeed(s string) uint32 {
	var sum uint32
	for _, r := range s {
		sum += uint32(r)
	}
	return sum
}
