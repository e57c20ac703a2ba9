package helpers

// CompareLE compares two byte slices as little-endian unsigned integers:
// the byte at the highest index is the most significant, and the shorter
// slice is treated as zero-padded at its high end. Returns -1, 0 or 1.
func CompareLE(a, b []byte) int {
	for i := Max(len(a), len(b)) - 1; i >= 0; i-- {
		var av, bv byte
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}

		if av < bv {
			return -1
		} else if av > bv {
			return 1
		}
	}
	return 0
}
