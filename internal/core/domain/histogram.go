package domain

// Dataset is the ordered input fed to both the reference oracle and the solution.
type Dataset []int32

// Histogram holds one count per bin.
type Histogram []int32

// Sum returns the total of all bins as an int64 to avoid overflow on large inputs.
func (h Histogram) Sum() int64 {
	var total int64
	for _, v := range h {
		total += int64(v)
	}
	return total
}

// OutOfRange returns the index and value of the first entry outside [0, b), or -1.
func (d Dataset) OutOfRange(b int32) (int, int32) {
	for i, v := range d {
		if v < 0 || v >= b {
			return i, v
		}
	}
	return -1, 0
}
