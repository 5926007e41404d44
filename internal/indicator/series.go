package indicator

// Series is a derived indicator series aligned index-for-index with its
// source bars. Values inside the warm-up window are not available and must
// never be read as zeros.
type Series struct {
	values []float64
	first  int
}

// NewSeries wraps a computed slice whose first lookback values are warm-up
// output and therefore undefined.
func NewSeries(values []float64, lookback int) Series {
	first := lookback
	if first < 0 {
		first = 0
	}
	if first > len(values) {
		first = len(values)
	}
	return Series{values: values, first: first}
}

// Len returns the number of points in the series, defined or not.
func (s Series) Len() int { return len(s.values) }

// At returns the value at index i and whether it is defined.
func (s Series) At(i int) (float64, bool) {
	if i < s.first || i >= len(s.values) {
		return 0, false
	}
	return s.values[i], true
}

// Defined reports whether index i holds a defined value.
func (s Series) Defined(i int) bool {
	return i >= s.first && i < len(s.values)
}
