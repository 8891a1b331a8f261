package grid

// Map applies f to every element of g, producing a new Dense with the same
// dimensions. Useful for channel-wise type changes before and after a
// convolution pass.
func Map[T, U any](g Grid[T], f func(T) U) *Dense[U] {
	src := g.Data()
	out := make([]U, len(src))
	for i, v := range src {
		out[i] = f(v)
	}
	return &Dense[U]{width: g.Width(), height: g.Height(), data: out}
}

// Equal reports whether a and b have identical dimensions and elements.
func Equal[T comparable](a, b Grid[T]) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	ad, bd := a.Data(), b.Data()
	for i := range ad {
		if ad[i] != bd[i] {
			return false
		}
	}
	return true
}
