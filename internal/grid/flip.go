package grid

// Flipped presents a grid rotated 180°, the orientation convolution
// requires of its kernel. Only At remaps; Data still exposes the wrapped
// grid's natural order. The view holds a reference and owns no storage.
type Flipped[T any] struct {
	src Grid[T]
}

// Flip wraps g in a 180° rotated view without copying.
func Flip[T any](g Grid[T]) Flipped[T] { return Flipped[T]{src: g} }

// Width returns the wrapped grid's width.
func (f Flipped[T]) Width() int { return f.src.Width() }

// Height returns the wrapped grid's height.
func (f Flipped[T]) Height() int { return f.src.Height() }

// Data returns the wrapped grid's backing sequence in its original order.
func (f Flipped[T]) Data() []T { return f.src.Data() }

// At reads (Height-1-row, Width-1-col) of the wrapped grid, so (0, 0)
// yields the bottom-right element.
func (f Flipped[T]) At(row, col int) (T, bool) {
	return f.src.At(f.src.Height()-1-row, f.src.Width()-1-col)
}
