package grid

import (
	"errors"
	"testing"
)

func TestNewDense_Validation(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		dataLen int
		wantErr bool
	}{
		{"exact fit", 3, 2, 6, false},
		{"square", 3, 3, 9, false},
		{"single element", 1, 1, 1, false},
		{"zero by zero empty", 0, 0, 0, false},
		{"zero width empty", 0, 5, 0, false},
		{"zero height empty", 5, 0, 0, false},
		{"too short", 3, 2, 5, true},
		{"too long", 3, 2, 7, true},
		{"zero by zero nonempty", 0, 0, 1, true},
		{"zero width nonempty", 0, 5, 5, true},
		{"negative width", -1, 2, 2, true},
		{"negative height", 2, -1, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewDense(tt.width, tt.height, make([]int, tt.dataLen))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewDense(%d, %d, len %d) succeeded, want error",
						tt.width, tt.height, tt.dataLen)
				}
				if !errors.Is(err, ErrSizeMismatch) {
					t.Errorf("error %v is not ErrSizeMismatch", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDense(%d, %d, len %d) failed: %v",
					tt.width, tt.height, tt.dataLen, err)
			}
			if g.Width() != tt.width || g.Height() != tt.height {
				t.Errorf("got %dx%d, want %dx%d", g.Width(), g.Height(), tt.width, tt.height)
			}
		})
	}
}

func TestDenseAt(t *testing.T) {
	g, err := NewDense(3, 2, []int{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	tests := []struct {
		row, col int
		want     int
		ok       bool
	}{
		{0, 0, 1, true},
		{0, 2, 3, true},
		{1, 0, 4, true},
		{1, 2, 6, true},
		{-1, 0, 0, false},
		{0, -1, 0, false},
		{2, 0, 0, false},
		// Column overflow must not wrap into the next row even though the
		// linear index 0*3+3 would land on a valid element.
		{0, 3, 0, false},
	}

	for _, tt := range tests {
		got, ok := g.At(tt.row, tt.col)
		if ok != tt.ok || got != tt.want {
			t.Errorf("At(%d, %d) = (%d, %v), want (%d, %v)",
				tt.row, tt.col, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDenseAt_MatchesData(t *testing.T) {
	g := Zero[int](4, 3)
	for i := range g.MutData() {
		g.MutData()[i] = i * 10
	}

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			v, ok := g.At(row, col)
			if !ok {
				t.Fatalf("At(%d, %d) out of range", row, col)
			}
			if want := g.Data()[row*g.Width()+col]; v != want {
				t.Errorf("At(%d, %d) = %d, want %d", row, col, v, want)
			}
		}
	}
}

func TestDenseSet(t *testing.T) {
	g := Zero[int](2, 2)

	if !g.Set(1, 1, 9) {
		t.Error("Set(1, 1) reported out of range")
	}
	if v, _ := g.At(1, 1); v != 9 {
		t.Errorf("At(1, 1) = %d after Set, want 9", v)
	}
	if g.Set(2, 0, 1) || g.Set(0, 2, 1) || g.Set(-1, 0, 1) {
		t.Error("Set out of range reported success")
	}
}

func TestZeroAndFilled(t *testing.T) {
	z := Zero[float64](3, 2)
	if len(z.Data()) != 6 {
		t.Fatalf("Zero backing length = %d, want 6", len(z.Data()))
	}
	for i, v := range z.Data() {
		if v != 0 {
			t.Errorf("Zero element %d = %v, want 0", i, v)
		}
	}

	f := Filled(2, 2, 7)
	for i, v := range f.Data() {
		if v != 7 {
			t.Errorf("Filled element %d = %d, want 7", i, v)
		}
	}
}

func TestClone_Independent(t *testing.T) {
	g, _ := NewDense(2, 2, []int{1, 2, 3, 4})
	c := g.Clone()

	c.MutData()[0] = 99
	if g.Data()[0] != 1 {
		t.Error("Clone shares backing storage with original")
	}
	if !Equal[int](g, g.Clone()) {
		t.Error("Clone is not equal to its original")
	}
}

func TestMap(t *testing.T) {
	g, _ := NewDense(3, 1, []int{1, 2, 3})
	m := Map[int](g, func(v int) float64 { return float64(v) / 2 })

	if m.Width() != 3 || m.Height() != 1 {
		t.Fatalf("Map result is %dx%d, want 3x1", m.Width(), m.Height())
	}
	want := []float64{0.5, 1, 1.5}
	for i, v := range m.Data() {
		if v != want[i] {
			t.Errorf("Map element %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestEqual(t *testing.T) {
	a, _ := NewDense(2, 2, []int{1, 2, 3, 4})
	b, _ := NewDense(2, 2, []int{1, 2, 3, 4})
	c, _ := NewDense(2, 2, []int{1, 2, 3, 5})
	d, _ := NewDense(4, 1, []int{1, 2, 3, 4})

	if !Equal[int](a, b) {
		t.Error("identical grids reported unequal")
	}
	if Equal[int](a, c) {
		t.Error("grids with different elements reported equal")
	}
	if Equal[int](a, d) {
		t.Error("grids with different dimensions reported equal")
	}
}
