package lanes

import (
	"testing"
)

func TestElementwise(t *testing.T) {
	a := New(4, []int32{10, 20, 30, 40})
	b := New(4, []int32{4, 3, 2, 1})

	t.Run("add", func(t *testing.T) {
		want := []int32{14, 23, 32, 41}
		got := Add(a, b)
		for i, w := range want {
			if got.At(i) != w {
				t.Errorf("lane %d: got %d, want %d", i, got.At(i), w)
			}
		}
	})

	t.Run("sub", func(t *testing.T) {
		want := []int32{6, 17, 28, 39}
		got := Sub(a, b)
		for i, w := range want {
			if got.At(i) != w {
				t.Errorf("lane %d: got %d, want %d", i, got.At(i), w)
			}
		}
	})

	t.Run("mul", func(t *testing.T) {
		want := []int32{40, 60, 60, 40}
		got := Mul(a, b)
		for i, w := range want {
			if got.At(i) != w {
				t.Errorf("lane %d: got %d, want %d", i, got.At(i), w)
			}
		}
	})

	t.Run("min max", func(t *testing.T) {
		lo := Min(a, b)
		hi := Max(a, b)
		for i := 0; i < 4; i++ {
			if lo.At(i) != b.At(i) {
				t.Errorf("min lane %d: got %d, want %d", i, lo.At(i), b.At(i))
			}
			if hi.At(i) != a.At(i) {
				t.Errorf("max lane %d: got %d, want %d", i, hi.At(i), a.At(i))
			}
		}
	})

	t.Run("mismatched widths use the shorter", func(t *testing.T) {
		got := Add(New(2, []int32{1, 2}), b)
		if got.NumLanes() != 2 {
			t.Errorf("got %d lanes, want 2", got.NumLanes())
		}
	})
}

func TestReductions(t *testing.T) {
	t.Run("sum", func(t *testing.T) {
		v := New(4, []uint32{1, 2, 3, 4})
		if got := ReduceSum(v); got != 10 {
			t.Errorf("got %d, want 10", got)
		}
	})

	t.Run("sum wraps", func(t *testing.T) {
		v := New(2, []uint8{250, 10})
		if got := ReduceSum(v); got != 4 {
			t.Errorf("got %d, want 4", got)
		}
	})

	t.Run("product", func(t *testing.T) {
		v := New(4, []int64{2, 3, 4, 5})
		if got := ReduceMul(v); got != 120 {
			t.Errorf("got %d, want 120", got)
		}
	})

	t.Run("empty product is one", func(t *testing.T) {
		if got := ReduceMul(Zero[float32](0)); got != 1 {
			t.Errorf("got %v, want 1", got)
		}
	})
}

func TestGatherScatter(t *testing.T) {
	t.Run("gather", func(t *testing.T) {
		src := []float32{0, 10, 20, 30, 40, 50}
		v := GatherIndex(src, []int{5, 0, 3})
		want := []float32{50, 0, 30}
		if v.NumLanes() != 3 {
			t.Fatalf("got %d lanes, want 3", v.NumLanes())
		}
		for i, w := range want {
			if v.At(i) != w {
				t.Errorf("lane %d: got %v, want %v", i, v.At(i), w)
			}
		}
	})

	t.Run("scatter", func(t *testing.T) {
		dst := make([]int16, 6)
		ScatterIndex(New(3, []int16{7, 8, 9}), dst, []int{4, 1, 0})
		want := []int16{9, 8, 0, 0, 7, 0}
		for i, w := range want {
			if dst[i] != w {
				t.Errorf("dst[%d]: got %d, want %d", i, dst[i], w)
			}
		}
	})

	t.Run("gather then scatter round trip", func(t *testing.T) {
		src := []uint64{1, 2, 3, 4}
		idx := []int{3, 1, 2, 0}
		dst := make([]uint64, 4)
		ScatterIndex(GatherIndex(src, idx), dst, idx)
		for i, w := range src {
			if dst[i] != w {
				t.Errorf("dst[%d]: got %d, want %d", i, dst[i], w)
			}
		}
	})

	t.Run("out of range index panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic for out-of-range gather index")
			}
		}()
		GatherIndex([]int32{1, 2}, []int{2})
	})
}
