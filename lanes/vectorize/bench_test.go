package vectorize

import (
	"testing"

	"github.com/gosimd/go-lanes/lanes"
)

func BenchmarkVectorizeSum(b *testing.B) {
	data := make([]float32, 4096)
	for i := range data {
		data[i] = float32(i)
	}
	width := lanes.MaxLanes[float32]()
	pad := lanes.Zero[float32](width)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc := lanes.Zero[float32](width)
		for v := range Slice(data, width).VectorizePad(pad).All() {
			acc = lanes.Add(acc, v)
		}
		_ = lanes.ReduceSum(acc)
	}
}

func BenchmarkScalarSum(b *testing.B) {
	data := make([]float32, 4096)
	for i := range data {
		data[i] = float32(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var s float32
		for _, x := range data {
			s += x
		}
		_ = s
	}
}

func BenchmarkMutAddOne(b *testing.B) {
	data := make([]uint32, 4096)
	width := lanes.MaxLanes[uint32]()
	ones := lanes.Splat(width, uint32(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for p := range MutSlice(data, width).Vectorize().All() {
			p.Block = lanes.Add(p.Block, ones)
		}
	}
}

func BenchmarkVectorizerGet(b *testing.B) {
	data := make([]float64, 4096)
	width := lanes.MaxLanes[float64]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vz, blocks := Slice(data, width).Blocks()
		for idx := 0; idx < blocks; idx++ {
			_ = vz.Get(idx)
		}
	}
}
