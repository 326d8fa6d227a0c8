// Command lanebench reports the detected SIMD target and benchmarks the
// vectorized iteration engine against scalar loops and the vek library.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/gosimd/go-lanes/lanes"
	"github.com/gosimd/go-lanes/lanes/vectorize"
)

var (
	bufLen int
	width  int
	iters  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lanebench",
		Short: "Benchmark block-vectorized iteration",
	}
	rootCmd.PersistentFlags().IntVarP(&bufLen, "len", "n", 1_000_003, "buffer length (deliberately unaligned by default)")
	rootCmd.PersistentFlags().IntVarP(&width, "width", "w", 0, "lane count per block (0 = auto)")
	rootCmd.PersistentFlags().IntVarP(&iters, "iters", "i", 100, "iterations per measurement")

	rootCmd.AddCommand(infoCmd(), sumCmd(), axpyCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected SIMD target and lane counts",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("target:  %s (%d-bit registers)\n", lanes.CurrentName(), lanes.CurrentWidth()*8)
			fmt.Printf("float32: %d lanes\n", lanes.MaxLanes[float32]())
			fmt.Printf("float64: %d lanes\n", lanes.MaxLanes[float64]())
			fmt.Printf("int32:   %d lanes\n", lanes.MaxLanes[int32]())
			fmt.Printf("uint8:   %d lanes\n", lanes.MaxLanes[uint8]())
			info := vek32.Info()
			fmt.Printf("vek:     features=%v accelerated=%v\n", info.CPUFeatures, info.Acceleration)
		},
	}
}

func sumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum",
		Short: "Horizontal sum through the engine vs scalar vs vek",
		Run: func(cmd *cobra.Command, args []string) {
			data := fill(bufLen)
			w := blockWidth()
			pad := lanes.Zero[float32](w)

			vectorized := measure(func() float32 {
				acc := lanes.Zero[float32](w)
				it := vectorize.Slice(data, w).VectorizePad(pad)
				for v := range it.All() {
					acc = lanes.Add(acc, v)
				}
				return lanes.ReduceSum(acc)
			})
			scalar := measure(func() float32 {
				var s float32
				for _, x := range data {
					s += x
				}
				return s
			})
			vek := measure(func() float32 {
				return vek32.Sum(data)
			})

			report("vectorize", vectorized)
			report("scalar", scalar)
			report("vek32", vek)
		},
	}
}

func axpyCmd() *cobra.Command {
	var alpha float32
	cmd := &cobra.Command{
		Use:   "axpy",
		Short: "dst += alpha*x through zipped mutable iteration vs scalar vs vek",
		Run: func(cmd *cobra.Command, args []string) {
			x := fill(bufLen)
			dst := make([]float32, bufLen)
			w := blockWidth()
			av := lanes.Splat(w, alpha)

			vectorized := measure(func() float32 {
				it := vectorize.Zip(vectorize.MutSlice(dst, w), vectorize.Slice(x, w)).
					VectorizePad(vectorize.PairOf(lanes.Zero[float32](w), lanes.Zero[float32](w)))
				for pair := range it.All() {
					pair.A.Block = lanes.Add(pair.A.Block, lanes.Mul(av, pair.B))
				}
				return dst[0]
			})
			scalar := measure(func() float32 {
				for i, v := range x {
					dst[i] += alpha * v
				}
				return dst[0]
			})
			vek := measure(func() float32 {
				vek32.Add_Inplace(dst, vek32.MulNumber(x, alpha))
				return dst[0]
			})

			report("vectorize", vectorized)
			report("scalar", scalar)
			report("vek32", vek)
		},
	}
	cmd.Flags().Float32Var(&alpha, "alpha", 2.0, "scale factor")
	return cmd
}

func blockWidth() int {
	if width > 0 {
		return width
	}
	return lanes.MaxLanes[float32]()
}

func fill(n int) []float32 {
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(i%17) * 0.5
	}
	return data
}

// sink keeps the measured work observable so it cannot be optimized away.
var sink float32

// measure runs fn iters times and returns the average duration.
func measure(fn func() float32) time.Duration {
	start := time.Now()
	for i := 0; i < iters; i++ {
		sink += fn()
	}
	return time.Since(start) / time.Duration(iters)
}

func report(name string, d time.Duration) {
	fmt.Printf("%-10s %12v  (%.1f M elements/s)\n",
		name, d, float64(bufLen)/d.Seconds()/1e6)
}
