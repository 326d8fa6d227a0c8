package vectorize

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosimd/go-lanes/lanes"
)

func TestReadVectorizerSharedAcrossGoroutines(t *testing.T) {
	const workers = 4
	data := make([]uint64, 8*64)
	for i := range data {
		data[i] = uint64(i)
	}

	vz, blocks := Slice(data, 8).Blocks()
	require.Equal(t, 64, blocks)

	sums := make([]uint64, workers)
	per := blocks / workers
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := w * per; idx < (w+1)*per; idx++ {
				sums[w] += lanes.ReduceSum(vz.Get(idx))
			}
		}()
	}
	wg.Wait()

	var total, want uint64
	for _, s := range sums {
		total += s
	}
	for _, x := range data {
		want += x
	}
	assert.Equal(t, want, total)
}

func TestWriteVectorizerDisjointRanges(t *testing.T) {
	const workers = 4
	data := make([]uint32, 4*32)

	vz, blocks := MutSlice(data, 4).Blocks()
	require.Equal(t, 32, blocks)

	per := blocks / workers
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := w * per; idx < (w+1)*per; idx++ {
				p := vz.Get(idx)
				p.Block = lanes.Splat(4, uint32(idx))
				p.Flush()
			}
		}()
	}
	wg.Wait()

	for i, x := range data {
		require.Equal(t, uint32(i/4), x, "element %d", i)
	}
}
