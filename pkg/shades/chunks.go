package shades

import(
	"golang.org/x/sync/errgroup"
)

// chunkPixels is how many pixels make up one unit of work. Chunk
// boundaries depend only on the image size, never on the number of
// workers, so merging per-chunk results in chunk order gives the same
// answer however many goroutines did the work.
const chunkPixels = 1 << 16

func numChunks(n, size int) int {
	if n <= 0 { return 0 }
	return (n + size - 1) / size
}

// forEachChunk splits [0,n) into chunks of `size` items and calls fn on
// each, using up to `workers` goroutines. It returns once every chunk is done.
func forEachChunk(n, size, workers int, fn func(chunk, lo, hi int)) {
	nChunks := numChunks(n, size)

	bounds := func(c int) (int, int) {
		lo := c * size
		hi := lo + size
		if hi > n { hi = n }
		return lo, hi
	}

	if workers <= 1 || nChunks <= 1 {
		for c:=0; c<nChunks; c++ {
			lo, hi := bounds(c)
			fn(c, lo, hi)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for c:=0; c<nChunks; c++ {
		c := c
		g.Go(func() error {
			lo, hi := bounds(c)
			fn(c, lo, hi)
			return nil
		})
	}
	_ = g.Wait() // the chunk funcs can't fail
}

// rowsPerChunk picks a row count so that a chunk of rows is about chunkPixels.
func rowsPerChunk(width int) int {
	if width <= 0 || width >= chunkPixels { return 1 }
	return chunkPixels / width
}
