// Package sampler decides which elapsed times a host asks the model for.
// Both presentation modes reduce to the same call: a fixed-frame animation
// walks Schedule, while direct scrubbing calls Scrub with a slider fraction.
package sampler

import (
	"context"
	"errors"
	"math"
	"runtime"
	"sync"

	"github.com/san-kum/freefall/internal/freefall"
)

// ErrCanceled indicates a render was interrupted by its context.
var ErrCanceled = errors.New("sampler: render canceled by context")

// Frame is one evaluated sample of an animation.
type Frame struct {
	Index int
	freefall.Sample
}

// FrameTime returns the elapsed time of frame i out of frames spread evenly
// over [0, duration].
func FrameTime(i, frames int, duration float64) float64 {
	if frames <= 1 {
		return 0
	}
	return float64(i) / float64(frames-1) * duration
}

// Schedule lists the elapsed times of a fixed-frame animation of a drop from h0.
func Schedule(m freefall.Model, h0 float64, frames int) []float64 {
	if frames < 1 {
		return nil
	}
	T := m.FallDuration(h0)
	times := make([]float64, frames)
	for i := range times {
		times[i] = FrameTime(i, frames, T)
	}
	return times
}

// Scrub evaluates the drop at a slider position; fraction is clamped to [0, 1].
func Scrub(m freefall.Model, p freefall.Params, fraction float64) freefall.Sample {
	if fraction < 0 || math.IsNaN(fraction) {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	t := fraction * m.FallDuration(p.InitialHeight)
	return m.Sample(p.InitialHeight, t, p.ShowFormulas)
}

// Render evaluates every frame of the animation. Frames are computed in
// parallel chunks; the model is stateless so the order of evaluation does not
// matter.
func Render(ctx context.Context, m freefall.Model, p freefall.Params, frames int) ([]Frame, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	times := Schedule(m, p.InitialHeight, frames)
	out := make([]Frame, len(times))

	var mu sync.Mutex
	var canceled bool
	ParallelFor(len(times), 32, func(start, end int) {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				mu.Lock()
				canceled = true
				mu.Unlock()
				return
			}
			out[i] = Frame{Index: i, Sample: m.Sample(p.InitialHeight, times[i], p.ShowFormulas)}
		}
	})
	if canceled || ctx.Err() != nil {
		return nil, ErrCanceled
	}
	return out, nil
}

// ParallelFor executes fn over [0, n) split into at most GOMAXPROCS chunks of
// at least minChunk items.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	numWorkers := runtime.GOMAXPROCS(0)
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
