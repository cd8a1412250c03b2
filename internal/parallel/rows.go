package parallel

// Rows calls fn for every row band [y0, y1) covering [0, height).
//
// With a nil pool, or a pool of one worker, fn is called once with the
// whole range on the calling goroutine. Otherwise the range is split into
// roughly two bands per worker and executed on the pool. Bands never
// overlap, so fn may write to its own rows without locking.
func Rows(p *WorkerPool, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if p == nil || p.Workers() <= 1 || height == 1 {
		fn(0, height)
		return
	}

	bands := min(p.Workers()*2, height)
	step := (height + bands - 1) / bands

	work := make([]func(), 0, bands)
	for y0 := 0; y0 < height; y0 += step {
		y1 := min(y0+step, height)
		work = append(work, func() { fn(y0, y1) })
	}
	p.ExecuteAll(work)
}
