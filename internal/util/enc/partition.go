package enc

import (
	"golang.org/x/sync/errgroup"
)

// GroupRange is a half-open range [Begin, End) of complete 3-byte groups.
type GroupRange struct {
	Begin int
	End   int
}

// Len returns the number of groups in the range
func (r GroupRange) Len() int {
	return r.End - r.Begin
}

// Partition splits fullGroups complete groups into min(fullGroups, workers) contiguous,
// non-overlapping ranges which together cover [0, fullGroups) exactly once. Range sizes
// differ by at most one group. A workers value below 1 is treated as 1.
func Partition(fullGroups, workers int) []GroupRange {
	if fullGroups <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	p := workers
	if fullGroups < p {
		p = fullGroups
	}

	ranges := make([]GroupRange, p)
	for i := 0; i < p; i++ {
		ranges[i] = GroupRange{
			Begin: i * fullGroups / p,
			End:   (i + 1) * fullGroups / p,
		}
	}
	return ranges
}

// dispatchParallel runs encodeBlock for every range on its own goroutine and returns
// once all of them are done. Ranges must be disjoint: the goroutines share dst without
// any locking.
func dispatchParallel(src, dst []byte, ranges []GroupRange) {
	if len(ranges) == 1 {
		encodeBlock(src, dst, ranges[0].Begin, ranges[0].End)
		return
	}

	var g errgroup.Group
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			encodeBlock(src, dst, r.Begin, r.End)
			return nil
		})
	}

	// encodeBlock cannot fail
	_ = g.Wait()
}
