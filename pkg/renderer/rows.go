package renderer

import "sync/atomic"

// RowRange is a half-open range of buffer rows [Start, End)
type RowRange struct {
	Start int
	End   int
}

// Rows returns the number of rows in the range
func (r RowRange) Rows() int {
	return r.End - r.Start
}

// RowScheduler hands out disjoint row ranges to concurrent workers.
// Every row in [0, height) is handed out exactly once.
type RowScheduler struct {
	next   atomic.Int64
	height int
	stride int
}

// NewRowScheduler creates a scheduler over height rows claimed stride rows at a time
func NewRowScheduler(height, stride int) *RowScheduler {
	return &RowScheduler{
		height: height,
		stride: stride,
	}
}

// Next claims the next range of rows. It returns false once every row has been claimed.
// The final range is clamped to the image height.
func (rs *RowScheduler) Next() (RowRange, bool) {
	start := rs.next.Add(int64(rs.stride)) - int64(rs.stride)
	if start >= int64(rs.height) {
		return RowRange{}, false
	}

	end := min(start+int64(rs.stride), int64(rs.height))
	return RowRange{Start: int(start), End: int(end)}, true
}
