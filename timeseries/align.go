package timeseries

import "errors"

// Alignment describes the outcome of aligning two series to a common length.
type Alignment struct {
	Length    int  // common length after truncation
	Truncated bool // true when the input lengths differed
	DroppedY  int  // observations dropped from the first series
	DroppedX  int  // observations dropped from the second series
}

// Align truncates two series to their common prefix so both cover the same
// integer positions. Truncation is recoverable: it is reported through the
// returned Alignment rather than an error. Align fails only when either
// series is empty.
func Align(y, x *Series) (*Series, *Series, *Alignment, error) {
	if y == nil || x == nil || y.Len() == 0 || x.Len() == 0 {
		return nil, nil, nil, errors.New("both series must be non-empty")
	}

	n := y.Len()
	if x.Len() < n {
		n = x.Len()
	}

	info := &Alignment{
		Length:    n,
		Truncated: y.Len() != x.Len(),
		DroppedY:  y.Len() - n,
		DroppedX:  x.Len() - n,
	}

	if !info.Truncated {
		return y, x, info, nil
	}
	return y.Slice(0, n), x.Slice(0, n), info, nil
}
