package factorial

import "errors"

// MaxExact is the largest n for which n! fits in a uint64.
const MaxExact uint64 = 20

// ErrOverflow is returned by Checked when n! exceeds math.MaxUint64.
var ErrOverflow = errors.New("factorial: result overflows uint64")
