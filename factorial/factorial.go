package factorial

import (
	"fmt"
	"math/bits"
)

// Factorial returns n! computed iteratively in a uint64.
//
// Results for n > MaxExact wrap modulo 2^64 exactly like fixed-width
// unsigned multiplication; callers that need to detect this use Checked.
func Factorial(n uint64) uint64 {
	if n < 2 {
		return 1
	}

	result := uint64(1)
	// once result hits 0 every further product is 0 as well
	for i := uint64(2); i <= n && result != 0; i++ {
		result *= i
	}

	return result
}

// Checked returns n! or ErrOverflow when the product does not fit in a
// uint64. For n <= MaxExact it always equals Factorial(n).
func Checked(n uint64) (uint64, error) {
	result := uint64(1)
	for i := uint64(2); i <= n; i++ {
		hi, lo := bits.Mul64(result, i)
		if hi != 0 {
			return 0, fmt.Errorf("%w: n=%d", ErrOverflow, n)
		}
		result = lo
	}

	return result, nil
}
