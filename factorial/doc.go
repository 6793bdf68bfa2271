// Package factorial computes n! over fixed-width 64-bit unsigned integers.
//
// What
//
//   - Factorial(n) returns the product 2·3·…·n, with 0! = 1! = 1.
//   - Checked(n) returns the same value but reports ErrOverflow instead of
//     wrapping once the product no longer fits in a uint64.
//
// Overflow contract
//
//	Factorial uses plain uint64 arithmetic, so results for n > MaxExact
//	wrap modulo 2^64. This is the documented behavior, not an error:
//
//	  Factorial(20) == 2432902008176640000   // largest exact value
//	  Factorial(21) == 14197454024290336768  // 21! mod 2^64
//	  Factorial(66) == 0                     // 2^64 divides 66!
//
//	From n = 66 on every result is 0, and the loop stops as soon as the
//	accumulator reaches 0. Any n up to math.MaxUint64 therefore returns
//	in at most 65 multiplications.
//
// Complexity
//
//   - Time:   O(min(n, 66))
//   - Memory: O(1)
//
// Usage
//
//	f := factorial.Factorial(10) // 3628800
//
//	v, err := factorial.Checked(25)
//	if errors.Is(err, factorial.ErrOverflow) {
//	    // 25! does not fit in 64 bits
//	}
package factorial
