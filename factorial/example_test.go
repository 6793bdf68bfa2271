package factorial_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/classics/factorial"
)

// ExampleFactorial prints a few exact factorials.
func ExampleFactorial() {
	for _, n := range []uint64{0, 5, 20} {
		fmt.Printf("%d! = %d\n", n, factorial.Factorial(n))
	}
	// Output:
	// 0! = 1
	// 5! = 120
	// 20! = 2432902008176640000
}

// ExampleFactorial_wraparound shows the modulo-2^64 behavior past 20.
func ExampleFactorial_wraparound() {
	fmt.Println(factorial.Factorial(21))
	fmt.Println(factorial.Factorial(66))
	// Output:
	// 14197454024290336768
	// 0
}

// ExampleChecked reports overflow instead of wrapping.
func ExampleChecked() {
	if _, err := factorial.Checked(21); errors.Is(err, factorial.ErrOverflow) {
		fmt.Println("error:", err)
	}
	// Output:
	// error: factorial: result overflows uint64: n=21
}
