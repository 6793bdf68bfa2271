// Package classics collects two small, well-known integer algorithms with
// exact, testable contracts and the command-line drivers that demo them.
//
// Packages:
//
//	factorial/  — n! over uint64, wrapping modulo 2^64 past 20!, plus a
//	              Checked variant that reports overflow
//	insertsort/ — in-place binary insertion sort for []int
//	cmd/        — the factorial and insertsort binaries
//
// Quick example:
//
//	factorial.Factorial(20)            // 2432902008176640000
//
//	a := []int{5, 2, 9, 1, 5, 6}
//	insertsort.InsertionSort(a)        // [1 2 5 5 6 9]
//
// Both algorithms are pure, allocation-free and single-threaded.
//
//	go install github.com/katalvlaran/classics/cmd/...
package classics
