// Package insertsort sorts integer slices in place with binary insertion sort.
//
// What
//
//   - Grow a sorted prefix a[0:i] one element at a time.
//   - Locate the slot for a[i] with a binary search over the prefix
//     (InsertionPoint), then block-shift a[pos:i] right by one and drop
//     the key into a[pos].
//   - Equal keys are inserted after their existing duplicates, so the
//     relative order of equal values is preserved.
//
// Why
//
//	The binary search cuts comparisons to O(n log n) while the data
//	movement stays that of plain insertion sort. It is a good fit for
//	short or nearly sorted slices.
//
// Complexity (n = len(a))
//
//   - Comparisons: O(n log n)
//   - Moves:       O(n²) worst case, O(n) on sorted input
//   - Memory:      O(1) extra
//
// Usage
//
//	a := []int{5, 2, 9, 1, 5, 6}
//	insertsort.InsertionSort(a) // a == [1 2 5 5 6 9]
//
//	// observe every placement:
//	insertsort.InsertionSort(a, insertsort.WithOnInsert(func(key, pos, from int) {
//	    log.Printf("key %d: %d -> %d", key, from, pos)
//	}))
package insertsort
