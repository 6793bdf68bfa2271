package insertsort

// InsertionSort sorts a in non-decreasing order, in place.
//
// Algorithm:
//  1. a[0:1] is a sorted prefix.
//  2. For i = 1..len(a)-1:
//     key = a[i]
//     pos = InsertionPoint(a, i, key)  // first slot in a[0:i] holding a value > key
//     copy(a[pos+1:i+1], a[pos:i])     // block shift; no-op when pos == i
//     a[pos] = key
//
// Empty and single-element slices are returned untouched.
func InsertionSort(a []int, opts ...Option) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for i := 1; i < len(a); i++ {
		key := a[i]
		pos := InsertionPoint(a, i, key)
		copy(a[pos+1:i+1], a[pos:i])
		a[pos] = key
		o.OnInsert(key, pos, i)
	}
}

// InsertionPoint returns the index of the first element of the sorted
// range a[0:hi] that is strictly greater than key, or hi if there is none.
// Placing key there keeps the range sorted and puts it after any equal
// values. a[0:hi] must be non-decreasing.
func InsertionPoint(a []int, hi int, key int) int {
	lo := 0
	for lo < hi {
		mid := lo + (hi-lo)/2
		if a[mid] <= key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// IsSorted reports whether a is in non-decreasing order.
func IsSorted(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return false
		}
	}

	return true
}
