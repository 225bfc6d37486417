package MergeSort

import (
	"golang.org/x/exp/constraints"
)

// ranges at or below this length are handed to InsertionSort by the hybrid sort
const INSERTION_THRESHOLD = 15

func MergeSort[T constraints.Ordered](a []T) {
	if len(a) == 0 {
		return
	}
	MergeSortRange(a, 0, len(a)-1)
}

func HybridMergeSort[T constraints.Ordered](a []T) {
	if len(a) == 0 {
		return
	}
	HybridMergeSortRange(a, 0, len(a)-1)
}

/**
Sorts a[left..right], both ends inclusive.
*/
func MergeSortRange[T constraints.Ordered](a []T, left int, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	MergeSortRange(a, left, mid)
	MergeSortRange(a, mid+1, right)
	merge(a, left, mid, right)
}

/**
Same split as MergeSortRange. A range of INSERTION_THRESHOLD elements or fewer
is finished by InsertionSort instead of recursing further.
*/
func HybridMergeSortRange[T constraints.Ordered](a []T, left int, right int) {
	if left >= right {
		return
	}
	if right-left+1 <= INSERTION_THRESHOLD {
		InsertionSort(a, left, right)
		return
	}
	mid := left + (right-left)/2
	HybridMergeSortRange(a, left, mid)
	HybridMergeSortRange(a, mid+1, right)
	merge(a, left, mid, right)
}

// InsertionSort sorts the closed range a[left..right] in place.
func InsertionSort[T constraints.Ordered](a []T, left int, right int) {
	for i := left + 1; i <= right; i++ {
		key := a[i]
		j := i - 1
		for j >= left && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}

/**
Merges the sorted runs a[left..mid] and a[mid+1..right].
On ties the left run wins, which keeps the merge stable.
*/
func merge[T constraints.Ordered](a []T, left int, mid int, right int) {
	tmp := make([]T, right-left+1)
	i, j, k := left, mid+1, 0
	for i <= mid && j <= right {
		if a[i] <= a[j] {
			tmp[k] = a[i]
			i++
		} else {
			tmp[k] = a[j]
			j++
		}
		k++
	}
	// at most one of these copies anything
	k += copy(tmp[k:], a[i:mid+1])
	k += copy(tmp[k:], a[j:right+1])
	copy(a[left:], tmp[:k])
}

// IsSorted reports whether a is in non-decreasing order.
func IsSorted[T constraints.Ordered](a []T) bool {
	for i := len(a) - 1; i > 0; i-- {
		if a[i] < a[i-1] {
			return false
		}
	}
	return true
}
