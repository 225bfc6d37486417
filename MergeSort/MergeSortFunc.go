package MergeSort

// CompareTo returns a positive number when the receiver is greater than o,
// zero when equal and a negative number when less.
type Comparable[T any] interface {
	CompareTo(o T) int
}

// SortFunc is MergeSort for element types ordered by CompareTo.
func SortFunc[T Comparable[T]](a []T) {
	if len(a) == 0 {
		return
	}
	mergeSortFunc(a, 0, len(a)-1, 1)
}

// HybridSortFunc is HybridMergeSort for element types ordered by CompareTo.
func HybridSortFunc[T Comparable[T]](a []T) {
	if len(a) == 0 {
		return
	}
	mergeSortFunc(a, 0, len(a)-1, INSERTION_THRESHOLD)
}

func mergeSortFunc[T Comparable[T]](a []T, left int, right int, threshold int) {
	if left >= right {
		return
	}
	if right-left+1 <= threshold {
		insertionSortFunc(a, left, right)
		return
	}
	mid := left + (right-left)/2
	mergeSortFunc(a, left, mid, threshold)
	mergeSortFunc(a, mid+1, right, threshold)
	mergeFunc(a, left, mid, right)
}

func insertionSortFunc[T Comparable[T]](a []T, left int, right int) {
	for i := left + 1; i <= right; i++ {
		key := a[i]
		j := i - 1
		for j >= left && a[j].CompareTo(key) > 0 {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}

func mergeFunc[T Comparable[T]](a []T, left int, mid int, right int) {
	tmp := make([]T, right-left+1)
	i, j, k := left, mid+1, 0
	for i <= mid && j <= right {
		if a[i].CompareTo(a[j]) <= 0 {
			tmp[k] = a[i]
			i++
		} else {
			tmp[k] = a[j]
			j++
		}
		k++
	}
	k += copy(tmp[k:], a[i:mid+1])
	k += copy(tmp[k:], a[j:right+1])
	copy(a[left:], tmp[:k])
}
