package types

import "golang.org/x/exp/constraints"

type KernelOrdered interface {
	constraints.Ordered | bool
}

func AddressOf[T KernelOrdered](x T) *T {
	return &x
}

// CompareOrdered is a three way comparison for integral values, it is not suitable for floats, see CompareFloat64.
func CompareOrdered[T constraints.Integer | ~string](a T, b T) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
