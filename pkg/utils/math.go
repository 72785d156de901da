// pkg/utils/math.go
package utils

import "math"

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Nearest rounds n to the nearest multiple of base. Ties go to the even
// multiple.
func Nearest(n, base int) int {
	return int(math.RoundToEven(float64(n)/float64(base))) * base
}
