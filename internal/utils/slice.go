package utils

import (
	"github.com/duke-git/lancet/v2/slice"
)

// SliceContains reports whether s contains item.
func SliceContains[T comparable](s []T, item T) bool {
	return slice.Contain(s, item)
}
