package utils

import (
	"github.com/duke-git/lancet/v2/strutil"
)

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strutil.IsBlank(s)
}
