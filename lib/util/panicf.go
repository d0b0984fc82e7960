package util

import (
	"fmt"
)

// Panicf panics with a formatted message.
func Panicf(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	panic(s)
}
