// Package util provides common utilities including logging helpers,
// file system locations and numeric helpers.
package util

import (
	"fmt"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// LogWarn logs a formatted warning with context.
func LogWarn(context, format string, args ...any) {
	log.Printf("warning: %s: %s", context, fmt.Sprintf(format, args...))
}
