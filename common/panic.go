package common

import (
	"fmt"
	"os"
	"runtime/debug"
)

// PanicHandler is deferred at the top of main so a panic is reported with its stack before exiting.
func PanicHandler() {
	if r := recover(); r != nil {
		fmt.Printf("Panic caught in colcmp: %v\n", r)
		debug.PrintStack()
		os.Exit(1)
	}
}
