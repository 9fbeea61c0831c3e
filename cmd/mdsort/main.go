package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errUnsorted) {
			fmt.Fprintln(os.Stderr, "mdsort:", err)
		}
		os.Exit(1)
	}
}
