//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
)

// All removes build artifacts
func (Clean) All() error {
	fmt.Println("Cleaning build artifacts")
	for _, artifact := range []string{
		"tagcheck-launcher",
		"tagcheck-launcher.exe",
		"coverage.out",
	} {
		if err := os.Remove(artifact); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
