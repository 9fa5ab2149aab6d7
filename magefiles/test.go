//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Unit runs the unit tests
func (Test) Unit() error {
	fmt.Println("Running unit tests")
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage runs the unit tests with coverage reporting
func (Test) Coverage() error {
	fmt.Println("Running unit tests with coverage")
	if err := sh.RunV("go", "test", "-race", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}
