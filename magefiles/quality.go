//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Lint runs golangci-lint over the module
func (Quality) Lint() error {
	fmt.Println("Running golangci-lint")
	return sh.RunV("golangci-lint", "run", "./...")
}

// Format formats the source tree
func (Quality) Format() error {
	fmt.Println("Formatting source")
	return sh.RunV("gofmt", "-w", ".")
}

// Vet runs go vet over the module
func (Quality) Vet() error {
	fmt.Println("Running go vet")
	return sh.RunV("go", "vet", "./...")
}

// All runs every quality target
func (Quality) All() {
	mg.SerialDeps(Quality.Format, Quality.Vet, Quality.Lint)
}
