//go:build mage
// +build mage

package main

import (
	"fmt"
	"runtime"

	"github.com/magefile/mage/sh"
)

const (
	binaryName = "tagcheck-launcher"
	mainPkg    = "./cmd/tagcheck-launcher"
)

// Binary builds the launcher binary for the current platform
func (Build) Binary() error {
	fmt.Println("Building", binaryName)
	output := binaryName
	if runtime.GOOS == "windows" {
		output += ".exe"
	}
	return sh.RunV("go", "build", "-trimpath", "-o", output, mainPkg)
}

// Install installs the launcher into GOBIN
func (Build) Install() error {
	fmt.Println("Installing", binaryName)
	return sh.RunV("go", "install", mainPkg)
}

// Windows cross-builds the Windows binary, the platform the original
// batch launcher targeted
func (Build) Windows() error {
	fmt.Println("Building", binaryName+".exe")
	env := map[string]string{"GOOS": "windows", "GOARCH": "amd64"}
	return sh.RunWithV(env, "go", "build", "-trimpath", "-o", binaryName+".exe", mainPkg)
}
