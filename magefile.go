//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "bin/curtain"

// Default target - build the binary
var Default = Build

// Build builds the curtain binary
func Build() error {
	if err := os.MkdirAll("bin", 0o755); err != nil {
		return fmt.Errorf("create bin dir: %w", err)
	}
	return sh.RunV("go", "build", "-o", binary, "./cmd/curtain")
}

// Test runs the unit tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs formatting, vet and tests
func QA() error {
	if err := sh.RunV("gofmt", "-l", "."); err != nil {
		return fmt.Errorf("format check failed: %w", err)
	}
	mg.SerialDeps(Vet, Test)
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
