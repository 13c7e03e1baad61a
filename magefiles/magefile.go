//go:build mage

// Package main provides build targets for commdir using Mage.
//
// Usage:
//
//	mage build      Compile commdir binary to bin/
//	mage test       Run all tests
//	mage vet        Run go vet
//	mage generate   Regenerate mocks
//	mage run        Build, create the database if needed, and serve
//	mage clean      Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "commdir"
	binaryDir  = "bin"
	cmdDir     = "./cmd/commdir"
	dbFile     = "people.db"
)

var binary = filepath.Join(binaryDir, binaryName)

// Build compiles the commdir binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", binary, cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Generate runs go generate (mockgen).
func Generate() error {
	return sh.RunV("go", "generate", "./...")
}

// Run builds and serves against ./people.db, creating it first if needed.
func Run() error {
	mg.Deps(Build)
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if err := sh.RunV(binary, "db", "create", "--db", dbFile); err != nil {
			return err
		}
	}
	return sh.RunV(binary, "serve", "--db", dbFile)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}
