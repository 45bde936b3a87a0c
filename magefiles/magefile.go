//go:build mage

// Package main provides build targets for partstore using Mage.
//
// Usage:
//
//	mage build     Compile the server and stress test binaries to bin/
//	mage test      Run all tests
//	mage lint      Run go vet
//	mage run       Build and start the server with DATABASE_URI from the environment
//	mage clean     Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryDir  = "bin"
	serverName = "partstore"
	stressName = "partstore-stress"
	serverDir  = "./cmd/server"
	stressDir  = "./cmd/stress_test"
)

// Build compiles the server and the stress test to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	if err := sh.RunV(binGo, "build", "-o", filepath.Join(binaryDir, serverName), serverDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-o", filepath.Join(binaryDir, stressName), stressDir)
}

// Test runs all tests. Store tests that need MySQL, PostgreSQL or Redis skip
// themselves when the service is not reachable.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV(binGo, "vet", "./...")
}

// Run starts the server from bin/.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, serverName), "serve")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
