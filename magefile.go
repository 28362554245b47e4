//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binPath = binDir + "/bratus"
	mainPkg = "./cmd/bratus"
	verPkg  = "github.com/xFA25E/bratus/internal/version"
)

// ldflags stamps the version package with git metadata.
func ldflags() string {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-s -w -X %[1]s.Version=%[2]s -X %[1]s.CommitHash=%[3]s -X %[1]s.BuildDate=%[4]s",
		verPkg, version, commit, date)
}

// Default target - build the binary
var Default = Build

// Build builds the bratus binary
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binPath, mainPkg)
}

// Install installs bratus into GOBIN
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Test runs all tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Lint runs golangci-lint when it is installed
func Lint() error {
	mg.Deps(Vet)
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println("golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
		return nil
	}
	return sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
}

// QA runs all quality checks
func QA() {
	mg.SerialDeps(Lint, Test)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binDir)
}
