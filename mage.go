//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput          = "gen"
	jetSchemaFile      = "jet.sqlite"
	serverBin          = "./bin/server"
	serverConfigPath   = "configs/server.toml"
	migrationsInitFile = "migrations/1_init.up.sql"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-o", serverBin, "cmd/main.go")
}

// Run starts server with the sample config
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "-config", serverConfigPath)
}

// Test runs unit and end-to-end tests
func Test() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "test", "-race", "./...")
}

// GenJet regenerates gen/model and gen/table from the init migration
func GenJet() error {
	mg.Deps(buildJetTool)
	schema, err := os.ReadFile(migrationsInitFile)
	if err != nil {
		return err
	}
	_ = os.Remove(jetSchemaFile)
	defer os.Remove(jetSchemaFile)
	if err := sh.Run("sqlite3", jetSchemaFile, string(schema)); err != nil {
		return err
	}
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", jetSchemaFile, "-path", jetOutput)
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}
