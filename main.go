package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/newpack-labs/newpack/internal/bootstrap"
	"github.com/newpack-labs/newpack/internal/cli"
	"github.com/newpack-labs/newpack/internal/scaffold"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes by failure class. A bootstrap failure still exits non-zero
// even though the scaffold on disk is complete and usable.
const (
	exitGeneric    = 1
	exitValidation = 2
	exitFilesystem = 3
	exitBootstrap  = 4
	exitTemplate   = 5
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var (
		validationErr *scaffold.ValidationError
		filesystemErr *scaffold.FilesystemError
		templateErr   *scaffold.TemplateError
		bootstrapErr  *bootstrap.Error
	)
	switch {
	case errors.As(err, &validationErr):
		return exitValidation
	case errors.As(err, &filesystemErr):
		return exitFilesystem
	case errors.As(err, &templateErr):
		return exitTemplate
	case errors.As(err, &bootstrapErr):
		return exitBootstrap
	}
	return exitGeneric
}
