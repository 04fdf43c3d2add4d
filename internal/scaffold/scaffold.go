package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/newpack-labs/newpack/internal/bootstrap"
)

// Result holds the outcome of a materialized scaffold.
type Result struct {
	ProjectDir   string   // Absolute or caller-relative root that was created
	Files        []string // Written files, relative to ProjectDir, in write order
	BootstrapRan bool     // Whether the bootstrap helper was invoked
	BootstrapErr error    // Non-nil if the helper was invoked and failed
}

// renderOrder fixes the write order so output and tests are stable.
var renderOrder = []Role{RoleManifest, RoleReadme, RoleLicense, RoleIgnore, RolePackageInit}

// notebookDirs are the extra gitignored working directories created with
// the --notebooks layout. notebooks/docs is the one that stays tracked.
var notebookDirs = []string{
	"external",
	"data",
	filepath.Join("notebooks", "dev"),
	filepath.Join("notebooks", "test"),
	filepath.Join("notebooks", "docs"),
}

// Materialize validates spec, creates the project tree at projectDir, renders
// and writes every template role, and finally invokes runner when the spec
// asks for repository bootstrap.
//
// Validation, directory creation, and the rendering pass are fatal: they
// return a nil Result and a ValidationError, FilesystemError, or
// TemplateError. A bootstrap failure is not fatal to the scaffold: the
// Result is returned alongside the bootstrap error, and the files on disk
// stay exactly as written. There is no rollback of partial state.
func Materialize(ctx context.Context, spec *ProjectSpec, projectDir string, runner bootstrap.Runner) (*Result, error) {
	// Preflight: every fatal input check runs before any write.
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if _, err := os.Lstat(projectDir); err == nil {
		return nil, validationErrorf("target %s already exists; refusing to overwrite", projectDir)
	} else if !os.IsNotExist(err) {
		return nil, &FilesystemError{Path: projectDir, Err: err}
	}

	// Directory tree. The package subfolder implies the root.
	pkgDir := filepath.Join(projectDir, "src", spec.ImportName)
	if err := os.MkdirAll(pkgDir, 0755); err != nil {
		return nil, &FilesystemError{Path: pkgDir, Err: err}
	}
	if spec.Notebooks {
		for _, d := range notebookDirs {
			dir := filepath.Join(projectDir, d)
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, &FilesystemError{Path: dir, Err: err}
			}
		}
	}

	result := &Result{ProjectDir: projectDir}

	// Rendering pass. Writes are create-exclusive: a file appearing
	// between the preflight check and this write is a race with some
	// other actor and fails rather than overwriting.
	for _, role := range renderOrder {
		content, err := Render(role, spec)
		if err != nil {
			return nil, err
		}
		rel := RelPath(role, spec)
		if err := writeExclusive(filepath.Join(projectDir, rel), content); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, rel)
	}

	if spec.InitRepo && runner != nil {
		result.BootstrapRan = true
		if err := runner.Init(ctx, projectDir, bootstrapOptions(spec)); err != nil {
			result.BootstrapErr = err
			return result, err
		}
	}

	return result, nil
}

// bootstrapOptions maps spec fields onto the helper's argument surface.
func bootstrapOptions(spec *ProjectSpec) bootstrap.Options {
	return bootstrap.Options{
		Name:        spec.ProjectName,
		Description: spec.Description,
		Org:         spec.Org,
		Branch:      spec.Branch,
		Visibility:  string(spec.Visibility),
	}
}

// writeExclusive writes content to path, failing if the file already exists.
func writeExclusive(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return &FilesystemError{Path: path, Err: err}
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return &FilesystemError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FilesystemError{Path: path, Err: fmt.Errorf("closing: %w", err)}
	}
	return nil
}
