package scaffold

import (
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Visibility controls the remote repository visibility requested from the
// bootstrap helper.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ProjectSpec holds the validated configuration for one scaffold invocation.
// It is constructed once from CLI arguments plus derived defaults and not
// modified after validation.
type ProjectSpec struct {
	ProjectName   string     // Distribution name and root directory name, e.g. "cool-tool"
	ImportName    string     // Importable package folder, e.g. "cool_tool"
	Author        string     // Used in LICENSE, README, and pyproject
	Description   string     // Optional, used in pyproject
	Version       string     // Semver, e.g. "0.1.0"
	PythonVersion string     // Minimum Python version, e.g. "3.9"
	Visibility    Visibility // Passed through to the bootstrap helper
	InitRepo      bool       // Run the bootstrap helper after writing files
	Org           string     // Bootstrap org/owner, may be empty
	Branch        string     // Bootstrap default branch
	Notebooks     bool       // Also create external/, data/, and notebooks/ dirs
	Year          int        // Copyright year, captured once at invocation start
}

// NewProjectSpec creates a ProjectSpec for projectName with derived defaults
// populated. The year is taken from now so callers control the clock.
func NewProjectSpec(projectName string, now time.Time) *ProjectSpec {
	return &ProjectSpec{
		ProjectName:   projectName,
		ImportName:    NormalizeImportName(projectName),
		Author:        "Author Name",
		Version:       "0.1.0",
		PythonVersion: "3.9",
		Visibility:    VisibilityPublic,
		InitRepo:      true,
		Branch:        "main",
		Year:          now.Year(),
	}
}

var (
	importNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	invalidImportRuns = regexp.MustCompile(`[^0-9a-z_]+`)
)

// NormalizeImportName derives an identifier-safe package name from a
// distribution name: lower-cased, with separator runs collapsed to a single
// underscore. Names that would start with a digit (or normalize to nothing)
// get a "pkg_" prefix so the result is always importable.
func NormalizeImportName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = invalidImportRuns.ReplaceAllString(s, "_")
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		s = "pkg_" + s
	}
	return s
}

// Validate checks the spec invariants that do not require filesystem access.
// The target-path check happens in Materialize, which knows the directory.
func (s *ProjectSpec) Validate() error {
	if strings.TrimSpace(s.ProjectName) == "" {
		return validationErrorf("project name must not be empty")
	}
	if !importNamePattern.MatchString(s.ImportName) {
		return validationErrorf("invalid import name %q: must match pattern [a-z_][a-z0-9_]*", s.ImportName)
	}
	if _, err := semver.NewVersion(s.Version); err != nil {
		return validationErrorf("invalid version %q: %v", s.Version, err)
	}
	if _, err := semver.NewVersion(s.PythonVersion); err != nil {
		return validationErrorf("invalid python version %q: %v", s.PythonVersion, err)
	}
	if s.Visibility != VisibilityPublic && s.Visibility != VisibilityPrivate {
		return validationErrorf("invalid visibility %q: must be public or private", s.Visibility)
	}
	return nil
}
