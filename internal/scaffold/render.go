package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"path/filepath"
	"sync"
	"text/template"
)

// Role identifies a logical generated file backed by one template body.
type Role string

const (
	RoleLicense     Role = "license"
	RoleReadme      Role = "readme"
	RoleManifest    Role = "manifest"
	RoleIgnore      Role = "ignore"
	RolePackageInit Role = "package-init"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// templateFiles maps each role to its embedded template body.
var templateFiles = map[Role]string{
	RoleLicense:     "license.tmpl",
	RoleReadme:      "readme.tmpl",
	RoleManifest:    "pyproject.tmpl",
	RoleIgnore:      "gitignore.tmpl",
	RolePackageInit: "packageinit.tmpl",
}

var (
	parseOnce sync.Once
	parsed    map[Role]*template.Template
	parseErr  error
)

// getTemplates parses the embedded template set once and returns it.
func getTemplates() (map[Role]*template.Template, error) {
	parseOnce.Do(func() {
		parsed = make(map[Role]*template.Template, len(templateFiles))
		for role, name := range templateFiles {
			raw, err := templateFS.ReadFile(path.Join("templates", name))
			if err != nil {
				parseErr = &TemplateError{Role: role, Err: err}
				return
			}
			t, err := template.New(name).Parse(string(raw))
			if err != nil {
				parseErr = &TemplateError{Role: role, Err: err}
				return
			}
			parsed[role] = t
		}
	})
	return parsed, parseErr
}

// Render substitutes spec fields into the template for role and returns the
// final file content. Rendering is deterministic and has no side effects.
// A template referencing a field not present on ProjectSpec fails with a
// TemplateError: that means the binary ships a stale template.
func Render(role Role, spec *ProjectSpec) (string, error) {
	templates, err := getTemplates()
	if err != nil {
		return "", err
	}
	t, ok := templates[role]
	if !ok {
		return "", &TemplateError{Role: role, Err: fmt.Errorf("unknown template role")}
	}
	return executeTemplate(role, t, spec)
}

func executeTemplate(role Role, t *template.Template, spec *ProjectSpec) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, spec); err != nil {
		return "", &TemplateError{Role: role, Err: err}
	}
	return buf.String(), nil
}

// RelPath returns the output path for role relative to the project root.
func RelPath(role Role, spec *ProjectSpec) string {
	switch role {
	case RoleLicense:
		return "LICENSE"
	case RoleReadme:
		return "README.md"
	case RoleManifest:
		return "pyproject.toml"
	case RoleIgnore:
		return ".gitignore"
	case RolePackageInit:
		return filepath.Join("src", spec.ImportName, "__init__.py")
	}
	return string(role)
}
