package scaffold

import (
	"strings"
	"testing"
	"text/template"
	"time"
)

func testSpec() *ProjectSpec {
	spec := NewProjectSpec("cool-tool", time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC))
	spec.Author = "Jane Doe"
	spec.Description = "A very cool tool"
	spec.PythonVersion = "3.10"
	return spec
}

func TestRenderLicense(t *testing.T) {
	out, err := Render(RoleLicense, testSpec())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	assertContains(t, out, "MIT License")
	assertContains(t, out, "Copyright (c) 2023 Jane Doe")
}

func TestRenderLicenseFrozenYear(t *testing.T) {
	spec := NewProjectSpec("cool-tool", time.Date(1999, time.December, 31, 23, 59, 0, 0, time.UTC))
	spec.Author = "Jane Doe"
	out, err := Render(RoleLicense, spec)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	assertContains(t, out, "Copyright (c) 1999 Jane Doe")
}

func TestRenderReadme(t *testing.T) {
	out, err := Render(RoleReadme, testSpec())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	assertContains(t, out, "# cool-tool")
	assertContains(t, out, "A very cool tool")
	assertContains(t, out, "import cool_tool")
	assertContains(t, out, "MIT © 2023 Jane Doe")
}

func TestRenderReadmeWithoutDescription(t *testing.T) {
	spec := testSpec()
	spec.Description = ""
	out, err := Render(RoleReadme, spec)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(out, "\n\n\n") {
		t.Error("empty description should not leave a blank paragraph")
	}
}

func TestRenderManifest(t *testing.T) {
	out, err := Render(RoleManifest, testSpec())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	assertContains(t, out, `name = "cool-tool"`)
	assertContains(t, out, `version = "0.1.0"`)
	assertContains(t, out, `authors = [{ name = "Jane Doe" }]`)
	assertContains(t, out, `requires-python = ">=3.10"`)
	assertContains(t, out, `cool-tool = "cool_tool.cli:main"`)
	assertContains(t, out, `packages = ["src/cool_tool"]`)
}

func TestRenderIgnoreIsStatic(t *testing.T) {
	out, err := Render(RoleIgnore, testSpec())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	assertContains(t, out, "__pycache__/")
	assertNotContains(t, out, "cool-tool")
	assertNotContains(t, out, "Jane Doe")
}

func TestRenderPackageInit(t *testing.T) {
	out, err := Render(RolePackageInit, testSpec())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if out != "__all__ = []\n" {
		t.Errorf("package init = %q, want %q", out, "__all__ = []\n")
	}
}

func TestRenderDeterministic(t *testing.T) {
	spec := testSpec()
	for _, role := range []Role{RoleLicense, RoleReadme, RoleManifest, RoleIgnore, RolePackageInit} {
		a, err := Render(role, spec)
		if err != nil {
			t.Fatalf("Render(%s) error: %v", role, err)
		}
		b, err := Render(role, spec)
		if err != nil {
			t.Fatalf("Render(%s) second pass error: %v", role, err)
		}
		if a != b {
			t.Errorf("Render(%s) is not deterministic", role)
		}
	}
}

func TestRenderUnknownRole(t *testing.T) {
	_, err := Render(Role("changelog"), testSpec())
	assertTemplateError(t, err)
}

func TestRenderStalePlaceholder(t *testing.T) {
	// A template referencing a field ProjectSpec does not have must fail
	// loudly instead of shipping the raw placeholder.
	stale := template.Must(template.New("stale").Parse("Hello {{.Maintainer}}"))
	_, err := executeTemplate(RoleReadme, stale, testSpec())
	assertTemplateError(t, err)
}

func TestRelPath(t *testing.T) {
	spec := testSpec()
	tests := []struct {
		role Role
		want string
	}{
		{RoleLicense, "LICENSE"},
		{RoleReadme, "README.md"},
		{RoleManifest, "pyproject.toml"},
		{RoleIgnore, ".gitignore"},
		{RolePackageInit, "src/cool_tool/__init__.py"},
	}
	for _, tt := range tests {
		got := RelPath(tt.role, spec)
		if got != tt.want {
			t.Errorf("RelPath(%s) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func assertTemplateError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a template error, got nil")
	}
	if _, ok := err.(*TemplateError); !ok {
		t.Fatalf("expected *TemplateError, got %T: %v", err, err)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q", substr)
	}
}
