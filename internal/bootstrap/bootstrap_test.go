package bootstrap

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"
)

func TestInitArgs(t *testing.T) {
	t.Run("minimal options", func(t *testing.T) {
		got := initArgs("./cool-tool", Options{
			Name:       "cool-tool",
			Branch:     "main",
			Visibility: "public",
		})
		want := []string{
			"init", "./cool-tool",
			"--name", "cool-tool",
			"--visibility", "public",
			"--branch", "main",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("initArgs = %v, want %v", got, want)
		}
	})

	t.Run("description and org appended", func(t *testing.T) {
		got := initArgs("./cool-tool", Options{
			Name:        "cool-tool",
			Description: "A very cool tool",
			Org:         "my-org",
			Branch:      "trunk",
			Visibility:  "private",
		})
		want := []string{
			"init", "./cool-tool",
			"--name", "cool-tool",
			"--visibility", "private",
			"--branch", "trunk",
			"--description", "A very cool tool",
			"--org", "my-org",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("initArgs = %v, want %v", got, want)
		}
	})
}

func TestShortgitInitMissingHelper(t *testing.T) {
	if _, err := exec.LookPath("shortgit"); err == nil {
		t.Skip("shortgit is installed; this test needs it absent")
	}

	err := Shortgit{}.Init(context.Background(), t.TempDir(), Options{
		Name:       "cool-tool",
		Branch:     "main",
		Visibility: "public",
	})
	if err == nil {
		t.Fatal("expected an error when shortgit is missing")
	}
	var bootErr *Error
	if !errors.As(err, &bootErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if bootErr.Cmd != "shortgit init" {
		t.Errorf("Cmd = %q, want %q", bootErr.Cmd, "shortgit init")
	}
}

func TestErrorIncludesOutput(t *testing.T) {
	err := &Error{
		Cmd:    "shortgit init",
		Err:    errors.New("exit status 1"),
		Output: "gh: not authenticated\n",
	}
	msg := err.Error()
	if !strings.Contains(msg, "shortgit init failed") {
		t.Errorf("message %q should name the command", msg)
	}
	if !strings.Contains(msg, "gh: not authenticated") {
		t.Errorf("message %q should include the helper output", msg)
	}
}

func TestEnsureTool(t *testing.T) {
	t.Run("present tool passes", func(t *testing.T) {
		// sh is a safe bet on any platform the tests run on.
		if _, err := exec.LookPath("sh"); err != nil {
			t.Skip("no sh on PATH")
		}
		if err := EnsureTool("sh", "https://example.com"); err != nil {
			t.Errorf("EnsureTool(sh) error: %v", err)
		}
	})

	t.Run("missing tool returns install hint", func(t *testing.T) {
		err := EnsureTool("definitely-not-a-real-tool", "https://example.com/install")
		if err == nil {
			t.Fatal("expected an error for a missing tool")
		}
		if !strings.Contains(err.Error(), "https://example.com/install") {
			t.Errorf("error %q should include the install URL", err)
		}
	})
}
