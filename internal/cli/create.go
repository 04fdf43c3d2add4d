package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/newpack-labs/newpack/internal/bootstrap"
	"github.com/newpack-labs/newpack/internal/config"
	"github.com/newpack-labs/newpack/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	createAuthor        string
	createDescription   string
	createImportName    string
	createVersion       string
	createPythonVersion string
	createOrg           string
	createBranch        string
	createOutputDir     string
	createPrivate       bool
	createNoInit        bool
	createNotebooks     bool
)

func init() {
	createCmd.Flags().StringVarP(&createAuthor, "author", "a", "", "Author name for LICENSE, README, and pyproject (default: config key 'author')")
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Project description for pyproject and the remote repository")
	createCmd.Flags().StringVarP(&createImportName, "import-name", "i", "", "Import/package folder name (default: derived from project name)")
	createCmd.Flags().StringVarP(&createVersion, "version", "v", "0.1.0", "Initial version")
	createCmd.Flags().StringVarP(&createPythonVersion, "python-version", "p", "", "Minimum Python version (default: config key 'python_version', else 3.9)")
	createCmd.Flags().StringVar(&createOrg, "org", "", "GitHub org/owner for the bootstrap helper (default: config key 'org')")
	createCmd.Flags().StringVarP(&createBranch, "branch", "b", "main", "Default branch for the bootstrap helper")
	createCmd.Flags().StringVar(&createOutputDir, "output-dir", "", "Target directory (default: ./<project_name>)")
	createCmd.Flags().BoolVar(&createPrivate, "private", false, "Create the remote repository as private")
	createCmd.Flags().BoolVar(&createNoInit, "no-init", false, "Only scaffold files; do not run shortgit init")
	createCmd.Flags().BoolVar(&createNotebooks, "notebooks", false, "Also create external/, data/, and notebooks/ working directories")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <project_name>",
	Short: "Scaffold a new Python package project",
	Long: `Scaffold a new Python package project in the current directory and
optionally run 'shortgit init' in it (no push).

Examples:
  newpack create cool-tool --author "Jane Doe"
  newpack create cool-tool --private --org my-org
  newpack create cool-tool --no-init --import-name cooltool`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		// Year captured once so every rendered file agrees on it.
		spec := scaffold.NewProjectSpec(name, time.Now())
		spec.Author = config.GetDefault("author", spec.Author)
		spec.PythonVersion = config.GetDefault("python_version", spec.PythonVersion)
		spec.Org = config.Get("org")
		if config.Get("visibility") == string(scaffold.VisibilityPrivate) {
			spec.Visibility = scaffold.VisibilityPrivate
		}
		if createAuthor != "" {
			spec.Author = createAuthor
		}
		if createImportName != "" {
			spec.ImportName = createImportName
		}
		if createPythonVersion != "" {
			spec.PythonVersion = createPythonVersion
		}
		if createOrg != "" {
			spec.Org = createOrg
		}
		if createPrivate {
			spec.Visibility = scaffold.VisibilityPrivate
		}
		spec.Description = createDescription
		spec.Version = createVersion
		spec.Branch = createBranch
		spec.InitRepo = !createNoInit
		spec.Notebooks = createNotebooks

		if err := checkTools(spec.InitRepo); err != nil {
			return err
		}

		dir := resolveOutputDir(name)
		result, err := scaffold.Materialize(cmd.Context(), spec, dir, bootstrap.Shortgit{})

		var bootErr *bootstrap.Error
		if errors.As(err, &bootErr) && result != nil {
			// The scaffold is complete; only the remote setup failed.
			printResult(result)
			fmt.Fprintf(os.Stderr, "\nBootstrap failed: %v\n", bootErr)
			fmt.Fprintf(os.Stderr, "The scaffolded files are intact. Fix the cause (e.g. 'gh auth login') and run:\n")
			fmt.Fprintf(os.Stderr, "  shortgit init %s --name %s --visibility %s --branch %s\n",
				dir, spec.ProjectName, spec.Visibility, spec.Branch)
			return err
		}
		if err != nil {
			return err
		}

		printResult(result)
		fmt.Println("\nNext steps:")
		fmt.Printf("  1. cd %s\n", dir)
		fmt.Printf("  2. Add your code under src/%s/\n", spec.ImportName)
		fmt.Println("  3. pip install -e . to work on it locally")
		if result.BootstrapRan {
			fmt.Println("  4. git push -u origin " + spec.Branch + " when ready")
		}
		return nil
	},
}

// checkTools verifies the external helpers before any filesystem mutation,
// mirroring what the create flow will actually invoke.
func checkTools(initRepo bool) error {
	if err := bootstrap.EnsureTool("git", "https://git-scm.com/downloads"); err != nil {
		return err
	}
	if !initRepo {
		return nil
	}
	if err := bootstrap.EnsureTool("gh", "https://cli.github.com/"); err != nil {
		return err
	}
	return bootstrap.EnsureTool("shortgit", "https://github.com/ionmihai/shortgit")
}

func resolveOutputDir(name string) string {
	if createOutputDir != "" {
		return filepath.Join(createOutputDir, name)
	}
	return filepath.Join(".", name)
}

func printResult(result *scaffold.Result) {
	fmt.Printf("Created project at %s/\n", result.ProjectDir)
	for _, f := range result.Files {
		fmt.Printf("  %s\n", f)
	}
	if result.BootstrapRan && result.BootstrapErr == nil {
		fmt.Println("shortgit init completed.")
	}
}
