package cli

import (
	"fmt"
	"os/exec"

	"github.com/newpack-labs/newpack/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the scaffolding environment",
	Long: `Check that the external helpers (git, gh, shortgit) are on PATH and
that the user config file is valid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Tool check:")
		checkBinary("git")
		checkBinary("gh")
		checkBinary("shortgit")

		fmt.Println("Config check:")
		return runConfigCheck()
	},
}

func checkBinary(name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Printf("  [MISS] %s not found\n", name)
		return
	}
	fmt.Printf("  [ OK ] %s found at %s\n", name, path)
}

func runConfigCheck() error {
	path := config.FilePath()
	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return fmt.Errorf("config validation failed: %w", err)
	}
	if result.Valid {
		fmt.Printf("  [ OK ] %s\n", path)
		return nil
	}
	fmt.Printf("  [FAIL] %d validation issue(s) in %s:\n", len(result.Issues), path)
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Printf("    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Printf("    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("config file %s has %d validation issue(s)", path, len(result.Issues))
}
