package cli

import (
	"github.com/newpack-labs/newpack/internal/branding"
	"github.com/newpack-labs/newpack/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a new Python package project: it creates the
standard src layout, renders LICENSE, README.md, pyproject.toml, and
.gitignore with your project metadata, and optionally runs 'shortgit init'
to create the local and remote repository (no push).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// User defaults (author, org, python_version, visibility).
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
