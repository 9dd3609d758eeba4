// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "inkwell is a minimal content-management backend",
	Long: `inkwell is a minimal content-management backend that exposes a
REST API for blog posts, site settings and an admin console over a
relational datastore.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
