package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaborage/sqlbricks/internal/commands"
)

var version = "dev" // Will be set during build

func main() {
	rootCmd := &cobra.Command{
		Use:   "sqlgen",
		Short: "Render SELECT statements from query definition documents",
		Long: `Renders dialect-specific SELECT statements for SQL Server and PostgreSQL
from YAML query definition documents.

The same document renders for either dialect: identifiers are quoted and
paging is expressed the way the target database expects.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		commands.NewRenderCommand(),
		commands.NewVersionCommand(version),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
