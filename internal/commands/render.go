package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaborage/sqlbricks/config"
	"github.com/gaborage/sqlbricks/database"
	"github.com/gaborage/sqlbricks/logger"
)

// RenderOptions holds options for the render command
type RenderOptions struct {
	File    string
	Dialect string
	Params  bool
	Verbose bool
}

// NewRenderCommand creates the render command
func NewRenderCommand() *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a query definition document as SQL",
		Long: `Loads a YAML query definition document and prints the SELECT statement.

By default values are inlined as SQL literals. With --params, comparison
values are replaced by placeholders (@p1 for SQL Server, $1 for PostgreSQL)
and printed as a JSON array on a trailing comment line.`,
		Example: `  # Render for the dialect named in the document
  sqlgen render -f query.yaml

  # Render the same document for PostgreSQL with bind parameters
  sqlgen render -f query.yaml --dialect postgresql --params

  # Read the document from standard input
  cat query.yaml | sqlgen render -f -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Query definition document (use - for stdin)")
	cmd.Flags().StringVarP(&opts.Dialect, "dialect", "d", "", "Override the document dialect (sqlserver|postgresql)")
	cmd.Flags().BoolVar(&opts.Params, "params", false, "Render bind placeholders and print the arguments")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose output")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runRender(in io.Reader, out, errOut io.Writer, opts *RenderOptions) error {
	start := time.Now()

	cfg, err := loadDocument(in, opts.File)
	if err != nil {
		return err
	}
	if opts.Dialect != "" {
		cfg.Dialect = opts.Dialect
	}

	level := cfg.Log.Level
	if opts.Verbose {
		level = "debug"
	}
	log := logger.NewWithWriter(errOut, level, cfg.Log.Pretty).WithFields(map[string]any{"file": opts.File})

	qb := database.NewQueryBuilder(cfg.Dialect)
	if err := qb.Err(); err != nil {
		log.Error().Err(err).Str("dialect", cfg.Dialect).Msg("Unsupported dialect")
		return err
	}

	sqb, err := database.BuildFromDefinition(qb, &cfg.Query)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build query")
		return err
	}

	var sql string
	var args []any
	if opts.Params {
		sql, args, err = sqb.ToSQL()
	} else {
		sql, err = sqb.BuildQuery()
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to render query")
		return err
	}

	log.Info().
		Str("dialect", qb.Vendor()).
		Bool("bound", opts.Params).
		Msgf("Rendered query with %d argument(s)", len(args))
	log.Debug().
		Int("tables", len(cfg.Query.From)).
		Int("joins", len(cfg.Query.Joins)).
		Int("length", len(sql)).
		Interface("args", args).
		Dur("elapsed", time.Since(start)).
		Msg("Render details")

	if _, err := fmt.Fprintln(out, sql); err != nil {
		return fmt.Errorf("failed to write query: %w", err)
	}
	if opts.Params {
		encoded, err := json.Marshal(args)
		if err != nil {
			return fmt.Errorf("failed to encode arguments: %w", err)
		}
		if _, err := fmt.Fprintf(out, "-- args: %s\n", encoded); err != nil {
			return fmt.Errorf("failed to write arguments: %w", err)
		}
	}
	return nil
}

func loadDocument(in io.Reader, file string) (*config.Config, error) {
	if file != "-" {
		return config.Load(file)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return config.LoadBytes(data)
}
