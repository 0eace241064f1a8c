package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/itsmostafa/treetab/internal/hierarchy"
	"github.com/itsmostafa/treetab/internal/table"
	"github.com/itsmostafa/treetab/internal/version"
	"github.com/spf13/cobra"
)

var (
	// errorStyle for the diagnostic line on stderr
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// dimStyle for hint lines under a diagnostic
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

var depth string

var rootCmd = &cobra.Command{
	Use:   "treetab <file>",
	Short: "Annotate a flat table with its implicit tree structure",
	Long: `Treetab reads a delimited table whose rows encode a tree by column
sparsity (a row's depth is the first hierarchy column it fills in),
counts each node's direct children, and prints the table back out with
a trailing "nodes" column. The delimiter is auto-detected.

Example:

  treetab schema.csv -d database,table,column`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		hierarchyCols, err := splitDepth(depth)
		if err != nil {
			return err
		}

		tbl, err := table.LoadFile(args[0])
		if err != nil {
			return err
		}

		if missing := tbl.MissingColumns(hierarchyCols); len(missing) > 0 {
			return &missingColumnsError{Missing: missing, Available: tbl.Columns}
		}

		annotated := hierarchy.Annotate(tbl.Records, hierarchyCols)
		outputCols := append(append([]string{}, tbl.Columns...), hierarchy.NodesColumn)

		fmt.Fprintln(cmd.OutOrStdout(), table.Format(annotated, outputCols))
		return nil
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("treetab %s\n", version.String()))

	// Depth flag with env var fallback
	defaultDepth := os.Getenv("TREETAB_DEPTH")
	rootCmd.Flags().StringVarP(&depth, "depth", "d", defaultDepth,
		"Ordered hierarchy columns, comma-separated, shallowest first (e.g. database,table,column)")
	if defaultDepth == "" {
		rootCmd.MarkFlagRequired("depth")
	}
}

// splitDepth parses a --depth value into trimmed column names.
func splitDepth(depth string) ([]string, error) {
	var cols []string
	for _, col := range strings.Split(depth, ",") {
		col = strings.TrimSpace(col)
		if col == "" {
			return nil, fmt.Errorf("invalid --depth %q: empty column name", depth)
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// missingColumnsError reports requested hierarchy columns absent from
// the header, carrying the header itself for the diagnostic hint.
type missingColumnsError struct {
	Missing   []string
	Available []string
}

func (e *missingColumnsError) Error() string {
	return "hierarchy columns not found: " + strings.Join(e.Missing, ", ")
}

// reportError renders the diagnostic: the error line first, then a dim
// hint listing the available columns when the failure was a bad --depth
// request.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error:")+" "+err.Error())

	var mce *missingColumnsError
	if errors.As(err, &mce) {
		fmt.Fprintln(w, dimStyle.Render("Available columns: "+strings.Join(mce.Available, ", ")))
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
