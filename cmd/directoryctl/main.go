// Command directoryctl inspects import files offline: it runs the same parse,
// mapping and record-building steps as the server and prints the result.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"forum-directory/db"
	"forum-directory/filter"
	"forum-directory/importer"
	"forum-directory/logging"
	"forum-directory/models"
)

type previewOptions struct {
	overrides    []string
	noAutoMap    bool
	unions       []string
	defaultUnion string
	limit        int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "directoryctl",
		Short:        "Offline tools for the forum directory",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupWithWriter(cmd.ErrOrStderr(), logging.ParseLevel(logLevel))
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	root.AddCommand(newFieldsCmd(), newPreviewCmd())
	return root
}

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List mappable fields and their defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, f := range models.Fields {
				fmt.Fprintf(out, "%-12s default=%q\n", f, importer.PerFieldDefault(f, models.DefaultFallbackUnion))
			}
			return nil
		},
	}
}

func newPreviewCmd() *cobra.Command {
	var opts previewOptions

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Parse an import file and print the records it would add",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.overrides, "map", nil, "Override a field mapping as field=column (repeatable)")
	cmd.Flags().BoolVar(&opts.noAutoMap, "no-automap", false, "Start from an empty mapping instead of matching headers")
	cmd.Flags().StringSliceVar(&opts.unions, "unions", models.DefaultUnions, "Union catalog")
	cmd.Flags().StringVar(&opts.defaultUnion, "default-union", models.DefaultFallbackUnion, "Union for rows without one")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Print at most this many records (0 = all)")
	return cmd
}

// parseOverride splits a field=column flag value.
func parseOverride(s string) (models.Field, int, error) {
	name, col, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, fmt.Errorf("mapping %q must look like field=column", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return "", 0, fmt.Errorf("mapping %q: column must be a number: %w", s, err)
	}
	return models.Field(strings.TrimSpace(name)), n, nil
}

func runPreview(cmd *cobra.Command, path string, opts previewOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	rows, err := importer.ReadFile(path, data)
	if err != nil {
		return err
	}

	sess := importer.NewSession(path, rows)
	if !opts.noAutoMap {
		if err := sess.AutoMap(); err != nil {
			return err
		}
	}
	for _, o := range opts.overrides {
		field, col, err := parseOverride(o)
		if err != nil {
			return err
		}
		if err := sess.Remap(field, col); err != nil {
			return err
		}
	}
	mapping := sess.Mapping.Clone()
	header := sess.Header()

	catalog := models.NewCatalog(opts.unions, opts.defaultUnion)
	directory := db.NewDirectory(catalog)
	result, err := sess.Commit(directory, db.NewIDSequence(), catalog.Default())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{
		"header":   header,
		"mapping":  mapping,
		"imported": result.Imported,
		"noOp":     result.NoOp,
		"records":  filter.Limit(directory.AllRecords(), opts.limit),
	})
}
