package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jward/reflectdb"
	"github.com/jward/reflectdb/internal/export"
)

var flagFormat string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "reflectdb",
	Short:         "Merge and inspect reflected-entity databases",
	Long:          "Reflectdb combines per-translation-unit reflection snapshots into one aggregate database, exports it to SQLite, and dumps its contents.",
	SilenceErrors: true,
	SilenceUsage:  true,
	// No Run — prints help by default.
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dumpCmd)
}

var flagOut string

var mergeCmd = &cobra.Command{
	Use:   "merge <snapshot>...",
	Short: "Merge per-unit snapshots into one aggregate snapshot",
	Long:  "Loads every snapshot in parallel, merges them sequentially in argument order, and writes the aggregate to --out. Merging dedups entries by per-kind identity, so overlapping units (shared headers) do not duplicate.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&flagOut, "out", "o", "merged.rdb", "output snapshot path")
}

func runMerge(cmd *cobra.Command, args []string) error {
	start := time.Now()

	agg, err := reflectdb.Combine(cmd.Context(), args)
	if err != nil {
		return err
	}
	if err := reflectdb.SaveSnapshot(flagOut, agg); err != nil {
		return err
	}

	total := 0
	for _, kind := range reflectdb.Kinds() {
		total += agg.Store(kind).Len()
	}
	total += agg.UnnamedFields().Len()
	fmt.Fprintf(os.Stderr, "Merged %d snapshot(s): %d names, %d primitives in %s\n",
		len(args), agg.Names().Len(), total, time.Since(start).Round(time.Millisecond))
	return nil
}

var exportCmd = &cobra.Command{
	Use:   "export <snapshot> <sqlite-db>",
	Short: "Export a snapshot to a queryable SQLite database",
	Args:  cobra.ExactArgs(2),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := reflectdb.LoadSnapshot(args[0])
	if err != nil {
		return err
	}

	store, err := export.NewStore(args[1])
	if err != nil {
		return fmt.Errorf("creating export store: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		return err
	}
	if err := store.WriteDatabase(db); err != nil {
		return fmt.Errorf("writing database: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Exported %s to %s\n", args[0], args[1])
	return nil
}

var dumpCmd = &cobra.Command{
	Use:   "dump <snapshot>",
	Short: "Print the contents of a snapshot",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&flagFormat, "format", "text", "output format: json|text")
}

func runDump(cmd *cobra.Command, args []string) error {
	db, err := reflectdb.LoadSnapshot(args[0])
	if err != nil {
		return err
	}
	return renderDump(os.Stdout, db, flagFormat)
}
