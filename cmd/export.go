package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"siga/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all records to a JSON snapshot",
	Long: `Export the full store (students, courses, registrations and grade
records) to a JSON snapshot in the data directory. The snapshot carries a
unique export id and a UTC timestamp.

Example:
  siga export
  siga export --data-dir /srv/records/data`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("data-dir", "d", "",
		"directory holding the CSV data files")
}

func runExport(cmd *cobra.Command, args []string) error {
	cleanup, err := initDebugLog("siga-export")
	if err != nil {
		return err
	}
	defer cleanup()

	dataDir := cfg.DataDir
	if flagDir, _ := cmd.Flags().GetString("data-dir"); flagDir != "" {
		dataDir = flagDir
	}

	csv, err := storage.NewCSVStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening data directory: %w", err)
	}
	store, err := csv.Load()
	if err != nil {
		return fmt.Errorf("loading data files: %w", err)
	}

	path, err := csv.ExportJSON(store)
	if err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	students, courses, registrations, grades := store.Counts()
	fmt.Fprintf(cmd.OutOrStdout(),
		"Exported %d students, %d courses, %d registrations, %d grade records to %s\n",
		students, courses, registrations, grades, path)
	return nil
}
