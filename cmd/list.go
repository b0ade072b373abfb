package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"siga/internal/presentation"
	"siga/internal/query"
	"siga/internal/storage"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [students|courses|registrations|grades]",
	Short: "Print one collection without entering the TUI",
	Long: `Print a collection as a text table, or as JSON with --json.
Registrations and grades are joined with their student and course.

Example:
  siga list students
  siga list grades --json | jq '.[].grade'`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"students", "courses", "registrations", "grades"},
	RunE:      runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "output JSON instead of a table")
}

func runList(cmd *cobra.Command, args []string) error {
	csv, err := storage.NewCSVStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening data directory: %w", err)
	}
	store, err := csv.Load()
	if err != nil {
		return fmt.Errorf("loading data files: %w", err)
	}

	formatter := presentation.NewFormatter(cmd.OutOrStdout())
	switch args[0] {
	case "students":
		dtos := presentation.FromStudents(store.Students)
		if listJSON {
			return formatter.FormatJSON(dtos)
		}
		return formatter.FormatStudents(dtos)
	case "courses":
		dtos := presentation.FromCourses(store.Courses)
		if listJSON {
			return formatter.FormatJSON(dtos)
		}
		return formatter.FormatCourses(dtos)
	case "registrations":
		dtos := presentation.FromRegistrations(store)
		if listJSON {
			return formatter.FormatJSON(dtos)
		}
		return formatter.FormatRegistrations(dtos)
	case "grades":
		dtos := presentation.FromGradeRows(query.New(store).FullGradeView())
		if listJSON {
			return formatter.FormatJSON(dtos)
		}
		return formatter.FormatGrades(dtos)
	}
	return fmt.Errorf("unknown collection %q", args[0])
}
