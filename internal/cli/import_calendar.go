package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	calendarRepo "schedule-interpreter/internal/interpreter/repository/gcalendar"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/internal/scheduleio"
	"schedule-interpreter/pkg/datemath"
	"schedule-interpreter/pkg/gcalendar"
)

var (
	importCredentials string
	importCalendarID  string
	importFrom        string
	importTo          string
	importOut         string
)

var importCalendarCmd = &cobra.Command{
	Use:   "import-calendar",
	Short: "Export Google Calendar events as a schedule file",
	Long: `Read the events between --from and --to and write them as schedule items.
Event ids become item ids, so a session loaded from the file pushes
confirmed changes back to the same events.`,
	Args: cobra.NoArgs,
	RunE: runImportCalendar,
}

func init() {
	importCalendarCmd.Flags().StringVar(&importCredentials, "credentials", "", "service account or OAuth credentials JSON (required)")
	importCalendarCmd.Flags().StringVar(&importCalendarID, "calendar", gcalendar.DefaultCalendarID, "calendar id")
	importCalendarCmd.Flags().StringVar(&importFrom, "from", "", "first day YYYY-MM-DD (required)")
	importCalendarCmd.Flags().StringVar(&importTo, "to", "", "last day YYYY-MM-DD (required)")
	importCalendarCmd.Flags().StringVarP(&importOut, "out", "o", "", "write the schedule here instead of stdout")
	_ = importCalendarCmd.MarkFlagRequired("credentials")
	_ = importCalendarCmd.MarkFlagRequired("from")
	_ = importCalendarCmd.MarkFlagRequired("to")
}

func runImportCalendar(cmd *cobra.Command, args []string) error {
	from, err := datemath.ParseISO(importFrom)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	to, err := datemath.ParseISO(importTo)
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}
	if to.Before(from) {
		return fmt.Errorf("--to %s is before --from %s", importTo, importFrom)
	}

	ctx := cmd.Context()
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, importCredentials)
	if err != nil {
		return err
	}
	repo := calendarRepo.New(newLogger(), client, importCalendarID)

	// The range is inclusive of the last day.
	items, err := repo.LoadItems(ctx, from, datemath.AddDays(to, 1))
	if err != nil {
		return err
	}
	doc := scheduleio.Touch(model.Document{Items: items}, time.Now())

	if importOut == "" {
		return scheduleio.Encode(cmd.OutOrStdout(), doc)
	}
	if err := scheduleio.SaveFile(importOut, doc); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d events to %s\n", len(items), importOut)
	return nil
}
