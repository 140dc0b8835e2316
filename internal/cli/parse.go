package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"schedule-interpreter/internal/alias"
	"schedule-interpreter/internal/command"
	"schedule-interpreter/internal/grammar"
	"schedule-interpreter/internal/pending"
	"schedule-interpreter/internal/scheduleio"
	"schedule-interpreter/pkg/datemath"
)

var (
	parseSchedule string
	parseToday    string
)

var parseCmd = &cobra.Command{
	Use:   "parse <utterance>",
	Short: "Show the command an utterance parses to",
	Long: `Parse an utterance and print the resulting command. With --schedule the
file's items get aliases (PR1, PR2, ...) and embedded codes, so alias
references resolve the same way they do in a live session.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseSchedule, "schedule", "s", "", "YAML schedule used to resolve aliases")
	parseCmd.Flags().StringVar(&parseToday, "today", "", "reference date YYYY-MM-DD for relative dates (default: now)")
}

func runParse(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	now, err := referenceTime(parseToday)
	if err != nil {
		return err
	}
	dm, err := datemath.NewParser(timezone)
	if err != nil {
		return err
	}

	pc := grammar.Context{
		DefaultYear: dm.DefaultYear(now),
		Today:       dm.Today(now),
	}
	if parseSchedule != "" {
		doc, err := scheduleio.LoadFile(parseSchedule)
		if err != nil {
			return err
		}
		reg := alias.New("")
		reg.AssignAll(doc.Items)
		pc.Aliases = reg.Lookup()
	}

	out := cmd.OutOrStdout()
	parsed, err := grammar.New().Parse(text, pc)
	if err != nil {
		var nm *grammar.NoMatchError
		if errors.As(err, &nm) {
			fmt.Fprintln(out, "no match")
			for _, r := range nm.Rejected {
				fmt.Fprintf(out, "  %s: %v\n", r.Family, r.Err)
			}
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "kind: %s\n", parsed.Kind())
	if command.MutatesSchedule(parsed) {
		fmt.Fprintf(out, "summary: %s\n", pending.Summarize(parsed))
	}
	fmt.Fprintf(out, "command: %+v\n", parsed)
	return nil
}

func referenceTime(today string) (time.Time, error) {
	if today == "" {
		return time.Now(), nil
	}
	t, err := datemath.ParseISO(today)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today %q: %w", today, err)
	}
	// Noon keeps the date stable in any timezone.
	return t.Add(12 * time.Hour), nil
}
