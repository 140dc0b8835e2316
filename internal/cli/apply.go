package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"schedule-interpreter/internal/grammar"
	"schedule-interpreter/internal/interpreter"
	"schedule-interpreter/internal/interpreter/usecase"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/internal/scheduleio"
	"schedule-interpreter/pkg/datemath"
)

const cliSession = "schedulectl"

var (
	applySchedule string
	applyOut      string
	applyToday    string
	applyDryRun   bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <utterance> [utterance...]",
	Short: "Apply utterances to a schedule file",
	Long: `Apply runs each utterance through the interpreter in order and confirms
every proposal, the way a user saying "potvrdi" after each command would.
Undo and redo utterances work on the changes made so far. The result is
written to --out, or to stdout when --out is empty.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&applySchedule, "schedule", "s", "", "YAML schedule to start from (required)")
	applyCmd.Flags().StringVarP(&applyOut, "out", "o", "", "write the resulting schedule here")
	applyCmd.Flags().StringVar(&applyToday, "today", "", "reference date YYYY-MM-DD for relative dates (default: now)")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "print what each utterance does without writing")
	_ = applyCmd.MarkFlagRequired("schedule")
}

func runApply(cmd *cobra.Command, args []string) error {
	now, err := referenceTime(applyToday)
	if err != nil {
		return err
	}
	dm, err := datemath.NewParser(timezone)
	if err != nil {
		return err
	}
	doc, err := scheduleio.LoadFile(applySchedule)
	if err != nil {
		return err
	}

	uc := usecase.New(newLogger(), grammar.New(), dm, nil, usecase.Config{})
	final, err := applyUtterances(cmd.Context(), uc, doc, args, now, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if applyDryRun {
		return nil
	}
	if applyOut == "" {
		return scheduleio.Encode(cmd.OutOrStdout(), final)
	}
	if err := scheduleio.SaveFile(applyOut, final); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d items to %s\n", len(final.Items), applyOut)
	return nil
}

// applyUtterances loads doc into a fresh session and confirms every proposal.
// It reports one line per utterance to report.
func applyUtterances(
	ctx context.Context,
	uc interpreter.UseCase,
	doc model.Document,
	utterances []string,
	now time.Time,
	report io.Writer,
) (model.Document, error) {
	sc := model.Scope{SessionID: cliSession}

	if _, err := uc.LoadDocument(ctx, sc, interpreter.LoadDocumentInput{Items: doc.Items}); err != nil {
		return model.Document{}, err
	}

	for _, text := range utterances {
		out, err := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: text, Now: now})
		if err != nil {
			return model.Document{}, fmt.Errorf("%q: %w", text, err)
		}

		switch out.Status {
		case interpreter.StatusProposed:
			applied, err := uc.Confirm(ctx, sc, interpreter.ActionInput{ActionID: out.Action.ID})
			if err != nil {
				return model.Document{}, fmt.Errorf("%q: %w", text, err)
			}
			if applied.Failure != "" {
				fmt.Fprintf(report, "%-40s failed: %s\n", text, applied.Failure)
				continue
			}
			fmt.Fprintf(report, "%-40s %s (changed %v)\n", text, applied.Action.Summary, applied.Changed)
		case interpreter.StatusNoMatch:
			fmt.Fprintf(report, "%-40s no match\n", text)
		default:
			fmt.Fprintf(report, "%-40s %s\n", text, out.Status)
		}
	}

	current, err := uc.GetDocument(ctx, sc)
	if err != nil {
		return model.Document{}, err
	}
	return current.Document, nil
}
