package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
)

const defaultHistoryLimit = 10

// History prints the most recent operations, or clears them with "clear".
func (a *App) History(ctx context.Context, args []string) error {
	if a.history == nil {
		fmt.Fprintln(a.out, "History is disabled.")
		return nil
	}

	limit := defaultHistoryLimit
	if len(args) > 0 {
		if args[0] == "clear" {
			if err := a.history.Clear(ctx); err != nil {
				a.printError(err)
				return err
			}
			fmt.Fprintln(a.out, "History cleared.")
			return nil
		}

		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintln(a.out, "Usage: history [N|clear]")
			return nil
		}
		limit = n
	}

	recs, err := a.history.List(ctx, limit)
	if err != nil {
		a.printError(err)
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No operations recorded yet.")
		return nil
	}

	for _, r := range recs {
		fmt.Fprintln(a.out, formatRecord(r))
	}
	return nil
}

func formatRecord(r *models.OperationRecord) string {
	outcome := infoColor.Sprint(r.Outcome)
	if r.Outcome == models.OutcomeFailure {
		outcome = errorColor.Sprint(r.Outcome)
	}
	return fmt.Sprintf("%s  %-7s  %s  %d file(s)  %s  %s",
		r.StartedAt.Local().Format(time.DateTime),
		r.Kind,
		outcome,
		len(r.Files),
		r.Duration().Round(time.Millisecond),
		r.Message)
}
