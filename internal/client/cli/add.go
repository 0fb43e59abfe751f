package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kerimcanak/SnapCryptor/internal/client/fileset"
	"github.com/Kerimcanak/SnapCryptor/internal/client/picker"
	"github.com/Kerimcanak/SnapCryptor/internal/common"
)

// pickFiles is a test seam for picker.FromPaths.
var pickFiles = picker.FromPaths

// Add puts the files at args into the selection. Names already selected are
// skipped; a bad path aborts the whole command.
func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: add PATH...")
		return nil
	}

	handles, err := pickFiles(args...)
	if err != nil {
		a.printError(err)
		return err
	}

	before := len(a.controller.Files())
	if err := a.controller.AddFiles(handles...); err != nil {
		a.reportBusy(err)
		return err
	}

	added := len(a.controller.Files()) - before
	msg := fmt.Sprintf("Added %d file(s)", added)
	if skipped := len(handles) - added; skipped > 0 {
		msg += fmt.Sprintf(", skipped %d already selected", skipped)
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// Remove drops the named files from the selection.
func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: remove NAME...")
		return nil
	}

	selected := fileset.New(a.controller.Files()...)
	for _, name := range args {
		if !selected.Contains(name) {
			fmt.Fprintf(a.out, "Not selected: %s\n", name)
			continue
		}
		if err := a.controller.RemoveFile(name); err != nil {
			a.reportBusy(err)
			return err
		}
	}
	fmt.Fprintf(a.out, "%d file(s) selected\n", len(a.controller.Files()))
	return nil
}

func (a *App) reportBusy(err error) {
	if errors.Is(err, common.ErrSubmissionInFlight) {
		fmt.Fprintln(a.out, "A submission is in flight; try again when it finishes.")
		return
	}
	a.printError(err)
}
