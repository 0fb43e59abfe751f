package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
	"github.com/Kerimcanak/SnapCryptor/internal/common"
)

// Password asks for the password and hands it to the controller. An empty
// answer clears it.
func (a *App) Password(ctx context.Context) error {
	pw, err := promptPassword(a.reader, a.out)
	if err != nil {
		a.printError(err)
		return err
	}
	defer common.WipeByteArray(pw)

	if err := a.controller.SetPassword(pw); err != nil {
		a.reportBusy(err)
		return err
	}

	if len(pw) == 0 {
		fmt.Fprintln(a.out, "Password cleared.")
	} else {
		fmt.Fprintln(a.out, "Password set.")
	}
	return nil
}

// Submit runs one batch. Status lines are printed by the controller's
// listener as they happen.
func (a *App) Submit(ctx context.Context, kind models.OperationKind) error {
	_, err := a.controller.Submit(ctx, kind)
	if errors.Is(err, common.ErrSubmissionInFlight) {
		a.reportBusy(err)
	}
	return err
}

// Ping probes the service once and reports the result.
func (a *App) Ping(ctx context.Context) error {
	if err := a.checkOnline(ctx); err != nil {
		fmt.Fprintf(a.out, "%s is unreachable: %v\n", a.config.BaseURL, err)
		return err
	}
	fmt.Fprintf(a.out, "%s is online\n", a.config.BaseURL)
	return nil
}
