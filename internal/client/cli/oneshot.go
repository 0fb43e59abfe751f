package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
	"github.com/Kerimcanak/SnapCryptor/internal/common"
)

const usageOnce = "Usage: snapcryptor [flags] encrypt|decrypt FILE..."

var errUsage = errors.New(usageOnce)

// RunOnce submits the files in args[1:] with the operation named by args[0],
// asking for the password first.
func (a *App) RunOnce(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(a.out, usageOnce)
		return errUsage
	}

	kind, err := models.ParseOperationKind(args[0])
	if err != nil {
		a.printError(err)
		fmt.Fprintln(a.out, usageOnce)
		return err
	}

	handles, err := pickFiles(args[1:]...)
	if err != nil {
		a.printError(err)
		return err
	}
	if err := a.controller.AddFiles(handles...); err != nil {
		a.printError(err)
		return err
	}

	pw, err := promptPassword(a.reader, a.out)
	if err != nil {
		a.printError(err)
		return err
	}
	err = a.controller.SetPassword(pw)
	common.WipeByteArray(pw)
	if err != nil {
		a.printError(err)
		return err
	}

	_, err = a.controller.Submit(ctx, kind)
	return err
}
