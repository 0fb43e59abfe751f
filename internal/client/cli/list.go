package cli

import (
	"context"
	"fmt"

	"github.com/Kerimcanak/SnapCryptor/internal/client/fileset"
	"github.com/Kerimcanak/SnapCryptor/internal/common"
)

// List prints the selection in submission order.
func (a *App) List(ctx context.Context) error {
	files := a.controller.Files()
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No files selected.")
	}

	for i, f := range files {
		fmt.Fprintf(a.out, "%d. %s (%s)\n", i+1, f.Name, common.FormatMB(f.Size))
	}
	if len(files) > 0 {
		total := fileset.New(files...).TotalSize()
		fmt.Fprintf(a.out, "Total: %d file(s), %s\n", len(files), common.FormatMB(total))
	}

	if a.controller.HasPassword() {
		fmt.Fprintln(a.out, "Password: set")
	} else {
		fmt.Fprintln(a.out, "Password: not set")
	}
	return nil
}

// ShowStatus prints the controller state and the last status message.
func (a *App) ShowStatus(ctx context.Context) error {
	fmt.Fprintf(a.out, "State: %s\n", a.controller.State())

	if st := a.controller.Status(); st.Text != "" {
		fmt.Fprintf(a.out, "Last status: %s\n", renderStatus(st))
	} else {
		fmt.Fprintln(a.out, "Last status: none")
	}

	if a.controller.IsSubmitDisabled() {
		fmt.Fprintln(a.out, "Submit: disabled (select files and set a password)")
	} else {
		fmt.Fprintln(a.out, "Submit: ready")
	}
	return nil
}
