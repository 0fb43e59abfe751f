package cli

import (
	"context"
	"fmt"
	"strings"
)

// getStatus renders the prompt label: connectivity and a selection summary.
func (a *App) getStatus() string {
	var parts []string
	if m := a.Mode(); m != ModeUnknown {
		parts = append(parts, string(m))
	}
	if a.controller != nil {
		if n := len(a.controller.Files()); n > 0 {
			parts = append(parts, fmt.Sprintf("%d file(s)", n))
		}
		if a.controller.HasPassword() {
			parts = append(parts, "pw")
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Root runs the interactive session until the user exits or input ends.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to SnapCryptor CLI (type 'help' for commands)")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	_ = a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
