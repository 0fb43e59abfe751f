package cli

import (
	"github.com/fatih/color"

	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
)

var (
	errorColor    = color.New(color.FgRed)
	progressColor = color.New(color.FgCyan)
	infoColor     = color.New(color.FgGreen)
)

// renderStatus colours a status line by level. Colours are dropped
// automatically when stdout is not a terminal.
func renderStatus(st models.StatusMessage) string {
	switch st.Level {
	case models.StatusError:
		return errorColor.Sprint(st.Text)
	case models.StatusProgress:
		return progressColor.Sprint(st.Text)
	case models.StatusInfo:
		return infoColor.Sprint(st.Text)
	}
	return st.Text
}
