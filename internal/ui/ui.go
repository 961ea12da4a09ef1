package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	domainErrors "github.com/tomdyson/toktab-cli/internal/errors"
	"github.com/tomdyson/toktab-cli/internal/i18n"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Header  = color.New(color.FgCyan, color.Bold)
	Dim     = color.New(color.FgHiBlack)
)

// DisableColor turns off all colored output, for --no-color and config.
func DisableColor() {
	color.NoColor = true
}

// SmartSpinner wraps the terminal spinner shown while a request is in flight
type SmartSpinner struct {
	spinner *spinner.Spinner
}

// NewSmartSpinner creates a new spinner with an initial message
func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s\n", Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("Error:"), msg)
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s\n", Warning.Sprint(msg))
}

// HandleAppError displays an application error in a friendly way.
// If translations is nil, it will use English defaults.
func HandleAppError(w io.Writer, err error, translations ...*i18n.Translations) {
	if err == nil {
		return
	}

	var t *i18n.Translations
	if len(translations) > 0 && translations[0] != nil {
		t = translations[0]
	}

	errPrefix := "Error"
	if t != nil {
		errPrefix = t.GetMessage("error_prefix", 0, nil)
	}

	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint(errPrefix+":"), appErr.Message)

		if appErr.Err != nil {
			_, _ = fmt.Fprintf(w, "%s\n", Dim.Sprintf("   %v", appErr.Err))
		}

		if appErr.Suggestion != "" {
			for i, line := range strings.Split(appErr.Suggestion, "\n") {
				if i == 0 {
					_, _ = fmt.Fprintf(w, "%s %s\n", Info.Sprint("💡"), line)
				} else {
					_, _ = fmt.Fprintf(w, "   %s\n", line)
				}
			}
		}
		return
	}

	PrintError(w, err.Error())
}
