package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while articles are analysed.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Warn(message string)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: os.Stderr}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Analyzing articles"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Warn(message string) {
	if r.bar != nil {
		_ = r.bar.Clear()
	}
	fmt.Fprintf(os.Stderr, "Warning: %s\n", message)
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	w     io.Writer
	total int
}

// NewCIReporter returns a CIReporter writing to w.
func NewCIReporter(w io.Writer) *CIReporter {
	return &CIReporter{w: w}
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.w, "Analyzing %d articles\n", total)
}

func (r *CIReporter) Update(current int, message string) {
	fmt.Fprintf(r.w, "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Warn(message string) {
	fmt.Fprintf(r.w, "Warning: %s\n", message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(r.w, "Analysis complete")
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Update(int, string) {}
func (Nop) Warn(string)        {}
func (Nop) Finish()            {}
