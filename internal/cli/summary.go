package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/iconset/emitter"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	nameStyle   = lipgloss.NewStyle().Width(9)
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	totalStyle  = lipgloss.NewStyle().Bold(true)
)

// Summary renders one line per report followed by a total line.
func Summary(reports []*emitter.Report) string {
	p := message.NewPrinter(language.English)

	var b strings.Builder
	var written, failed, files int
	for _, r := range reports {
		written += r.Written()
		failed += r.Failed()
		files += len(r.Files())

		mark := okStyle.Render("✓")
		if r.Failed() > 0 {
			mark = failStyle.Render("✗")
		}
		line := p.Sprintf("%d icons written to %d files", r.Written(), len(r.Files()))
		if r.Failed() > 0 {
			line += failStyle.Render(p.Sprintf(", %d failed", r.Failed()))
		}
		b.WriteString(mark + " " + nameStyle.Render(r.Platform) + line +
			" " + detailStyle.Render("("+r.Strategy+")") + "\n")
	}

	total := p.Sprintf("%d platforms, %d icons written, %d files, %d failed",
		len(reports), written, files, failed)
	b.WriteString(totalStyle.Render(total) + "\n")
	return b.String()
}
