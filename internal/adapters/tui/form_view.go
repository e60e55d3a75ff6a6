package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/adapters/render"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	tabStyle     = lipgloss.NewStyle().Faint(true)
	tabActive    = lipgloss.NewStyle().Bold(true).Underline(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	labelStyle   = lipgloss.NewStyle().Width(26)
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badgeHigh    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	badgeMedium  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178"))
	badgeLow     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// View renders the form.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  📄 e-Laporan Kokurikulum"))
	if m.submitted {
		b.WriteString(okStyle.Render("  ✓ dihantar"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.viewTabs() + "\n\n")

	switch {
	case m.picking:
		b.WriteString(m.viewPicker())
	case m.activeTab == tabPreview:
		b.WriteString(m.viewPreview())
	default:
		b.WriteString(m.viewForm())
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString(m.viewHelp())
	return b.String()
}

func (m Model) viewTabs() string {
	edit := "Borang"
	preview := "Pratonton"
	if m.activeTab == tabEdit {
		return "  " + tabActive.Render(edit) + "   " + tabStyle.Render(preview)
	}
	return "  " + tabStyle.Render(edit) + "   " + tabActive.Render(preview)
}

func (m Model) viewForm() string {
	var b strings.Builder

	for i, spec := range formFields {
		if spec.section != "" {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(sectionStyle.Render("  "+spec.section) + "\n")
		}

		if m.editing && i == m.cursor {
			b.WriteString(m.viewEditor(spec))
			continue
		}

		value := fieldValue(m.report, spec.id)
		display := firstLine(value)
		if display == "" {
			display = dimStyle.Render(spec.placeholder)
		}
		if spec.id == fieldStudentsTotal {
			display += "  " + m.viewAttendanceBadge()
		}
		if spec.id == fieldDateFormat {
			display += dimStyle.Render("  (" + domain.FormatDate(m.report.Date, m.report.DateFormat) + ")")
		}

		if i == m.cursor {
			b.WriteString(cursorStyle.Render("  ▸ ") + labelStyle.Render(spec.label) + display + "\n")
		} else {
			b.WriteString("    " + labelStyle.Render(spec.label) + display + "\n")
		}
	}

	return b.String()
}

func (m Model) viewEditor(spec fieldSpec) string {
	var b strings.Builder
	b.WriteString(cursorStyle.Render("  ▸ ") + labelStyle.Render(spec.label))
	if spec.multiline {
		b.WriteString("\n" + indent(m.area.View(), 6) + "\n")
		b.WriteString(dimStyle.Render("      esc simpan · ctrl+c batal") + "\n")
	} else {
		b.WriteString(m.input.View() + "\n")
	}
	return b.String()
}

// viewAttendanceBadge colors the attendance percentage by tier.
func (m Model) viewAttendanceBadge() string {
	if m.report.StudentsTotal <= 0 {
		return ""
	}
	pct := domain.AttendancePercentage(m.report.StudentsPresent, m.report.StudentsTotal)
	text := fmt.Sprintf("%d%%", pct)
	switch domain.TierFor(pct) {
	case domain.TierHigh:
		return badgeHigh.Render(text)
	case domain.TierMedium:
		return badgeMedium.Render(text)
	default:
		return badgeLow.Render(text)
	}
}

func (m Model) viewPicker() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("  Pilih Unit / Kelab") + "\n\n")
	b.WriteString("  " + m.pickerInput.View() + "\n\n")

	if len(m.pickerMatches) == 0 {
		b.WriteString(dimStyle.Render("  Tiada padanan.") + "\n")
	}
	for i, name := range m.pickerMatches {
		if i == m.pickerCursor {
			b.WriteString(cursorStyle.Render("  ▸ "+name) + "\n")
		} else {
			b.WriteString(dimStyle.Render("    "+name) + "\n")
		}
	}

	return b.String()
}

func (m Model) viewPreview() string {
	width := m.width
	if width <= 0 || width > 90 {
		width = 90
	}
	doc := render.BuildDocument(m.report, time.Now())
	page := render.Text(doc, width-4)

	lines := strings.Split(page, "\n")
	visible := m.previewHeight()
	offset := m.previewOffset
	if offset > len(lines)-1 {
		offset = len(lines) - 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + visible
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for _, line := range lines[offset:end] {
		b.WriteString("  " + line + "\n")
	}
	if end < len(lines) {
		b.WriteString(dimStyle.Render("  ↓ lagi...") + "\n")
	}
	return b.String()
}

func (m Model) previewHeight() int {
	if m.height <= 0 {
		return 30
	}
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	return h
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusError {
		return errorStyle.Render("  "+m.status) + "\n"
	}
	return okStyle.Render("  "+m.status) + "\n"
}

func (m Model) viewHelp() string {
	if m.picking {
		return dimStyle.Render("  ↑/↓ navigasi · enter pilih · esc batal") + "\n"
	}
	if m.editing {
		return ""
	}
	if m.activeTab == tabPreview {
		return dimStyle.Render("  ↑/↓ skrol · tab borang · e PDF · p cetak · q keluar") + "\n"
	}
	return dimStyle.Render("  ↑/↓ navigasi · enter edit · g jana AI · s hantar · w WhatsApp · e PDF · p cetak · a kongsi · r reset · tab pratonton · q keluar") + "\n"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "…"
	}
	return s
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
