package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Text renders the document for the terminal preview tab. The layout follows
// the printed A4 document section for section.
func Text(doc Document, width int) string {
	if width < 40 {
		width = 40
	}
	inner := width - 4

	titleStyle := lipgloss.NewStyle().Bold(true).Width(inner).Align(lipgloss.Center)
	headingStyle := lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle := lipgloss.NewStyle().Bold(true).Width(18)
	dimStyle := lipgloss.NewStyle().Faint(true)
	italicStyle := lipgloss.NewStyle().Italic(true).Faint(true)
	pageStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(1, 1).
		Width(width)

	var b strings.Builder

	b.WriteString(titleStyle.Render(doc.Title) + "\n")
	b.WriteString(titleStyle.Render(doc.UnitName) + "\n")
	b.WriteString(strings.Repeat("─", inner) + "\n\n")

	for _, row := range doc.Meta {
		b.WriteString(labelStyle.Render(row.Label) + " " + row.Value + "\n")
	}

	b.WriteString("\n" + headingStyle.Render("KEHADIRAN") + "\n")
	students := doc.StudentsLine
	if doc.HasPercentage {
		students += dimStyle.Render(fmt.Sprintf(" (%d%%)", doc.Percentage))
	}
	b.WriteString(labelStyle.Render("Kehadiran Murid") + " " + students + "\n")
	b.WriteString(labelStyle.Render("Guru Penasihat") + " " + doc.TeachersLine + "\n")

	b.WriteString("\n" + headingStyle.Render("LAPORAN AKTIVITI") + "\n")
	if len(doc.Activities) > 0 {
		for i, act := range doc.Activities {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, act))
		}
	} else {
		b.WriteString(italicStyle.Render(NoActivitiesPlaceholder) + "\n")
	}

	b.WriteString("\n" + headingStyle.Render("PENERAPAN NILAI MURNI") + "\n")
	b.WriteString(doc.ValuesLine + "\n")

	b.WriteString("\n" + headingStyle.Render("ELEMEN KBAT") + "\n")
	b.WriteString(doc.KbatLine + "\n")

	b.WriteString("\n" + headingStyle.Render("SISIPAN PIKEBM") + "\n")
	b.WriteString(labelStyle.Render("Tajuk:") + " " + doc.PikebmTitle + "\n")
	b.WriteString(labelStyle.Render("Ringkasan:") + " " + doc.PikebmSummary + "\n")

	b.WriteString("\n" + headingStyle.Render("CATATAN / ULASAN GURU") + "\n")
	b.WriteString(doc.AdvisorNote + "\n")

	b.WriteString("\n\n" + strings.Repeat(" ", max(0, inner-30)) + strings.Repeat(".", 26) + "\n")
	b.WriteString(strings.Repeat(" ", max(0, inner-30)) + doc.SignatureLabel + "\n")
	b.WriteString(strings.Repeat(" ", max(0, inner-30)) + dimStyle.Render("Tarikh: "+doc.SignatureDate) + "\n")

	return pageStyle.Render(b.String())
}
