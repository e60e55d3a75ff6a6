// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/adapters/notification"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/adapters/render"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/ports"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/services"
)

// fieldID identifies one editable report field.
type fieldID int

const (
	fieldUnitName fieldID = iota
	fieldMeetingNumber
	fieldDate
	fieldDateFormat
	fieldStartTime
	fieldEndTime
	fieldVenue
	fieldStudentsPresent
	fieldStudentsTotal
	fieldTeachersPresent
	fieldActivityTopic
	fieldActivities
	fieldValues
	fieldPikebmTitle
	fieldKbat
	fieldPikebmSummary
	fieldAdvisorNote
)

// fieldSpec describes how a field appears and is edited in the form.
type fieldSpec struct {
	id          fieldID
	label       string
	placeholder string
	multiline   bool
	section     string // non-empty starts a new section heading
}

// formFields lists the fields in form order, mirroring the paper form.
var formFields = []fieldSpec{
	{id: fieldUnitName, label: "Nama Unit / Kelab", section: "Maklumat Asas"},
	{id: fieldMeetingNumber, label: "Bilangan Perjumpaan"},
	{id: fieldDate, label: "Tarikh", placeholder: "YYYY-MM-DD"},
	{id: fieldDateFormat, label: "Format Tarikh"},
	{id: fieldStartTime, label: "Masa Mula", placeholder: "HH:MM"},
	{id: fieldEndTime, label: "Masa Tamat", placeholder: "HH:MM"},
	{id: fieldVenue, label: "Tempat", placeholder: "Contoh: Padang Sekolah / Dewan Terbuka"},
	{id: fieldStudentsPresent, label: "Hadir (Murid)", section: "Kehadiran"},
	{id: fieldStudentsTotal, label: "Jumlah Ahli"},
	{id: fieldTeachersPresent, label: "Kehadiran Guru", placeholder: "Senaraikan nama guru penasihat yang hadir...", multiline: true},
	{id: fieldActivityTopic, label: "Topik Aktiviti Utama", placeholder: "Contoh: Latihan Kawad Kaki Asas", section: "Laporan Aktiviti"},
	{id: fieldActivities, label: "Perincian Aktiviti", placeholder: "Setiap baris akan menjadi satu poin...", multiline: true},
	{id: fieldValues, label: "Penerapan Nilai Murni", placeholder: "Contoh: Kerjasama, Disiplin (asingkan dengan koma)"},
	{id: fieldPikebmTitle, label: "Tajuk Sisipan PiKeBM"},
	{id: fieldKbat, label: "Elemen KBAT"},
	{id: fieldPikebmSummary, label: "Ringkasan Aktiviti PiKeBM", multiline: true},
	{id: fieldAdvisorNote, label: "Catatan Guru Penasihat", placeholder: "Aktiviti berjalan lancar...", multiline: true},
}

// tab selects the visible pane.
type tab int

const (
	tabEdit tab = iota
	tabPreview
)

// Deps carries the wiring the form needs from the composition root.
type Deps struct {
	Service   *services.ReportService
	Clipboard ports.Clipboard
	Printer   ports.Printer
	Notifier  *notification.Notifier
	SheetURL  string
	ShareLink func() error
	ExportDir string
}

// generateResultMsg resolves an AI generation command.
type generateResultMsg struct {
	report domain.ReportData
	err    error
}

// submitResultMsg resolves a submission command.
type submitResultMsg struct {
	err error
}

// exportResultMsg resolves a PDF export command.
type exportResultMsg struct {
	path string
	err  error
}

// printResultMsg resolves a print command.
type printResultMsg struct {
	err error
}

// Model represents the form TUI state. The report is held as a value and
// replaced wholesale on every committed edit.
type Model struct {
	deps   Deps
	report domain.ReportData

	activeTab tab
	cursor    int
	width     int
	height    int

	// Field editing
	editing bool
	input   textinput.Model
	area    textarea.Model

	// Unit picker overlay
	picking       bool
	pickerInput   textinput.Model
	pickerCursor  int
	pickerMatches []string

	// In-flight flags; each gates its own trigger key.
	generating bool
	saving     bool
	exporting  bool

	submitted bool

	status      string
	statusError bool

	previewOffset int
}

// NewModel creates the form over the initial report value.
func NewModel(deps Deps) Model {
	input := textinput.New()
	input.CharLimit = 200
	input.Width = 48

	area := textarea.New()
	area.SetWidth(48)
	area.SetHeight(5)

	pickerInput := textinput.New()
	pickerInput.Placeholder = "Taip untuk menapis..."
	pickerInput.Width = 36

	return Model{
		deps:          deps,
		report:        domain.NewReportData(),
		input:         input,
		area:          area,
		pickerInput:   pickerInput,
		pickerMatches: domain.UnitOptions,
	}
}

// Report returns the current report snapshot.
func (m Model) Report() domain.ReportData {
	return m.report
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// setReport replaces the report. Every path that changes the model goes
// through here so a stale submitted flag can never survive an edit.
func (m *Model) setReport(r domain.ReportData) {
	m.report = r
	if m.submitted {
		m.submitted = false
	}
}

// fieldValue renders the current editor text for a field.
func fieldValue(r domain.ReportData, id fieldID) string {
	switch id {
	case fieldUnitName:
		return r.UnitName
	case fieldMeetingNumber:
		return r.MeetingNumber
	case fieldDate:
		return r.Date
	case fieldDateFormat:
		return string(r.DateFormat)
	case fieldStartTime:
		return r.StartTime
	case fieldEndTime:
		return r.EndTime
	case fieldVenue:
		return r.Venue
	case fieldStudentsPresent:
		return strconv.Itoa(r.StudentsPresent)
	case fieldStudentsTotal:
		return strconv.Itoa(r.StudentsTotal)
	case fieldTeachersPresent:
		return r.TeachersPresent
	case fieldActivityTopic:
		return r.ActivityTopic
	case fieldActivities:
		return domain.JoinActivities(r.Activities)
	case fieldValues:
		return domain.JoinValues(r.Values)
	case fieldPikebmTitle:
		return r.PikebmTitle
	case fieldKbat:
		return r.Kbat
	case fieldPikebmSummary:
		return r.PikebmSummary
	case fieldAdvisorNote:
		return r.AdvisorNote
	}
	return ""
}

// commitField returns a copy of the report with one field replaced by the
// committed editor text. Numeric fields follow the original form's
// "parse or zero" behavior.
func commitField(r domain.ReportData, id fieldID, text string) domain.ReportData {
	c := r.Clone()
	switch id {
	case fieldUnitName:
		c.UnitName = text
	case fieldMeetingNumber:
		c.MeetingNumber = text
	case fieldDate:
		c.Date = text
	case fieldStartTime:
		c.StartTime = text
	case fieldEndTime:
		c.EndTime = text
	case fieldVenue:
		c.Venue = text
	case fieldStudentsPresent:
		n, _ := strconv.Atoi(text)
		if n < 0 {
			n = 0
		}
		c.StudentsPresent = n
	case fieldStudentsTotal:
		n, _ := strconv.Atoi(text)
		if n < 0 {
			n = 0
		}
		c.StudentsTotal = n
	case fieldTeachersPresent:
		c.TeachersPresent = text
	case fieldActivityTopic:
		c.ActivityTopic = text
	case fieldActivities:
		c.Activities = domain.SplitActivities(text)
	case fieldValues:
		c.Values = domain.SplitValues(text)
	case fieldPikebmTitle:
		c.PikebmTitle = text
	case fieldKbat:
		c.Kbat = text
	case fieldPikebmSummary:
		c.PikebmSummary = text
	case fieldAdvisorNote:
		c.AdvisorNote = text
	}
	return c
}

// cycleDateFormat advances to the next display format.
func cycleDateFormat(current domain.DateFormat) domain.DateFormat {
	for i, f := range domain.DateFormats {
		if f == current {
			return domain.DateFormats[(i+1)%len(domain.DateFormats)]
		}
	}
	return domain.DateFormats[0]
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case generateResultMsg:
		m.generating = false
		if msg.err != nil {
			m.fail(generateFailureStatus(msg.err))
			return m, nil
		}
		m.setReport(msg.report)
		m.info("Kandungan dijana. Sila semak sebelum menghantar.")
		if m.deps.Notifier != nil {
			_ = m.deps.Notifier.NotifyGenerated(m.report.ActivityTopic)
		}
		return m, nil

	case submitResultMsg:
		m.saving = false
		if msg.err != nil {
			m.fail(submitFailureStatus(msg.err))
			if m.deps.Notifier != nil {
				var subErr *domain.SubmissionError
				if errors.As(msg.err, &subErr) {
					_ = m.deps.Notifier.NotifySubmissionFailed()
				}
			}
			return m, nil
		}
		m.submitted = true
		m.info("Data berjaya dihantar ke Google Sheet!")
		if m.deps.Notifier != nil {
			_ = m.deps.Notifier.NotifySubmitted(m.report.UnitName)
		}
		return m, nil

	case exportResultMsg:
		m.exporting = false
		if msg.err != nil {
			m.fail("Gagal menjana PDF. Sila guna 'Cetak' (p) dan pilih 'Save as PDF'.")
			return m, nil
		}
		m.info("PDF disimpan: " + msg.path)
		return m, nil

	case printResultMsg:
		m.exporting = false
		if msg.err != nil {
			var exportErr *domain.ExportError
			if errors.As(msg.err, &exportErr) && exportErr.Hint != "" {
				m.fail("Gagal mencetak. " + exportErr.Hint)
			} else {
				m.fail("Gagal mencetak.")
			}
			return m, nil
		}
		m.info("Dokumen dihantar ke pencetak.")
		return m, nil

	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		if m.editing {
			return m.updateEditor(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

// updateBrowse handles keys while navigating the form or preview.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		if m.activeTab == tabEdit {
			m.activeTab = tabPreview
			m.previewOffset = 0
		} else {
			m.activeTab = tabEdit
		}
		return m, nil

	case "up", "k":
		if m.activeTab == tabPreview {
			if m.previewOffset > 0 {
				m.previewOffset--
			}
			return m, nil
		}
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.activeTab == tabPreview {
			m.previewOffset++
			return m, nil
		}
		if m.cursor < len(formFields)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if m.activeTab != tabEdit {
			return m, nil
		}
		return m.openEditor()

	case "g":
		return m.startGenerate()

	case "s":
		return m.startSubmit()

	case "w":
		return m.copyMessage()

	case "e":
		return m.startExport()

	case "p":
		return m.startPrint()

	case "a":
		return m.shareApp()

	case "r":
		m.report = domain.NewReportData()
		m.submitted = false
		m.info("Borang telah direset.")
		return m, nil
	}

	return m, nil
}

// openEditor begins editing the active field.
func (m Model) openEditor() (tea.Model, tea.Cmd) {
	spec := formFields[m.cursor]

	switch spec.id {
	case fieldDateFormat:
		// Enter cycles the format instead of opening a text editor.
		r := m.report.Clone()
		r.DateFormat = cycleDateFormat(r.DateFormat)
		m.setReport(r)
		return m, nil

	case fieldUnitName:
		m.picking = true
		m.pickerInput.SetValue("")
		m.pickerInput.Focus()
		m.pickerCursor = 0
		m.pickerMatches = domain.UnitOptions
		return m, textinput.Blink
	}

	m.editing = true
	if spec.multiline {
		m.area.SetValue(fieldValue(m.report, spec.id))
		m.area.Placeholder = spec.placeholder
		m.area.Focus()
		return m, textarea.Blink
	}
	m.input.SetValue(fieldValue(m.report, spec.id))
	m.input.Placeholder = spec.placeholder
	m.input.Focus()
	m.input.CursorEnd()
	return m, textinput.Blink
}

// updateEditor handles keys while a field editor is open.
func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	spec := formFields[m.cursor]

	if spec.multiline {
		switch msg.String() {
		case "esc":
			m.editing = false
			m.area.Blur()
			m.setReport(commitField(m.report, spec.id, m.area.Value()))
			return m, nil
		case "ctrl+c":
			m.editing = false
			m.area.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.area, cmd = m.area.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter":
		m.editing = false
		m.input.Blur()
		m.setReport(commitField(m.report, spec.id, m.input.Value()))
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updatePicker handles the fuzzy unit picker overlay.
func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.picking = false
		m.pickerInput.Blur()
		return m, nil
	case "up":
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
		return m, nil
	case "down":
		if m.pickerCursor < len(m.pickerMatches)-1 {
			m.pickerCursor++
		}
		return m, nil
	case "enter":
		if len(m.pickerMatches) > 0 {
			m.setReport(commitField(m.report, fieldUnitName, m.pickerMatches[m.pickerCursor]))
		}
		m.picking = false
		m.pickerInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.pickerInput, cmd = m.pickerInput.Update(msg)
	m.pickerMatches = filterUnits(m.pickerInput.Value())
	if m.pickerCursor >= len(m.pickerMatches) {
		m.pickerCursor = 0
	}
	return m, cmd
}

// filterUnits fuzzy-filters the unit options by the query.
func filterUnits(query string) []string {
	if query == "" {
		return domain.UnitOptions
	}
	matches := fuzzy.Find(query, domain.UnitOptions)
	result := make([]string, 0, len(matches))
	for _, match := range matches {
		result = append(result, match.Str)
	}
	return result
}

// startGenerate launches AI content generation unless blocked.
func (m Model) startGenerate() (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}
	if m.report.ActivityTopic == "" {
		m.fail("Sila masukkan Topik Aktiviti Utama dahulu.")
		return m, nil
	}

	m.generating = true
	m.info("Menjana kandungan...")
	svc := m.deps.Service
	report := m.report.Clone()
	return m, func() tea.Msg {
		merged, err := svc.FillReport(context.Background(), report)
		return generateResultMsg{report: merged, err: err}
	}
}

// startSubmit launches submission unless blocked.
func (m Model) startSubmit() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	m.saving = true
	m.info("Menghantar...")
	svc := m.deps.Service
	url := m.deps.SheetURL
	report := m.report.Clone()
	return m, func() tea.Msg {
		return submitResultMsg{err: svc.Submit(context.Background(), url, report)}
	}
}

// copyMessage puts the WhatsApp summary on the clipboard.
func (m Model) copyMessage() (tea.Model, tea.Cmd) {
	text := render.MessageText(m.report)
	if err := m.deps.Clipboard.Write(text); err != nil {
		m.fail("Gagal menyalin teks. Sila cuba lagi.")
		return m, nil
	}
	m.info("Teks laporan disalin! Anda boleh 'Paste' di Group WhatsApp sekolah sekarang.")
	return m, nil
}

// startExport launches PDF export.
func (m Model) startExport() (tea.Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}

	m.exporting = true
	m.info("Menjana PDF...")
	report := m.report.Clone()
	dir := m.deps.ExportDir
	return m, func() tea.Msg {
		if dir == "" {
			dir, _ = os.Getwd()
		}
		path := filepath.Join(dir, render.PDFFileName(report))
		doc := render.BuildDocument(report, time.Now())
		if err := render.PDF(doc, path); err != nil {
			return exportResultMsg{err: err}
		}
		return exportResultMsg{path: path}
	}
}

// startPrint exports the document to a temporary PDF and hands it to the
// print spooler.
func (m Model) startPrint() (tea.Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}

	m.exporting = true
	m.info("Mencetak...")
	report := m.report.Clone()
	printer := m.deps.Printer
	return m, func() tea.Msg {
		path := filepath.Join(os.TempDir(), render.PDFFileName(report))
		doc := render.BuildDocument(report, time.Now())
		if err := render.PDF(doc, path); err != nil {
			return printResultMsg{err: err}
		}
		return printResultMsg{err: printer.Print(path)}
	}
}

// shareApp copies the application link to the clipboard.
func (m Model) shareApp() (tea.Model, tea.Cmd) {
	shareFn := m.deps.ShareLink
	if shareFn == nil {
		return m, nil
	}
	if err := shareFn(); err != nil {
		m.fail("Sila salin URL aplikasi secara manual.")
		return m, nil
	}
	m.info("Pautan aplikasi telah disalin! Anda boleh 'Paste' di WhatsApp atau Telegram.")
	return m, nil
}

func (m *Model) info(s string) {
	m.status = s
	m.statusError = false
}

func (m *Model) fail(s string) {
	m.status = s
	m.statusError = true
}

// generateFailureStatus maps a generation error to its user message.
func generateFailureStatus(err error) string {
	if errors.Is(err, domain.ErrEmptyTopic) {
		return "Sila masukkan Topik Aktiviti Utama dahulu."
	}
	return "Gagal menjana kandungan. Sila cuba lagi."
}

// submitFailureStatus maps a submission error to its user message.
func submitFailureStatus(err error) string {
	var valErr *domain.ValidationError
	switch {
	case errors.Is(err, services.ErrNoEndpoint):
		return "URL Database belum ditetapkan. Jalankan 'elaporan config set-url' dahulu."
	case errors.As(err, &valErr):
		return "Sila isi Nama Unit dan Topik Aktiviti sebelum menghantar."
	default:
		return "Gagal menghantar data. Sila semak sambungan internet atau URL Script anda."
	}
}

// Run starts the form in its own Bubbletea program.
func Run(deps Deps) error {
	p := tea.NewProgram(NewModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
