package tui

// Key-flow tests for the form model. Each test drives a complete user
// interaction through Update so regressions in key dispatch, guard
// conditions, or command wiring fail fast here.

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/services"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func key(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

type stubGenerator struct {
	content domain.GeneratedContent
	err     error
	calls   int
}

func (s *stubGenerator) Generate(ctx context.Context, topic, unitName string) (domain.GeneratedContent, error) {
	s.calls++
	return s.content, s.err
}

type stubSubmitter struct {
	err   error
	calls int
}

func (s *stubSubmitter) Submit(ctx context.Context, endpointURL string, payload map[string]any) error {
	s.calls++
	return s.err
}

type stubClipboard struct {
	text string
	err  error
}

func (s *stubClipboard) Write(text string) error {
	s.text = text
	return s.err
}

type stubPrinter struct {
	path string
	err  error
}

func (s *stubPrinter) Print(path string) error {
	s.path = path
	return s.err
}

func testModel(gen *stubGenerator, sub *stubSubmitter) Model {
	return NewModel(Deps{
		Service:   services.NewReportService(gen, sub),
		Clipboard: &stubClipboard{},
		Printer:   &stubPrinter{},
		SheetURL:  "https://example.com/exec",
	})
}

func fieldIndex(id fieldID) int {
	for i, spec := range formFields {
		if spec.id == id {
			return i
		}
	}
	return -1
}

// moveTo navigates the cursor to the given field.
func moveTo(m Model, id fieldID) Model {
	target := fieldIndex(id)
	for m.cursor != target {
		if m.cursor < target {
			result, _ := m.Update(key("down"))
			m = result.(Model)
		} else {
			result, _ := m.Update(key("up"))
			m = result.(Model)
		}
	}
	return m
}

// typeText feeds the runes one key at a time.
func typeText(m Model, text string) Model {
	for _, r := range text {
		result, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = result.(Model)
	}
	return m
}

// ---------------------------------------------------------------------------
// Field editing
// ---------------------------------------------------------------------------

func TestEditField_CommitReplacesValue(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})
	m = moveTo(m, fieldVenue)

	result, _ := m.Update(key("enter"))
	m = result.(Model)
	if !m.editing {
		t.Fatal("enter should open the field editor")
	}

	m.input.SetValue("Padang Sekolah")
	result, _ = m.Update(key("enter"))
	m = result.(Model)

	if m.editing {
		t.Error("enter should close the editor")
	}
	if m.report.Venue != "Padang Sekolah" {
		t.Errorf("venue = %q, want %q", m.report.Venue, "Padang Sekolah")
	}
}

func TestEditField_EscDiscards(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})
	m = moveTo(m, fieldVenue)

	result, _ := m.Update(key("enter"))
	m = result.(Model)
	m.input.SetValue("Tempat Lain")
	result, _ = m.Update(key("esc"))
	m = result.(Model)

	if m.report.Venue != "Dewan Sekolah" {
		t.Errorf("esc must keep the old value, got %q", m.report.Venue)
	}
}

func TestEditField_NumericParseOrZero(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})
	m = moveTo(m, fieldStudentsPresent)

	result, _ := m.Update(key("enter"))
	m = result.(Model)
	m.input.SetValue("abc")
	result, _ = m.Update(key("enter"))
	m = result.(Model)

	if m.report.StudentsPresent != 0 {
		t.Errorf("non-numeric input must commit as 0, got %d", m.report.StudentsPresent)
	}
}

func TestEditField_ActivitiesSplitOnNewlines(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})
	m = moveTo(m, fieldActivities)

	result, _ := m.Update(key("enter"))
	m = result.(Model)
	if !m.editing {
		t.Fatal("enter should open the textarea")
	}
	m.area.SetValue("Taklimat diberikan.\nLatihan dijalankan.")
	result, _ = m.Update(key("esc"))
	m = result.(Model)

	if len(m.report.Activities) != 2 {
		t.Fatalf("activities = %v, want 2 entries", m.report.Activities)
	}
	if m.report.Activities[1] != "Latihan dijalankan." {
		t.Errorf("activities[1] = %q", m.report.Activities[1])
	}
}

func TestDateFormat_EnterCycles(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})
	m = moveTo(m, fieldDateFormat)

	result, _ := m.Update(key("enter"))
	m = result.(Model)
	if m.report.DateFormat != domain.DateFormatSlash {
		t.Errorf("first cycle = %q, want slash format", m.report.DateFormat)
	}

	result, _ = m.Update(key("enter"))
	m = result.(Model)
	result, _ = m.Update(key("enter"))
	m = result.(Model)
	if m.report.DateFormat != domain.DateFormatLong {
		t.Errorf("cycling all formats should wrap back to long, got %q", m.report.DateFormat)
	}
}

// ---------------------------------------------------------------------------
// Unit picker
// ---------------------------------------------------------------------------

func TestUnitPicker_SelectsOption(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})

	result, _ := m.Update(key("enter")) // cursor starts on unit name
	m = result.(Model)
	if !m.picking {
		t.Fatal("enter on the unit field should open the picker")
	}

	result, _ = m.Update(key("down"))
	m = result.(Model)
	result, _ = m.Update(key("enter"))
	m = result.(Model)

	if m.picking {
		t.Error("enter should close the picker")
	}
	if m.report.UnitName != domain.UnitOptions[1] {
		t.Errorf("unit = %q, want %q", m.report.UnitName, domain.UnitOptions[1])
	}
}

func TestUnitPicker_FuzzyFilter(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})

	result, _ := m.Update(key("enter"))
	m = result.(Model)
	m = typeText(m, "robotik")

	if len(m.pickerMatches) != 1 || m.pickerMatches[0] != "Kelab Robotik" {
		t.Errorf("matches = %v, want only Kelab Robotik", m.pickerMatches)
	}
}

func TestUnitPicker_EscKeepsOldValue(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})
	m.report.UnitName = "Kelab Robotik"

	result, _ := m.Update(key("enter"))
	m = result.(Model)
	result, _ = m.Update(key("esc"))
	m = result.(Model)

	if m.report.UnitName != "Kelab Robotik" {
		t.Errorf("esc must keep the old unit, got %q", m.report.UnitName)
	}
}

// ---------------------------------------------------------------------------
// [g] Generate
// ---------------------------------------------------------------------------

func TestGenerate_EmptyTopicBlocked(t *testing.T) {
	gen := &stubGenerator{}
	m := testModel(gen, &stubSubmitter{})

	result, cmd := m.Update(key("g"))
	m = result.(Model)

	if cmd != nil {
		t.Error("no command should run for an empty topic")
	}
	if !m.statusError || !strings.Contains(m.status, "Topik") {
		t.Errorf("status = %q, want empty-topic message", m.status)
	}
	if gen.calls != 0 {
		t.Error("generator must not be called")
	}
}

func TestGenerate_SuccessMergesAndClearsFlag(t *testing.T) {
	gen := &stubGenerator{content: domain.GeneratedContent{
		Activities:    []string{"Taklimat diberikan."},
		Values:        []string{"Disiplin"},
		PikebmTitle:   "Tajuk",
		PikebmSummary: "Ringkasan",
		Kbat:          "Menganalisis",
	}}
	m := testModel(gen, &stubSubmitter{})
	m.report.ActivityTopic = "Kawad Kaki"

	result, cmd := m.Update(key("g"))
	m = result.(Model)
	if !m.generating {
		t.Fatal("generating flag should be set while in flight")
	}
	if cmd == nil {
		t.Fatal("a generate command should run")
	}

	result, _ = m.Update(cmd())
	m = result.(Model)

	if m.generating {
		t.Error("generating flag must clear on result")
	}
	if len(m.report.Activities) != 1 || m.report.Kbat != "Menganalisis" {
		t.Errorf("generated content not merged: %+v", m.report)
	}
}

func TestGenerate_SecondPressIgnoredWhileInFlight(t *testing.T) {
	gen := &stubGenerator{}
	m := testModel(gen, &stubSubmitter{})
	m.report.ActivityTopic = "Kawad Kaki"

	result, _ := m.Update(key("g"))
	m = result.(Model)
	_, cmd := m.Update(key("g"))

	if cmd != nil {
		t.Error("[g] must be a no-op while a generation is in flight")
	}
}

func TestGenerate_FailureKeepsReport(t *testing.T) {
	gen := &stubGenerator{err: &domain.GenerationError{Reason: "missing field"}}
	m := testModel(gen, &stubSubmitter{})
	m.report.ActivityTopic = "Kawad Kaki"
	m.report.AdvisorNote = "Catatan asal"

	result, cmd := m.Update(key("g"))
	m = result.(Model)
	result, _ = m.Update(cmd())
	m = result.(Model)

	if m.generating {
		t.Error("generating flag must clear on failure")
	}
	if !m.statusError {
		t.Error("failure should show an error status")
	}
	if m.report.AdvisorNote != "Catatan asal" {
		t.Error("a failed generation must not touch the report")
	}
}

// ---------------------------------------------------------------------------
// [s] Submit
// ---------------------------------------------------------------------------

func submittableModel(sub *stubSubmitter) Model {
	m := testModel(&stubGenerator{}, sub)
	m.report.UnitName = "Kelab Robotik"
	m.report.ActivityTopic = "Pengenalan Litar"
	return m
}

func TestSubmit_SuccessSetsSubmittedFlag(t *testing.T) {
	sub := &stubSubmitter{}
	m := submittableModel(sub)

	result, cmd := m.Update(key("s"))
	m = result.(Model)
	if !m.saving {
		t.Fatal("saving flag should be set while in flight")
	}
	result, _ = m.Update(cmd())
	m = result.(Model)

	if m.saving {
		t.Error("saving flag must clear on result")
	}
	if !m.submitted {
		t.Error("successful submission should mark the report submitted")
	}
	if sub.calls != 1 {
		t.Errorf("submitter calls = %d, want 1", sub.calls)
	}
}

func TestSubmit_ValidationErrorMessage(t *testing.T) {
	sub := &stubSubmitter{}
	m := testModel(&stubGenerator{}, sub)

	result, cmd := m.Update(key("s"))
	m = result.(Model)
	result, _ = m.Update(cmd())
	m = result.(Model)

	if !m.statusError || !strings.Contains(m.status, "Nama Unit") {
		t.Errorf("status = %q, want validation message", m.status)
	}
	if sub.calls != 0 {
		t.Error("validation failure must not reach the submitter")
	}
}

func TestSubmit_NoEndpointMessage(t *testing.T) {
	m := submittableModel(&stubSubmitter{})
	m.deps.SheetURL = ""

	result, cmd := m.Update(key("s"))
	m = result.(Model)
	result, _ = m.Update(cmd())
	m = result.(Model)

	if !strings.Contains(m.status, "set-url") {
		t.Errorf("status = %q, want config hint", m.status)
	}
}

func TestSubmit_TransportFailure(t *testing.T) {
	sub := &stubSubmitter{err: &domain.SubmissionError{Err: errors.New("refused")}}
	m := submittableModel(sub)

	result, cmd := m.Update(key("s"))
	m = result.(Model)
	result, _ = m.Update(cmd())
	m = result.(Model)

	if m.submitted {
		t.Error("a failed submission must not mark the report submitted")
	}
	if !strings.Contains(m.status, "sambungan internet") {
		t.Errorf("status = %q, want connectivity message", m.status)
	}
}

func TestSubmit_EditClearsSubmittedFlag(t *testing.T) {
	m := submittableModel(&stubSubmitter{})
	m.submitted = true

	m = moveTo(m, fieldVenue)
	result, _ := m.Update(key("enter"))
	m = result.(Model)
	m.input.SetValue("Padang")
	result, _ = m.Update(key("enter"))
	m = result.(Model)

	if m.submitted {
		t.Error("any committed edit must clear the submitted flag")
	}
}

// ---------------------------------------------------------------------------
// [w] WhatsApp copy, [a] share, [r] reset
// ---------------------------------------------------------------------------

func TestCopyMessage_PutsTextOnClipboard(t *testing.T) {
	clip := &stubClipboard{}
	m := testModel(&stubGenerator{}, &stubSubmitter{})
	m.deps.Clipboard = clip
	m.report.UnitName = "Kelab Robotik"

	result, _ := m.Update(key("w"))
	m = result.(Model)

	if !strings.Contains(clip.text, "LAPORAN AKTIVITI KOKURIKULUM") {
		t.Errorf("clipboard text missing header: %q", clip.text)
	}
	if !strings.Contains(m.status, "disalin") {
		t.Errorf("status = %q, want copied message", m.status)
	}
}

func TestCopyMessage_Failure(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})
	m.deps.Clipboard = &stubClipboard{err: errors.New("denied")}

	result, _ := m.Update(key("w"))
	m = result.(Model)

	if !m.statusError {
		t.Error("clipboard failure should show an error status")
	}
}

func TestShareLink_Copied(t *testing.T) {
	var called bool
	m := testModel(&stubGenerator{}, &stubSubmitter{})
	m.deps.ShareLink = func() error {
		called = true
		return nil
	}

	result, _ := m.Update(key("a"))
	m = result.(Model)

	if !called {
		t.Error("[a] should invoke the share callback")
	}
	if !strings.Contains(m.status, "Pautan") {
		t.Errorf("status = %q, want share confirmation", m.status)
	}
}

func TestReset_RestoresInitialForm(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})
	m.report.UnitName = "Kelab Robotik"
	m.report.Activities = []string{"a", "b"}
	m.submitted = true

	result, _ := m.Update(key("r"))
	m = result.(Model)

	if m.report.UnitName != "" || len(m.report.Activities) != 0 {
		t.Errorf("reset must restore the initial form, got %+v", m.report)
	}
	if m.submitted {
		t.Error("reset must clear the submitted flag")
	}
	if m.report.Venue != "Dewan Sekolah" {
		t.Error("reset must restore the default venue")
	}
}

// ---------------------------------------------------------------------------
// Tabs, preview, view
// ---------------------------------------------------------------------------

func TestTab_SwitchesToPreviewAndBack(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})

	result, _ := m.Update(key("tab"))
	m = result.(Model)
	if m.activeTab != tabPreview {
		t.Fatal("tab should switch to the preview pane")
	}

	result, _ = m.Update(key("tab"))
	m = result.(Model)
	if m.activeTab != tabEdit {
		t.Error("tab should switch back to the form")
	}
}

func TestPreview_ScrollsWithArrows(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})
	result, _ := m.Update(key("tab"))
	m = result.(Model)

	result, _ = m.Update(key("down"))
	m = result.(Model)
	if m.previewOffset != 1 {
		t.Errorf("offset = %d, want 1", m.previewOffset)
	}

	result, _ = m.Update(key("up"))
	m = result.(Model)
	result, _ = m.Update(key("up"))
	m = result.(Model)
	if m.previewOffset != 0 {
		t.Errorf("offset must not go negative, got %d", m.previewOffset)
	}
}

func TestView_ShowsAttendanceBadge(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})
	m.report.StudentsPresent = 18
	m.report.StudentsTotal = 24
	m.width = 100
	m.height = 40

	view := m.View()
	if !strings.Contains(view, "75%") {
		t.Error("View should show the attendance percentage badge")
	}
}

func TestView_PreviewShowsDocumentTitle(t *testing.T) {
	m := testModel(&stubGenerator{}, &stubSubmitter{})
	m.activeTab = tabPreview
	m.width = 100
	m.height = 60

	view := m.View()
	if !strings.Contains(view, "LAPORAN MINGGUAN") {
		t.Error("preview should render the document title")
	}
}
