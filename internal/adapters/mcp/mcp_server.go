// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/adapters/render"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/services"
)

// Server exposes report operations over MCP using mark3labs/mcp-go.
type Server struct {
	server   *server.MCPServer
	service  *services.ReportService
	sheetURL string
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer(service *services.ReportService, sheetURL string) *Server {
	s := &Server{
		service:  service,
		sheetURL: sheetURL,
	}

	s.server = server.NewMCPServer(
		"e-laporan-kokurikulum",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	// Tool: generate_report_content
	generateTool := mcp.NewTool(
		"generate_report_content",
		mcp.WithDescription("Generate the five AI-fillable report fields (activities, values, PiKeBM title and summary, KBAT element) in Malay for an activity topic"),
		mcp.WithString(
			"topic",
			mcp.Required(),
			mcp.Description("The main activity topic, e.g. 'Latihan Kawad Kaki Asas'"),
		),
		mcp.WithString(
			"unit_name",
			mcp.Description("Optional unit or club name to ground the generated content"),
		),
	)
	s.server.AddTool(generateTool, s.handleGenerateContent)

	// Tool: compose_whatsapp_message
	composeTool := mcp.NewTool(
		"compose_whatsapp_message",
		mcp.WithDescription("Compose the WhatsApp-ready plain-text summary of a report"),
		mcp.WithString(
			"report_json",
			mcp.Required(),
			mcp.Description("The report as a JSON object; missing fields keep their defaults"),
		),
	)
	s.server.AddTool(composeTool, s.handleComposeMessage)

	// Tool: render_report_text
	renderTool := mcp.NewTool(
		"render_report_text",
		mcp.WithDescription("Render the formal A4 document layout of a report as plain text"),
		mcp.WithString(
			"report_json",
			mcp.Required(),
			mcp.Description("The report as a JSON object; missing fields keep their defaults"),
		),
	)
	s.server.AddTool(renderTool, s.handleRenderText)

	// Tool: submit_report
	submitTool := mcp.NewTool(
		"submit_report",
		mcp.WithDescription("Validate a report and submit it to the configured Google Sheet endpoint"),
		mcp.WithString(
			"report_json",
			mcp.Required(),
			mcp.Description("The report as a JSON object; unitName and activityTopic are required for submission"),
		),
	)
	s.server.AddTool(submitTool, s.handleSubmitReport)

	// Tool: attendance_percentage
	attendanceTool := mcp.NewTool(
		"attendance_percentage",
		mcp.WithDescription("Calculate the rounded attendance percentage and its tier for a headcount"),
		mcp.WithNumber(
			"present",
			mcp.Required(),
			mcp.Description("Number of students present"),
		),
		mcp.WithNumber(
			"total",
			mcp.Required(),
			mcp.Description("Total number of members"),
		),
	)
	s.server.AddTool(attendanceTool, s.handleAttendancePercentage)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// decodeReport parses a report_json argument over the default report, so a
// partial object behaves like a partially filled form.
func decodeReport(raw string) (domain.ReportData, error) {
	report := domain.NewReportData()
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return domain.ReportData{}, fmt.Errorf("invalid report_json: %w", err)
	}
	return report, nil
}

// handleGenerateContent handles the generate_report_content tool.
func (s *Server) handleGenerateContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("topic is required: " + err.Error()), nil
	}
	unitName := request.GetString("unit_name", "")

	report := domain.NewReportData()
	report.ActivityTopic = topic
	report.UnitName = unitName

	content, err := s.service.GenerateContent(ctx, report)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate content: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleComposeMessage handles the compose_whatsapp_message tool.
func (s *Server) handleComposeMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("report_json")
	if err != nil {
		return mcp.NewToolResultError("report_json is required: " + err.Error()), nil
	}

	report, err := decodeReport(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(render.MessageText(report)), nil
}

// handleRenderText handles the render_report_text tool.
func (s *Server) handleRenderText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("report_json")
	if err != nil {
		return mcp.NewToolResultError("report_json is required: " + err.Error()), nil
	}

	report, err := decodeReport(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc := render.BuildDocument(report, time.Now())
	return mcp.NewToolResultText(render.Text(doc, 80)), nil
}

// handleSubmitReport handles the submit_report tool.
func (s *Server) handleSubmitReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("report_json")
	if err != nil {
		return mcp.NewToolResultError("report_json is required: " + err.Error()), nil
	}

	report, err := decodeReport(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.service.Submit(ctx, s.sheetURL, report); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to submit report: %v", err)), nil
	}

	result := map[string]interface{}{
		"submitted": true,
		"unit_name": report.UnitName,
		"topic":     report.ActivityTopic,
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleAttendancePercentage handles the attendance_percentage tool.
func (s *Server) handleAttendancePercentage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	present := int(request.GetFloat("present", 0))
	total := int(request.GetFloat("total", 0))

	percentage := domain.AttendancePercentage(present, total)
	result := map[string]interface{}{
		"present":    present,
		"total":      total,
		"percentage": percentage,
		"tier":       string(domain.TierFor(percentage)),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
