package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
	"github.com/punchsheet/punchsheet-backend-go/internal/handler/http/response"
	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/validator"
)

// uploads are whole spreadsheets held in memory while parsing
const maxUploadSize = 32 << 20

type TimesheetHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	ListBatches(w http.ResponseWriter, r *http.Request)
	GetDaily(w http.ResponseWriter, r *http.Request)
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
	ExportWorkbook(w http.ResponseWriter, r *http.Request)
	ExportSummaryPDF(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// Import implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Import parse form error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		slog.Error("Import form file error", "error", err)
		response.BadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	importResponse, err := h.timesheetService.Import(r.Context(), header.Filename, file)
	if err != nil {
		slog.Error("Import service error", "error", err, "file_name", header.Filename)
		response.HandleError(w, err)
		return
	}

	slog.Info("Import completed",
		"batch_id", importResponse.BatchID,
		"file_name", importResponse.FileName,
		"rows", importResponse.RowCount,
	)
	response.Created(w, "Import completed", importResponse)
}

// ListBatches implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.timesheetService.ListBatches(r.Context())
	if err != nil {
		slog.Error("ListBatches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, batches)
}

// GetDaily implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetDaily(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")
	if !validator.IsValidUUID(batchID) {
		response.BadRequest(w, "Invalid batch ID", nil)
		return
	}

	filter := timesheet.DailyFilter{
		Person:     r.URL.Query().Get("person"),
		Department: r.URL.Query().Get("department"),
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	listResponse, err := h.timesheetService.GetDaily(r.Context(), batchID, filter)
	if err != nil {
		slog.Error("GetDaily service error", "error", err, "batch_id", batchID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResponse.Rows, &response.Meta{
		Page:       listResponse.Page,
		Limit:      listResponse.Limit,
		TotalItems: listResponse.TotalCount,
		TotalPages: listResponse.TotalPages,
	})
}

// GetMonthlySummary implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")
	if !validator.IsValidUUID(batchID) {
		response.BadRequest(w, "Invalid batch ID", nil)
		return
	}

	summary, err := h.timesheetService.GetMonthlySummary(r.Context(), batchID)
	if err != nil {
		slog.Error("GetMonthlySummary service error", "error", err, "batch_id", batchID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ExportWorkbook implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")
	if !validator.IsValidUUID(batchID) {
		response.BadRequest(w, "Invalid batch ID", nil)
		return
	}

	// Render into memory first so errors still produce a JSON response.
	var buf bytes.Buffer
	if err := h.timesheetService.ExportWorkbook(r.Context(), batchID, &buf); err != nil {
		slog.Error("ExportWorkbook service error", "error", err, "batch_id", batchID)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance-%s.xlsx"`, batchID))
	_, _ = w.Write(buf.Bytes())
}

// ExportSummaryPDF implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ExportSummaryPDF(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")
	if !validator.IsValidUUID(batchID) {
		response.BadRequest(w, "Invalid batch ID", nil)
		return
	}

	var buf bytes.Buffer
	if err := h.timesheetService.ExportSummaryPDF(r.Context(), batchID, &buf); err != nil {
		slog.Error("ExportSummaryPDF service error", "error", err, "batch_id", batchID)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="summary-%s.pdf"`, batchID))
	_, _ = w.Write(buf.Bytes())
}
