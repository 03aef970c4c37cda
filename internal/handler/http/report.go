package http

import (
	"encoding/json"
	"net/http"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/report"
	"github.com/Joseph2303/ProyectoPSS/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UpdateNotes(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func (h *reportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toReportResponses(reports))
}

func (h *reportHandlerImpl) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req report.UpdateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.reportService.UpdateNotes(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toReportResponse(updated))
}

func (h *reportHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.reportService.Clear(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reports cleared", nil)
}
