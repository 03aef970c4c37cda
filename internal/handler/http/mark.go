package http

import (
	"encoding/json"
	"net/http"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
	"github.com/Joseph2303/ProyectoPSS/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MarkHandler interface {
	Board(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ShiftIn(w http.ResponseWriter, r *http.Request)
	ShiftOut(w http.ResponseWriter, r *http.Request)
	ToggleBreak(w http.ResponseWriter, r *http.Request)
	CreateGeneric(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type markHandlerImpl struct {
	markService mark.Service
}

func NewMarkHandler(markService mark.Service) MarkHandler {
	return &markHandlerImpl{
		markService: markService,
	}
}

// Board serves the kiosk rows: employees on an active schedule or holding
// an open shift.
func (h *markHandlerImpl) Board(w http.ResponseWriter, r *http.Request) {
	rows, err := h.markService.ListBoard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toBoardRowResponses(rows))
}

func (h *markHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	f := mark.Filter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Type:       mark.Type(r.URL.Query().Get("type")),
		Date:       r.URL.Query().Get("date"),
		OpenOnly:   r.URL.Query().Get("open") == "true",
	}

	marks, err := h.markService.ListMarks(r.Context(), f)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toMarkResponses(marks))
}

func (h *markHandlerImpl) ShiftIn(w http.ResponseWriter, r *http.Request) {
	var req mark.ShiftMarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.markService.MarkShiftIn(r.Context(), req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if created == nil {
		// Illegal transition: silently rejected.
		response.SuccessWithMessage(w, "No shift opened", nil)
		return
	}

	response.Created(w, "Shift opened", toMarkResponse(*created))
}

func (h *markHandlerImpl) ShiftOut(w http.ResponseWriter, r *http.Request) {
	var req mark.ShiftMarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	res, err := h.markService.MarkShiftOut(r.Context(), req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if res == nil {
		response.SuccessWithMessage(w, "No open shift", nil)
		return
	}

	response.Success(w, toCloseResultResponse(*res))
}

func (h *markHandlerImpl) ToggleBreak(w http.ResponseWriter, r *http.Request) {
	var req mark.ToggleBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	m, err := h.markService.ToggleBreak(r.Context(), req.EmployeeID, req.BreakType)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toMarkResponse(m))
}

func (h *markHandlerImpl) CreateGeneric(w http.ResponseWriter, r *http.Request) {
	var req mark.GenericMarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.markService.RecordGenericMark(r.Context(), req.EmployeeID, req.Label)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Mark created", toMarkResponse(created))
}

func (h *markHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.markService.CloseMark(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toCloseResultResponse(res))
}

func (h *markHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req mark.UpdateMarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.markService.UpdateMark(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toMarkResponse(updated))
}
