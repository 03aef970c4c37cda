package http

import (
	"encoding/json"
	"net/http"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/master"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/Joseph2303/ProyectoPSS/internal/handler/http/response"
	masterService "github.com/Joseph2303/ProyectoPSS/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	// Turn handlers
	ListTurns(w http.ResponseWriter, r *http.Request)
	GetTurn(w http.ResponseWriter, r *http.Request)
	CreateTurn(w http.ResponseWriter, r *http.Request)
	UpdateTurn(w http.ResponseWriter, r *http.Request)
	DeleteTurn(w http.ResponseWriter, r *http.Request)

	// Position handlers
	ListPositions(w http.ResponseWriter, r *http.Request)
	CreatePosition(w http.ResponseWriter, r *http.Request)
	UpdatePosition(w http.ResponseWriter, r *http.Request)
	DeletePosition(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService *masterService.MasterServiceImpl
}

func NewMasterHandler(svc *masterService.MasterServiceImpl) MasterHandler {
	return &masterHandlerImpl{
		masterService: svc,
	}
}

// ==================== TURN HANDLERS ====================

func (h *masterHandlerImpl) ListTurns(w http.ResponseWriter, r *http.Request) {
	turns, err := h.masterService.ListTurns(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toTurnResponses(turns))
}

func (h *masterHandlerImpl) GetTurn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.masterService.GetTurn(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toTurnResponse(t))
}

func (h *masterHandlerImpl) CreateTurn(w http.ResponseWriter, r *http.Request) {
	var req turn.CreateTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateTurn(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Turn created successfully", toTurnResponse(created))
}

func (h *masterHandlerImpl) UpdateTurn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req turn.UpdateTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.masterService.UpdateTurn(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toTurnResponse(updated))
}

func (h *masterHandlerImpl) DeleteTurn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteTurn(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Turn deleted successfully", nil)
}

// ==================== POSITION HANDLERS ====================

func (h *masterHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.masterService.ListPositions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toPositionResponses(positions))
}

func (h *masterHandlerImpl) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req master.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreatePosition(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created successfully", toPositionResponse(created))
}

func (h *masterHandlerImpl) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req master.UpdatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.masterService.UpdatePosition(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toPositionResponse(updated))
}

func (h *masterHandlerImpl) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeletePosition(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position deleted successfully", nil)
}
