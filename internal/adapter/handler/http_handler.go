package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rl1809/partstore/internal/core/domain"
	"github.com/rl1809/partstore/internal/core/service"
)

const (
	msgPartAdded    = "Part added successfully!"
	msgPartUpdated  = "Part updated successfully!"
	msgPartDeleted  = "Part deleted successfully!"
	msgSaveFailed   = "Error saving data"
	msgListFailed   = "Error fetching parts"
	msgUpdateFailed = "Error updating part"
	msgDeleteFailed = "Error deleting part"
	msgBadBody      = "invalid request body"
	msgNotReady     = "store not ready"
	msgNotFound     = "part not found"
)

var errBadBody = errors.New("invalid request body")

type HTTPHandler struct {
	partService *service.PartService
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

func NewHTTPHandler(partService *service.PartService) *HTTPHandler {
	return &HTTPHandler{partService: partService}
}

func (h *HTTPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.fail(w, "submit", err, msgSaveFailed)
		return
	}

	if _, err := h.partService.Create(r.Context(), fields); err != nil {
		h.fail(w, "submit", err, msgSaveFailed)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: msgPartAdded})
}

func (h *HTTPHandler) ListParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.partService.ListAll(r.Context())
	if err != nil {
		h.fail(w, "list parts", err, msgListFailed)
		return
	}

	writeJSON(w, http.StatusOK, parts)
}

func (h *HTTPHandler) UpdatePart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	fields, err := decodeFields(r)
	if err != nil {
		h.fail(w, "update part "+id, err, msgUpdateFailed)
		return
	}

	if _, err := h.partService.UpdateByID(r.Context(), id, fields); err != nil {
		h.fail(w, "update part "+id, err, msgUpdateFailed)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: msgPartUpdated})
}

func (h *HTTPHandler) DeletePart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.partService.DeleteByID(r.Context(), id); err != nil {
		h.fail(w, "delete part "+id, err, msgDeleteFailed)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: msgPartDeleted})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	err := h.partService.Ping(r.Context())
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Store: "ready"})
	case errors.Is(err, service.ErrNotReady):
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Store: "connecting"})
	default:
		log.Printf("health: store ping failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Store: "unreachable"})
	}
}

// fail logs the cause and answers with the route's fixed message. Only the
// status differs between failure kinds; error details never reach the client.
func (h *HTTPHandler) fail(w http.ResponseWriter, op string, err error, message string) {
	status := http.StatusInternalServerError

	if errors.Is(err, errBadBody) {
		status = http.StatusBadRequest
		message = msgBadBody
	} else if errors.Is(err, service.ErrNotReady) {
		status = http.StatusServiceUnavailable
		message = msgNotReady
	} else if errors.Is(err, service.ErrNotFound) {
		status = http.StatusNotFound
		message = msgNotFound
	}

	log.Printf("%s: %v", op, err)
	writeJSON(w, status, MessageResponse{Message: message})
}

// decodeFields reads a JSON object body. A missing body is an empty object.
func decodeFields(r *http.Request) (domain.Fields, error) {
	raw := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return domain.Fields{}, errors.Join(errBadBody, err)
	}

	return domain.ParseFields(raw)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
