// Package convo exposes the conversational surface over HTTP.
package convo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Manny2706/servicehire/internal/knowledge"
	"github.com/Manny2706/servicehire/internal/leads"
	convoservice "github.com/Manny2706/servicehire/internal/service/convo"
	"github.com/Manny2706/servicehire/pkg/utils"
)

// Handler serves session, turn, transcript, plan and lead endpoints.
type Handler struct {
	convoSvc *convoservice.Service
	plans    knowledge.Store
	sink     leads.Sink
}

// New creates the conversation handler.
func New(convoSvc *convoservice.Service, plans knowledge.Store, sink leads.Sink) *Handler {
	return &Handler{
		convoSvc: convoSvc,
		plans:    plans,
		sink:     sink,
	}
}

// RegisterRoutes registers conversation routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Post("/session/{sessionID}/message", h.handleMessage)
	r.Get("/session/{sessionID}/transcript", h.handleTranscript)
	r.Get("/plans", h.handlePlans)
	r.Get("/leads", h.handleLeads)
	r.Get("/chat/ws", h.handleWebSocket)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.convoSvc.CreateSession(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.convoSvc.HandleMessage(r.Context(), sessionID, payload.Message)
	if err != nil {
		if errors.Is(err, convoservice.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.convoSvc.Transcript(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, convoservice.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, messages)
}

func (h *Handler) handlePlans(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.plans.List())
}

func (h *Handler) handleLeads(w http.ResponseWriter, r *http.Request) {
	items, err := h.sink.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, items)
}
