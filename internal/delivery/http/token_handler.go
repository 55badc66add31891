package http

import (
	"encoding/json"
	"net/http"
	"time"

	"journal-backend/internal/repository"
)

// TokenHandler manages device registrations for trade push alerts.
type TokenHandler struct {
	tokens *repository.TokenRepository
}

func NewTokenHandler(tokens *repository.TokenRepository) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type tokenRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

type tokenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func decodeTokenRequest(w http.ResponseWriter, r *http.Request) (tokenRequest, bool) {
	var req tokenRequest
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return req, false
	}
	if req.Token == "" {
		http.Error(w, "Token is required", http.StatusBadRequest)
		return req, false
	}
	if req.Platform == "" {
		req.Platform = "android"
	}
	return req, true
}

// Register handles POST /api/notifications/register.
func (h *TokenHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTokenRequest(w, r)
	if !ok {
		return
	}

	h.tokens.Register(req.Token, req.Platform, time.Now().Unix())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tokenResponse{
		Success: true,
		Message: "Token registered",
		Count:   h.tokens.Count(),
	})
}

// Unregister handles POST /api/notifications/unregister.
func (h *TokenHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTokenRequest(w, r)
	if !ok {
		return
	}

	h.tokens.Unregister(req.Token)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tokenResponse{
		Success: true,
		Message: "Token unregistered",
		Count:   h.tokens.Count(),
	})
}
