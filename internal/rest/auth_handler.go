package rest

import (
	"encoding/json"
	"net/http"

	"orderdesk-be/internal/user"
	"orderdesk-be/internal/utils"
)

type signupRequest struct {
	FullName     string  `json:"fullName"`
	BusinessName string  `json:"businessName"`
	BusinessType *string `json:"businessType"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phoneNumber"`
	State        string  `json:"state"`
	Country      string  `json:"country"`
	Password     string  `json:"password"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONMessage(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	token, u, err := h.UserSvc.Signup(r.Context(), user.SignupParams{
		FullName:     req.FullName,
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		State:        req.State,
		Country:      req.Country,
		Password:     req.Password,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"message": "Signup successful",
		"token":   token,
		"user":    toUserResponse(u),
	}, http.StatusCreated)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONMessage(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	token, u, err := h.UserSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user":    toUserResponse(u),
	}, http.StatusOK)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONMessage(w, "Unauthorized. User not authenticated.", http.StatusUnauthorized)
		return
	}

	u, err := h.UserSvc.GetProfile(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{"user": toUserResponse(u)}, http.StatusOK)
}
