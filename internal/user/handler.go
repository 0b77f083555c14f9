package user

import (
	"encoding/json"
	"net/http"

	"freet/internal/common"

	"github.com/gorilla/mux"
)

// Handler wires the HTTP routes to the account service.
type Handler struct {
	userService UserService
}

func NewHandler(userService UserService) *Handler {
	return &Handler{userService: userService}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/users", h.register).Methods("POST")
	router.HandleFunc("/api/users/session", h.login).Methods("POST")
	router.HandleFunc("/api/users/me", h.profile).Methods("GET")
	router.HandleFunc("/api/users", h.update).Methods("PATCH")
	router.HandleFunc("/api/users", h.delete).Methods("DELETE")
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
	Message  string `json:"message"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, token, err := h.userService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, authResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Token:    token,
		Message:  "Your account was created successfully.",
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, token, err := h.userService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid username or password"})
		return
	}

	common.WriteJSON(w, http.StatusOK, authResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Token:    token,
		Message:  "You have logged in successfully.",
	})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	user, err := h.userService.GetProfile(r.Context(), viewerID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, err := h.userService.UpdateCredentials(r.Context(), viewerID, req.Username, req.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	if err := h.userService.DeleteAccount(r.Context(), viewerID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "Your account has been deleted successfully."})
}
