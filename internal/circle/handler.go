package circle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"freet/internal/common"
	"freet/internal/dbmysql"

	"github.com/gorilla/mux"
)

// UserResolver maps the usernames a client submits as circle members to
// account ids; an unknown username fails the whole edit.
type UserResolver interface {
	ResolveUsername(ctx context.Context, username string) (*dbmysql.User, error)
}

type Handler struct {
	circleService CircleService
	users         UserResolver
}

func NewHandler(circleService CircleService, users UserResolver) *Handler {
	return &Handler{circleService: circleService, users: users}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/circles", h.list).Methods("GET")
	router.HandleFunc("/api/circles", h.create).Methods("POST")
	router.HandleFunc("/api/circles/{circleId}/name", h.rename).Methods("PUT")
	router.HandleFunc("/api/circles/{circleId}/members", h.setMembers).Methods("PUT")
	router.HandleFunc("/api/circles/{circleId}", h.delete).Methods("DELETE")
}

type circleRequest struct {
	Name    string   `json:"name"`
	Members []string `json:"members"` // usernames
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	circles, err := h.circleService.CirclesOwnedBy(r.Context(), viewerID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, circles)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	var req circleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	memberIDs, err := h.resolveMembers(r.Context(), req.Members)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	circle, err := h.circleService.Create(r.Context(), viewerID, req.Name, memberIDs)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, circle)
}

func (h *Handler) rename(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	circleID, err := parseCircleID(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var req circleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	circle, err := h.circleService.Rename(r.Context(), viewerID, circleID, req.Name)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, circle)
}

func (h *Handler) setMembers(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	circleID, err := parseCircleID(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var req circleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	memberIDs, err := h.resolveMembers(r.Context(), req.Members)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	circle, err := h.circleService.SetMembers(r.Context(), viewerID, circleID, memberIDs)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, circle)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	circleID, err := parseCircleID(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.circleService.Delete(r.Context(), viewerID, circleID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "Your circle was deleted successfully."})
}

func (h *Handler) resolveMembers(ctx context.Context, usernames []string) ([]int64, error) {
	ids := make([]int64, 0, len(usernames))
	for _, username := range usernames {
		user, err := h.users.ResolveUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		ids = append(ids, user.UserID)
	}
	return ids, nil
}

func parseCircleID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["circleId"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed circle id: %w", common.ErrInvalidInput)
	}
	return id, nil
}
