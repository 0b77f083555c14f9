package follow

import (
	"context"
	"net/http"

	"freet/internal/common"
	"freet/internal/dbmysql"

	"github.com/gorilla/mux"
)

// UserResolver maps usernames from the URL to accounts.
type UserResolver interface {
	ResolveUsername(ctx context.Context, username string) (*dbmysql.User, error)
}

type Handler struct {
	followService FollowService
	users         UserResolver
}

func NewHandler(followService FollowService, users UserResolver) *Handler {
	return &Handler{followService: followService, users: users}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/follows/{username}", h.follow).Methods("POST")
	router.HandleFunc("/api/follows/{username}", h.unfollow).Methods("DELETE")
	router.HandleFunc("/api/follows/{username}/followers", h.followers).Methods("GET")
	router.HandleFunc("/api/follows/{username}/following", h.following).Methods("GET")
}

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	followee, err := h.users.ResolveUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.followService.Follow(r.Context(), viewerID, followee.UserID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "You are now following " + followee.Username + ".",
	})
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	followee, err := h.users.ResolveUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.followService.Unfollow(r.Context(), viewerID, followee.UserID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "You are no longer following " + followee.Username + ".",
	})
}

func (h *Handler) followers(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.ResolveUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		common.WriteError(w, err)
		return
	}

	followers, err := h.followService.Followers(r.Context(), user.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, followers)
}

func (h *Handler) following(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.ResolveUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		common.WriteError(w, err)
		return
	}

	following, err := h.followService.Following(r.Context(), user.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, following)
}
