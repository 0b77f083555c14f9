package freet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"freet/internal/common"
	"freet/internal/dbmysql"
	"freet/internal/visibility"

	"github.com/gorilla/mux"
)

// UserDirectory resolves usernames for the author feed and populates author
// usernames on responses.
type UserDirectory interface {
	ResolveUsername(ctx context.Context, username string) (*dbmysql.User, error)
	GetProfile(ctx context.Context, userID int64) (*dbmysql.User, error)
}

type Handler struct {
	freetService FreetService
	engine       *visibility.Engine
	users        UserDirectory
}

func NewHandler(freetService FreetService, engine *visibility.Engine, users UserDirectory) *Handler {
	return &Handler{freetService: freetService, engine: engine, users: users}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/freets", h.feed).Methods("GET")
	router.HandleFunc("/api/freets/following", h.followingFeed).Methods("GET")
	router.HandleFunc("/api/freets", h.publish).Methods("POST")
	router.HandleFunc("/api/freets/{freetId}", h.get).Methods("GET")
	router.HandleFunc("/api/freets/{freetId}", h.edit).Methods("PUT")
	router.HandleFunc("/api/freets/{freetId}", h.delete).Methods("DELETE")
	router.HandleFunc("/api/freets/{freetId}/replies", h.replies).Methods("GET")
	router.HandleFunc("/api/freets/{freetId}/replies", h.reply).Methods("POST")
	router.HandleFunc("/api/freets/{freetId}/likes", h.likeCount).Methods("GET")
	router.HandleFunc("/api/freets/{freetId}/likes", h.like).Methods("POST")
	router.HandleFunc("/api/freets/{freetId}/likes", h.unlike).Methods("DELETE")
}

type publishRequest struct {
	Content   string `json:"content"`
	Anonymous bool   `json:"anonymous"`
	CircleID  *int64 `json:"circle_id,omitempty"`
}

type freetResponse struct {
	FreetID   int64     `json:"freet_id"`
	Author    string    `json:"author"` // empty when anonymous and viewer is not the author
	Anonymous bool      `json:"anonymous"`
	Content   string    `json:"content"`
	CircleID  *int64    `json:"circle_id,omitempty"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// buildResponse withholds the author username on anonymous items unless the
// viewer is the author. Anonymity shapes responses only; it never changes
// visibility decisions.
func (h *Handler) buildResponse(ctx context.Context, viewerID int64, item *dbmysql.Freet) freetResponse {
	resp := freetResponse{
		FreetID:   item.FreetID,
		Anonymous: item.Anonymous,
		Content:   item.Content,
		CircleID:  item.CircleID,
		ParentID:  item.ParentID,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	if item.Anonymous && viewerID != item.AuthorID {
		return resp
	}
	if author, err := h.users.GetProfile(ctx, item.AuthorID); err == nil {
		resp.Author = author.Username
	}
	return resp
}

func (h *Handler) buildResponses(ctx context.Context, viewerID int64, items []*dbmysql.Freet) []freetResponse {
	responses := make([]freetResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, h.buildResponse(ctx, viewerID, item))
	}
	return responses
}

// feed serves the viewer's own feed, or an author's visible freets when
// ?author=<username> is given.
func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	if author := r.URL.Query().Get("author"); author != "" {
		authorUser, err := h.users.ResolveUsername(r.Context(), author)
		if err != nil {
			common.WriteError(w, err)
			return
		}
		freets, err := h.engine.AuthorFeed(r.Context(), viewerID, authorUser.UserID)
		if err != nil {
			common.WriteError(w, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, h.buildResponses(r.Context(), viewerID, freets))
		return
	}

	freets, err := h.engine.OwnFeed(r.Context(), viewerID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, h.buildResponses(r.Context(), viewerID, freets))
}

func (h *Handler) followingFeed(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	freets, err := h.engine.FollowingFeed(r.Context(), viewerID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, h.buildResponses(r.Context(), viewerID, freets))
}

func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	item, err := h.freetService.Publish(r.Context(), viewerID, req.Content, req.Anonymous, req.CircleID, nil)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, h.buildResponse(r.Context(), viewerID, item))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	freetID, err := parseFreetID(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	item, err := h.freetService.Get(r.Context(), viewerID, freetID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, h.buildResponse(r.Context(), viewerID, item))
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	freetID, err := parseFreetID(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	item, err := h.freetService.Edit(r.Context(), viewerID, freetID, req.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, h.buildResponse(r.Context(), viewerID, item))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	freetID, err := parseFreetID(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.freetService.Delete(r.Context(), viewerID, freetID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "Your freet was deleted successfully."})
}

func (h *Handler) replies(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	freetID, err := parseFreetID(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	replies, err := h.freetService.Replies(r.Context(), viewerID, freetID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, h.buildResponses(r.Context(), viewerID, replies))
}

func (h *Handler) reply(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	freetID, err := parseFreetID(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	// The reply inherits the parent's circle; any circle_id in the body
	// is ignored.
	item, err := h.freetService.Publish(r.Context(), viewerID, req.Content, req.Anonymous, nil, &freetID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, h.buildResponse(r.Context(), viewerID, item))
}

func (h *Handler) likeCount(w http.ResponseWriter, r *http.Request) {
	freetID, err := parseFreetID(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	count, err := h.freetService.LikeCount(r.Context(), freetID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]int64{"likes": count})
}

func (h *Handler) like(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	freetID, err := parseFreetID(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.freetService.Like(r.Context(), viewerID, freetID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Your like was added successfully."})
}

func (h *Handler) unlike(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.ViewerFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	freetID, err := parseFreetID(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.freetService.Unlike(r.Context(), viewerID, freetID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "Your like was removed successfully."})
}

func parseFreetID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["freetId"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed freet id: %w", common.ErrInvalidInput)
	}
	return id, nil
}
