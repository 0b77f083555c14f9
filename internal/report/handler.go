package report

import (
	"fmt"
	"net/http"
	"strconv"

	"freet/internal/common"

	"github.com/gorilla/mux"
)

type Handler struct {
	reportService ReportService
}

func NewHandler(reportService ReportService) *Handler {
	return &Handler{reportService: reportService}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/freets/{freetId}/reports", h.list).Methods("GET")
	router.HandleFunc("/api/freets/{freetId}/reports", h.report).Methods("POST")
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
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

	reports, err := h.reportService.FindAllByContent(r.Context(), viewerID, freetID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Freet %d has %d reports.", freetID, len(reports)),
		"reports": reports,
	})
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
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

	rep, err := h.reportService.Report(r.Context(), viewerID, freetID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Your report was added successfully.",
		"report":  rep,
	})
}

func parseFreetID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["freetId"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed freet id: %w", common.ErrInvalidInput)
	}
	return id, nil
}
