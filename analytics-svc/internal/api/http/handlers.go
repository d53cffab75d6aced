package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"overcooked-pos/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "analytics-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/top-products", h.getTopProducts).Methods("GET")
	r.HandleFunc("/api/analytics/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/analytics/hours", h.getHours).Methods("GET")
	r.HandleFunc("/api/analytics/summary", h.getSummary).Methods("GET")
}

func (h *Handler) getTopProducts(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "limit must be a number", http.StatusBadRequest)
			return
		}
		limit = n
	}
	data, err := h.Analytics.TopProducts(r.Context(), r.URL.Query().Get("date"), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.Categories(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getHours(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.Hours(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.Summary(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrInvalidDate) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("[analytics-svc] ERROR: %v", err)
	http.Error(w, "aggregates unavailable", http.StatusInternalServerError)
}
