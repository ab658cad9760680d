// Package handler is the HTTP surface. Every failed precondition answers
// with the uniform body {"error": "<message>"}; the status code follows the
// error kind but the body shape never varies.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"roam-backend/internal/application/command"
	"roam-backend/internal/application/interfaces"
	"roam-backend/internal/domain"
	"roam-backend/internal/infrastructure"
	"roam-backend/internal/places"
)

// placesCacheTTL bounds how long a provider response is served from cache.
// Autocomplete and geocoding results change rarely, so an hour is safe.
const placesCacheTTL = time.Hour

type Handler struct {
	users    interfaces.UserService
	history  interfaces.TravelService
	wishlist interfaces.TravelService
	ranks    interfaces.RankService
	places   *places.Client
	cache    *infrastructure.RedisService
	limiter  *infrastructure.RateLimiter
	logger   *slog.Logger
}

func NewHandler(
	users interfaces.UserService,
	history interfaces.TravelService,
	wishlist interfaces.TravelService,
	ranks interfaces.RankService,
	placesClient *places.Client,
	cache *infrastructure.RedisService,
	limiter *infrastructure.RateLimiter,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		users:    users,
		history:  history,
		wishlist: wishlist,
		ranks:    ranks,
		places:   placesClient,
		cache:    cache,
		limiter:  limiter,
		logger:   logger,
	}
}

func (h *Handler) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(corsMiddleware)

	router.HandleFunc("/register", h.register).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/login", h.login).Methods(http.MethodPost, http.MethodOptions)

	router.HandleFunc("/history", h.addEntry(h.history)).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/history", h.listEntries(h.history)).Methods(http.MethodGet)
	router.HandleFunc("/history/{id}", h.editEntry(h.history)).Methods(http.MethodPatch, http.MethodOptions)
	router.HandleFunc("/history/{id}", h.removeEntry(h.history)).Methods(http.MethodDelete)

	router.HandleFunc("/wishlist", h.addEntry(h.wishlist)).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/wishlist", h.listEntries(h.wishlist)).Methods(http.MethodGet)
	router.HandleFunc("/wishlist/{id}", h.editEntry(h.wishlist)).Methods(http.MethodPatch, http.MethodOptions)
	router.HandleFunc("/wishlist/{id}", h.removeEntry(h.wishlist)).Methods(http.MethodDelete)

	router.HandleFunc("/ranks", h.topRanks).Methods(http.MethodGet)

	router.HandleFunc("/search", h.search).Methods(http.MethodGet)
	router.HandleFunc("/info", h.info).Methods(http.MethodGet)

	return router
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateUserCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrMissingField))
		return
	}

	result, err := h.users.Register(r.Context(), &cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var cmd command.LoginUserCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrMissingField))
		return
	}

	result, err := h.users.Login(r.Context(), &cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) addEntry(service interfaces.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cmd command.AddEntryCommand
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			h.writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrMissingField))
			return
		}

		result, err := service.Add(r.Context(), &cmd)
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusCreated, result)
	}
}

func (h *Handler) listEntries(service interfaces.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.List(r.Context(), r.URL.Query().Get("user_id"))
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, result)
	}
}

func (h *Handler) editEntry(service interfaces.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cmd command.EditEntryCommand
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			h.writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrMissingField))
			return
		}
		cmd.EntryID = mux.Vars(r)["id"]

		result, err := service.Edit(r.Context(), &cmd)
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, result)
	}
}

func (h *Handler) removeEntry(service interfaces.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.Remove(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, result)
	}
}

func (h *Handler) topRanks(w http.ResponseWriter, r *http.Request) {
	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, fmt.Errorf("%w: n must be an integer", domain.ErrMissingField))
			return
		}
		n = parsed
	}

	result, err := h.ranks.TopRanked(r.Context(), n)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	if !h.allowProxy(w, r) {
		return
	}

	text := r.URL.Query().Get("text")
	if body, ok := h.cache.GetPlacesResponse(r.Context(), "search:"+text); ok {
		h.writeRaw(w, body)
		return
	}

	body, err := h.places.Search(r.Context(), text)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.cache.SetPlacesResponse(r.Context(), "search:"+text, body, placesCacheTTL)
	h.writeRaw(w, body)
}

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	if !h.allowProxy(w, r) {
		return
	}

	placeID := r.URL.Query().Get("place_id")
	if body, ok := h.cache.GetPlacesResponse(r.Context(), "info:"+placeID); ok {
		h.writeRaw(w, body)
		return
	}

	body, err := h.places.Info(r.Context(), placeID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.cache.SetPlacesResponse(r.Context(), "info:"+placeID, body, placesCacheTTL)
	h.writeRaw(w, body)
}

func (h *Handler) allowProxy(w http.ResponseWriter, r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if !h.limiter.Allow(host) {
		h.writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeRaw(w http.ResponseWriter, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(body); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	h.writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrBadCredential):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
