// Package httpx agrupa helpers JSON que antes estaban duplicados en cada handler.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/logger"
)

const maxBodyBytes = 1 << 20

var ErrInvalidID = errors.New("invalid id")

// ErrorResponse es el cuerpo de todos los errores: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Responder escribe respuestas JSON y decide cómo se representa "no encontrado".
type Responder struct {
	Log logger.Logger

	// LegacyNotFound: 200 + null en vez de 404 (comportamiento del backend anterior).
	LegacyNotFound bool
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (rs Responder) JSON(w http.ResponseWriter, status int, v any) {
	WriteJSON(w, status, v)
}

func (rs Responder) NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func (rs Responder) Error(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg})
}

func (rs Responder) NotFound(w http.ResponseWriter, msg string) {
	if rs.LegacyNotFound {
		WriteJSON(w, http.StatusOK, nil)
		return
	}
	rs.Error(w, http.StatusNotFound, msg)
}

// Internal loguea el error real y responde un 500 genérico.
func (rs Responder) Internal(w http.ResponseWriter, r *http.Request, err error) {
	if rs.Log != nil {
		rs.Log.Error("request failed", map[string]any{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": middleware.GetRequestID(r.Context()),
			"error":      err.Error(),
		})
	}
	rs.Error(w, http.StatusInternalServerError, "internal error")
}

// DecodeJSON lee un único objeto JSON del body (máx 1MB).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("body must contain a single JSON value")
	}
	return nil
}

// PathID parsea un id entero positivo desde la URL.
func PathID(r *http.Request, name string) (int64, error) {
	return ParseID(chi.URLParam(r, name))
}

func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// QueryString devuelve nil si el parámetro no viene o viene en blanco.
func QueryString(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil
	}
	return &v
}

// QueryID es como QueryString pero parsea un id; blanco => nil.
func QueryID(r *http.Request, key string) (*int64, error) {
	raw := QueryString(r, key)
	if raw == nil {
		return nil, nil
	}
	id, err := ParseID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
