// Package api содержит общие хелперы для JSON-ответов.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrorResponse — единый формат ошибки для всех эндпоинтов.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON пишет v с заданным статусом.
func JSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Error пишет ошибку в формате {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	_ = JSON(w, status, ErrorResponse{Error: msg})
}

// MaxBodyBytes ограничивает размер тела JSON-запроса.
const MaxBodyBytes = 1 << 20

// ErrTrailingData — после JSON-объекта в теле есть ещё данные.
var ErrTrailingData = errors.New("request body must contain a single JSON value")

// DecodeJSON читает из тела ровно одно JSON-значение не больше MaxBodyBytes.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}
