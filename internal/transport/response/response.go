package response

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// JSON writes a JSON response with a custom status code.
func JSON(w http.ResponseWriter, code int, status bool, message string, data, errors any) {
	resp := Response{
		Status:  status,
		Message: message,
		Data:    data,
		Errors:  errors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

// ------------- Success responses -------------

// returns 200 OK
func Success(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, true, message, data, nil)
}

// returns 201 Created
func Created(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusCreated, true, message, data, nil)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func BadRequest(w http.ResponseWriter, message string, errors any) {
	JSON(w, http.StatusBadRequest, false, message, nil, errors)
}

// returns 401 Unauthorized with a bearer challenge
func Unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	JSON(w, http.StatusUnauthorized, false, message, nil, nil)
}

// returns 403 Forbidden
func Forbidden(w http.ResponseWriter, message string) {
	JSON(w, http.StatusForbidden, false, message, nil, nil)
}

// returns 404 Not Found
func NotFound(w http.ResponseWriter, message string) {
	JSON(w, http.StatusNotFound, false, message, nil, nil)
}

// returns 500 Internal Server Error
func InternalError(w http.ResponseWriter, message string) {
	JSON(w, http.StatusInternalServerError, false, message, nil, nil)
}
