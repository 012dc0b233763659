package httputil

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

// Bodies above this size are rejected by ReadJSON.
const maxBodyBytes = 1 << 20

var ErrEmptyBody = errors.New("empty request body")

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// ReadJSON decodes request body into v. Missing body gives ErrEmptyBody.
func ReadJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	defer r.Body.Close()
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyBody
	}
	return sonic.ConfigDefault.Unmarshal(data, v)
}
