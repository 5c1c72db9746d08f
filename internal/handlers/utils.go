package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/service"
)

const (
	ErrorUnmarshal     = "Invalid request body"
	ErrorInvalidFields = "Invalid request fields"
)

func (h *Handler) checkMethod(r *http.Request, w http.ResponseWriter, traceID string, place string, methods ...string) bool {
	if !slices.Contains(methods, r.Method) {
		h.logproducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("Invalid request method(expected %v but it was sent %v)", methods, r.Method))
		response.BadResponse(r, w, http.StatusMethodNotAllowed, response.ClientErrorKey, erro.ErrorInvalidReqMethod, traceID, place, h.logproducer)
		return false
	}
	return true
}

// getAllData decodes the JSON body into T. With optional set, an empty body
// leaves T at its zero value.
func getAllData[T any](r *http.Request, w http.ResponseWriter, traceID string, place string, logproducer LogProducer, getdata *T, optional bool) bool {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		logproducer.NewPhotoLikeLog(kafka.LogLevelError, place, traceID, fmt.Sprintf("ReadAll Error: %v", err))
		response.BadResponse(r, w, http.StatusBadRequest, response.ClientErrorKey, erro.ErrorReadAll, traceID, place, logproducer)
		return false
	}
	defer r.Body.Close()
	if len(data) == 0 && optional {
		return true
	}
	if err := json.Unmarshal(data, getdata); err != nil {
		logproducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("Unmarshal Error: %v", err))
		response.BadResponse(r, w, http.StatusBadRequest, response.ClientErrorKey, ErrorUnmarshal, traceID, place, logproducer)
		return false
	}
	return true
}
func (h *Handler) validateRequest(r *http.Request, w http.ResponseWriter, traceID string, place string, req any) bool {
	err := h.validate.Struct(req)
	if err == nil {
		return true
	}
	h.logproducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("Validation Error: %v", err))
	message := ErrorInvalidFields
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 && validationErrors[0].Field() == "Heart" {
		message = erro.MissingHeart
	}
	response.BadResponse(r, w, http.StatusBadRequest, response.ClientErrorKey, message, traceID, place, h.logproducer)
	return false
}
func (h *Handler) serviceResponse(resp *service.ServiceResponse, r *http.Request, w http.ResponseWriter, traceID string, place string) bool {
	if resp.Success {
		return true
	}
	switch resp.Errors.Type {
	case erro.ClientErrorType:
		response.BadResponse(r, w, http.StatusBadRequest, response.ClientErrorKey, resp.Errors.Message, traceID, place, h.logproducer)
	case erro.NotFoundErrorType:
		response.BadResponse(r, w, http.StatusNotFound, response.NotFoundErrorKey, resp.Errors.Message, traceID, place, h.logproducer)
	default:
		response.BadResponse(r, w, http.StatusInternalServerError, response.ServerErrorKey, resp.Errors.Message, traceID, place, h.logproducer)
	}
	return false
}

// userIdentity prefers the gateway header; the body email is the fallback
// used by clients that talk to the service directly.
func userIdentity(r *http.Request, email string) string {
	if userid, ok := r.Context().Value("userID").(string); ok && userid != "" {
		return userid
	}
	return email
}

// pagination reads page and limit; unparsable values become 0 and are
// normalized by the service.
func pagination(r *http.Request) (int, int) {
	query := r.URL.Query()
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil {
		page = 0
	}
	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil {
		limit = 0
	}
	return page, limit
}
