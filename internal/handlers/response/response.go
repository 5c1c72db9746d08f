package response

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
)

type HTTPResponse struct {
	Success bool              `json:"success"`
	Errors  map[string]string `json:"errors"`
	Data    map[string]any    `json:"data,omitempty"`
	Status  int               `json:"status"`
}
type LogProducer interface {
	NewPhotoLikeLog(level, place, traceid, msg string)
}

const (
	ClientErrorKey   = "ClientError"
	NotFoundErrorKey = "NotFoundError"
	ServerErrorKey   = "InternalServerError"
	KeyPhotoLikes    = "photo_likes"
	KeyUserLikes     = "user_likes"
	KeyPhoto         = "photo"
	KeyPhotos        = "photos"
	KeyTotal         = "total"
)

func SendResponse(ctx context.Context, w http.ResponseWriter, success bool, data map[string]any, errors map[string]string, status int, traceid string, place string, logproducer LogProducer) {
	start, ok := ctx.Value("starttime").(time.Time)
	if !ok {
		start = time.Now()
	}
	defer func() {
		metrics.PhotoLikeRequestDuration.WithLabelValues(place).Observe(time.Since(start).Seconds())
	}()
	w.Header().Set("Content-Type", "application/json")
	if ctx.Err() != nil {
		logproducer.NewPhotoLikeLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Context error: %v", ctx.Err()))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(HTTPResponse{
			Success: false,
			Errors:  map[string]string{ServerErrorKey: "Request timed out"},
			Status:  http.StatusInternalServerError,
		})
		metrics.PhotoLikeErrorsTotal.WithLabelValues(ServerErrorKey).Inc()
		return
	}
	resp := HTTPResponse{
		Success: success,
		Errors:  errors,
		Data:    data,
		Status:  status,
	}
	body, err := json.Marshal(resp)
	if err != nil {
		logproducer.NewPhotoLikeLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Failed to encode response: %v", err))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(HTTPResponse{
			Success: false,
			Errors:  map[string]string{ServerErrorKey: "EncoderResponse Error"},
			Status:  http.StatusInternalServerError,
		})
		metrics.PhotoLikeErrorsTotal.WithLabelValues(ServerErrorKey).Inc()
		return
	}
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
	logproducer.NewPhotoLikeLog(kafka.LogLevelInfo, place, traceid, "Succesfull send response to client")
	if success {
		metrics.PhotoLikeTotalSuccessfulRequests.WithLabelValues(place).Inc()
	}
}
func OkResponse(r *http.Request, w http.ResponseWriter, data map[string]any, traceid string, place string, logproducer LogProducer) {
	SendResponse(r.Context(), w, true, data, nil, http.StatusOK, traceid, place, logproducer)
}
func BadResponse(r *http.Request, w http.ResponseWriter, status int, key string, message string, traceid string, place string, logproducer LogProducer) {
	metrics.PhotoLikeErrorsTotal.WithLabelValues(key).Inc()
	SendResponse(r.Context(), w, false, nil, map[string]string{key: message}, status, traceid, place, logproducer)
}
