package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
)

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	const place = API_ToggleLike
	traceID := r.Context().Value("traceID").(string)
	if !h.checkMethod(r, w, traceID, place, http.MethodPost) {
		return
	}
	var likereq model.LikeRequest
	if !getAllData(r, w, traceID, place, h.logproducer, &likereq, false) {
		return
	}
	if !h.validateRequest(r, w, traceID, place, &likereq) {
		return
	}
	photoid := mux.Vars(r)["id"]
	userid := userIdentity(r, likereq.Email)
	h.logproducer.NewPhotoLikeLog(kafka.LogLevelInfo, place, traceID, fmt.Sprintf("Toggle like request for photo %s", photoid))
	serviceresp := h.services.ToggleLike(r.Context(), photoid, userid, likereq.Heart, traceID)
	if !h.serviceResponse(serviceresp, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{
		response.KeyPhotoLikes: serviceresp.Data.LikeResult.PhotoLikes,
		response.KeyUserLikes:  serviceresp.Data.LikeResult.UserLikes,
	}, traceID, place, h.logproducer)
}

func (h *Handler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	const place = API_GetPhoto
	traceID := r.Context().Value("traceID").(string)
	if !h.checkMethod(r, w, traceID, place, http.MethodGet, http.MethodPost) {
		return
	}
	var photoreq model.PhotoRequest
	if !getAllData(r, w, traceID, place, h.logproducer, &photoreq, true) {
		return
	}
	if !h.validateRequest(r, w, traceID, place, &photoreq) {
		return
	}
	photoid := mux.Vars(r)["id"]
	userid := userIdentity(r, photoreq.Email)
	serviceresp := h.services.GetPhoto(r.Context(), photoid, userid, traceID)
	if !h.serviceResponse(serviceresp, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyPhoto: serviceresp.Data.Photo}, traceID, place, h.logproducer)
}

func (h *Handler) PopularPhotos(w http.ResponseWriter, r *http.Request) {
	h.listPhotos(w, r, model.OrderPopular, API_PopularPhotos)
}
func (h *Handler) RecentPhotos(w http.ResponseWriter, r *http.Request) {
	h.listPhotos(w, r, model.OrderRecent, API_RecentPhotos)
}
func (h *Handler) listPhotos(w http.ResponseWriter, r *http.Request, order string, place string) {
	traceID := r.Context().Value("traceID").(string)
	if !h.checkMethod(r, w, traceID, place, http.MethodGet) {
		return
	}
	page, limit := pagination(r)
	serviceresp := h.services.ListPhotos(r.Context(), order, page, limit, traceID)
	if !h.serviceResponse(serviceresp, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{
		response.KeyPhotos: serviceresp.Data.Page.Photos,
		response.KeyTotal:  serviceresp.Data.Page.Total,
	}, traceID, place, h.logproducer)
}
