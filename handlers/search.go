// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/lookout/avatar"
	"github.com/danielhkuo/lookout/middleware"
	"github.com/danielhkuo/lookout/models"
	"github.com/danielhkuo/lookout/query"
	"github.com/danielhkuo/lookout/store"
)

type SearchHandler struct {
	store  *store.Store
	avatar *avatar.Resolver
}

func NewSearchHandler(st *store.Store, av *avatar.Resolver) *SearchHandler {
	return &SearchHandler{store: st, avatar: av}
}

// Search handles POST /search
// Filters the record log by field/value and returns the aggregated summary.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	field := query.ParseField(req.Field)
	matched := query.Search(h.store.Records(), field, req.Value)
	if len(matched) == 0 {
		middleware.JSONResponse(w, http.StatusOK, models.SearchResponse{Matches: 0})
		return
	}

	sum := query.Aggregate(matched)
	resp := models.SearchResponse{
		Matches:     sum.Matches,
		DeviceIDs:   sum.DeviceIDs,
		DeviceUsers: sum.DeviceUsers,
		Locations:   sum.Locations,
		Timestamps:  sum.Timestamps,
		AvatarName:  sum.AvatarName,
	}
	if sum.AvatarName != "" && h.avatar != nil {
		if url, ok := h.avatar.Resolve(r.Context(), sum.AvatarName); ok {
			resp.AvatarURL = url
		}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
