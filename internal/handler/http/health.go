package http

import (
	"net/http"

	"github.com/brsv-srg/qodefly-dashboard/internal/utils"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

type healthResponse struct {
	Status string              `json:"status"`
	Build  models.AppBuildInfo `json:"build"`
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{
		Status: "ok",
		Build:  h.appInfo.BuildInfo(r.Context()),
	}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
