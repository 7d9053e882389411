package http

import (
	"encoding/json"
	"net/http"

	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
	"github.com/brsv-srg/qodefly-dashboard/internal/utils"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

// waitlist forwards the signup and returns the API body untouched.
func (h *Handler) waitlist(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	api, ok := apiFromRequest(r)
	if !ok {
		h.writeAPIError(w, r, errNoSession)
		return
	}

	var req models.WaitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeDetail(w, http.StatusBadRequest, ErrInvalidJSON.Error())
		return
	}

	body, err := api.SubmitWaitlist(r.Context(), req.Email)
	if err != nil {
		h.writeAPIError(w, r, err)
		return
	}

	utils.WriteRawJSON(w, body, http.StatusOK)
}
