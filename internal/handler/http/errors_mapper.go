package http

import (
	"errors"
	"net/http"

	"github.com/brsv-srg/qodefly-dashboard/internal/adapter"
	"github.com/brsv-srg/qodefly-dashboard/internal/app"
	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
	"github.com/brsv-srg/qodefly-dashboard/internal/utils"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

// writeAPIError maps an API client error onto the gateway response.
//
//   - ErrUnauthorized: 401 with the login path to redirect to
//   - RequestFailedError: the upstream status and detail
//   - ErrTransport: 502
//   - anything else: 500
func (h *Handler) writeAPIError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var reqErr *adapter.RequestFailedError
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		log.Info().Msg("session rejected, redirecting to login")
		utils.WriteJSON(w, models.ErrorPayload{Detail: app.MsgUnauthorized, Redirect: h.cfg.LoginPath}, http.StatusUnauthorized)

	case errors.As(err, &reqErr):
		log.Info().Int("upstream_status", reqErr.StatusCode).Str("detail", reqErr.Message).Msg("upstream request failed")
		writeDetail(w, upstreamStatus(reqErr.StatusCode), reqErr.Message)

	case errors.Is(err, adapter.ErrTransport):
		log.Err(err).Msg("upstream unreachable")
		writeDetail(w, http.StatusBadGateway, app.MsgSomethingWentWrong)

	default:
		log.Err(err).Msg("unexpected error")
		writeDetail(w, http.StatusInternalServerError, app.MsgSomethingWentWrong)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	utils.WriteJSON(w, models.ErrorPayload{Detail: detail}, status)
}

// upstreamStatus keeps error statuses as they are and turns anything outside
// the 4xx/5xx range into 502.
func upstreamStatus(status int) int {
	if status < 400 || status > 599 {
		return http.StatusBadGateway
	}
	return status
}
