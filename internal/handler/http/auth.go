package http

import (
	"encoding/json"
	"net/http"

	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
	"github.com/brsv-srg/qodefly-dashboard/internal/utils"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, true)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, false)
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request, register bool) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	api, ok := apiFromRequest(r)
	if !ok {
		h.writeAPIError(w, r, errNoSession)
		return
	}

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeDetail(w, http.StatusBadRequest, ErrInvalidJSON.Error())
		return
	}

	var (
		auth models.AuthResponse
		err  error
	)
	if register {
		auth, err = api.Register(ctx, creds.Email, creds.Password)
	} else {
		auth, err = api.Login(ctx, creds.Email, creds.Password)
	}
	if err != nil {
		h.writeAPIError(w, r, err)
		return
	}

	log.Info().Int64("user_id", auth.User.ID).Bool("register", register).Msg("session established")
	utils.WriteJSON(w, auth, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	api, ok := apiFromRequest(r)
	if !ok {
		h.writeAPIError(w, r, errNoSession)
		return
	}

	if err := api.ClearToken(r.Context()); err != nil {
		h.writeAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	api, ok := apiFromRequest(r)
	if !ok {
		h.writeAPIError(w, r, errNoSession)
		return
	}

	user, err := api.GetMe(r.Context())
	if err != nil {
		h.writeAPIError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
