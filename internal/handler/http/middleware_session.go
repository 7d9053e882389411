package http

import (
	"context"
	"net/http"

	"github.com/brsv-srg/qodefly-dashboard/internal/adapter"
	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
	"github.com/brsv-srg/qodefly-dashboard/internal/store"
)

type apiClientCtxKey struct{}

// withSession binds an API client to the request whose token store is the
// caller's session cookie. Login writes the cookie; logout and any 401 from
// the API expire it.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokens := store.NewCookieTokenStore(w, r, h.cfg)
		api := h.clients.ForStore(tokens)

		ctx := context.WithValue(r.Context(), apiClientCtxKey{}, api)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// apiFromRequest returns the client bound by withSession.
func apiFromRequest(r *http.Request) (adapter.APIClient, bool) {
	api, ok := r.Context().Value(apiClientCtxKey{}).(adapter.APIClient)
	if !ok {
		logger.FromRequest(r).Error().Msg("no api client bound to request")
	}
	return api, ok
}
