package api

import (
	"errors"
	"net/http"
)

var errBadCredentials = errors.New("invalid credentials")

// requireEditor guards mutating routes with basic auth when edit
// credentials are configured.
func (a *Api) requireEditor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.editors.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		user, password, ok := r.BasicAuth()
		if ok {
			match, err := a.editors.Check(user, password)
			if err != nil {
				a.logger.Errorw("Failed verifying edit password", "err", err)
			}
			ok = match
		}

		if !ok {
			a.logger.Infow("Rejected edit request", "addr", r.RemoteAddr, "user", user)
			w.Header().Set("WWW-Authenticate", `Basic realm="Yearly Calendar", charset="UTF-8"`)
			a.unauthorizedResponse(w, r, errBadCredentials)
			return
		}

		next.ServeHTTP(w, r)
	})
}
