package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"videopoker/internal/config"
	"videopoker/internal/rng"
)

type ctxKey int

const (
	ctxRoundKey ctxKey = iota
)

const uuidPattern = "{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  config.Config
	version string
	rand    rng.Generator
	logger  logrus.FieldLogger
	rounds  *roundStore
}

// NewMux returns a new HTTP mux using the loaded configuration
func NewMux(version string) *Mux {
	return NewMuxWithConfig(version, config.Instance(), logrus.StandardLogger())
}

// NewMuxWithConfig returns a new HTTP mux
func NewMuxWithConfig(version string, cfg config.Config, logger logrus.FieldLogger) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		config:  cfg,
		version: version,
		rand:    cfg.Generator(),
		logger:  logger,
		rounds:  newRoundStore(maxOpenRounds),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/paytable/{variant}").Handler(this.getPaytable())
	r.Methods(http.MethodPost).Path("/classify").Handler(this.postClassify())
	r.Methods(http.MethodPost).Path("/hold").Handler(this.postHold())
	r.Methods(http.MethodPost).Path("/round").Handler(this.postRound())

	rr := r.PathPrefix("/round/" + uuidPattern).Subrouter()
	rr.Use(this.roundMiddleware)

	rr.Methods(http.MethodGet).Path("").Handler(this.getRoundUUID())
	rr.Methods(http.MethodPost).Path("/draw").Handler(this.postRoundUUIDDraw())

	return this
}

func (m *Mux) roundMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry, ok := m.rounds.get(gmux.Vars(r)["uuid"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxRoundKey, entry)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
