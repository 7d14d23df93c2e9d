package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"videopoker/internal/config"
	"videopoker/internal/mux"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 30

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()

	// fail fast
	cfg := config.Instance()
	if err := cfg.SetupLogger(logrus.StandardLogger()); err != nil {
		logrus.WithError(err).Fatal("could not set up logger")
	}

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(cfg, c.Handler(mux.NewMux(Version))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"addr":    srv.Addr,
		"variant": cfg.Game.Variant,
		"seeded":  cfg.Seed != 0,
	}).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(cfg config.Config, next http.Handler) http.Handler {
	if cfg.Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}
