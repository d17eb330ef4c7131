package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"winninghands/internal/config"
	"winninghands/internal/mux"
	"winninghands/pkg/poker"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (overrides the configuration)")

func main() {
	flag.Parse()
	setupLogger()

	opts, err := config.Instance().EvaluatorOptions()
	if err != nil {
		logrus.WithError(err).Fatal("invalid evaluator configuration")
	}

	c := cors.New(cors.Options{
		AllowedOrigins: config.Instance().CORS.AllowedOrigins,
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		ExposedHeaders: []string{mux.RequestIDHeader},
	})

	listenAddr := config.Instance().Addr
	if *addr != "" {
		listenAddr = *addr
	}

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, poker.NewEvaluator(opts)))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"addr":       srv.Addr,
		"workers":    opts.Workers,
		"kickerRule": opts.KickerRule.String(),
	}).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
