package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"

	"github.com/mountainmajesty/stays/internal/booking"
	"github.com/mountainmajesty/stays/internal/logger"
	"github.com/mountainmajesty/stays/internal/reviews"
)

type Server struct {
	srv     *http.Server
	router  *http.ServeMux
	l       *logger.Logger
	conf    Conf
	manager *booking.Manager
	reviews *reviews.Client
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
	AllowedOrigins    []string
}

func New(ctx context.Context, conf Conf, manager *booking.Manager, reviewsClient *reviews.Client) (*Server, error) {
	mux := http.NewServeMux()

	// Callers are browsers, the API has to answer preflights.
	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(conf.AllowedOrigins),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With"}),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
	)

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout * time.Second, //nolint:durationcheck
		ErrorLog:          conf.ServerLogger,
		Handler:           cors(mux),
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:     srv,
		router:  mux,
		l:       conf.L,
		conf:    conf,
		manager: manager,
		reviews: reviewsClient,
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}
