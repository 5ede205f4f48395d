package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/cadizz/booking/internal/ledger"
	"github.com/cadizz/booking/internal/logger"
)

type codeGenerator interface {
	ConfirmationCode(ctx context.Context) (string, error)
}

type Server struct {
	srv    *http.Server
	router *http.ServeMux
	l      *logger.Logger
	conf   Conf
	ledger *ledger.Ledger
	codes  codeGenerator
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
}

func New(ctx context.Context, conf Conf, ldg *ledger.Ledger, codes codeGenerator) (*Server, error) {
	mux := http.NewServeMux()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout * time.Second, //nolint:durationcheck
		ErrorLog:          conf.ServerLogger,
		Handler:           mux,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:    srv,
		router: mux,
		l:      conf.L,
		conf:   conf,
		ledger: ldg,
		codes:  codes,
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}
