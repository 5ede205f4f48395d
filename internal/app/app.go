package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cadizz/booking/internal/catalog"
	"github.com/cadizz/booking/internal/config"
	"github.com/cadizz/booking/internal/idgen/uuidgen"
	"github.com/cadizz/booking/internal/ledger"
	"github.com/cadizz/booking/internal/logger"
	"github.com/cadizz/booking/internal/storage/memory"
	"github.com/cadizz/booking/internal/storage/redisstore"
	"github.com/cadizz/booking/internal/transport/web"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	conf := config.Load()
	cat := catalog.Default()

	var (
		ldg *ledger.Ledger
		err error
	)

	if conf.RedisAddr != "" {
		store := redisstore.New(conf.RedisAddr)

		defer func() {
			if err := store.Close(); err != nil {
				l.LogErrorf("Failed to close redis store: %v", err.Error())
			}
		}()

		ldg, err = ledger.New(ctx, l, cat, store, conf.TaxRate)
	} else {
		l.LogInfo("No REDIS_ADDR configured, occupancy is kept in memory")

		ldg, err = ledger.New(ctx, l, cat, memory.New(), conf.TaxRate)
	}

	if err != nil {
		return fmt.Errorf("init reservation ledger: %w", err)
	}

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Host,
		Port:              conf.Port,
		ReadHeaderTimeout: 20, //nolint:gomnd
		LivenessEndpoint:  conf.LivenessEndpoint,
	}

	srv, err := web.New(ctx, webConf, ldg, uuidgen.New())
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
