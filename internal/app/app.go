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

	"github.com/mountainmajesty/stays/internal/booking"
	"github.com/mountainmajesty/stays/internal/catalog"
	"github.com/mountainmajesty/stays/internal/config"
	"github.com/mountainmajesty/stays/internal/logger"
	"github.com/mountainmajesty/stays/internal/notify"
	"github.com/mountainmajesty/stays/internal/reviews"
	"github.com/mountainmajesty/stays/internal/storage/kv"
	"github.com/mountainmajesty/stays/internal/storage/memory"
	"github.com/mountainmajesty/stays/internal/storage/sqlitekv"
	"github.com/mountainmajesty/stays/internal/transport/web"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	conf, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rooms, err := catalog.Seed()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	l.LogInfo("Catalog loaded with %v rooms", rooms.Len())

	var store kv.Store

	if conf.PersistBookings {
		sqliteStore, err := sqlitekv.Open(conf.StoragePath)
		if err != nil {
			return fmt.Errorf("open booking storage: %w", err)
		}

		defer func() {
			if err := sqliteStore.Close(); err != nil {
				l.LogErrorf("Could not close booking storage: %v", err.Error())
			}
		}()

		store = sqliteStore
	} else {
		store = memory.New(memory.Config{L: l})
	}

	bookings := booking.NewStore(booking.StoreConfig{
		L:       l,
		Persist: conf.PersistBookings,
		Key:     conf.BookingsKey,
		KV:      store,
	})

	l.LogInfo("Booking store initialized with %v bookings (persist=%v)", bookings.Len(), conf.PersistBookings)

	mailer := notify.NewMailer(notify.MailerConfig{
		L:    l,
		Host: conf.SMTPHost,
		Port: conf.SMTPPort,
		User: conf.SMTPUser,
		Pass: conf.SMTPPass,
		From: conf.SMTPUser,
		To:   conf.BookingInbox,
	})

	manager := booking.NewManager(l, rooms, bookings, mailer)

	reviewsClient := reviews.NewClient(l, conf.ReviewsAPIKey, conf.ReviewsBaseURL, 10*time.Second) //nolint:gomnd

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Host,
		Port:              conf.Port,
		ReadHeaderTimeout: time.Duration(conf.ReadHeaderTimeout),
		LivenessEndpoint:  conf.LivenessEndpoint,
		AllowedOrigins:    conf.AllowedOrigins,
	}

	srv, err := web.New(ctx, webConf, manager, reviewsClient)
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
