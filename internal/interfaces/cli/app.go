package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/hotel-reservations/internal/application/usecases"
	"github.com/example/hotel-reservations/internal/domain/reservation"
	"github.com/example/hotel-reservations/internal/infrastructure/catalog"
	"github.com/example/hotel-reservations/internal/infrastructure/config"
	"github.com/example/hotel-reservations/internal/infrastructure/events"
	"github.com/example/hotel-reservations/internal/infrastructure/lock"
	"github.com/example/hotel-reservations/internal/infrastructure/logging"
	"github.com/example/hotel-reservations/internal/infrastructure/notification"
	"github.com/example/hotel-reservations/internal/infrastructure/payment"
	"github.com/example/hotel-reservations/internal/infrastructure/postgres"
	"github.com/example/hotel-reservations/internal/infrastructure/voucher"
)

// app is everything a command needs, wired from configuration.
type app struct {
	cfg config.Config
	log *zap.Logger
	out io.Writer

	svc           *usecases.ReservationService
	payments      *reservation.Registry[reservation.PaymentMethod]
	notifications *reservation.Registry[reservation.NotificationMethod]
	vouchers      *voucher.Signer

	closers []func()
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	return config.Load(envFile)
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logging.New(cfg.LogLevel, cfg.LogFormat, "hotelres")
}

func newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: log, out: cmd.OutOrStdout()}
	a.closers = append(a.closers, func() { _ = log.Sync() })

	entries, err := a.loadCatalog(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	cat, err := catalog.Build(entries)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.svc = usecases.NewReservationService(cat, log)
	if cfg.RedisAddr != "" {
		client, err := lock.NewClient(ctx, cfg.RedisAddr)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		a.svc.Locks = lock.NewRedisLocker(client, log)
	}
	if cfg.AMQPURL != "" {
		pub := events.NewAMQPPublisher(cfg.AMQPURL, log)
		a.closers = append(a.closers, func() { _ = pub.Close() })
		a.svc.Events = pub
	}
	if cfg.VouchersEnabled() {
		a.vouchers = voucher.NewSigner(cfg.VoucherHashKey, cfg.VoucherBlockKey)
	}

	a.payments = payment.Registry(a.out, log, cfg.CardLimitCents)
	a.notifications = notification.Registry(a.out, log)
	return a, nil
}

func (a *app) loadCatalog(ctx context.Context) ([]catalog.Entry, error) {
	if a.cfg.DatabaseURL == "" {
		return catalog.Default(), nil
	}
	pool, err := postgres.Open(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer pool.Close()
	entries, err := postgres.NewRoomRepo(pool).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog (run `hotelres catalog migrate` first?): %w", err)
	}
	a.log.Info("catalog loaded from database", zap.Int("rooms", len(entries)))
	return entries, nil
}

// Close releases connections in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *app) paymentByType(key string) reservation.PaymentMethod {
	if p, ok := a.payments.Lookup(key); ok {
		return p
	}
	p := a.payments.FindByType(key)
	a.log.Warn("unknown payment method, using default", zap.String("requested", key), zap.String("using", p.Type()))
	return p
}

func (a *app) notificationByType(key string) reservation.NotificationMethod {
	if n, ok := a.notifications.Lookup(key); ok {
		return n
	}
	n := a.notifications.FindByType(key)
	a.log.Warn("unknown notification method, using default", zap.String("requested", key), zap.String("using", n.Type()))
	return n
}

// book runs one booking and renders the outcome. Rejections are rendered
// and returned; other errors are only returned.
func (a *app) book(ctx context.Context, req usecases.BookingRequest) (*reservation.Reservation, error) {
	res, err := a.svc.MakeReservation(ctx, req)
	if err != nil {
		if usecases.IsRejection(err) {
			renderRejection(a.out, err)
		}
		return nil, err
	}
	renderReservation(a.out, res, req.Payment, req.Notification)
	if a.vouchers != nil {
		code, err := a.vouchers.Issue(res)
		if err != nil {
			a.log.Error("issue voucher", zap.Error(err))
		} else {
			fmt.Fprintf(a.out, "Voucher: %s\n", code)
		}
	}
	return res, nil
}
