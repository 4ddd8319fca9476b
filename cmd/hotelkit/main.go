// Command hotelkit runs the hotel-management web application: guest, room,
// booking, payment and meal-charge forms backed by PostgreSQL, with a Redis
// availability cache and transactional confirmation email.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hotelops/hotelkit/handler"
	"github.com/hotelops/hotelkit/migrations"
	"github.com/hotelops/hotelkit/modules/booking"
	"github.com/hotelops/hotelkit/modules/dashboard"
	"github.com/hotelops/hotelkit/modules/guest"
	"github.com/hotelops/hotelkit/modules/meal"
	"github.com/hotelops/hotelkit/modules/payment"
	"github.com/hotelops/hotelkit/modules/room"
	"github.com/hotelops/hotelkit/pkg/config"
	"github.com/hotelops/hotelkit/pkg/email"
	"github.com/hotelops/hotelkit/pkg/httpserver"
	"github.com/hotelops/hotelkit/pkg/logger"
	"github.com/hotelops/hotelkit/pkg/pg"
	"github.com/hotelops/hotelkit/pkg/redis"
	"github.com/hotelops/hotelkit/pkg/requestid"
	"github.com/hotelops/hotelkit/web"
	"github.com/hotelops/hotelkit/web/views"
)

type appConfig struct {
	Environment     string        `env:"APP_ENV" envDefault:"development"`
	AvailabilityTTL time.Duration `env:"AVAILABILITY_CACHE_TTL" envDefault:"30s"`
}

func main() {
	ctx := context.Background()

	var appCfg appConfig
	config.MustLoad(&appCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Environment, "hotelkit"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(ctx, appCfg, log); err != nil {
		log.ErrorContext(ctx, "application stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, appCfg appConfig, log *slog.Logger) error {
	var pgCfg pg.Config
	config.MustLoad(&pgCfg)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, migrations.FS, log); err != nil {
		return err
	}

	var redisCfg redis.Config
	config.MustLoad(&redisCfg)

	cache, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return err
	}
	defer cache.Close()

	mailer := newMailer(log)

	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage: views.ErrorPage,
	})

	guestSvc := guest.NewService(guest.NewRepository(pool), log)
	roomSvc := room.NewService(room.NewRepository(pool), log)

	bookingRepo := booking.NewRepository(pool)
	availability := booking.NewAvailability(bookingRepo, cache, appCfg.AvailabilityTTL, log)
	bookingSvc := booking.NewService(
		bookingRepo, roomSvc, guestSvc, availability,
		mailer, views.BookingConfirmationEmail, log,
	)

	paymentSvc := payment.NewService(payment.NewRepository(pool), bookingRepo, log)
	mealSvc := meal.NewService(meal.NewRepository(pool), bookingRepo, log)
	dashboardSvc := dashboard.NewService(dashboard.NewRepository(pool), log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)

	r.Get("/health", httpserver.HealthCheckHandler(ctx, log,
		pg.Healthcheck(pool),
		redis.Healthcheck(cache),
	))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(web.Static())))

	r.Mount("/", dashboard.NewHandler(dashboardSvc, dashboard.Views{
		Page: views.DashboardPage,
	}, errorHandler).Handle())
	r.Mount("/guests", guest.NewHandler(guestSvc, guest.Views{
		ListPage: views.GuestListPage,
		FormPage: views.GuestFormPage,
	}, errorHandler).Handle())
	r.Mount("/rooms", room.NewHandler(roomSvc, room.Views{
		ListPage: views.RoomListPage,
		FormPage: views.RoomFormPage,
	}, errorHandler).Handle())
	r.Mount("/bookings", booking.NewHandler(bookingSvc, availability, guestSvc, roomSvc, booking.Views{
		ListPage: views.BookingListPage,
		FormPage: views.BookingFormPage,
	}, errorHandler).Handle())
	r.Mount("/payments", payment.NewHandler(paymentSvc, bookingSvc, payment.Views{
		ListPage: views.PaymentListPage,
		FormPage: views.PaymentFormPage,
	}, errorHandler).Handle())
	r.Mount("/meals", meal.NewHandler(mealSvc, bookingSvc, meal.Views{
		ListPage: views.MealListPage,
		FormPage: views.MealFormPage,
	}, errorHandler).Handle())

	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server started", slog.String("addr", httpCfg.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped")
		}),
	)
	return srv.Run(ctx, r)
}

// newMailer picks the Postmark sender when it is fully configured and falls
// back to the log-only sender for development.
func newMailer(log *slog.Logger) email.EmailSender {
	var cfg email.Config
	if err := config.Load(&cfg); err != nil || cfg.PostmarkServerToken == "" {
		log.Info("email delivery disabled, logging outbound mail instead")
		return email.NewLogSender(log)
	}
	return email.MustNewPostmarkClient(cfg)
}
