package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkwell-cms/inkwell/internal/auth"
	"github.com/inkwell-cms/inkwell/internal/config"
	accesslog "github.com/inkwell-cms/inkwell/internal/logger/adapter/fiber"
	"github.com/inkwell-cms/inkwell/internal/web/handler"
	"github.com/inkwell-cms/inkwell/internal/web/handler/dbquery"
	"github.com/inkwell-cms/inkwell/internal/web/handler/login"
	"github.com/inkwell-cms/inkwell/internal/web/handler/posts"
	"github.com/inkwell-cms/inkwell/internal/web/handler/settings"
)

const (
	// CheckAlivePath is the liveness endpoint used by load balancers.
	CheckAlivePath = "/checkalive"

	defaultDrainSeconds = 5
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		drain := s.cfg.Webserver.ShutDownTime
		if drain == 0 {
			drain = defaultDrainSeconds
		}

		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			drain,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(drain) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// checkAlive reports liveness; during the shutdown drain it returns 503.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// errorHandler converts every unhandled fault into the JSON error
// envelope so nothing reaches the transport layer raw.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "inkwell",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			ErrorHandler:   errorHandler,
		},
	)

	// access logging
	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// the admin console is a separate page talking to the API
	app.Use(cors.New())

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, service.checkAlive)

	// bearer-token gate for mutating API routes
	gate := auth.RequireToken(auth.StaticTokenVerifier{Token: cfg.Auth.AdminToken})

	// init API handlers below the base path
	api := app.Group(handler.APIBasePath)

	if err := login.Handler.Init(api, cfg, db, gate); err != nil {
		log.Fatal().Err(err).Msg("failed to init login handler")
	}

	if err := posts.Handler.Init(api, cfg, db, gate); err != nil {
		log.Fatal().Err(err).Msg("failed to init posts handler")
	}

	if err := settings.Handler.Init(api, cfg, db, gate); err != nil {
		log.Fatal().Err(err).Msg("failed to init settings handler")
	}

	if err := dbquery.Handler.Init(api, cfg, db, gate); err != nil {
		log.Fatal().Err(err).Msg("failed to init raw query handler")
	}

	// unknown API paths get a JSON 404 instead of the static fallback
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})

	// serve the embedded admin console for any non-API path
	app.Use("/", filesystem.New(
		filesystem.Config{
			Root:       http.FS(embeddedStaticFiles),
			PathPrefix: "static",
			Index:      "index.html",
			Browse:     false,
		},
	))

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	})

	log.Info().Str("url", cfg.Webserver.URL).Msg("web service initialized")

	return service
}
