package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"messenger-hub/antispam"
	"messenger-hub/config/common"
	"messenger-hub/config/logger"
	"messenger-hub/handler"
	"messenger-hub/middleware"
	"messenger-hub/routes"
	"messenger-hub/uow"
	"messenger-hub/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*common.Config
	*DBConfig
	*middleware.Middleware
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := logrus.New()
	appLog := logger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newMiddleware := middleware.NewMiddleware(newConfig, log)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:8080",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		Config:     newConfig,
		DBConfig:   newDB,
		Middleware: newMiddleware,
	})

	if err := app.Listen(newConfig.GetServerAddr()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	uowManager := uow.NewManager(aC.GetDB(), aC.DBConfig.AppLogger)

	antispamService := antispam.NewService(newAntispamStore(aC.Config), aC.Logger)

	newAccountUsecase := usecase.NewAccountUsecase(uowManager, aC.Validate, aC.Logger)
	newUserUsecase := usecase.NewUserUsecase(uowManager, aC.Validate, aC.Logger)
	newTelegramUsecase := usecase.NewTelegramUsecase(uowManager, antispamService, aC.Logger)

	newAccountHandler := handler.NewAccountHandler(newAccountUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newTelegramHandler := handler.NewTelegramHandler(newTelegramUsecase, aC.Config.GetWebhookSecret(), aC.Logger)

	route := routes.ConfigRoute{
		App:             aC.App,
		Middleware:      aC.Middleware,
		AccountHandler:  newAccountHandler,
		UserHandler:     newUserHandler,
		TelegramHandler: newTelegramHandler,
	}
	route.GetRoute()
}

func NewValidator() *validator.Validate {
	return validator.New()
}

// newAntispamStore picks the shared Redis store when an address is
// configured and falls back to the in-process map otherwise.
func newAntispamStore(cfg *common.Config) antispam.Store {
	addr := cfg.GetRedisAddr()
	if addr == "" {
		return antispam.NewMemoryStore(10)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.GetRedisPassword(),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return antispam.NewRedisStore(client, 10, time.Hour)
}
