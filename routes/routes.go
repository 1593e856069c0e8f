package routes

import (
	"github.com/gofiber/fiber/v2"

	"messenger-hub/handler"
	"messenger-hub/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AccountHandler
	*handler.UserHandler
	*handler.TelegramHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetAPIRoute()
	rc.GetWebhookRoute()
}

func (rc *ConfigRoute) GetAPIRoute() {
	app := rc.App.Group("/api/v1")
	app.Use(rc.Middleware.RequestID)

	app.Get("/accounts", rc.AccountHandler.GetAllAccounts)
	app.Get("/accounts/search", rc.AccountHandler.SearchAccount)
	app.Get("/accounts/:accountId", rc.AccountHandler.GetAccount)
	app.Post("/accounts", rc.AccountHandler.CreateAccount)
	app.Post("/accounts/with-user", rc.AccountHandler.CreateAccountWithUser)
	app.Put("/accounts/:accountId", rc.AccountHandler.UpdateAccount)
	app.Delete("/accounts/:accountId", rc.AccountHandler.DeleteAccount)

	app.Get("/users", rc.UserHandler.GetUsers)
	app.Get("/users/:userId", rc.UserHandler.GetUser)
	app.Post("/users", rc.UserHandler.CreateUser)
	app.Put("/users/:userId", rc.UserHandler.UpdateUser)
	app.Delete("/users/:userId", rc.UserHandler.DeleteUser)
}

func (rc *ConfigRoute) GetWebhookRoute() {
	rc.App.Post("/webhooks/telegram", rc.TelegramHandler.HandleWebhook)
}
