package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/airhop/airhop/pkg/api/routes"
	"github.com/airhop/airhop/pkg/interconnect"
)

func SetupServer(listen string, finder *interconnect.Finder) error {
	return CreateServer(finder).Listen(listen)
}

func CreateServer(finder *interconnect.Finder) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	webApp.Get("/version", routes.APIVersion)

	routes.InterconnectionsRouter(webApp.Group("/interconnections"), finder)

	return webApp
}
