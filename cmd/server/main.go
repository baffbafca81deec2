// @title           Fiber Validation Errors Demo API
// @version         1.0
// @description     Demo server for the errorhandler middleware: invalid payloads come back as 400 with a field-keyed detail map.
// @BasePath        /
// @schemes         http
package main

import (
	"log"

	"github.com/aldoetobex/fiber-validation-errors/internal/config"
	"github.com/aldoetobex/fiber-validation-errors/internal/server"
)

func main() {
	cfg := config.Load()

	app := server.New(cfg)

	log.Printf("Server running on :%s (env=%s, validation log=%s)", cfg.Port, cfg.AppEnv, cfg.ValidationLog)
	log.Fatal(app.Listen(":" + cfg.Port))
}
