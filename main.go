package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/VicMent/kermisfuif-sponsor-api/cmd/app"
)

// @contact.name   Kermisfuif werkgroep
// @contact.email  sponsoring@kermisfuif.be
//
// @license.name  MIT
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
