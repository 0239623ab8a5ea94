package main

import (
	"makemodelyear/pkg/config"
	app "makemodelyear/services/blog/internal/app"

	_ "makemodelyear/services/blog/docs" // Swagger docs
)

// @title           Make Model Year Blog API
// @version         1.0
// @description     Blog content service for Make Model Year. Posts and authors are served from Postgres with a local store fallback.
// @termsOfService  http://swagger.io/terms/

// @contact.name   Make Model Year
// @contact.url    https://makemodelyear.in
// @contact.email  admin@makemodelyear.in

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the auth provider's access token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Admin routes verify provider tokens with this secret
	if cfg.AuthJWTSecret == "" {
		panic("AUTH_JWT_SECRET must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
