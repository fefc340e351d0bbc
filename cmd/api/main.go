package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "estimaciones_obra/docs"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Estimaciones de Obra API
// @version         1.0
// @description     Approval workflow for construction estimations: role sign-offs, invoice upload, finance validation and payment.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		log.Printf("[main] exit err=%v", err)
		stop()
		os.Exit(1)
	}
}
