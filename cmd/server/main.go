package main

import (
	"database/sql"
	"log"
	"net/http"

	"mercato-be/internal/auth"
	"mercato-be/internal/category"
	"mercato-be/internal/config"
	"mercato-be/internal/db"
	"mercato-be/internal/logger"
	"mercato-be/internal/order"
	"mercato-be/internal/product"
	"mercato-be/internal/transport"
	"mercato-be/internal/user"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Indirections for testing.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	logger.L().Info("server listening",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)
	return startServerFunc(":"+cfg.AppPort, router)
}

// newServer wires repositories, services and handlers onto the router.
func newServer(cfg *config.Config, database *sql.DB) *chi.Mux {
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	userSvc := user.NewService(user.NewRepository(database), tokens)
	productSvc := product.NewService(product.NewRepository(database))
	categorySvc := category.NewService(category.NewRepository(database))
	orderSvc := order.NewService(order.NewRepository(database))

	h := transport.NewHandler(userSvc, productSvc, categorySvc, orderSvc, logger.L())

	return transport.NewRouter(h, userSvc)
}
