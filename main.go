package main

import (
	"context"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Dineshj396/FoodMafia/config"
	middleware "github.com/Dineshj396/FoodMafia/middlewares"
	"github.com/Dineshj396/FoodMafia/routes"
	"github.com/Dineshj396/FoodMafia/store"
)

func main() {
	cfg := config.Load()

	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	ctx := context.Background()

	client, err := config.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongodb connection failed", zap.String("uri", cfg.MongoURI), zap.Error(err))
	}
	defer client.Disconnect(ctx)

	st := store.NewMongoStore(client, cfg.DBName)

	seeded, err := st.SeedMenu(ctx)
	if err != nil {
		logger.Fatal("menu seed failed", zap.Error(err))
	}
	if seeded {
		logger.Info("menu collection seeded")
	}

	router := mux.NewRouter()
	router.Use(middleware.Logging(logger))
	routes.Register(router, st, logger)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, cors(router)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
