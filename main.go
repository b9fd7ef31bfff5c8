package main

import (
	"net/http"
	"os"

	"contenthub/config/database"
	"contenthub/pkg/logger"
	"contenthub/router"
	"contenthub/socket"

	"github.com/joho/godotenv"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Sugar.Info("No .env file found, using environment variables from OS")
	}

	db, err := database.Connect()
	if err != nil {
		logger.Sugar.Fatalf("Could not connect to database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		logger.Sugar.Fatalf("Could not prepare database schema: %v", err)
	}

	hub := socket.NewHub()
	go hub.Run()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	logger.Sugar.Infof("Content backend listening on :%s", port)
	if err := http.ListenAndServe(":"+port, router.Setup(db, hub)); err != nil {
		logger.Sugar.Fatalf("Server stopped: %v", err)
	}
}
