package main

import (
	"log"
	"net/http"
	"time"

	"freet/internal/common"
	"freet/internal/di"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using system env variables")
	}

	app, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	log.Println("Dependencies wired successfully")

	router := mux.NewRouter()
	app.UserHandler.RegisterRoutes(router)
	app.FollowHandler.RegisterRoutes(router)
	app.CircleHandler.RegisterRoutes(router)
	app.FreetHandler.RegisterRoutes(router)
	app.ReportHandler.RegisterRoutes(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	server := &http.Server{
		Addr:         app.Config.Server.Host + ":" + app.Config.Server.Port,
		Handler:      common.AuthMiddleware(router),
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	log.Printf("Freet service listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
