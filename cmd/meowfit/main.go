package main

import (
	"flag"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	_ "meowfit/docs"
	meowfit "meowfit/internal"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title           MeowFit API
// @version         1.0
// @description     API for the MeowFit fitness tracking service
// @BasePath        /

var port string

func main() {
	// Parse command line flags
	flag.StringVar(&port, "port", ":8080", "HTTP server port (e.g. ':8080')")
	flag.Parse()

	log.SetTimeFormat(time.Stamp)
	log.SetReportCaller(true)

	// Create and initialize the server
	server, err := meowfit.NewServer()
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	// Set up routes
	mux := server.SetupRoutes()

	// Add swagger handler
	http.Handle("/", mux)
	http.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	log.Info("Server starting on", "port", port)
	log.Fatal(http.ListenAndServe(port, nil))
}
