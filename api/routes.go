package api

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// RegisterRoutes wires h into a router with CORS and access logging to accessLog.
func RegisterRoutes(h *Handler, accessLog io.Writer) http.Handler {
	router := mux.NewRouter()

	// Codec endpoints
	router.HandleFunc("/geohash/encode", h.Encode).Methods("GET")
	router.HandleFunc("/geohash/{hash}", h.Decode).Methods("GET")
	router.HandleFunc("/geohash/{hash}/neighbors", h.Neighbors).Methods("GET")
	router.HandleFunc("/distance", h.Distance).Methods("POST")

	// Proximity endpoints
	router.HandleFunc("/points", h.AddPoint).Methods("POST")
	router.HandleFunc("/points/nearby", h.Nearby).Methods("GET")
	router.HandleFunc("/points/nearest", h.Nearest).Methods("GET")
	router.HandleFunc("/points/{id}", h.RemovePoint).Methods("DELETE")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return handlers.LoggingHandler(accessLog, cors(router))
}
