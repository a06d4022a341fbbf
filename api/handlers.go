package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"geohash-service/geohash"
	"geohash-service/index"
	"geohash-service/matching"
	"geohash-service/models"
)

// Handler serves the geohash and proximity endpoints.
type Handler struct {
	index              index.Index
	defaultPrecisionKm float64
}

func NewHandler(idx index.Index, defaultPrecisionKm float64) *Handler {
	return &Handler{index: idx, defaultPrecisionKm: defaultPrecisionKm}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// codecStatus maps codec errors to 400 and anything else to 500.
func codecStatus(err error) int {
	switch {
	case errors.Is(err, geohash.ErrInvalidHashCharacter),
		errors.Is(err, geohash.ErrInvalidPrecision),
		errors.Is(err, geohash.ErrMissingCoordinate),
		errors.Is(err, index.ErrMissingID):
		return http.StatusBadRequest
	case errors.Is(err, index.ErrPointNotFound),
		errors.Is(err, matching.ErrNoneNearby):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func parseFloat(r *http.Request, name string) (float64, bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true, err
	}
	return f, true, nil
}

// parseLocation reads the required lat and lon query parameters.
func parseLocation(w http.ResponseWriter, r *http.Request) (float64, float64, bool) {
	lat, latOK, err := parseFloat(r, "lat")
	if err != nil || !latOK {
		http.Error(w, "Invalid or missing lat", http.StatusBadRequest)
		return 0, 0, false
	}
	lon, lonOK, err := parseFloat(r, "lon")
	if err != nil || !lonOK {
		http.Error(w, "Invalid or missing lon", http.StatusBadRequest)
		return 0, 0, false
	}
	return lat, lon, true
}

// cellFromHash describes a cell the way a hash decodes, with its bounds.
func cellFromHash(hash string) (models.Cell, error) {
	v, err := geohash.NewFromHash(hash)
	if err != nil {
		return models.Cell{}, err
	}
	la, lo, err := v.Interval()
	if err != nil {
		return models.Cell{}, err
	}
	lat, _ := v.Latitude()
	lon, _ := v.Longitude()
	canonical, _ := v.Hash()
	return models.Cell{
		Geohash:     canonical,
		Latitude:    lat,
		Longitude:   lon,
		PrecisionKm: v.PrecisionKm(),
		Bounds: &models.Bounds{
			MinLatitude:  la.Min,
			MaxLatitude:  la.Max,
			MinLongitude: lo.Min,
			MaxLongitude: lo.Max,
		},
	}, nil
}

// Encode handles GET /geohash/encode?lat=&lon=&precision=
func (h *Handler) Encode(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := parseLocation(w, r)
	if !ok {
		return
	}
	precision, set, err := parseFloat(r, "precision")
	if err != nil {
		http.Error(w, "Invalid precision", http.StatusBadRequest)
		return
	}
	if !set {
		precision = h.defaultPrecisionKm
	}

	v, err := geohash.NewFromCoordinates(lat, lon, precision)
	if err != nil {
		http.Error(w, err.Error(), codecStatus(err))
		return
	}
	hash, err := v.Hash()
	if err != nil {
		http.Error(w, err.Error(), codecStatus(err))
		return
	}

	writeJSON(w, models.Cell{
		Geohash:     hash,
		Latitude:    lat,
		Longitude:   lon,
		PrecisionKm: precision,
	})
}

// Decode handles GET /geohash/{hash}
func (h *Handler) Decode(w http.ResponseWriter, r *http.Request) {
	cell, err := cellFromHash(mux.Vars(r)["hash"])
	if err != nil {
		http.Error(w, err.Error(), codecStatus(err))
		return
	}
	writeJSON(w, cell)
}

// Neighbors handles GET /geohash/{hash}/neighbors
func (h *Handler) Neighbors(w http.ResponseWriter, r *http.Request) {
	v, err := geohash.NewFromHash(mux.Vars(r)["hash"])
	if err != nil {
		http.Error(w, err.Error(), codecStatus(err))
		return
	}
	neighbors, err := v.Neighbors()
	if err != nil {
		http.Error(w, err.Error(), codecStatus(err))
		return
	}

	cells := make([]models.Cell, 0, len(neighbors))
	for _, n := range neighbors {
		hash, err := n.Hash()
		if err != nil {
			http.Error(w, err.Error(), codecStatus(err))
			return
		}
		cell, err := cellFromHash(hash)
		if err != nil {
			http.Error(w, err.Error(), codecStatus(err))
			return
		}
		cells = append(cells, cell)
	}
	writeJSON(w, cells)
}

// Distance handles POST /distance with {"from": hash, "to": hash}.
func (h *Handler) Distance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	km, err := geohash.HashDistanceKm(req.From, req.To)
	if err != nil {
		http.Error(w, err.Error(), codecStatus(err))
		return
	}
	writeJSON(w, map[string]float64{"distance_km": km})
}

// AddPoint handles POST /points
func (h *Handler) AddPoint(w http.ResponseWriter, r *http.Request) {
	var p models.Point
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	stored, err := h.index.Add(r.Context(), p)
	if err != nil {
		if codecStatus(err) == http.StatusInternalServerError {
			log.Printf("failed to add point %s: %v", p.ID, err)
			http.Error(w, "Failed to add point", http.StatusInternalServerError)
			return
		}
		http.Error(w, err.Error(), codecStatus(err))
		return
	}
	writeJSON(w, stored)
}

// RemovePoint handles DELETE /points/{id}
func (h *Handler) RemovePoint(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.index.Remove(r.Context(), id); err != nil {
		if codecStatus(err) == http.StatusInternalServerError {
			log.Printf("failed to remove point %s: %v", id, err)
			http.Error(w, "Failed to remove point", http.StatusInternalServerError)
			return
		}
		http.Error(w, err.Error(), codecStatus(err))
		return
	}
	writeJSON(w, map[string]string{"message": "Point removed"})
}

// Nearby handles GET /points/nearby?lat=&lon=
func (h *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := parseLocation(w, r)
	if !ok {
		return
	}
	matches, err := matching.Rank(r.Context(), h.index, lat, lon)
	if err != nil {
		log.Printf("nearby search failed: %v", err)
		http.Error(w, "Nearby search failed", codecStatus(err))
		return
	}
	writeJSON(w, matches)
}

// Nearest handles GET /points/nearest?lat=&lon=
func (h *Handler) Nearest(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := parseLocation(w, r)
	if !ok {
		return
	}
	match, err := matching.FindNearest(r.Context(), h.index, lat, lon)
	if err != nil {
		http.Error(w, err.Error(), codecStatus(err))
		return
	}
	writeJSON(w, match)
}
