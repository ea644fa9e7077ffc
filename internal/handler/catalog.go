package handler

import "net/http"

// ListSuppliers handles GET /suppliers.
func (s *Server) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := s.catalog.Suppliers(r.Context())
	if err != nil {
		respondError(w, r, err, "supplier")
		return
	}
	writeJSON(w, http.StatusOK, suppliers)
}

// ListDestinations handles GET /destinations.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := s.catalog.Destinations(r.Context())
	if err != nil {
		respondError(w, r, err, "destination")
		return
	}
	writeJSON(w, http.StatusOK, destinations)
}
