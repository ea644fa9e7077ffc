package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/embarques/fletes/internal/domain"
)

// FreightRequest is the body of POST /fletes and PUT /fletes/{id}.
// Every field is optional.
type FreightRequest struct {
	SupplierID         *int64    `json:"supplier_id"`
	DestinationID      *int64    `json:"destination_id"`
	HighwayExpenseCost *int64    `json:"highway_expense_cost"`
	CostOfStay         *int64    `json:"cost_of_stay"`
	RegistrationDate   *DateTime `json:"registration_date"`
	TripNumber         *int64    `json:"trip_number"`
}

// DateTime accepts either an RFC 3339 timestamp or a plain YYYY-MM-DD date.
type DateTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var t time.Time
	if err := t.UnmarshalJSON(b); err == nil {
		d.Time = t
		return nil
	}
	var day openapi_types.Date
	if err := day.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("registration_date: want RFC 3339 timestamp or YYYY-MM-DD: %w", err)
	}
	d.Time = day.Time
	return nil
}

// FreightResponse is a freight as returned by the API. The name and
// individual-cost fields are only present on reads, which join reference data.
type FreightResponse struct {
	ID                 int64      `json:"id"`
	SupplierID         *int64     `json:"supplier_id"`
	DestinationID      *int64     `json:"destination_id"`
	Supplier           *string    `json:"supplier,omitempty"`
	Destination        *string    `json:"destination,omitempty"`
	HighwayExpenseCost *int64     `json:"highway_expense_cost"`
	CostOfStay         *int64     `json:"cost_of_stay"`
	RegistrationDate   *time.Time `json:"registration_date"`
	TripNumber         *int64     `json:"trip_number"`
	IndividualCost     *int64     `json:"individual_cost,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// FreightList is the body of GET /fletes.
type FreightList struct {
	Data       []FreightResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// CreateFreight handles POST /fletes.
func (s *Server) CreateFreight(w http.ResponseWriter, r *http.Request) {
	input, ok := readFreightInput(w, r)
	if !ok {
		return
	}

	created, err := s.freights.Create(r.Context(), input)
	if err != nil {
		respondError(w, r, err, "freight")
		return
	}

	writeJSON(w, http.StatusCreated, freightToResponse(created))
}

// ListFreights handles GET /fletes.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListFreights(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &page); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid page: "+err.Error()))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid limit: "+err.Error()))
		return
	}

	params := domain.NewPaginationParams(page, limit)
	views, total, err := s.freights.ListPaged(r.Context(), params)
	if err != nil {
		respondError(w, r, err, "freight")
		return
	}

	data := make([]FreightResponse, len(views))
	for i, v := range views {
		data[i] = viewToResponse(v)
	}
	writeJSON(w, http.StatusOK, FreightList{
		Data: data,
		Pagination: Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      int(total),
			TotalPages: params.TotalPages(total),
		},
	})
}

// GetFreight handles GET /fletes/{id}.
func (s *Server) GetFreight(w http.ResponseWriter, r *http.Request) {
	id, ok := freightID(w, r)
	if !ok {
		return
	}

	view, err := s.freights.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "freight")
		return
	}

	writeJSON(w, http.StatusOK, viewToResponse(view))
}

// UpdateFreight handles PUT /fletes/{id}.
func (s *Server) UpdateFreight(w http.ResponseWriter, r *http.Request) {
	id, ok := freightID(w, r)
	if !ok {
		return
	}
	input, ok := readFreightInput(w, r)
	if !ok {
		return
	}

	updated, err := s.freights.Update(r.Context(), id, input)
	if err != nil {
		respondError(w, r, err, "freight")
		return
	}

	writeJSON(w, http.StatusOK, freightToResponse(updated))
}

// DeleteFreight handles DELETE /fletes/{id}.
func (s *Server) DeleteFreight(w http.ResponseWriter, r *http.Request) {
	id, ok := freightID(w, r)
	if !ok {
		return
	}

	if err := s.freights.Delete(r.Context(), id); err != nil {
		respondError(w, r, err, "freight")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- request helpers --------------------------------------------------------

// freightID binds the {id} path parameter. On failure it writes a 422 and
// returns false.
func freightID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid freight id: "+err.Error()))
		return 0, false
	}
	return id, true
}

// readFreightInput decodes the request body. An empty body or a JSON null
// yields a nil input, which the service rejects as a validation error.
// On a malformed body it writes the error response and returns false.
func readFreightInput(w http.ResponseWriter, r *http.Request) (*domain.FreightInput, bool) {
	var body *FreightRequest
	if err := decodeJSON(r, &body); err != nil {
		switch {
		case errors.Is(err, errEmptyBody):
			return nil, true
		case isTooLarge(err):
			writeJSON(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
		default:
			writeJSON(w, http.StatusUnprocessableEntity, requestBody("malformed request body: "+err.Error()))
		}
		return nil, false
	}
	return requestToInput(body), true
}

// --- mapping helpers --------------------------------------------------------

// requestToInput converts a FreightRequest into a domain.FreightInput.
// A nil request maps to a nil input.
func requestToInput(body *FreightRequest) *domain.FreightInput {
	if body == nil {
		return nil
	}
	in := &domain.FreightInput{
		SupplierID:         body.SupplierID,
		DestinationID:      body.DestinationID,
		HighwayExpenseCost: body.HighwayExpenseCost,
		CostOfStay:         body.CostOfStay,
		TripNumber:         body.TripNumber,
	}
	if body.RegistrationDate != nil {
		t := body.RegistrationDate.Time
		in.RegistrationDate = &t
	}
	return in
}

// freightToResponse converts a written domain.Freight into a FreightResponse.
func freightToResponse(f domain.Freight) FreightResponse {
	return FreightResponse{
		ID:                 f.ID,
		SupplierID:         f.SupplierID,
		DestinationID:      f.DestinationID,
		HighwayExpenseCost: f.HighwayExpenseCost,
		CostOfStay:         f.CostOfStay,
		RegistrationDate:   f.RegistrationDate,
		TripNumber:         f.TripNumber,
		CreatedAt:          f.CreatedAt,
	}
}

// viewToResponse converts a joined domain.FreightView into a FreightResponse.
func viewToResponse(v domain.FreightView) FreightResponse {
	resp := freightToResponse(v.Freight)
	resp.Supplier = v.SupplierName
	resp.Destination = v.DestinationName
	resp.IndividualCost = v.DestinationCost
	return resp
}
