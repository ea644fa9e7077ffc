// Package domain contains the core data types and pure business rules for the
// Fletes service. It imports no other internal package and is imported by
// every one of them (repo, service, render, handler).
package domain

import "time"

// Freight is a single trip entry linking a supplier and a destination with
// its incidental costs. Every pointer field is nullable in storage; nil
// monetary amounts count as zero in every aggregation.
type Freight struct {
	ID                 int64      `json:"id"`
	SupplierID         *int64     `json:"supplier_id,omitempty"`
	DestinationID      *int64     `json:"destination_id,omitempty"`
	HighwayExpenseCost *int64     `json:"highway_expense_cost,omitempty"`
	CostOfStay         *int64     `json:"cost_of_stay,omitempty"`
	RegistrationDate   *time.Time `json:"registration_date,omitempty"` // business date; drives month/week attribution
	TripNumber         *int64     `json:"trip_number,omitempty"`
	CreatedAt          time.Time  `json:"created_at"` // set by storage
}

// FreightInput is the caller-supplied payload for creating or updating a
// freight. Any field may be absent.
type FreightInput struct {
	SupplierID         *int64
	DestinationID      *int64
	HighwayExpenseCost *int64
	CostOfStay         *int64
	RegistrationDate   *time.Time
	TripNumber         *int64
}

// FreightView is a freight joined with the display data of its supplier and
// destination. Name and cost fields are nil when the reference is unset or
// points at a row that no longer exists.
type FreightView struct {
	Freight
	SupplierName    *string
	DestinationName *string
	DestinationCost *int64
}

// Int64Value dereferences p, treating nil as zero.
func Int64Value(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
