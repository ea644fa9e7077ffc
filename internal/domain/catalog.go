package domain

// Supplier is reference data for the carrier or pickup category a freight is
// booked under. Name is matched case-insensitively by IsNoCostSupplier.
type Supplier struct {
	ID   int64  `json:"id"`
	Name string `json:"supplier_name"`
}

// Destination is reference data for where a freight goes. Cost is the flat
// per-trip amount charged as the "supplier cost" column of every report,
// regardless of the supplier's cost policy.
type Destination struct {
	ID   int64  `json:"id"`
	Name string `json:"destination_name"`
	Cost *int64 `json:"cost,omitempty"`
}
