package domain

import "strings"

// noCostSuppliers is the closed set of upper-cased supplier names whose
// highway and stay costs are always recorded as zero.
var noCostSuppliers = map[string]struct{}{
	"UNIDAD MESA":               {},
	"RECOLECCIONES A PROVEEDOR": {},
	"RECOLECCION POR CLIENTE":   {},
}

// IsNoCostSupplier reports whether a supplier's incidental costs are excused.
// The name is upper-cased and compared by exact equality; empty names are
// never excused. Destination cost is not affected by this rule.
func IsNoCostSupplier(name string) bool {
	if name == "" {
		return false
	}
	_, ok := noCostSuppliers[strings.ToUpper(name)]
	return ok
}
