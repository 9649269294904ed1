package models

// AdminStats is the coarse admin dashboard view: collection cardinalities plus
// total revenue across all payments.
type AdminStats struct {
	Revenue  float64 `json:"revenue"`
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
}

// OrderStatRow is one per-category row of the order-stats aggregation. Derived
// only, never persisted.
type OrderStatRow struct {
	Category string  `bson:"category" json:"category"`
	Count    int64   `bson:"count" json:"count"`
	Total    float64 `bson:"total" json:"total"`
}
