package domain

// Property is a listing managed by an agency.
type Property struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Address      string  `json:"address"`
	City         string  `json:"city,omitempty"`
	PropertyType string  `json:"property_type,omitempty"`
	Status       string  `json:"status"`
	Price        float64 `json:"price"`
	Description  string  `json:"description,omitempty"`
	OwnerID      int64   `json:"owner_id,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
}

// Property statuses as the core API reports them.
const (
	PropertyAvailable = "DISPONIBLE"
	PropertyRented    = "ALQUILADA"
	PropertyReserved  = "RESERVADA"
)

// PropertyInput is the body for create/update of a property.
type PropertyInput struct {
	Title        string  `json:"title"`
	Address      string  `json:"address"`
	City         string  `json:"city,omitempty"`
	PropertyType string  `json:"property_type,omitempty"`
	Status       string  `json:"status,omitempty"`
	Price        float64 `json:"price"`
	Description  string  `json:"description,omitempty"`
	OwnerID      int64   `json:"owner_id,omitempty"`
}

// PropertyFilter narrows the property list. Query and Status are
// conjunctive; Query matches title or address, case-insensitive.
type PropertyFilter struct {
	Query  string
	Status string
	Sort   string // "price_asc" | "price_desc" | ""
}
