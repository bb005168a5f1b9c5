package domain

// Person is a contact in the agency's book: tenant, owner or guarantor.
type Person struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	DNI        string `json:"dni,omitempty"`
	Address    string `json:"address,omitempty"`
	PersonType string `json:"person_type"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Person types.
const (
	PersonInquilino   = "INQUILINO"
	PersonPropietario = "PROPIETARIO"
	PersonGarante     = "GARANTE"
)

// PersonInput is the body for create/update of a person.
type PersonInput struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	DNI        string `json:"dni,omitempty"`
	Address    string `json:"address,omitempty"`
	PersonType string `json:"person_type"`
}
