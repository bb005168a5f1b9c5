package domain

import "fmt"

// Error types for consistent error handling across the BFF.

// ErrNotFound indicates a resource was not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s no encontrado: %s", e.Resource, e.ID)
}

// ErrUpstream indicates an unexpected response from the core API or the
// WhatsApp gateway.
type ErrUpstream struct {
	Service string
	Status  int
	Detail  string
	Err     error
}

func (e *ErrUpstream) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream error [%s]: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("upstream error [%s]: status %d: %s", e.Service, e.Status, e.Detail)
}

func (e *ErrUpstream) Unwrap() error {
	return e.Err
}

// ErrTimeout indicates an operation exceeded its deadline.
type ErrTimeout struct {
	Operation string
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("operation timed out: %s", e.Operation)
}

// ErrCircuitOpen indicates the circuit breaker is open.
type ErrCircuitOpen struct {
	Service string
}

func (e *ErrCircuitOpen) Error() string {
	return fmt.Sprintf("circuit breaker open for service: %s", e.Service)
}

// ErrValidation indicates a validation error (bad input).
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ErrUnauthorized indicates invalid credentials or token.
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "No autorizado"
}

// ErrSessionExpired indicates the upstream rejected the session token.
// Handlers map this to 401 plus a redirect to /login so the SPA drops
// its local session.
type ErrSessionExpired struct{}

func (e *ErrSessionExpired) Error() string {
	return "Sesión expirada. Por favor inicie sesión nuevamente"
}

// ErrForbidden indicates the user lacks permission for the operation.
type ErrForbidden struct {
	Message string
}

func (e *ErrForbidden) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "No tiene permisos para realizar esta acción"
}

// ErrPlanRequired indicates the tenant's plan does not include the feature.
type ErrPlanRequired struct{}

func (e *ErrPlanRequired) Error() string {
	return "Esta funcionalidad requiere un plan superior"
}

// ErrConflict indicates a resource already exists (e.g. duplicate period).
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}

// ErrProtectedTenant indicates an attempt to force-delete the master tenant.
type ErrProtectedTenant struct{}

func (e *ErrProtectedTenant) Error() string {
	return "La inmobiliaria master no puede ser eliminada"
}
