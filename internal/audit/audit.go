// Package audit carries the per-call audit context through the write paths.
// The context travels as an explicit parameter from handler to service, never
// as ambient state, so every emission is attributable and testable.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Operation tags recorded per successful mutation.
const (
	OperationCreate = "CREATE"
	OperationUpdate = "UPDATE"
	OperationDelete = "DELETE"
)

// Context identifies the caller of a single write request. Handlers build it
// from the resolved auth claims and client address.
type Context struct {
	Username  string
	IPAddress string
}

// Event is a single audit record emitted after a successful mutation.
type Event struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	OperationType string    `json:"operationType"`
	Entity        string    `json:"entity"`
	EntityID      int64     `json:"entityId"`
	Username      string    `json:"username"`
	IPAddress     string    `json:"ipAddress"`
}

// NewEvent stamps an event for the given caller context and target entity.
func NewEvent(ctx Context, operation, entity string, entityID int64) Event {
	username := ctx.Username
	if username == "" {
		username = "system"
	}
	return Event{
		ID:            uuid.New().String(),
		Timestamp:     time.Now(),
		OperationType: operation,
		Entity:        entity,
		EntityID:      entityID,
		Username:      username,
		IPAddress:     ctx.IPAddress,
	}
}

// Recorder receives audit events. Recording is advisory: callers log failures
// and never let them fail the primary operation.
type Recorder interface {
	Record(event Event) error
}
