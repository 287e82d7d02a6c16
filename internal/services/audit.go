package services

import (
	"log"

	"emporium/internal/audit"
)

// recordAudit emits an audit event after a successful mutation. Emission is
// advisory: a nil recorder or a failed publish never affects the operation
// that triggered it.
func recordAudit(recorder audit.Recorder, ctx audit.Context, operation, entity string, entityID int64) {
	if recorder == nil {
		log.Println("Audit recorder is not initialized. Skipping audit event.")
		return
	}
	if err := recorder.Record(audit.NewEvent(ctx, operation, entity, entityID)); err != nil {
		log.Printf("Warning: Failed to record %s audit event for %s %d: %v", operation, entity, entityID, err)
	}
}
