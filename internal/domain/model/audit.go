package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit actions recorded for mutations forwarded to the manufacturing service.
const (
	ActionCreateProduct     = "create_product"
	ActionUpdateProduct     = "update_product"
	ActionDeleteProduct     = "delete_product"
	ActionCreateRawMaterial = "create_raw_material"
	ActionUpdateRawMaterial = "update_raw_material"
	ActionDeleteRawMaterial = "delete_raw_material"
	ActionCreateComposition = "create_composition"
	ActionUpdateComposition = "update_composition"
	ActionDeleteComposition = "delete_composition"
	ActionRefreshPlan       = "refresh_plan"
)

// AuditEntry represents one recorded mutation.
// Fields holds action-specific context such as the canonical payload that was sent upstream.
type AuditEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Action    string             `bson:"action" json:"action"`
	Outcome   string             `bson:"outcome" json:"outcome"`
	RequestID string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Subject   string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Actor     string             `bson:"actor,omitempty" json:"actor,omitempty"`
	Error     string             `bson:"error,omitempty" json:"error,omitempty"`
	Fields    map[string]any     `bson:"fields,omitempty" json:"fields,omitempty"`
}

// Audit outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// WithField adds a field to the entry's Fields map, initializing it when needed.
func (e *AuditEntry) WithField(key string, value any) *AuditEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = value
	return e
}

// WithFields merges fields into the entry's Fields map.
func (e *AuditEntry) WithFields(fields map[string]any) *AuditEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]any, len(fields))
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// AuditQuery filters audit entries.
type AuditQuery struct {
	Action    string
	RequestID string
	Subject   string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}
