package refresh

import (
	"strings"

	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
)

// Fixed event names
const (
	EventPeriodChanged = "periodChanged"
	EventTick          = "tick"
)

// CRUD operations as they appear in event names
const (
	OperationCreated = "Created"
	OperationUpdated = "Updated"
	OperationDeleted = "Deleted"
)

var crudEntities = []string{
	domain.EntityResource,
	domain.EntityProject,
	domain.EntityFinancialData,
	domain.EntityEscalation,
}

var crudOperations = []string{OperationCreated, OperationUpdated, OperationDeleted}

// EventName builds the bus name for a write on entity, e.g. ("project", "created") -> "projectCreated"
func EventName(entity, operation string) string {
	if operation == "" {
		return entity
	}
	return entity + strings.ToUpper(operation[:1]) + operation[1:]
}

// CRUDEvents lists every entity write event, grouped by entity
func CRUDEvents() []string {
	names := make([]string, 0, len(crudEntities)*len(crudOperations))
	for _, entity := range crudEntities {
		for _, op := range crudOperations {
			names = append(names, EventName(entity, op))
		}
	}
	return names
}

// AllEvents lists every event name the bus knows about
func AllEvents() []string {
	return append([]string{EventPeriodChanged, EventTick}, CRUDEvents()...)
}

// IsKnownEvent reports whether name is one of AllEvents
func IsKnownEvent(name string) bool {
	for _, known := range AllEvents() {
		if known == name {
			return true
		}
	}
	return false
}

// KindForOperation maps a CRUD operation to its RefreshKind
func KindForOperation(operation string) domain.RefreshKind {
	switch strings.ToLower(operation) {
	case "created":
		return domain.RefreshKindCreated
	case "deleted":
		return domain.RefreshKindDeleted
	default:
		return domain.RefreshKindUpdated
	}
}

// PublishWrite announces a successful write of entity. The bus stamps the time.
func PublishWrite(p Publisher, entity, operation string, data any) {
	p.Publish(EventName(entity, operation), domain.RefreshEvent{
		Kind:      KindForOperation(operation),
		Entity:    entity,
		Operation: operation,
		Payload:   data,
	})
}
