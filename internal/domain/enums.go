package domain

// MaterialKind identifies one of the forecastable material categories used
// in transmission infrastructure projects. Each kind maps 1:1 to a trained
// forecast model on the model service side.
type MaterialKind string

const (
	MaterialKindSteel        MaterialKind = "steel"
	MaterialKindConductor    MaterialKind = "conductor"
	MaterialKindTransformers MaterialKind = "transformers"
	MaterialKindEarthwire    MaterialKind = "earthwire"
	MaterialKindFoundation   MaterialKind = "foundation"
	MaterialKindReactors     MaterialKind = "reactors"
	MaterialKindTower        MaterialKind = "tower"
)

func (k MaterialKind) String() string { return string(k) }

func (k MaterialKind) IsValid() bool {
	switch k {
	case MaterialKindSteel, MaterialKindConductor, MaterialKindTransformers,
		MaterialKindEarthwire, MaterialKindFoundation, MaterialKindReactors,
		MaterialKindTower:
		return true
	}
	return false
}

// AllMaterialKinds lists every forecastable kind in a stable order.
func AllMaterialKinds() []MaterialKind {
	return []MaterialKind{
		MaterialKindSteel,
		MaterialKindConductor,
		MaterialKindTransformers,
		MaterialKindEarthwire,
		MaterialKindFoundation,
		MaterialKindReactors,
		MaterialKindTower,
	}
}

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusPending  ProjectStatus = "pending"
	ProjectStatusApproved ProjectStatus = "approved"
	ProjectStatusRejected ProjectStatus = "rejected"
	ProjectStatusDeclined ProjectStatus = "declined"
	ProjectStatusFinished ProjectStatus = "finished"
	ProjectStatusDeleted  ProjectStatus = "deleted"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPending, ProjectStatusApproved, ProjectStatusRejected,
		ProjectStatusDeclined, ProjectStatusFinished, ProjectStatusDeleted:
		return true
	}
	return false
}

// UserRole controls project visibility and the approval workflow.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleEmployee UserRole = "employee"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleEmployee
}

// AlertType classifies what condition a reorder alert describes.
type AlertType string

const (
	AlertTypeLowStock  AlertType = "low_stock"
	AlertTypeStockout  AlertType = "stockout"
	AlertTypeOverstock AlertType = "overstock"
)

func (t AlertType) String() string { return string(t) }

func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeLowStock, AlertTypeStockout, AlertTypeOverstock:
		return true
	}
	return false
}

// AlertPriority orders alerts for display and triage.
type AlertPriority string

const (
	AlertPriorityLow      AlertPriority = "low"
	AlertPriorityMedium   AlertPriority = "medium"
	AlertPriorityHigh     AlertPriority = "high"
	AlertPriorityCritical AlertPriority = "critical"
)

func (p AlertPriority) String() string { return string(p) }

func (p AlertPriority) IsValid() bool {
	switch p {
	case AlertPriorityLow, AlertPriorityMedium, AlertPriorityHigh, AlertPriorityCritical:
		return true
	}
	return false
}

// Rank returns a sortable weight: higher means more urgent.
func (p AlertPriority) Rank() int {
	switch p {
	case AlertPriorityCritical:
		return 4
	case AlertPriorityHigh:
		return 3
	case AlertPriorityMedium:
		return 2
	case AlertPriorityLow:
		return 1
	}
	return 0
}

// AlertStatus is the lifecycle state of a reorder alert.
type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

func (s AlertStatus) String() string { return string(s) }

func (s AlertStatus) IsValid() bool {
	switch s {
	case AlertStatusActive, AlertStatusAcknowledged, AlertStatusResolved:
		return true
	}
	return false
}

// AlertTrigger records which code path produced an alert. The two paths
// classify the same stock condition with different priorities, so the
// trigger is persisted alongside the snapshot fields.
type AlertTrigger string

const (
	// AlertTriggerUsageLog marks alerts produced inline after a usage write.
	AlertTriggerUsageLog AlertTrigger = "usage_log"
	// AlertTriggerSweep marks alerts produced by the periodic monitor.
	AlertTriggerSweep AlertTrigger = "sweep"
)

func (t AlertTrigger) String() string { return string(t) }
