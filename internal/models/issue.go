package models

import "time"

// IssueStatus tracks an issue through its triage lifecycle. Transitions are
// forward-only: pending -> in-progress -> resolved.
type IssueStatus string

const (
	IssuePending    IssueStatus = "pending"
	IssueInProgress IssueStatus = "in-progress"
	IssueResolved   IssueStatus = "resolved"
)

// statusRank orders statuses for the forward-only transition guard.
var statusRank = map[IssueStatus]int{
	IssuePending:    0,
	IssueInProgress: 1,
	IssueResolved:   2,
}

// Valid reports whether the status belongs to the closed enumeration.
func (s IssueStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a forward move.
// Same-status updates are allowed so partial edits need not omit the field.
func (s IssueStatus) CanTransitionTo(next IssueStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

// IssuePriority is the reporter-declared urgency of an issue.
type IssuePriority string

const (
	PriorityLow    IssuePriority = "low"
	PriorityMedium IssuePriority = "medium"
	PriorityHigh   IssuePriority = "high"
)

// IssueCategory enumerates the facility categories a report may target.
// Values match the labels the reporting form shows.
type IssueCategory string

const (
	CategoryProjector       IssueCategory = "Projector"
	CategoryPCs             IssueCategory = "PCs"
	CategoryFanLight        IssueCategory = "Fan/Light"
	CategoryFurniture       IssueCategory = "Furniture"
	CategoryCleanliness     IssueCategory = "Cleanliness"
	CategoryAirConditioning IssueCategory = "Air Conditioning"
	CategoryNetworkWifi     IssueCategory = "Network/WiFi"
	CategoryOther           IssueCategory = "Other"
)

// ReporterRole identifies who filed a report: an anonymous student or a
// class representative.
type ReporterRole string

const (
	ReporterStudent  ReporterRole = "student"
	ReporterClassRep ReporterRole = "cr"
)

// AnonymousReporter is the display name used for anonymous student reports.
const AnonymousReporter = "Anonymous Student"

// Issue is a maintenance report against a room.
type Issue struct {
	ID             string        `json:"id"`
	RoomID         string        `json:"room_id"`
	Category       IssueCategory `json:"category"`
	Description    string        `json:"description"`
	ReportedBy     string        `json:"reported_by"`
	ReportedByRole ReporterRole  `json:"reported_by_role"`
	ReportedAt     time.Time     `json:"reported_at"`
	Status         IssueStatus   `json:"status"`
	Priority       IssuePriority `json:"priority"`
	AssignedTo     string        `json:"assigned_to,omitempty"`
	ResolvedAt     *time.Time    `json:"resolved_at,omitempty"`
	Resolution     string        `json:"resolution,omitempty"`
}

// Active reports whether the issue still needs attention.
func (i *Issue) Active() bool {
	return i.Status != IssueResolved
}

// ReportIssueRequest is the payload for filing a new report.
type ReportIssueRequest struct {
	RoomID      string        `json:"room_id" validate:"required"`
	Category    IssueCategory `json:"category" validate:"required,oneof=Projector PCs Fan/Light Furniture Cleanliness 'Air Conditioning' Network/WiFi Other"`
	Description string        `json:"description" validate:"required"`
	Priority    IssuePriority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Anonymous   bool          `json:"anonymous"`
}

// IssueUpdate carries a partial mutation of an existing issue. Nil fields
// are left untouched. ResolvedAt is stamped by the service when a status
// move lands on resolved; callers do not set it.
type IssueUpdate struct {
	Status     *IssueStatus   `json:"status,omitempty"`
	Priority   *IssuePriority `json:"priority,omitempty"`
	AssignedTo *string        `json:"assigned_to,omitempty"`
	Resolution *string        `json:"resolution,omitempty"`
	ResolvedAt *time.Time     `json:"-"`
}

// IssueStats summarises the collection per status for the history view.
type IssueStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
}
