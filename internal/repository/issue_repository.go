package repository

import (
	"sync"

	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
	appErrors "github.com/AlgoAbrar/Modern-Campus-Resource-Management/pkg/errors"
)

// IssueRepository holds the in-memory issue collection. Newest reports are
// kept first so listings surface the most recent issue on top. Issues are
// never deleted.
type IssueRepository struct {
	mu     sync.RWMutex
	issues []models.Issue
}

// NewIssueRepository builds an issue store pre-populated with the given
// records, preserving their order.
func NewIssueRepository(initial []models.Issue) *IssueRepository {
	issues := make([]models.Issue, len(initial))
	copy(issues, initial)
	return &IssueRepository{issues: issues}
}

// Insert prepends the issue to the collection.
func (r *IssueRepository) Insert(issue models.Issue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issues = append([]models.Issue{issue}, r.issues...)
}

// FindByID returns a copy of the issue with the given id.
func (r *IssueRepository) FindByID(id string) (*models.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.issues {
		if r.issues[i].ID == id {
			issue := r.issues[i]
			return &issue, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "issue not found")
}

// Update merges the non-nil fields of the partial into the matching issue
// and returns the updated copy. The status transition guard lives in the
// service layer; the repository only merges.
func (r *IssueRepository) Update(id string, update models.IssueUpdate) (*models.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.issues {
		if r.issues[i].ID != id {
			continue
		}
		if update.Status != nil {
			r.issues[i].Status = *update.Status
		}
		if update.Priority != nil {
			r.issues[i].Priority = *update.Priority
		}
		if update.AssignedTo != nil {
			r.issues[i].AssignedTo = *update.AssignedTo
		}
		if update.Resolution != nil {
			r.issues[i].Resolution = *update.Resolution
		}
		if update.ResolvedAt != nil {
			r.issues[i].ResolvedAt = update.ResolvedAt
		}
		issue := r.issues[i]
		return &issue, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "issue not found")
}

// List returns the full collection in order, newest first.
func (r *IssueRepository) List() []models.Issue {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Issue, len(r.issues))
	copy(out, r.issues)
	return out
}

// ListActive returns the issues whose status is not resolved, in collection
// order.
func (r *IssueRepository) ListActive() []models.Issue {
	return r.listWhere(func(issue *models.Issue) bool { return issue.Active() })
}

// ListByRoom returns the issues reported against the given room, in
// collection order.
func (r *IssueRepository) ListByRoom(roomID string) []models.Issue {
	return r.listWhere(func(issue *models.Issue) bool { return issue.RoomID == roomID })
}

// CountByStatus tallies the collection per status.
func (r *IssueRepository) CountByStatus() models.IssueStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := models.IssueStats{Total: len(r.issues)}
	for i := range r.issues {
		switch r.issues[i].Status {
		case models.IssuePending:
			stats.Pending++
		case models.IssueInProgress:
			stats.InProgress++
		case models.IssueResolved:
			stats.Resolved++
		}
	}
	return stats
}

func (r *IssueRepository) listWhere(keep func(*models.Issue) bool) []models.Issue {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Issue, 0, len(r.issues))
	for i := range r.issues {
		if keep(&r.issues[i]) {
			out = append(out, r.issues[i])
		}
	}
	return out
}
