package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
	appErrors "github.com/AlgoAbrar/Modern-Campus-Resource-Management/pkg/errors"
)

type issueStore interface {
	Insert(issue models.Issue)
	FindByID(id string) (*models.Issue, error)
	Update(id string, update models.IssueUpdate) (*models.Issue, error)
	List() []models.Issue
	ListActive() []models.Issue
	ListByRoom(roomID string) []models.Issue
	CountByStatus() models.IssueStats
}

type reportableRoomFinder interface {
	FindByCode(code string) (*models.Room, error)
	ListReportable() []models.Room
}

type assistantRoster interface {
	Exists(name string) bool
	List() []string
}

// IssueServiceConfig tunes the reporting flow.
type IssueServiceConfig struct {
	// SubmitLatency simulates the round trip of a report submission.
	SubmitLatency time.Duration
}

// IssueService maintains the issue collection, enforces the forward-only
// status lifecycle and applies the role gates the triage views rely on.
type IssueService struct {
	issues    issueStore
	rooms     reportableRoomFinder
	roster    assistantRoster
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	config    IssueServiceConfig
	now       func() time.Time
}

// NewIssueService constructs an IssueService instance.
func NewIssueService(issues issueStore, rooms reportableRoomFinder, roster assistantRoster, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, config IssueServiceConfig) *IssueService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &IssueService{
		issues:    issues,
		rooms:     rooms,
		roster:    roster,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		config:    config,
		now:       time.Now,
	}
}

// WithClock overrides the service clock. Intended for tests.
func (s *IssueService) WithClock(now func() time.Time) *IssueService {
	s.now = now
	return s
}

// Report files a new issue. Anonymous callers report as "Anonymous Student";
// a class representative reports under their own name. Teachers and
// authority users do not file reports through this flow. The call suspends
// for the configured submit latency and discards the submission without
// mutating the store when the context is cancelled first.
func (s *IssueService) Report(ctx context.Context, actor *models.Identity, req models.ReportIssueRequest) (*models.Issue, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "room, category and description are required")
	}

	reporter, reporterRole, err := resolveReporter(actor, req)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.FindByCode(req.RoomID)
	if err != nil {
		return nil, err
	}
	if room.FacultyOnly {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "faculty-only rooms are not open to issue reports")
	}

	if err := waitLatency(ctx, s.config.SubmitLatency); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	issue := models.Issue{
		ID:             newIssueID(),
		RoomID:         room.Code,
		Category:       req.Category,
		Description:    req.Description,
		ReportedBy:     reporter,
		ReportedByRole: reporterRole,
		ReportedAt:     s.now().UTC(),
		Status:         models.IssuePending,
		Priority:       priority,
	}

	s.issues.Insert(issue)
	s.metrics.IssueReported()
	s.logger.Info("issue reported",
		zap.String("id", issue.ID),
		zap.String("room", issue.RoomID),
		zap.String("category", string(issue.Category)),
		zap.String("reporter_role", string(issue.ReportedByRole)),
	)

	return &issue, nil
}

// Update merges a partial mutation into an existing issue under the role
// gates: authority users may change anything forward, a class
// representative may only assign an assistant on high-priority issues, and
// nobody else may update at all. Backward status moves are rejected, and
// the resolution note and timestamp only ever accompany a resolved status.
func (s *IssueService) Update(ctx context.Context, actor *models.Identity, id string, update models.IssueUpdate) (*models.Issue, error) {
	if err := s.authorizeUpdate(actor, id, update); err != nil {
		return nil, err
	}

	current, err := s.issues.FindByID(id)
	if err != nil {
		return nil, err
	}

	finalStatus := current.Status
	if update.Status != nil {
		if !update.Status.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown status %q", *update.Status))
		}
		if !current.Status.CanTransitionTo(*update.Status) {
			return nil, appErrors.Clone(appErrors.ErrTransitionRejected,
				fmt.Sprintf("cannot move issue from %s back to %s", current.Status, *update.Status))
		}
		finalStatus = *update.Status
	}

	if update.Resolution != nil && finalStatus != models.IssueResolved {
		return nil, appErrors.Clone(appErrors.ErrValidation, "a resolution note requires resolved status")
	}

	if update.AssignedTo != nil && *update.AssignedTo != "" && !s.roster.Exists(*update.AssignedTo) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "assignee is not on the lab-assistant roster")
	}

	if update.Status != nil && finalStatus == models.IssueResolved && current.Status != models.IssueResolved {
		resolvedAt := s.now().UTC()
		update.ResolvedAt = &resolvedAt
	}

	updated, err := s.issues.Update(id, update)
	if err != nil {
		return nil, err
	}

	s.metrics.IssueUpdated()
	s.logger.Info("issue updated", zap.String("id", id), zap.String("status", string(updated.Status)))

	return updated, nil
}

func (s *IssueService) authorizeUpdate(actor *models.Identity, id string, update models.IssueUpdate) error {
	if actor == nil {
		return appErrors.Clone(appErrors.ErrForbidden, "sign in to update issues")
	}

	switch actor.Role {
	case models.RoleAuthority:
		return nil
	case models.RoleClassRep:
		if update.Status != nil || update.Priority != nil || update.Resolution != nil {
			return appErrors.Clone(appErrors.ErrForbidden, "class representatives may only assign assistants")
		}
		current, err := s.issues.FindByID(id)
		if err != nil {
			return err
		}
		// CR assignment is an emergency path, limited to high-priority issues.
		if current.Priority != models.PriorityHigh {
			return appErrors.Clone(appErrors.ErrForbidden, "class representatives may assign only on high-priority issues")
		}
		return nil
	default:
		return appErrors.Clone(appErrors.ErrForbidden, "role may not update issues")
	}
}

// Active returns the issues still needing attention, newest first.
func (s *IssueService) Active() []models.Issue {
	return s.issues.ListActive()
}

// ByRoom returns the issues reported against the given room, newest first.
func (s *IssueService) ByRoom(roomID string) []models.Issue {
	return s.issues.ListByRoom(roomID)
}

// All returns the full history, newest first.
func (s *IssueService) All() []models.Issue {
	return s.issues.List()
}

// Find returns a single issue by id.
func (s *IssueService) Find(id string) (*models.Issue, error) {
	return s.issues.FindByID(id)
}

// Stats summarises the history per status for the dashboard.
func (s *IssueService) Stats() models.IssueStats {
	return s.issues.CountByStatus()
}

// ReportableRooms lists the rooms offered in the reporting form.
func (s *IssueService) ReportableRooms() []models.Room {
	return s.rooms.ListReportable()
}

// Assistants lists the lab-assistant roster for the assignment dropdown.
func (s *IssueService) Assistants() []string {
	return s.roster.List()
}

func resolveReporter(actor *models.Identity, req models.ReportIssueRequest) (string, models.ReporterRole, error) {
	if actor == nil {
		return models.AnonymousReporter, models.ReporterStudent, nil
	}
	switch actor.Role {
	case models.RoleClassRep:
		if req.Anonymous {
			return models.AnonymousReporter, models.ReporterStudent, nil
		}
		return actor.Name, models.ReporterClassRep, nil
	default:
		return "", "", appErrors.Clone(appErrors.ErrForbidden, "issue reporting is limited to students and class representatives")
	}
}

func newIssueID() string {
	return fmt.Sprintf("ISS-%s", uuid.NewString())
}
