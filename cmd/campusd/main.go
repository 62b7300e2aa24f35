package main

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/repository"
	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/seed"
	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/service"
	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/pkg/config"
	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/pkg/logger"
)

// campusd wires the campus resource core and walks a scripted session in
// place of the web presentation layer: a class representative reports an
// issue, a teacher books a room, and an authority user triages the backlog.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	validate := validator.New()
	metrics := service.NewMetricsService()

	var initialIssues []models.Issue
	if cfg.Seed.DemoData {
		initialIssues = seed.Issues()
	}

	creds := repository.NewCredentialRepository(seed.Credentials())
	rooms := repository.NewRoomRepository(seed.Rooms())
	roster := repository.NewRosterRepository(seed.LabAssistants())
	issueRepo := repository.NewIssueRepository(initialIssues)
	bookingRepo := repository.NewBookingRepository()

	sessions := service.NewSessionService(creds, validate, logr, metrics, service.SessionConfig{
		LoginLatency: cfg.Session.LoginLatency,
	})
	issues := service.NewIssueService(issueRepo, rooms, roster, validate, logr, metrics, service.IssueServiceConfig{
		SubmitLatency: cfg.Issues.SubmitLatency,
	})
	bookings := service.NewBookingService(bookingRepo, rooms, validate, logr, metrics, service.BookingServiceConfig{
		DayStartHour: cfg.Booking.DayStartHour,
		DayEndHour:   cfg.Booking.DayEndHour,
	})

	ctx := context.Background()
	sugar := logr.Sugar()

	sugar.Infow("campus core ready",
		"env", cfg.Env,
		"rooms", len(rooms.List()),
		"seed_issues", len(issues.All()),
		"view", service.SelectView(sessions.CurrentIdentity()),
	)

	// Class representative files a report.
	cr, err := sessions.Login(ctx, models.LoginRequest{Email: "cr@cse.edu", Password: "cr123", Role: models.RoleClassRep})
	if err != nil {
		sugar.Fatalw("cr login failed", "error", err)
	}
	sugar.Infow("view selected", "view", service.SelectView(sessions.CurrentIdentity()))

	reported, err := issues.Report(ctx, cr, models.ReportIssueRequest{
		RoomID:      "P-307",
		Category:    models.CategoryPCs,
		Description: "3 computers not booting",
		Priority:    models.PriorityHigh,
	})
	if err != nil {
		sugar.Fatalw("report failed", "error", err)
	}
	sugar.Infow("report accepted", "id", reported.ID, "active_issues", len(issues.Active()))
	sessions.Logout()

	// Teacher books a lecture slot, then trips the double-booking guard.
	teacher, err := sessions.Login(ctx, models.LoginRequest{Email: "teacher@cse.edu", Password: "teacher123", Role: models.RoleTeacher})
	if err != nil {
		sugar.Fatalw("teacher login failed", "error", err)
	}

	slot := models.BookingRequest{
		RoomID:    "P-202",
		Date:      "2025-01-10",
		StartTime: "09:00",
		EndTime:   "10:00",
		Purpose:   models.PurposeLecture,
	}
	booked, err := bookings.Book(ctx, teacher, slot)
	if err != nil {
		sugar.Fatalw("booking failed", "error", err)
	}
	sugar.Infow("booking accepted", "id", booked.ID, "room", booked.RoomID)

	if _, err := bookings.Book(ctx, teacher, slot); err != nil {
		sugar.Infow("duplicate slot rejected", "reason", err.Error())
	}
	sessions.Logout()

	// Authority triages the new report.
	authority, err := sessions.Login(ctx, models.LoginRequest{Email: "admin@cse.edu", Password: "admin123", Role: models.RoleAuthority})
	if err != nil {
		sugar.Fatalw("authority login failed", "error", err)
	}

	assistant := roster.List()[0]
	inProgress := models.IssueInProgress
	if _, err := issues.Update(ctx, authority, reported.ID, models.IssueUpdate{
		Status:     &inProgress,
		AssignedTo: &assistant,
	}); err != nil {
		sugar.Fatalw("triage failed", "error", err)
	}

	resolved := models.IssueResolved
	note := "Faulty RAM modules replaced on all three machines."
	if _, err := issues.Update(ctx, authority, reported.ID, models.IssueUpdate{
		Status:     &resolved,
		Resolution: &note,
	}); err != nil {
		sugar.Fatalw("resolution failed", "error", err)
	}
	sessions.Logout()

	stats := issues.Stats()
	snapshot := metrics.Snapshot()
	sugar.Infow("scenario complete",
		"total_issues", stats.Total,
		"pending", stats.Pending,
		"in_progress", stats.InProgress,
		"resolved", stats.Resolved,
		"logins", snapshot.LoginAccepts,
		"bookings", snapshot.BookingsAccepted,
		"conflicts", snapshot.BookingConflicts,
	)
}
