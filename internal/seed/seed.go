// Package seed provides the demo fixture tables: the per-role credential
// table, the room inventory, the lab-assistant roster and a handful of
// sample issues. The demo binary and the tests both consume these.
package seed

import (
	"time"

	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
)

// Credentials returns the demo credential table. These are fixtures, not
// secrets: the application has no real identity provider.
func Credentials() []models.Credential {
	return []models.Credential{
		{Email: "teacher@cse.edu", Password: "teacher123", Name: "Ananya Sarkar", Role: models.RoleTeacher, Qualifier: "CSE-3A"},
		{Email: "prof@cse.edu", Password: "prof123", Name: "Prof. Sarah Ahmed", Role: models.RoleTeacher, Qualifier: "CSE-4B"},
		{Email: "cr@cse.edu", Password: "cr123", Name: "Md. Rahman", Role: models.RoleClassRep, Qualifier: "CSE-3A"},
		{Email: "cr2@cse.edu", Password: "cr123", Name: "Fatima Islam", Role: models.RoleClassRep, Qualifier: "CSE-3B"},
		{Email: "admin@cse.edu", Password: "admin123", Name: "Dr. Abdullah Rahman", Role: models.RoleAuthority, Qualifier: "EMP-1021"},
		{Email: "head@cse.edu", Password: "head123", Name: "Dr. Zainab Khan", Role: models.RoleAuthority, Qualifier: "EMP-1003"},
	}
}

// Rooms returns the static room inventory: Panaroma classrooms open to
// students and the faculty-only Nexus rooms.
func Rooms() []models.Room {
	return []models.Room{
		{Code: "P-202", Capacity: 45, Building: "Panaroma", Floor: "2nd Floor", BuildingType: models.BuildingPanaroma},
		{Code: "P-205", Capacity: 40, Building: "Panaroma", Floor: "2nd Floor", BuildingType: models.BuildingPanaroma},
		{Code: "P-206", Capacity: 50, Building: "Panaroma", Floor: "2nd Floor", BuildingType: models.BuildingPanaroma},
		{Code: "P-207", Capacity: 42, Building: "Panaroma", Floor: "2nd Floor", BuildingType: models.BuildingPanaroma},
		{Code: "P-209", Capacity: 38, Building: "Panaroma", Floor: "2nd Floor", BuildingType: models.BuildingPanaroma},
		{Code: "P-210", Capacity: 44, Building: "Panaroma", Floor: "2nd Floor", BuildingType: models.BuildingPanaroma},
		{Code: "P-211", Capacity: 46, Building: "Panaroma", Floor: "2nd Floor", BuildingType: models.BuildingPanaroma},
		{Code: "P-304", Capacity: 35, Building: "Panaroma", Floor: "3rd Floor", BuildingType: models.BuildingPanaroma},
		{Code: "P-307", Capacity: 35, Building: "Panaroma", Floor: "3rd Floor", BuildingType: models.BuildingPanaroma},
		{Code: "P-308", Capacity: 42, Building: "Panaroma", Floor: "3rd Floor", BuildingType: models.BuildingPanaroma},
		{Code: "P-314", Capacity: 38, Building: "Panaroma", Floor: "3rd Floor", BuildingType: models.BuildingPanaroma},
		{Code: "P-713", Capacity: 48, Building: "Panaroma", Floor: "7th Floor", BuildingType: models.BuildingPanaroma},
		{Code: "N-101", Capacity: 20, Building: "Nexus", Floor: "1st Floor", BuildingType: models.BuildingNexus, FacultyOnly: true},
		{Code: "N-102", Capacity: 15, Building: "Nexus", Floor: "1st Floor", BuildingType: models.BuildingNexus, FacultyOnly: true},
		{Code: "N-103", Capacity: 12, Building: "Nexus", Floor: "1st Floor", BuildingType: models.BuildingNexus, FacultyOnly: true},
		{Code: "N-104", Capacity: 18, Building: "Nexus", Floor: "1st Floor", BuildingType: models.BuildingNexus, FacultyOnly: true},
		{Code: "N-105", Capacity: 16, Building: "Nexus", Floor: "1st Floor", BuildingType: models.BuildingNexus, FacultyOnly: true},
		{Code: "N-106", Capacity: 22, Building: "Nexus", Floor: "1st Floor", BuildingType: models.BuildingNexus, FacultyOnly: true},
		{Code: "N-201", Capacity: 25, Building: "Nexus", Floor: "2nd Floor", BuildingType: models.BuildingNexus, FacultyOnly: true},
		{Code: "N-202", Capacity: 18, Building: "Nexus", Floor: "2nd Floor", BuildingType: models.BuildingNexus, FacultyOnly: true},
		{Code: "N-203", Capacity: 14, Building: "Nexus", Floor: "2nd Floor", BuildingType: models.BuildingNexus, FacultyOnly: true},
	}
}

// LabAssistants returns the roster eligible for issue assignment.
func LabAssistants() []string {
	return []string{
		"Md. Harun-Or-Rashid",
		"Md. Nahidul Islam",
		"Md. Rakibul Hasan",
		"Md. Enamul Haque",
		"Md. Wakibul Islam",
		"Zayed Hossain",
		"Md. Shahinur Islam",
		"Md. Masud Rana",
	}
}

// Issues returns the sample maintenance history shown before any live
// reports arrive, newest first to match the collection ordering.
func Issues() []models.Issue {
	return []models.Issue{
		{
			ID:             "ISS-005",
			RoomID:         "P-206",
			Category:       models.CategoryAirConditioning,
			Description:    "AC is not cooling properly. Room temperature is very high.",
			ReportedBy:     "Md. Khan",
			ReportedByRole: models.ReporterClassRep,
			ReportedAt:     date(2024, 11, 1),
			Status:         models.IssueInProgress,
			Priority:       models.PriorityHigh,
			AssignedTo:     "Md. Harun-Or-Rashid",
		},
		{
			ID:             "ISS-003",
			RoomID:         "P-307",
			Category:       models.CategoryPCs,
			Description:    "3 computers in the lab are not booting up. Blue screen error.",
			ReportedBy:     "Fatima Islam",
			ReportedByRole: models.ReporterClassRep,
			ReportedAt:     date(2024, 10, 22),
			Status:         models.IssuePending,
			Priority:       models.PriorityHigh,
		},
		{
			ID:             "ISS-002",
			RoomID:         "P-205",
			Category:       models.CategoryProjector,
			Description:    "Projector not displaying properly. Image is very dim even with lights off.",
			ReportedBy:     "Md. Rahman",
			ReportedByRole: models.ReporterClassRep,
			ReportedAt:     date(2024, 10, 20),
			Status:         models.IssueInProgress,
			Priority:       models.PriorityHigh,
			AssignedTo:     "Md. Nahidul Islam",
		},
		{
			ID:             "ISS-001",
			RoomID:         "P-202",
			Category:       models.CategoryFanLight,
			Description:    "Ceiling fan in the back corner is not working properly. Making unusual noise.",
			ReportedBy:     models.AnonymousReporter,
			ReportedByRole: models.ReporterStudent,
			ReportedAt:     date(2024, 10, 15),
			Status:         models.IssueResolved,
			Priority:       models.PriorityMedium,
			AssignedTo:     "Md. Harun-Or-Rashid",
			ResolvedAt:     datePtr(2024, 10, 18),
			Resolution:     "Fan motor replaced. Tested and working normally.",
		},
		{
			ID:             "ISS-004",
			RoomID:         "P-314",
			Category:       models.CategoryCleanliness,
			Description:    "Classroom needs deep cleaning. Dusty boards and desks.",
			ReportedBy:     models.AnonymousReporter,
			ReportedByRole: models.ReporterStudent,
			ReportedAt:     date(2024, 10, 10),
			Status:         models.IssueResolved,
			Priority:       models.PriorityLow,
			ResolvedAt:     datePtr(2024, 10, 12),
			Resolution:     "Cleaning staff completed deep cleaning.",
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := date(year, month, day)
	return &t
}
