package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
	appErrors "github.com/AlgoAbrar/Modern-Campus-Resource-Management/pkg/errors"
)

func sampleIssue(id, room string, status models.IssueStatus) models.Issue {
	return models.Issue{
		ID:             id,
		RoomID:         room,
		Category:       models.CategoryOther,
		Description:    "desc",
		ReportedBy:     models.AnonymousReporter,
		ReportedByRole: models.ReporterStudent,
		ReportedAt:     time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		Status:         status,
		Priority:       models.PriorityMedium,
	}
}

func TestIssueRepositoryInsertPrepends(t *testing.T) {
	repo := NewIssueRepository(nil)

	repo.Insert(sampleIssue("ISS-a", "P-202", models.IssuePending))
	repo.Insert(sampleIssue("ISS-b", "P-205", models.IssuePending))

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "ISS-b", list[0].ID)
	assert.Equal(t, "ISS-a", list[1].ID)
}

func TestIssueRepositoryListActive(t *testing.T) {
	repo := NewIssueRepository([]models.Issue{
		sampleIssue("ISS-a", "P-202", models.IssuePending),
		sampleIssue("ISS-b", "P-202", models.IssueResolved),
		sampleIssue("ISS-c", "P-205", models.IssueInProgress),
	})

	active := repo.ListActive()
	require.Len(t, active, 2)
	assert.Equal(t, "ISS-a", active[0].ID)
	assert.Equal(t, "ISS-c", active[1].ID)
}

func TestIssueRepositoryListByRoom(t *testing.T) {
	repo := NewIssueRepository([]models.Issue{
		sampleIssue("ISS-a", "P-202", models.IssuePending),
		sampleIssue("ISS-b", "P-205", models.IssuePending),
		sampleIssue("ISS-c", "P-202", models.IssueResolved),
	})

	byRoom := repo.ListByRoom("P-202")
	require.Len(t, byRoom, 2)
	assert.Equal(t, "ISS-a", byRoom[0].ID)
	assert.Equal(t, "ISS-c", byRoom[1].ID)
	assert.Empty(t, repo.ListByRoom("P-999"))
}

func TestIssueRepositoryUpdateMergesPartial(t *testing.T) {
	repo := NewIssueRepository([]models.Issue{
		sampleIssue("ISS-a", "P-202", models.IssuePending),
	})

	assignee := "Md. Masud Rana"
	updated, err := repo.Update("ISS-a", models.IssueUpdate{AssignedTo: &assignee})
	require.NoError(t, err)

	assert.Equal(t, assignee, updated.AssignedTo)
	assert.Equal(t, models.IssuePending, updated.Status, "untouched fields survive the merge")
	assert.Equal(t, "desc", updated.Description)
}

func TestIssueRepositoryUpdateNotFound(t *testing.T) {
	repo := NewIssueRepository(nil)

	_, err := repo.Update("ISS-missing", models.IssueUpdate{})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	_, err = repo.FindByID("ISS-missing")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestIssueRepositoryCountByStatus(t *testing.T) {
	repo := NewIssueRepository([]models.Issue{
		sampleIssue("ISS-a", "P-202", models.IssuePending),
		sampleIssue("ISS-b", "P-202", models.IssueInProgress),
		sampleIssue("ISS-c", "P-205", models.IssueResolved),
		sampleIssue("ISS-d", "P-205", models.IssueResolved),
	})

	assert.Equal(t, models.IssueStats{Total: 4, Pending: 1, InProgress: 1, Resolved: 2}, repo.CountByStatus())
}

func TestIssueRepositoryReturnsCopies(t *testing.T) {
	repo := NewIssueRepository([]models.Issue{
		sampleIssue("ISS-a", "P-202", models.IssuePending),
	})

	list := repo.List()
	list[0].Description = "tampered"

	found, err := repo.FindByID("ISS-a")
	require.NoError(t, err)
	assert.Equal(t, "desc", found.Description)
}
