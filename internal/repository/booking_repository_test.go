package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
)

func sampleBooking(id, room, date, start string) models.Booking {
	return models.Booking{
		ID:          id,
		RoomID:      room,
		Date:        date,
		StartTime:   start,
		EndTime:     "10:00",
		TeacherName: "Ananya Sarkar",
		Purpose:     models.PurposeLecture,
	}
}

func TestBookingRepositoryInsertAppends(t *testing.T) {
	repo := NewBookingRepository()

	repo.Insert(sampleBooking("BKG-a", "P-202", "2025-01-10", "09:00"))
	repo.Insert(sampleBooking("BKG-b", "P-202", "2025-01-10", "10:00"))

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "BKG-a", list[0].ID)
	assert.Equal(t, "BKG-b", list[1].ID)
}

func TestBookingRepositoryListByRoom(t *testing.T) {
	repo := NewBookingRepository()

	repo.Insert(sampleBooking("BKG-a", "P-202", "2025-01-10", "09:00"))
	repo.Insert(sampleBooking("BKG-b", "P-206", "2025-01-10", "09:00"))

	byRoom := repo.ListByRoom("P-202")
	require.Len(t, byRoom, 1)
	assert.Equal(t, "BKG-a", byRoom[0].ID)
	assert.Empty(t, repo.ListByRoom("P-999"))
}

func TestBookingRepositoryFindSlot(t *testing.T) {
	repo := NewBookingRepository()

	repo.Insert(sampleBooking("BKG-a", "P-202", "2025-01-10", "09:00"))

	taken := repo.FindSlot("P-202", "2025-01-10", "09:00")
	require.NotNil(t, taken)
	assert.Equal(t, "BKG-a", taken.ID)

	assert.Nil(t, repo.FindSlot("P-202", "2025-01-10", "10:00"))
	assert.Nil(t, repo.FindSlot("P-202", "2025-01-11", "09:00"))
	assert.Nil(t, repo.FindSlot("P-206", "2025-01-10", "09:00"))
}
