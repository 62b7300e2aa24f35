package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/seed"
	appErrors "github.com/AlgoAbrar/Modern-Campus-Resource-Management/pkg/errors"
)

func TestRoomRepositoryFindByCode(t *testing.T) {
	repo := NewRoomRepository(seed.Rooms())

	room, err := repo.FindByCode("P-307")
	require.NoError(t, err)
	assert.Equal(t, 35, room.Capacity)
	assert.Equal(t, "3rd Floor", room.Floor)
	assert.False(t, room.FacultyOnly)

	_, err = repo.FindByCode("Z-999")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestRoomRepositoryReportableExcludesFacultyOnly(t *testing.T) {
	repo := NewRoomRepository(seed.Rooms())

	require.Len(t, repo.List(), 21)

	reportable := repo.ListReportable()
	assert.Len(t, reportable, 12)
	for _, room := range reportable {
		assert.False(t, room.FacultyOnly)
		assert.NotContains(t, room.Code, "N-")
	}
}
