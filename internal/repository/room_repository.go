package repository

import (
	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
	appErrors "github.com/AlgoAbrar/Modern-Campus-Resource-Management/pkg/errors"
)

// RoomRepository serves the static room reference table. Rooms are never
// mutated, so reads need no locking.
type RoomRepository struct {
	rooms  []models.Room
	byCode map[string]models.Room
}

// NewRoomRepository indexes the given rooms by code.
func NewRoomRepository(rooms []models.Room) *RoomRepository {
	byCode := make(map[string]models.Room, len(rooms))
	for _, room := range rooms {
		byCode[room.Code] = room
	}
	return &RoomRepository{rooms: rooms, byCode: byCode}
}

// List returns every room in table order.
func (r *RoomRepository) List() []models.Room {
	out := make([]models.Room, len(r.rooms))
	copy(out, r.rooms)
	return out
}

// FindByCode returns the room with the given code.
func (r *RoomRepository) FindByCode(code string) (*models.Room, error) {
	room, ok := r.byCode[code]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "unknown room code")
	}
	return &room, nil
}

// ListReportable returns the rooms offered in the issue-reporting form.
// Faculty-only rooms are excluded from student and CR submissions.
func (r *RoomRepository) ListReportable() []models.Room {
	return r.filter(func(room models.Room) bool { return !room.FacultyOnly })
}

// ListBookable returns the rooms offered for public booking, which likewise
// excludes the faculty-only set.
func (r *RoomRepository) ListBookable() []models.Room {
	return r.filter(func(room models.Room) bool { return !room.FacultyOnly })
}

func (r *RoomRepository) filter(keep func(models.Room) bool) []models.Room {
	out := make([]models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if keep(room) {
			out = append(out, room)
		}
	}
	return out
}
