package models

// BuildingType partitions rooms between the general-purpose classroom
// building and the faculty building.
type BuildingType string

const (
	BuildingPanaroma BuildingType = "Panaroma"
	BuildingNexus    BuildingType = "Nexus"
)

// Room is static reference data describing a bookable or reportable room.
// Rooms are never mutated at runtime.
type Room struct {
	Code         string       `json:"code"`
	Capacity     int          `json:"capacity"`
	Building     string       `json:"building"`
	Floor        string       `json:"floor"`
	BuildingType BuildingType `json:"building_type"`
	FacultyOnly  bool         `json:"faculty_only,omitempty"`
}
