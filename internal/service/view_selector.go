package service

import "github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"

// View names the top-level presentation selected for the current identity.
type View string

const (
	ViewPublic    View = "public"
	ViewTeacher   View = "teacher"
	ViewClassRep  View = "cr"
	ViewAuthority View = "authority"
)

// SelectView maps the current identity onto its role-specific view. The
// mapping is total: a nil identity or an unrecognised role falls back to
// the public view. Stateless and side-effect free.
func SelectView(identity *models.Identity) View {
	if identity == nil {
		return ViewPublic
	}
	switch identity.Role {
	case models.RoleTeacher:
		return ViewTeacher
	case models.RoleClassRep:
		return ViewClassRep
	case models.RoleAuthority:
		return ViewAuthority
	default:
		return ViewPublic
	}
}
