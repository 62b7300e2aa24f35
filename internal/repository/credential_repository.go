package repository

import (
	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
	appErrors "github.com/AlgoAbrar/Modern-Campus-Resource-Management/pkg/errors"
)

// CredentialRepository answers login attempts against the static per-role
// credential table. The table is read-only demo data; the comparison is
// exact, case-sensitive string equality.
type CredentialRepository struct {
	byRole map[models.UserRole][]models.Credential
}

// NewCredentialRepository indexes the given records by role.
func NewCredentialRepository(records []models.Credential) *CredentialRepository {
	byRole := make(map[models.UserRole][]models.Credential)
	for _, rec := range records {
		byRole[rec.Role] = append(byRole[rec.Role], rec)
	}
	return &CredentialRepository{byRole: byRole}
}

// Authenticate looks up the claimed role's table for an exact email and
// password match and returns the matched record's public fields.
func (r *CredentialRepository) Authenticate(email, password string, role models.UserRole) (*models.Identity, error) {
	for _, rec := range r.byRole[role] {
		if rec.Email == email && rec.Password == password {
			return &models.Identity{
				Name:      rec.Name,
				Role:      rec.Role,
				Email:     rec.Email,
				Qualifier: rec.Qualifier,
			}, nil
		}
	}
	return nil, appErrors.ErrInvalidCredentials
}
