package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
)

func TestSelectView(t *testing.T) {
	tests := []struct {
		name     string
		identity *models.Identity
		want     View
	}{
		{"anonymous", nil, ViewPublic},
		{"teacher", &models.Identity{Role: models.RoleTeacher}, ViewTeacher},
		{"class representative", &models.Identity{Role: models.RoleClassRep}, ViewClassRep},
		{"authority", &models.Identity{Role: models.RoleAuthority}, ViewAuthority},
		{"unknown role", &models.Identity{Role: models.UserRole("janitor")}, ViewPublic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectView(tt.identity))
		})
	}
}
