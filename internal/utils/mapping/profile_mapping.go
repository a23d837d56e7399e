package mapping

import (
	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/SscSPs/remittance_app/internal/models"
)

// ToModelProfile converts a domain Profile to a model Profile
func ToModelProfile(d domain.Profile) models.Profile {
	return models.Profile{
		UserID:       d.UserID,
		Email:        d.Email,
		FullName:     d.FullName,
		Phone:        nullString(d.Phone),
		ClientCode:   nullString(d.ClientCode),
		Role:         string(d.Role),
		PasswordHash: d.PasswordHash,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProfile converts a model Profile to a domain Profile.
// An unrecognised role is read as a plain customer.
func ToDomainProfile(m models.Profile) domain.Profile {
	role := domain.Role(m.Role)
	if !role.IsValid() {
		role = domain.RoleUser
	}
	return domain.Profile{
		UserID:       m.UserID,
		Email:        m.Email,
		FullName:     m.FullName,
		Phone:        m.Phone.String,
		ClientCode:   m.ClientCode.String,
		Role:         role,
		PasswordHash: m.PasswordHash,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProfileSlice converts a slice of model Profiles to a slice of domain Profiles
func ToDomainProfileSlice(ms []models.Profile) []domain.Profile {
	ds := make([]domain.Profile, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProfile(m)
	}
	return ds
}
