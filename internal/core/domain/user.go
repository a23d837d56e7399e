package domain

// Role is the capability level of a profile.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Profile is the identity record of a customer or operator.
type Profile struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	ClientCode   string `json:"clientCode"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
	AuditFields
}

// IsOperator reports whether the profile may verify and settle transfers.
func (p Profile) IsOperator() bool {
	return p.Role == RoleAdmin
}

// HomeRegion is the default source region for quotes, from the phone prefix.
func (p Profile) HomeRegion() Region {
	if r, ok := RegionFromPhone(p.Phone); ok && r != RegionVenezuela {
		return r
	}
	return RegionPeru
}
