package accounts

import (
	"time"
)

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `json:"name"`
	Email    string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password *string `json:"-"`

	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	OIDCSub      *string `gorm:"column:oidc_sub;uniqueIndex:idx_users_oidc_sub" json:"-"`

	IsSuperuser bool `gorm:"not null;default:false" json:"is_superuser"`
	IsActive    bool `gorm:"not null;default:true" json:"is_active"`

	Grants []CapabilityGrant `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CapabilityGrant is one independently assignable management permission.
// A user without a grant row for a capability is denied that capability.
type CapabilityGrant struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"not null;index:idx_grants_user_capability,unique" json:"user_id"`
	Capability string `gorm:"type:varchar(50);not null;index:idx_grants_user_capability,unique" json:"capability"`

	CreatedAt time.Time `json:"created_at"`
}

func (CapabilityGrant) TableName() string {
	return "capability_grants"
}

// HasGrant reports whether the preloaded grant set contains the capability.
func (u *User) HasGrant(capability string) bool {
	for _, g := range u.Grants {
		if g.Capability == capability {
			return true
		}
	}
	return false
}
