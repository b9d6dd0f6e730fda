package staff

import "time"

// StaffMember is a publicly listed member of the municipal staff directory.
type StaffMember struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FullName   string `gorm:"not null" json:"full_name"`
	Position   string `gorm:"not null" json:"position"`
	Department string `json:"department"`
	Bio        string `json:"bio"`
	PhotoURL   string `json:"photo_url"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`

	SortOrder int  `gorm:"not null;default:0;index" json:"order"`
	IsActive  bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StaffMember) TableName() string {
	return "staff_members"
}
