package contact

import "time"

// ContactMessage is one citizen enquiry submitted through the public
// contact form. Read and archived from the portal only.
type ContactMessage struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"not null" json:"full_name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `json:"phone"`
	Subject  string `gorm:"not null" json:"subject"`
	Message  string `gorm:"not null" json:"message"`

	IsRead bool `gorm:"not null;default:false;index" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
