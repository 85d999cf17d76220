package enquiry

import "time"

// Enquiry is a contact-form submission.
type Enquiry struct {
	ID          string    `gorm:"primaryKey;type:text" json:"id"`
	Name        string    `gorm:"not null;type:text" json:"name"`
	Email       string    `gorm:"not null;type:text;index" json:"email"`
	Mobile      string    `gorm:"not null;type:text" json:"mobile"`
	Requirement string    `gorm:"not null;type:text" json:"requirement"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// TableName returns the table name for the Enquiry entity.
func (Enquiry) TableName() string {
	return "enquiries"
}
