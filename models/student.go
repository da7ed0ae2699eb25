package models

import "time"

type Student struct {
	ID              uint       `gorm:"primaryKey"         json:"id"`
	FirstName       string     `gorm:"size:50;not null"   json:"first_name"`
	LastName        string     `gorm:"size:50;not null"   json:"last_name"`
	Email           *string    `gorm:"size:120"           json:"email,omitempty"`
	Gender          *string    `gorm:"size:10"            json:"gender,omitempty"` // male|female|other
	DOB             *time.Time `json:"dob,omitempty"`
	Grade           *string    `gorm:"size:20"            json:"grade,omitempty"`
	RollNumber      *string    `gorm:"size:20"            json:"roll_number,omitempty"`
	Address         *string    `gorm:"type:text"          json:"address,omitempty"`
	GuardianName    *string    `gorm:"size:120"           json:"guardian_name,omitempty"`
	GuardianContact *string    `gorm:"size:30"            json:"guardian_contact,omitempty"`
	AdmissionDate   *time.Time `json:"admission_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
