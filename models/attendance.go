package models

import "time"

// One attendance sheet per class per day, with a row per student.
type Attendance struct {
	ID        uint               `json:"id" gorm:"primaryKey"`
	ClassID   *string            `json:"class_id" gorm:"size:40"`
	Date      string             `json:"date" gorm:"size:10;not null;index"` // YYYY-MM-DD
	TakenBy   uint               `json:"taken_by" gorm:"not null"`
	Records   []AttendanceRecord `json:"records" gorm:"foreignKey:AttendanceID"`
	CreatedAt time.Time          `json:"created_at"`
}

type AttendanceRecord struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	AttendanceID uint    `json:"-" gorm:"index;not null"`
	StudentID    string  `json:"student_id" gorm:"size:40;not null"`
	Status       string  `json:"status" gorm:"size:10;not null"` // present|absent|late
	Note         *string `json:"note,omitempty" gorm:"type:text"`
}
