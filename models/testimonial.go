package models

import "time"

// TestimonialStatus moderasyon durumudur.
type TestimonialStatus string

const (
	TestimonialStatusPending  TestimonialStatus = "pending"
	TestimonialStatusApproved TestimonialStatus = "approved"
	TestimonialStatusRejected TestimonialStatus = "rejected"
)

// IsValid bilinen bir durum mu?
func (s TestimonialStatus) IsValid() bool {
	switch s {
	case TestimonialStatusPending, TestimonialStatusApproved, TestimonialStatusRejected:
		return true
	}
	return false
}

// Testimonial public formdan gelen tek bir gönderimdir.
// Oluşturulduktan sonra yalnızca Status (ve UpdatedAt) değişir.
type Testimonial struct {
	ID           uint              `gorm:"primarykey"`
	FormID       uint              `gorm:"not null;index"`
	UserID       uint              `gorm:"not null;index:idx_testimonial_owner_status,priority:1"` // form sahibi
	Name         string            `gorm:"type:varchar(150);not null"`
	Email        string            `gorm:"type:varchar(150);not null"`
	Company      string            `gorm:"type:varchar(150)"`
	Rating       int               `gorm:"not null"`
	Content      string            `gorm:"type:text;not null"`
	ImageURL     string            `gorm:"type:varchar(500)"`
	VideoURL     string            `gorm:"type:varchar(500)"`
	CustomFields map[string]any    `gorm:"type:text;serializer:json"`
	Status       TestimonialStatus `gorm:"type:varchar(20);not null;index:idx_testimonial_owner_status,priority:2"`
	CreatedAt    time.Time         `gorm:"index;autoCreateTime:false"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime:false"`

	Form *Form `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
