package models

// FormField bir forma eklenmiş özel sorudur.
type FormField struct {
	BaseModel
	FormID      uint     `gorm:"not null;index:idx_form_field_order,priority:1"`
	FieldType   string   `gorm:"type:varchar(20);not null"`
	Label       string   `gorm:"type:varchar(255);not null"`
	Placeholder string   `gorm:"type:varchar(255)"`
	Required    bool     `gorm:"type:varchar(1);not null;serializer:flag"`
	Options     []string `gorm:"type:text;serializer:json"` // sadece select/checkbox için anlamlı
	OrderIndex  int      `gorm:"not null;index:idx_form_field_order,priority:2"`
}
