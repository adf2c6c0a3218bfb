package models

// Type public linkin hangi hizmete yönlendirdiğini belirtir.
type Type struct {
	BaseModel
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
}

const (
	TypeNameForm = "FORM" // tanıklık toplama formu
	TypeNameWall = "WALL" // hesabın public "wall of love" sayfası
)
