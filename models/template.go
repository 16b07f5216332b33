package models

// Template е визуален дизайн за картичка, избира се по ID от wizard-а.
type Template struct {
	BaseModel
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Type       string `gorm:"type:varchar(50);index;not null" json:"type"`
	PreviewURL string `gorm:"type:varchar(500)" json:"previewUrl"`
	CategoryID uint   `gorm:"index;not null" json:"categoryId"`

	Category Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

// Типове шаблони (стойности на колоната type).
const (
	TemplateTypeBirthday  = "BIRTHDAY"
	TemplateTypeHoliday   = "HOLIDAY"
	TemplateTypeNameDay   = "NAMEDAY"
	TemplateTypeUniversal = "UNIVERSAL"
)
