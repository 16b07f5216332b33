package models

// Card е финализирана поздравителна картичка.
// Шаблонът се реферира по ID, никога не се копира в записа.
type Card struct {
	BaseModel
	Title       string  `gorm:"type:varchar(200);not null" json:"title"`
	Sender      string  `gorm:"type:varchar(100);not null" json:"sender"`
	Receiver    string  `gorm:"type:varchar(100);not null" json:"receiver"`
	Description string  `gorm:"type:varchar(1024)" json:"description"`
	Slug        string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	AudioURL    *string `gorm:"type:varchar(500)" json:"audioUrl"`
	CardUUID    string  `gorm:"type:varchar(36);uniqueIndex;not null" json:"cardUuid"`
	TemplateID  uint    `gorm:"index;not null" json:"templateId"`

	// GORM релация. OnDelete:RESTRICT — шаблон с издадени картички не се трие.
	Template Template `gorm:"foreignKey:TemplateID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}
