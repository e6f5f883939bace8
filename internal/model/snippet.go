package model

// CodeSnippet 代码片段收藏
type CodeSnippet struct {
	BaseModel
	UserID      uint       `gorm:"index;not null" json:"userId"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Code        string     `gorm:"type:text;not null" json:"code"`
	Language    string     `gorm:"size:30;index;not null" json:"language"`
	ChapterID   *uint      `gorm:"index" json:"chapterId,omitempty"`
	Topic       string     `gorm:"size:100;index;not null" json:"topic"`
	Difficulty  Difficulty `gorm:"size:10;default:'Medium'" json:"difficulty"`
	Tags        []string   `gorm:"serializer:json;type:json" json:"tags"`
}

func (CodeSnippet) TableName() string {
	return "code_snippets"
}
