package model

import "time"

// ChapterTopic 章节内的一个主题
type ChapterTopic struct {
	Name              string     `json:"name"`
	TotalProblems     int        `json:"totalProblems"`
	CompletedProblems int        `json:"completedProblems"`
	Difficulty        Difficulty `json:"difficulty"`
	IsCompleted       bool       `json:"isCompleted"`
}

// Chapter 学习章节，进度由主题完成数推导
// CompletedAt 在进度首次到达100时写入，之后即使主题变化也不重算
type Chapter struct {
	BaseModel
	UserID        uint           `gorm:"index;not null" json:"userId"`
	Title         string         `gorm:"size:200;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	Topics        []ChapterTopic `gorm:"serializer:json;type:json" json:"topics"`
	Order         int            `gorm:"column:sort_order;default:0" json:"order"`
	EstimatedDays int            `gorm:"default:7" json:"estimatedDays"`
	Progress      int            `gorm:"default:0" json:"progress"`
	IsCompleted   bool           `gorm:"default:false" json:"isCompleted"`
	StartedAt     *time.Time     `json:"startedAt,omitempty"`
	CompletedAt   *time.Time     `json:"completedAt,omitempty"`
}

func (Chapter) TableName() string {
	return "chapters"
}

// RecalcProgress 按主题完成数重算进度百分比和完成标记
// 首次完成时写入时间戳，后续不覆盖
func (c *Chapter) RecalcProgress(now time.Time) {
	if len(c.Topics) == 0 {
		return
	}
	completed := 0
	for _, t := range c.Topics {
		if t.IsCompleted {
			completed++
		}
	}
	c.Progress = int(float64(completed)/float64(len(c.Topics))*100 + 0.5)
	c.IsCompleted = c.Progress == 100
	if c.IsCompleted && c.CompletedAt == nil {
		c.CompletedAt = &now
	}
}
