package model

// StudySession 用户某一天的学习记录，每用户每天唯一
// 同一天重复提交时合并：时长/做题数累加，主题取并集，笔记拼接
type StudySession struct {
	BaseModel
	UserID         uint       `gorm:"not null;uniqueIndex:idx_user_session_date" json:"userId"`
	Date           string     `gorm:"size:10;not null;uniqueIndex:idx_user_session_date" json:"date"` // YYYY-MM-DD
	Duration       int        `gorm:"not null" json:"duration"`                                       // 分钟
	Topics         []string   `gorm:"serializer:json;type:json" json:"topics"`
	Notes          string     `gorm:"type:text" json:"notes"`
	ProblemsSolved int        `gorm:"default:0" json:"problemsSolved"`
	Difficulty     Difficulty `gorm:"size:10;default:'Medium'" json:"difficulty"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}

// Merge 将另一条同日记录并入本条，满足合并律：
// 时长相加、做题数相加、主题并集、笔记用分隔符拼接
func (s *StudySession) Merge(other *StudySession) {
	s.Duration += other.Duration

	seen := make(map[string]bool, len(s.Topics))
	for _, t := range s.Topics {
		seen[t] = true
	}
	for _, t := range other.Topics {
		if !seen[t] {
			s.Topics = append(s.Topics, t)
			seen[t] = true
		}
	}

	if other.Notes != "" {
		if s.Notes != "" {
			s.Notes = s.Notes + "\n\n---\n\n" + other.Notes
		} else {
			s.Notes = other.Notes
		}
	}

	s.ProblemsSolved += other.ProblemsSolved
	if other.Difficulty != "" {
		s.Difficulty = other.Difficulty
	}
}
