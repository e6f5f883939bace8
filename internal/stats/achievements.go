package stats

// Metric 成就的考核指标
type Metric string

const (
	MetricCompletedTotal  Metric = "completed_total"
	MetricEasyCompleted   Metric = "easy_completed"
	MetricMediumCompleted Metric = "medium_completed"
	MetricHardCompleted   Metric = "hard_completed"
	MetricCurrentStreak   Metric = "current_streak"
	MetricChaptersDone    Metric = "chapters_completed"
)

// AchievementDef 成就定义，固定的配置表数据
type AchievementDef struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Tier        string `json:"tier"`
	Metric      Metric `json:"-"`
	Threshold   int    `json:"requirement"`
	Points      int    `json:"points"`
}

// Catalog 固定的十项成就目录。顺序和数值不可变更，前端按此渲染
var Catalog = []AchievementDef{
	{ID: 1, Title: "First Steps", Description: "Solve your first problem", Icon: "target", Category: "milestones", Tier: "bronze", Metric: MetricCompletedTotal, Threshold: 1, Points: 10},
	{ID: 2, Title: "Problem Solver", Description: "Solve 10 problems", Icon: "trophy", Category: "milestones", Tier: "bronze", Metric: MetricCompletedTotal, Threshold: 10, Points: 50},
	{ID: 3, Title: "Dedicated Learner", Description: "Solve 50 problems", Icon: "award", Category: "milestones", Tier: "silver", Metric: MetricCompletedTotal, Threshold: 50, Points: 200},
	{ID: 4, Title: "Algorithm Master", Description: "Solve 100 problems", Icon: "crown", Category: "milestones", Tier: "gold", Metric: MetricCompletedTotal, Threshold: 100, Points: 500},
	{ID: 5, Title: "Easy Rider", Description: "Solve 25 easy problems", Icon: "star", Category: "problem-solving", Tier: "bronze", Metric: MetricEasyCompleted, Threshold: 25, Points: 75},
	{ID: 6, Title: "Medium Champion", Description: "Solve 25 medium problems", Icon: "medal", Category: "problem-solving", Tier: "silver", Metric: MetricMediumCompleted, Threshold: 25, Points: 150},
	{ID: 7, Title: "Hard Core", Description: "Solve 25 hard problems", Icon: "crown", Category: "problem-solving", Tier: "gold", Metric: MetricHardCompleted, Threshold: 25, Points: 300},
	{ID: 8, Title: "Streak Starter", Description: "Maintain a 7-day solving streak", Icon: "calendar", Category: "streaks", Tier: "bronze", Metric: MetricCurrentStreak, Threshold: 7, Points: 100},
	{ID: 9, Title: "Consistency King", Description: "Maintain a 30-day solving streak", Icon: "medal", Category: "streaks", Tier: "gold", Metric: MetricCurrentStreak, Threshold: 30, Points: 800},
	{ID: 10, Title: "Chapter Master", Description: "Complete 5 chapters", Icon: "target", Category: "consistency", Tier: "silver", Metric: MetricChaptersDone, Threshold: 5, Points: 400},
}

// AchievementMetrics 评估成就所需的聚合指标
type AchievementMetrics struct {
	CompletedTotal    int
	EasyCompleted     int
	MediumCompleted   int
	HardCompleted     int
	CurrentStreak     int
	ChaptersCompleted int
}

func (m AchievementMetrics) value(metric Metric) int {
	switch metric {
	case MetricCompletedTotal:
		return m.CompletedTotal
	case MetricEasyCompleted:
		return m.EasyCompleted
	case MetricMediumCompleted:
		return m.MediumCompleted
	case MetricHardCompleted:
		return m.HardCompleted
	case MetricCurrentStreak:
		return m.CurrentStreak
	case MetricChaptersDone:
		return m.ChaptersCompleted
	}
	return 0
}

// AchievementStatus 单项成就的评估结果
// 解锁时间由调用方（成就服务）负责持久化首次解锁时刻
type AchievementStatus struct {
	AchievementDef
	Progress   int  `json:"progress"`
	IsUnlocked bool `json:"isUnlocked"`
}

// Evaluate 按固定目录评估当前指标，纯函数，不保存任何状态
func Evaluate(m AchievementMetrics) []AchievementStatus {
	out := make([]AchievementStatus, 0, len(Catalog))
	for _, def := range Catalog {
		v := m.value(def.Metric)
		progress := v
		if progress > def.Threshold {
			progress = def.Threshold
		}
		out = append(out, AchievementStatus{
			AchievementDef: def,
			Progress:       progress,
			IsUnlocked:     v >= def.Threshold,
		})
	}
	return out
}
