package stats

import (
	"errors"
	"fmt"
	"time"
)

// 日期统一使用 YYYY-MM-DD 字符串，零填充的ISO格式可以直接按字典序比较
const DayLayout = "2006-01-02"

var (
	ErrInvalidDay       = errors.New("invalid day: expected YYYY-MM-DD")
	ErrNegativeDuration = errors.New("invalid record: negative duration")
	ErrNegativeProblems = errors.New("invalid record: negative problem count")
)

// ActivityRecord 用户某一天的学习活动汇总（每用户每天最多一条）
type ActivityRecord struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"duration"`
	ProblemsSolved  int      `json:"problems"`
	Topics          []string `json:"topics"`
}

// ParseDay 校验日历日字符串
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return t, nil
}

// FormatDay 将时间截断为所在时区的日历日
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// Today 按用户配置的时区计算"今天"，避免跨时区的偏差
// 无法加载时区时回退到UTC
func Today(timezone string) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Format(DayLayout)
}

// AddDays 日历日加减
func AddDays(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DayLayout), nil
}

func validateRecord(r ActivityRecord) error {
	if _, err := ParseDay(r.Date); err != nil {
		return err
	}
	if r.DurationMinutes < 0 {
		return fmt.Errorf("%w: %d on %s", ErrNegativeDuration, r.DurationMinutes, r.Date)
	}
	if r.ProblemsSolved < 0 {
		return fmt.Errorf("%w: %d on %s", ErrNegativeProblems, r.ProblemsSolved, r.Date)
	}
	return nil
}

// ActiveDays 提取有有效活动的去重日期集合（时长或做题数大于0）
func ActiveDays(records []ActivityRecord) (map[string]bool, error) {
	days := make(map[string]bool, len(records))
	for _, r := range records {
		if err := validateRecord(r); err != nil {
			return nil, err
		}
		if r.DurationMinutes > 0 || r.ProblemsSolved > 0 {
			days[r.Date] = true
		}
	}
	return days, nil
}
