package stats

import "time"

// WindowTotals 时间窗口内的活动汇总
type WindowTotals struct {
	TotalDuration int `json:"duration"`
	TotalProblems int `json:"problems"`
	SessionCount  int `json:"sessions"`
}

// DayPoint 每日序列中的一个点（图表用）
type DayPoint struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
	Problems int    `json:"problems"`
}

// Aggregate 对落在[start, end]闭区间内的记录求和
func Aggregate(records []ActivityRecord, start, end string) (WindowTotals, error) {
	if _, err := ParseDay(start); err != nil {
		return WindowTotals{}, err
	}
	if _, err := ParseDay(end); err != nil {
		return WindowTotals{}, err
	}

	var w WindowTotals
	for _, r := range records {
		if err := validateRecord(r); err != nil {
			return WindowTotals{}, err
		}
		if r.Date >= start && r.Date <= end {
			w.TotalDuration += r.DurationMinutes
			w.TotalProblems += r.ProblemsSolved
			w.SessionCount++
		}
	}
	return w, nil
}

// Series 以asOf为结束日的最近days天每日序列，缺失日补零，按时间升序
func Series(records []ActivityRecord, days int, asOf string) ([]DayPoint, error) {
	if _, err := ParseDay(asOf); err != nil {
		return nil, err
	}

	byDay := make(map[string]*DayPoint, len(records))
	for _, r := range records {
		if err := validateRecord(r); err != nil {
			return nil, err
		}
		if p, ok := byDay[r.Date]; ok {
			p.Duration += r.DurationMinutes
			p.Problems += r.ProblemsSolved
		} else {
			byDay[r.Date] = &DayPoint{Date: r.Date, Duration: r.DurationMinutes, Problems: r.ProblemsSolved}
		}
	}

	series := make([]DayPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day, err := AddDays(asOf, -i)
		if err != nil {
			return nil, err
		}
		if p, ok := byDay[day]; ok {
			series = append(series, *p)
		} else {
			series = append(series, DayPoint{Date: day})
		}
	}
	return series, nil
}

// MonthlyCompleted 统计completedAt落在目标月份（含首末日）内的数量
func MonthlyCompleted(completedAt []time.Time, year int, month time.Month, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	nextMonth := monthStart.AddDate(0, 1, 0)

	count := 0
	for _, t := range completedAt {
		if t.IsZero() {
			continue
		}
		local := t.In(loc)
		if !local.Before(monthStart) && local.Before(nextMonth) {
			count++
		}
	}
	return count
}
