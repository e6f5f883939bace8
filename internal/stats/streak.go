package stats

// DefaultStreakLookbackDays 最长连续天数的默认扫描窗口
const DefaultStreakLookbackDays = 365

// Streaks 连续学习天数
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// ComputeStreaks 根据活动日期集合计算当前/最长连续天数
//
// 当前连续：从asOf当天开始逐日向前数，遇到第一个缺失日即停止；
// asOf当天无活动则当前连续为0。
// 最长连续：在asOf之前lookback天的窗口内从旧到新扫描，
// 缺失日将计数器清零，保留出现过的最大连续段。
// lookback <= 0 时使用默认的365天。
func ComputeStreaks(days map[string]bool, asOf string, lookback int) (Streaks, error) {
	if _, err := ParseDay(asOf); err != nil {
		return Streaks{}, err
	}
	if lookback <= 0 {
		lookback = DefaultStreakLookbackDays
	}

	var s Streaks
	if len(days) == 0 {
		return s, nil
	}

	cursor := asOf
	for days[cursor] {
		s.Current++
		prev, err := AddDays(cursor, -1)
		if err != nil {
			return Streaks{}, err
		}
		cursor = prev
	}

	start, err := AddDays(asOf, -(lookback - 1))
	if err != nil {
		return Streaks{}, err
	}
	run := 0
	cursor = start
	for i := 0; i < lookback; i++ {
		if days[cursor] {
			run++
			if run > s.Longest {
				s.Longest = run
			}
		} else {
			run = 0
		}
		next, err := AddDays(cursor, 1)
		if err != nil {
			return Streaks{}, err
		}
		cursor = next
	}

	// 当前连续段可能早于扫描窗口开始
	if s.Current > s.Longest {
		s.Longest = s.Current
	}

	return s, nil
}
