package stats

import (
	"math"
	"sort"
)

// DifficultyBreakdown 按难度统计的完成数
type DifficultyBreakdown struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// CompletedProblem 已完成的题目（核心只读取难度和章节归属）
type CompletedProblem struct {
	Difficulty string
	ChapterID  uint
}

// TopicProgress 某个主题（章节）的做题进度
type TopicProgress struct {
	Topic  string `json:"topic"`
	Solved int    `json:"solved"`
	Total  int    `json:"total"`
}

// ChapterTopics 章节及其主题完成状态，供按主题分组使用
type ChapterTopics struct {
	Title          string
	TotalTopics    int
	CompletedCount int
}

// TopicCount 学习主题出现频次
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// ByDifficulty 按难度分组已完成题目
func ByDifficulty(problems []CompletedProblem) DifficultyBreakdown {
	var b DifficultyBreakdown
	for _, p := range problems {
		switch p.Difficulty {
		case "Easy":
			b.Easy++
		case "Medium":
			b.Medium++
		case "Hard":
			b.Hard++
		}
	}
	return b
}

// ByTopic 将章节主题完成情况汇总为进度列表
func ByTopic(chapters []ChapterTopics) []TopicProgress {
	out := make([]TopicProgress, 0, len(chapters))
	for _, c := range chapters {
		out = append(out, TopicProgress{
			Topic:  c.Title,
			Solved: c.CompletedCount,
			Total:  c.TotalTopics,
		})
	}
	return out
}

// CompletionRate 完成率百分比，四舍五入；total为0时返回0而不是报错
func CompletionRate(total, completed int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// TopTopics 统计学习记录中出现最多的主题，按频次降序取前n个
// 频次相同时按名称排序，保证输出稳定
func TopTopics(records []ActivityRecord, n int) []TopicCount {
	counts := make(map[string]int)
	for _, r := range records {
		for _, topic := range r.Topics {
			counts[topic]++
		}
	}

	out := make([]TopicCount, 0, len(counts))
	for topic, count := range counts {
		out = append(out, TopicCount{Topic: topic, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Topic < out[j].Topic
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
