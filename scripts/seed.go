// 手动初始化演示数据脚本
//
// 创建一个演示账号，并预置常见的DSA章节和示例题目，
// 用于首次部署后的本地联调。
//
// 用法: go run scripts/seed.go

package main

import (
	"log"
	"os"

	"dsa_tracker_backend/internal/config"
	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/pkg/database"
	"dsa_tracker_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	// 种子脚本需要建表
	cfg.ForceMigrate = true

	db, err := database.InitDB(&cfg)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo12345"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("密码哈希失败: %v", err)
	}

	user := &model.User{Name: "Demo", Email: "demo@example.com", Password: string(hashed)}
	if err := db.Where("email = ?", user.Email).FirstOrCreate(user).Error; err != nil {
		log.Fatalf("创建演示账号失败: %v", err)
	}

	chapters := []model.Chapter{
		{
			UserID: user.ID, Title: "Arrays & Hashing", Order: 1, EstimatedDays: 7,
			Topics: []model.ChapterTopic{
				{Name: "Two Pointers", TotalProblems: 5, Difficulty: model.DifficultyEasy},
				{Name: "Sliding Window", TotalProblems: 5, Difficulty: model.DifficultyMedium},
				{Name: "Prefix Sum", TotalProblems: 4, Difficulty: model.DifficultyMedium},
			},
		},
		{
			UserID: user.ID, Title: "Linked Lists", Order: 2, EstimatedDays: 5,
			Topics: []model.ChapterTopic{
				{Name: "Reversal", TotalProblems: 3, Difficulty: model.DifficultyEasy},
				{Name: "Fast & Slow Pointers", TotalProblems: 4, Difficulty: model.DifficultyMedium},
			},
		},
		{
			UserID: user.ID, Title: "Trees & Graphs", Order: 3, EstimatedDays: 14,
			Topics: []model.ChapterTopic{
				{Name: "DFS", TotalProblems: 6, Difficulty: model.DifficultyMedium},
				{Name: "BFS", TotalProblems: 6, Difficulty: model.DifficultyMedium},
				{Name: "Topological Sort", TotalProblems: 3, Difficulty: model.DifficultyHard},
			},
		},
	}

	for i := range chapters {
		if err := db.Where("user_id = ? AND title = ?", user.ID, chapters[i].Title).
			FirstOrCreate(&chapters[i]).Error; err != nil {
			log.Fatalf("创建章节失败: %v", err)
		}
	}

	problems := []model.Problem{
		{UserID: user.ID, Title: "Two Sum", Difficulty: model.DifficultyEasy, Topics: []string{"arrays", "hashing"}, ChapterID: &chapters[0].ID, URL: "https://leetcode.com/problems/two-sum"},
		{UserID: user.ID, Title: "Longest Substring Without Repeating Characters", Difficulty: model.DifficultyMedium, Topics: []string{"sliding-window"}, ChapterID: &chapters[0].ID},
		{UserID: user.ID, Title: "Reverse Linked List", Difficulty: model.DifficultyEasy, Topics: []string{"linked-list"}, ChapterID: &chapters[1].ID},
		{UserID: user.ID, Title: "Course Schedule", Difficulty: model.DifficultyMedium, Topics: []string{"graphs", "topological-sort"}, ChapterID: &chapters[2].ID},
	}

	for i := range problems {
		if err := db.Where("user_id = ? AND title = ?", user.ID, problems[i].Title).
			FirstOrCreate(&problems[i]).Error; err != nil {
			log.Fatalf("创建题目失败: %v", err)
		}
	}

	log.Printf("演示数据初始化完成，账号 %s / demo12345", user.Email)
}
