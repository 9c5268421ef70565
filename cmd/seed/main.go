// One-shot fixture seeder. Wipes every content table and repopulates the
// demo dataset; run it against a fresh database before first deploy.
package main

import (
	"fmt"
	"log"

	"github.com/chandru-wp/portfolio-server/internal/models"
	"github.com/chandru-wp/portfolio-server/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	repositories.ConnectDatabase()
	db := repositories.DB

	for _, model := range []any{
		&models.Portfolio{}, &models.User{}, &models.Profile{},
		&models.SkillGroup{}, &models.Experience{}, &models.Education{},
		&models.Message{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			log.Fatalf("failed to clear table: %v", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash demo password: %v", err)
	}
	user := models.User{Username: "demo", Password: string(hash), Role: "admin"}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}

	profile := models.Profile{
		Name:  "Sibi Siddharth S",
		Email: "sibisiddharth8@gmail.com",
		Phone: "+91 9629124660",
		About: "Full Stack Developer with expertise in React, Node.js, AI/ML, and Cloud technologies. " +
			"Currently pursuing B.Tech in AI & Data Science at Kathir College of Engineering with CGPA 8.3.",
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}

	skills := []models.SkillGroup{
		{Category: "frontend", Items: models.StringList{"React", "Vite", "Tailwind CSS", "TypeScript", "HTML", "CSS", "JavaScript"}, Order: 1},
		{Category: "backend", Items: models.StringList{"Node.js", "Express.js", "Python", "Flask", "Firebase"}, Order: 2},
		{Category: "database", Items: models.StringList{"MongoDB", "Prisma", "PostgreSQL"}, Order: 3},
		{Category: "cloud", Items: models.StringList{"GCP (Google Cloud Platform)", "Azure"}, Order: 4},
		{Category: "aiml", Items: models.StringList{"Machine Learning", "Deep Learning", "Data Science", "AI Model Development"}, Order: 5},
	}
	if err := db.Create(&skills).Error; err != nil {
		log.Fatalf("failed to seed skills: %v", err)
	}

	experience := []models.Experience{
		{
			Role:        "Full Stack Intern",
			Company:     "IBACUS-TECH Solutions",
			Duration:    "Jul 2025 – Aug 2025",
			Description: "Contributed to multiple full-stack applications with ReactJS, Node.js, Express, SQL & MongoDB",
			Tech:        models.StringList{"React", "Node.js", "MongoDB", "Express", "SQL"},
			Order:       1,
		},
		{
			Role:        "Software Developer",
			Company:     "Izet e-Payments",
			Duration:    "Feb 2025 – May 2025",
			Description: "Built internal ticketing system with reusable UI modules & secure backend APIs",
			Tech:        models.StringList{"React", "Prisma", "Node.js"},
			Order:       2,
		},
	}
	if err := db.Create(&experience).Error; err != nil {
		log.Fatalf("failed to seed experience: %v", err)
	}

	education := []models.Education{
		{
			Degree:      "B.Tech – AI & Data Science",
			Institution: "Kathir College of Engineering",
			Year:        "2025",
			CGPA:        "8.3",
			Highlights:  models.StringList{"Machine Learning", "Deep Learning", "Algorithms", "ReactJS", "Data Science"},
			Order:       1,
		},
		{
			Degree:      "HSC – Computer Science",
			Institution: "Kovai Public School",
			Year:        "2021",
			Highlights:  models.StringList{"Mathematics", "Computer Science"},
			Order:       2,
		},
	}
	if err := db.Create(&education).Error; err != nil {
		log.Fatalf("failed to seed education: %v", err)
	}

	projects := []models.Portfolio{
		{
			UserID:      user.ID,
			Title:       "UptimeEye",
			Description: "A comprehensive site monitoring application that tracks website uptime and performance",
			Github:      "https://github.com/username/uptimeeye",
			Website:     "https://uptimeeye.com",
		},
		{
			UserID:      user.ID,
			Title:       "Rydirect",
			Description: "Professional links management platform for organizing and sharing multiple links efficiently",
			Github:      "https://github.com/username/rydirect",
			Website:     "https://rydirect.com",
		},
		{
			UserID:      user.ID,
			Title:       "MyMind | Nyra.ai",
			Description: "AI-powered portfolio builder that presents projects professionally with ML recommendations",
			Github:      "https://github.com/username/mymind",
			Website:     "https://mymind.ai",
		},
		{
			UserID:      user.ID,
			Title:       "Full Stack Portfolio",
			Description: "Modern portfolio website with authentication, admin dashboard, and dynamic content management",
			Github:      "https://github.com/username/portfolio",
			Website:     "https://portfolio.example.com",
		},
	}
	if err := db.Create(&projects).Error; err != nil {
		log.Fatalf("failed to seed projects: %v", err)
	}

	fmt.Println("Database seeded successfully")
	fmt.Printf("  users: 1, skill groups: %d, experience: %d, education: %d, projects: %d\n",
		len(skills), len(experience), len(education), len(projects))
	fmt.Println("  demo credentials: demo / demo123 (admin)")
}
