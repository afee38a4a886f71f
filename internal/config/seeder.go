package config

import (
	"log"

	"gorm.io/gorm"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
	"github.com/sreejapuram0307/sherising/internal/pkg/password"
)

// SeedDatabase inserts demo accounts and sample ideas for development.
// It is a no-op when the users table already has rows.
func SeedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️  Database already seeded, skipping")
		return nil
	}

	hashed, err := password.Hash("password123")
	if err != nil {
		return err
	}

	users := []*models.User{
		{
			Name:     "Priya Sharma",
			Email:    "priya@sherise.app",
			Password: hashed,
			Role:     string(domain.RoleEntrepreneur),
			Location: "Hyderabad",
		},
		{
			Name:     "Anita Rao",
			Email:    "anita@sherise.app",
			Password: hashed,
			Role:     string(domain.RoleInvestor),
			Location: "Hyderabad",
		},
		{
			Name:     "Meera Iyer",
			Email:    "meera@sherise.app",
			Password: hashed,
			Role:     string(domain.RoleMentor),
			Location: "Bengaluru",
		},
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	entrepreneur := users[0]
	ideas := []*models.Idea{
		{
			Title:             "Organic Food Delivery",
			Category:          "Food & Beverage",
			Description:       "Farm-to-door delivery of organic produce sourced from women-led farms.",
			FundingGoal:       500000,
			Location:          entrepreneur.Location,
			EntrepreneurID:    entrepreneur.ID,
			EntrepreneurName:  entrepreneur.Name,
			EntrepreneurEmail: entrepreneur.Email,
		},
		{
			Title:             "Handcrafted Textiles Marketplace",
			Category:          "E-commerce",
			Description:       "An online marketplace connecting rural artisans with urban buyers.",
			FundingGoal:       300000,
			Location:          entrepreneur.Location,
			EntrepreneurID:    entrepreneur.ID,
			EntrepreneurName:  entrepreneur.Name,
			EntrepreneurEmail: entrepreneur.Email,
		},
	}

	if err := db.Create(&ideas).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d demo users and %d sample ideas", len(users), len(ideas))
	return nil
}
