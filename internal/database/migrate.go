package database

import (
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates every table the API uses.
// Parents are migrated before RestaurantPizza so its foreign keys resolve.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Restaurant{},
		&models.Pizza{},
		&models.RestaurantPizza{},
		&models.User{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database schema migrated")
	return nil
}

// SeedIfEmpty loads the sample restaurants and pizzas when no restaurant exists yet
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count restaurants: %w", err)
	}
	if count > 0 {
		log.WithField("restaurants", count).Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")
	return db.Transaction(func(tx *gorm.DB) error {
		restaurants := []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
			{Name: "Kiki's Pizza", Address: "address3"},
		}
		if err := tx.Create(&restaurants).Error; err != nil {
			return err
		}

		pizzas := []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return err
		}

		for i := range restaurants {
			rp, err := models.NewRestaurantPizza(models.MinPrice, restaurants[i].ID, pizzas[i].ID)
			if err != nil {
				return err
			}
			if err := tx.Omit(clause.Associations).Create(rp).Error; err != nil {
				return err
			}
		}

		log.WithFields(logrus.Fields{
			"restaurants": len(restaurants),
			"pizzas":      len(pizzas),
		}).Info("Database seeded successfully")
		return nil
	})
}
