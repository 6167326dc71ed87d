package services

import (
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants in insertion order
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its pizzas and their prices
	GetRestaurantByID(id uint) (models.Restaurant, error)
	// CreateRestaurant creates a new restaurant in the database
	CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and every pizza price it owns
	DeleteRestaurant(id uint) error
}

// restaurantService is the implementation of the RestaurantService interface
type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, notFoundAs(err, ErrRestaurantNotFound, "failed to get restaurant")
	}
	return restaurant, nil
}

func (s *restaurantService) CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error) {
	restaurant.ID = 0
	if err := s.db.Omit("RestaurantPizzas").Create(&restaurant).Error; err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.Select("id").First(&restaurant, id).Error; err != nil {
			return notFoundAs(err, ErrRestaurantNotFound, "failed to get restaurant")
		}
		// Children first, SQLite may run without foreign key enforcement
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return err
		}
		return tx.Delete(&restaurant).Error
	})
}
