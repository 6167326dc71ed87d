package services

import (
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService manages which pizzas a restaurant sells and at what price
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and stores a new price, returning it with both parents loaded.
	// Returns a *models.ValidationError for an out of range price and
	// ErrRestaurantNotFound or ErrPizzaNotFound for a missing parent.
	CreateRestaurantPizza(price int, restaurantID, pizzaID uint) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(price int, restaurantID, pizzaID uint) (models.RestaurantPizza, error) {
	rp, err := models.NewRestaurantPizza(price, restaurantID, pizzaID)
	if err != nil {
		return models.RestaurantPizza{}, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rp.Restaurant, restaurantID).Error; err != nil {
			return notFoundAs(err, ErrRestaurantNotFound, "failed to get restaurant")
		}
		if err := tx.First(&rp.Pizza, pizzaID).Error; err != nil {
			return notFoundAs(err, ErrPizzaNotFound, "failed to get pizza")
		}
		return tx.Omit(clause.Associations).Create(rp).Error
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return *rp, nil
}
