package services

import (
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas in insertion order
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(id uint) (models.Pizza, error)
	// CreatePizza creates a new pizza in the database
	CreatePizza(pizza models.Pizza) (models.Pizza, error)
	// DeletePizza deletes a pizza and every restaurant price for it
	DeletePizza(id uint) error
}

type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.Order("id").Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.First(&pizza, id).Error; err != nil {
		return models.Pizza{}, notFoundAs(err, ErrPizzaNotFound, "failed to get pizza")
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(pizza models.Pizza) (models.Pizza, error) {
	pizza.ID = 0
	if err := s.db.Omit("RestaurantPizzas").Create(&pizza).Error; err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *pizzaService) DeletePizza(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.Select("id").First(&pizza, id).Error; err != nil {
			return notFoundAs(err, ErrPizzaNotFound, "failed to get pizza")
		}
		if err := tx.Where("pizza_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return err
		}
		return tx.Delete(&pizza).Error
	})
}
