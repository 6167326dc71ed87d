package models

import "fmt"

// Price bounds for a pizza sold by a restaurant, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza records that a restaurant sells a pizza at a given price
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	Price        int  `gorm:"not null" json:"price"`
	RestaurantID uint `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      uint `gorm:"not null;index" json:"pizza_id"`

	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
	Pizza      Pizza      `gorm:"foreignKey:PizzaID" json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// ValidationError reports a field value that breaks a model invariant
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s %s", e.Field, e.Message)
}

// NewRestaurantPizza builds a RestaurantPizza, rejecting prices outside [MinPrice, MaxPrice]
func NewRestaurantPizza(price int, restaurantID, pizzaID uint) (*RestaurantPizza, error) {
	rp := &RestaurantPizza{
		RestaurantID: restaurantID,
		PizzaID:      pizzaID,
	}
	if err := rp.SetPrice(price); err != nil {
		return nil, err
	}
	return rp, nil
}

// SetPrice assigns the price if it is within bounds, otherwise leaves it untouched
func (rp *RestaurantPizza) SetPrice(price int) error {
	if price < MinPrice || price > MaxPrice {
		return &ValidationError{
			Field:   "price",
			Message: fmt.Sprintf("must be between %d and %d", MinPrice, MaxPrice),
		}
	}
	rp.Price = price
	return nil
}
