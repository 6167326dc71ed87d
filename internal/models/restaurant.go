package models

// Restaurant is a place that sells pizzas
type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`

	// Deleting a restaurant removes the pizzas it sells
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
