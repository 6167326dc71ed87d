package models

// Pizza represents a pizza with its ingredients
type Pizza struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`

	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:PizzaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
