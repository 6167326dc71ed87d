package models

// RestaurantSummary is a restaurant without its pizzas
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaSummary is a pizza without the restaurants selling it
type PizzaSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaEntry is one item of a restaurant menu
type RestaurantPizzaEntry struct {
	ID           uint         `json:"id"`
	Price        int          `json:"price"`
	PizzaID      uint         `json:"pizza_id"`
	RestaurantID uint         `json:"restaurant_id"`
	Pizza        PizzaSummary `json:"pizza"`
}

// RestaurantDetail is a restaurant with the pizzas it sells
type RestaurantDetail struct {
	ID               uint                   `json:"id"`
	Name             string                 `json:"name"`
	Address          string                 `json:"address"`
	RestaurantPizzas []RestaurantPizzaEntry `json:"restaurant_pizzas"`
}

// RestaurantPizzaDetail is a created RestaurantPizza with both parents expanded
type RestaurantPizzaDetail struct {
	ID           uint              `json:"id"`
	Price        int               `json:"price"`
	RestaurantID uint              `json:"restaurant_id"`
	PizzaID      uint              `json:"pizza_id"`
	Restaurant   RestaurantSummary `json:"restaurant"`
	Pizza        PizzaSummary      `json:"pizza"`
}

func NewRestaurantSummary(r Restaurant) RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

func NewRestaurantSummaries(restaurants []Restaurant) []RestaurantSummary {
	out := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, NewRestaurantSummary(r))
	}
	return out
}

func NewPizzaSummary(p Pizza) PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

func NewPizzaSummaries(pizzas []Pizza) []PizzaSummary {
	out := make([]PizzaSummary, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, NewPizzaSummary(p))
	}
	return out
}

// NewRestaurantDetail expects RestaurantPizzas and their Pizza to be loaded
func NewRestaurantDetail(r Restaurant) RestaurantDetail {
	entries := make([]RestaurantPizzaEntry, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		entries = append(entries, RestaurantPizzaEntry{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
			Pizza:        NewPizzaSummary(rp.Pizza),
		})
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: entries,
	}
}

// NewRestaurantPizzaDetail expects Restaurant and Pizza to be loaded
func NewRestaurantPizzaDetail(rp RestaurantPizza) RestaurantPizzaDetail {
	return RestaurantPizzaDetail{
		ID:           rp.ID,
		Price:        rp.Price,
		RestaurantID: rp.RestaurantID,
		PizzaID:      rp.PizzaID,
		Restaurant:   NewRestaurantSummary(rp.Restaurant),
		Pizza:        NewPizzaSummary(rp.Pizza),
	}
}
