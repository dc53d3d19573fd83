package domain

type Restaurant struct {
	ID       int64  `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Location string `json:"location" bson:"location"`
	Cuisine  string `json:"cuisine" bson:"cuisine"`
}

// RestaurantIndex permite buscar restaurantes por ID em memória
type RestaurantIndex map[int64]Restaurant

func NewRestaurantIndex(restaurants []Restaurant) RestaurantIndex {
	index := make(RestaurantIndex, len(restaurants))
	for _, restaurant := range restaurants {
		index[restaurant.ID] = restaurant
	}
	return index
}

// Lookup retorna o restaurante e se ele foi encontrado
func (idx RestaurantIndex) Lookup(id int64) (Restaurant, bool) {
	restaurant, found := idx[id]
	return restaurant, found
}

// Campos aceitos para ordenação da listagem de restaurantes
const (
	RestaurantSortID       = "id"
	RestaurantSortName     = "name"
	RestaurantSortLocation = "location"
	RestaurantSortCuisine  = "cuisine"
)

// RestaurantQuery representa os filtros da listagem de restaurantes
type RestaurantQuery struct {
	Search   string
	Location string
	Cuisine  string
	SortBy   string
	SortDesc bool
	Page     int
	Limit    int
}

// Offset retorna quantos registros devem ser pulados para a página atual
func (q RestaurantQuery) Offset() int {
	if q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

type RestaurantPage struct {
	Restaurants []Restaurant `json:"restaurants"`
	Total       int64        `json:"total"`
	Page        int          `json:"page"`
	Limit       int          `json:"limit"`
}
