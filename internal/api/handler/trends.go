package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/trending"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
)

// GetOrderTrends retorna as tendências diárias de pedidos de um restaurante
func GetOrderTrends(service trending.TrendsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		trends, err := service.GetTrends(r.Context(), trending.TrendsParams{
			RestaurantID: query.Get("restaurant_id"),
			StartDate:    query.Get("start_date"),
			EndDate:      query.Get("end_date"),
			MinAmount:    query.Get("min_amount"),
			MaxAmount:    query.Get("max_amount"),
			MinHour:      query.Get("min_hour"),
			MaxHour:      query.Get("max_hour"),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular tendências de pedidos")
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, trends)
	}
}
