package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/listing"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
)

// ListRestaurants lista os restaurantes com busca, filtros, ordenação e paginação
func ListRestaurants(service listing.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		page, err := service.ListRestaurants(r.Context(), listing.ListParams{
			Search:   query.Get("search"),
			Location: query.Get("location"),
			Cuisine:  query.Get("cuisine"),
			Sort:     query.Get("sort"),
			Page:     query.Get("page"),
			Limit:    query.Get("limit"),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar restaurantes")
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, page)
	}
}

func GetRestaurant(service listing.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		restaurant, err := service.GetRestaurant(r.Context(), id)
		if errors.Is(err, listing.ErrRestaurantNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Restaurante não encontrado", nil)
			return
		}
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar restaurante")
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, restaurant)
	}
}

// GetTopRevenue retorna os k restaurantes com maior receita no período
func GetTopRevenue(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		entries, err := service.GetTopRevenue(r.Context(), ranking.TopRevenueParams{
			StartDate:     query.Get("start_date"),
			EndDate:       query.Get("end_date"),
			K:             query.Get("k"),
			MinAmount:     query.Get("min_amount"),
			MaxAmount:     query.Get("max_amount"),
			MinHour:       query.Get("min_hour"),
			MaxHour:       query.Get("max_hour"),
			RestaurantIDs: query.Get("restaurant_ids"),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular ranking de receita")
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, domain.TopRevenueResponse{Restaurants: entries})
	}
}

// GetRevenueSnapshot retorna o último ranking mensal calculado pelo agendador
func GetRevenueSnapshot(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.GetRevenueSnapshot(r.Context())
		if errors.Is(err, ranking.ErrSnapshotNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum ranking encontrado", nil)
			return
		}
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar ranking de receita")
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, snapshot)
	}
}
