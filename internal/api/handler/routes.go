package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/listing"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/trending"
	"github.com/vfg2006/restaurant-analytics-api/pkg/metrics"
)

func Healthcheck(checkers map[string]HealthChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checkers),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Trends(service trending.TrendsService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/orders/trends",
			Method:  http.MethodGet,
			Handler: GetOrderTrends(service),
		},
	}
}

func Restaurants(listingService listing.ListingService, rankingService ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/restaurants",
			Method:  http.MethodGet,
			Handler: ListRestaurants(listingService),
		},
		{
			Path:    "/v1/restaurant/:id",
			Method:  http.MethodGet,
			Handler: GetRestaurant(listingService),
		},
		{
			Path:    "/v1/restaurants/top",
			Method:  http.MethodGet,
			Handler: GetTopRevenue(rankingService),
		},
		{
			Path:    "/v1/restaurants/top/snapshot",
			Method:  http.MethodGet,
			Handler: GetRevenueSnapshot(rankingService),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
