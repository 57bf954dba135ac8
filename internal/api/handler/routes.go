package handler

import (
	"net/http"

	"github.com/vfg2006/jewelai-api/internal/api/handler/router"
	"github.com/vfg2006/jewelai-api/internal/ledger"
	"github.com/vfg2006/jewelai-api/internal/usecases/authenticating"
	"github.com/vfg2006/jewelai-api/internal/usecases/customizing"
	"github.com/vfg2006/jewelai-api/internal/usecases/insighting"
	"github.com/vfg2006/jewelai-api/internal/usecases/reporting"
	"github.com/vfg2006/jewelai-api/internal/usecases/researching"
	"github.com/vfg2006/jewelai-api/pkg/middleware"
)

func Healthcheck(loader ledger.Loader) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(loader),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Inventory(service insighting.InventoryInsighter, defaultDays int) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/kpis/summary",
			Method:      http.MethodGet,
			Handler:     GetKPISummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/inventory/categories",
			Method:      http.MethodGet,
			Handler:     GetCategoryInsights(service, defaultDays),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/inventory/items",
			Method:      http.MethodGet,
			Handler:     GetInventoryItems(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/market/trends",
			Method:      http.MethodGet,
			Handler:     GetMarketTrends(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/inventory.xlsx",
			Method:      http.MethodGet,
			Handler:     GetInventoryReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func DashboardLayout(service customizing.Customizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/layout",
			Method:      http.MethodGet,
			Handler:     GetLayout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/layout/visibility/:id",
			Method:      http.MethodPost,
			Handler:     ToggleCardVisibility(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/layout/reorder",
			Method:      http.MethodPost,
			Handler:     ReorderCards(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/layout/colors/:target",
			Method:      http.MethodPut,
			Handler:     SetChartColor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/layout/reset",
			Method:      http.MethodPost,
			Handler:     ResetLayout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
	}
}

func Keywords(service researching.Researcher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/keywords/analyze",
			Method:      http.MethodPost,
			Handler:     AnalyzeKeyword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/keywords/latest",
			Method:      http.MethodGet,
			Handler:     GetLatestKeywordAnalysis(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/market/overview",
			Method:      http.MethodGet,
			Handler:     GetMarketOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/jobs/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
	}
}
