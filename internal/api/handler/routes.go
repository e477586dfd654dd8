package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-cost-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/converting"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/costing"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/subs"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/tracking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
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

func Campaigns(service campaigning.CampaignResolver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/campaigns/search",
			Method:  http.MethodGet,
			Handler: SearchCampaign(service),
		},
	}
}

func Clicks(service tracking.ClickLister) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clicks",
			Method:  http.MethodPost,
			Handler: ListClicks(service),
		},
	}
}

func Subs(service subs.SubResolver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/subs",
			Method:  http.MethodGet,
			Handler: ListGlobalSubs(service),
		},
		{
			Path:    "/v1/subs/:campaignId",
			Method:  http.MethodGet,
			Handler: ListCampaignSubs(service),
		},
	}
}

func Costs(service costing.CostSubmitter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/costs",
			Method:  http.MethodPost,
			Handler: UpdateCost(service),
		},
	}
}

func Conversions(service converting.RevenueSubmitter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/conversions",
			Method:  http.MethodPost,
			Handler: UpdateRevenue(service),
		},
	}
}
