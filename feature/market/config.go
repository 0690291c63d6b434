package market

// Config holds credentials and campaign topology for the marketplace API.
//
// Campaigns come in two fixed slots matching the partner's fulfillment
// models: FBS (shipped by seller) and DBS (delivered by seller). A slot is
// active when its campaign id is set; an active slot must name a warehouse.
type Config struct {
	// Token is the OAuth bearer token for the partner API.
	Token string `mapstructure:"token" default:"" validate:"required"`
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.partner.market.yandex.ru"`
	// CampaignFBS is the FBS campaign id. Empty disables the slot.
	CampaignFBS string `mapstructure:"campaign_fbs" default:""`
	// WarehouseFBS is the warehouse stocked for the FBS campaign.
	WarehouseFBS string `mapstructure:"warehouse_fbs" default:"" validate:"required_with=CampaignFBS"`
	// CampaignDBS is the DBS campaign id. Empty disables the slot.
	CampaignDBS string `mapstructure:"campaign_dbs" default:""`
	// WarehouseDBS is the warehouse stocked for the DBS campaign.
	WarehouseDBS string `mapstructure:"warehouse_dbs" default:"" validate:"required_with=CampaignDBS"`
	// PageLimit is the page size for offer listing.
	PageLimit int `mapstructure:"page_limit" default:"200"`
	// TimeoutSeconds bounds a single API call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
