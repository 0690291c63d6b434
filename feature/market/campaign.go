package market

// Fulfillment model tags.
const (
	ModelFBS = "FBS"
	ModelDBS = "DBS"
)

// Campaign pairs a storefront with the warehouse its stock updates target.
type Campaign struct {
	// ID is the marketplace campaign identifier.
	ID string
	// WarehouseID is the fulfillment warehouse for stock updates.
	WarehouseID string
	// Model tags the fulfillment model for logs and reports.
	Model string
}

// Campaigns expands the configured slots into the list of active campaigns.
// A partner can run FBS-only, DBS-only, or both.
func (c Config) Campaigns() []Campaign {
	var campaigns []Campaign
	if c.CampaignFBS != "" {
		campaigns = append(campaigns, Campaign{
			ID:          c.CampaignFBS,
			WarehouseID: c.WarehouseFBS,
			Model:       ModelFBS,
		})
	}
	if c.CampaignDBS != "" {
		campaigns = append(campaigns, Campaign{
			ID:          c.CampaignDBS,
			WarehouseID: c.WarehouseDBS,
			Model:       ModelDBS,
		})
	}
	return campaigns
}
