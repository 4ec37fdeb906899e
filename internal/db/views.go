package db

// View is an optional read model the repositories prefer over joining base
// tables themselves. Queries stay within SQL that Postgres and SQLite share.
type View struct {
	Name     string
	Requires []string
	Query    string
}

const (
	FranchiseDistributionView = "view_franchise_distribution"
	ActiveServerAdsView       = "view_active_server_ads"
	AdsWithHierarchyView      = "view_ads_with_hierarchy"
)

var Views = []View{
	{
		Name:     FranchiseDistributionView,
		Requires: []string{"lead_distributions", "franchises", "servers"},
		Query: `SELECT
				ld.franchise_id,
				f.name AS franchise_name,
				ld.server_id,
				s.name AS server_name,
				SUM(ld.leads_count) AS total_leads,
				ld.date
			FROM lead_distributions ld
			LEFT JOIN franchises f ON f.id = ld.franchise_id
			LEFT JOIN servers s ON s.id = ld.server_id
			GROUP BY ld.franchise_id, f.name, ld.server_id, s.name, ld.date`,
	},
	{
		Name:     ActiveServerAdsView,
		Requires: []string{"server_ads", "servers", "ads", "apis"},
		Query: `SELECT
				sa.id,
				sa.server_id,
				s.name AS server_name,
				sa.ad_id,
				a.name AS ad_name,
				sa.api_id,
				ap.name AS api_name,
				ap.phone AS api_phone,
				sa.daily_budget,
				sa.leads,
				sa.loads,
				sa.spent,
				sa.is_active,
				sa.created_at,
				sa.updated_at
			FROM server_ads sa
			LEFT JOIN servers s ON s.id = sa.server_id
			LEFT JOIN ads a ON a.id = sa.ad_id
			LEFT JOIN apis ap ON ap.id = sa.api_id
			WHERE sa.is_active = TRUE`,
	},
	{
		Name:     AdsWithHierarchyView,
		Requires: []string{"ads", "ad_sets", "campaigns", "business_managers", "portfolios"},
		Query: `SELECT
				a.id AS ad_id,
				a.name AS ad_name,
				a.status AS ad_status,
				st.id AS ad_set_id,
				st.name AS ad_set_name,
				st.status AS ad_set_status,
				c.id AS campaign_id,
				c.name AS campaign_name,
				c.status AS campaign_status,
				bm.id AS business_manager_id,
				bm.name AS business_manager_name,
				bm.status AS business_manager_status,
				p.id AS portfolio_id,
				p.name AS portfolio_name,
				p.status AS portfolio_status
			FROM ads a
			LEFT JOIN ad_sets st ON st.id = a.ad_set_id
			LEFT JOIN campaigns c ON c.id = st.campaign_id
			LEFT JOIN business_managers bm ON bm.id = c.business_manager_id
			LEFT JOIN portfolios p ON p.id = bm.portfolio_id`,
	},
}

// CreateViewStatement returns a plain CREATE VIEW for the view.
func (v View) CreateViewStatement() string {
	return "CREATE VIEW " + v.Name + " AS " + v.Query
}
