package data

// CatalogCounts holds the aggregate figures shown on the home page.
type CatalogCounts struct {
	Books              int `json:"books"`
	Instances          int `json:"instances"`
	InstancesAvailable int `json:"instances_available"`
	Authors            int `json:"authors"`
}
