package models

// AppConfig is the per-model appConfig.json consumed by the browser
// front-end at build time and served by the API at runtime.
type AppConfig struct {
	WebServer             string                 `json:"webServer"`
	APIServer             string                 `json:"apiServer"`
	PhiloLogicURL         string                 `json:"philoLogicUrl"`
	DatabaseName          string                 `json:"databaseName"`
	AppPath               string                 `json:"appPath"`
	MetadataFields        []MetadataField        `json:"metadataFields"`
	TimeSeriesConfig      TimeSeriesConfig       `json:"timeSeriesConfig"`
	MetadataDistributions []MetadataDistribution `json:"metadataDistributions"`
}

// MetadataField describes how a metadata field is displayed.
type MetadataField struct {
	Field string            `json:"field"`
	Style map[string]string `json:"style"`
	Link  bool              `json:"link"`
}

// TimeSeriesConfig bounds the topics-over-time charts.
type TimeSeriesConfig struct {
	Interval  int `json:"interval"`
	StartDate int `json:"startDate"`
	EndDate   int `json:"endDate"`
}

// MetadataDistribution configures one metadata distribution view.
type MetadataDistribution struct {
	Label           string `json:"label"`
	Field           string `json:"field"`
	FilterFrequency int    `json:"filterFrequency"`
}
