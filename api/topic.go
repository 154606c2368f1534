package api

type Topic string

const (
	ProcessStatusUpdated Topic = "process-status-updated"
	AssetGenerated       Topic = "asset-generated"
	ShowError            Topic = "show-error"
)
