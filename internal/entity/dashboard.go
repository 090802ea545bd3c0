package entity

// DashboardStats aggregates across all of a channel's own videos.
type DashboardStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalLikes       int64 `json:"total_likes"`
	TotalSubscribers int64 `json:"total_subscribers"`
}
