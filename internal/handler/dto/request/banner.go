package request

import "time"

type BannerRequest struct {
	Title     string     `json:"title" binding:"required"`
	ImageURL  string     `json:"imageUrl" binding:"required"`
	LinkURL   string     `json:"linkUrl"`
	SortOrder int        `json:"sortOrder"`
	Active    bool       `json:"active"`
	StartAt   *time.Time `json:"startAt,omitempty"`
	EndAt     *time.Time `json:"endAt,omitempty"`
}

type SetBannerActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
