package models

import "time"

// Banner is a promotional banner shown in the client app. The collection is
// replaced as a whole set on every admin save.
type Banner struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	Route     string    `json:"route"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BannerInput is one entry of the submitted banner set. An empty ID means
// insert; a non-empty ID must match an existing banner.
type BannerInput struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	Route string `json:"route"`
}

// UpsertBannersRequest is the body of POST /api/banners.
type UpsertBannersRequest struct {
	Banners []BannerInput `json:"banners"`
}
