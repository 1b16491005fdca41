package entities

import "time"

type Report struct {
	ID          string    `json:"id"`
	AssetID     string    `json:"assetId"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	Date        time.Time `json:"date"`
	Attachments []string  `json:"attachments"`
	Status      string    `json:"status"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Asset *AssetSummary `json:"asset,omitempty"`
}
