package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// FMEARecord - вид отказа актива и его оценка риска.
// RPN всегда равен Severity*Occurrence*Detection и задается только сервисом.
type FMEARecord struct {
	ID                 string      `json:"id"`
	AssetID            string      `json:"assetId"`
	FailureMode        string      `json:"failureMode"`
	Effect             string      `json:"potentialEffect"`
	Cause              string      `json:"cause"`
	Severity           int         `json:"severity"`
	Occurrence         int         `json:"occurrence"`
	Detection          int         `json:"detection"`
	RPN                int         `json:"rpn"`
	RecommendedAction  string      `json:"recommendedAction"`
	Responsible        string      `json:"responsible"`
	Status             string      `json:"status"`
	ImplementationDate null.Time   `json:"implementationDate"`
	Effectiveness      null.String `json:"effectiveness"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`

	Asset *AssetSummary `json:"asset,omitempty"`
}
