// README: Insured asset aggregate (vehicle policies).
package assets

import (
	"time"

	"khusela/internal/types"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusActive    Status = "Active"
	StatusSuspended Status = "Suspended"
	StatusExpired   Status = "Expired"
	StatusCancelled Status = "Cancelled"
	StatusDeclined  Status = "Declined"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusActive, StatusSuspended, StatusExpired, StatusCancelled, StatusDeclined:
		return true
	}
	return false
}

type Asset struct {
	ID              types.ID  `json:"id"`
	UserID          types.ID  `json:"userId"`
	ItemName        string    `json:"itemName"`
	Category        string    `json:"category"`
	PolicyNumber    string    `json:"policyNumber"`
	Make            string    `json:"make"`
	Model           string    `json:"model"`
	Year            int       `json:"year"`
	PrimaryLocation string    `json:"primaryLocation"`
	MainDriverAge   int       `json:"mainDriverAge"`
	Description     string    `json:"description,omitempty"`
	Status          Status    `json:"status"`
	RiskScore       float64   `json:"riskScore,omitempty"`
	RiskLevel       string    `json:"riskLevel,omitempty"`
	MonthlyPayment  int       `json:"monthlyPayment,omitempty"`
	CoverageAmount  int       `json:"coverageAmount,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Summary aggregates a user's portfolio for the dashboard view.
type Summary struct {
	TotalAssets         int            `json:"totalAssets"`
	ActiveAssets        int            `json:"activeAssets"`
	PendingAssets       int            `json:"pendingAssets"`
	TotalMonthlyPremium int            `json:"totalMonthlyPremium"`
	RiskDistribution    map[string]int `json:"riskDistribution"`
}
