// README: Monitored destination aggregate.
package destinations

import (
	"time"

	"khusela/internal/types"
)

type Destination struct {
	ID          types.ID         `json:"id"`
	UserID      types.ID         `json:"userId"`
	Location    string           `json:"location"`
	Coordinate  types.Coordinate `json:"coordinate"`
	RiskLevel   string           `json:"riskLevel,omitempty"`
	LastChecked time.Time        `json:"lastChecked"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
