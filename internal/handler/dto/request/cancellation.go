package request

import (
	"strings"

	"travel-loyalty-booking/internal/domain/cancellation"

	"github.com/google/uuid"
)

// CancellationRequest is shared by preview and confirm. Omitting lineItemIds
// selects every line item on the booking; an empty list selects none.
type CancellationRequest struct {
	LineItemIDs []uuid.UUID `json:"lineItemIds" binding:"omitempty,max=50,dive,required"`
	Reason      string      `json:"reason" binding:"max=500"`
	RequestedBy string      `json:"requestedBy" binding:"max=200"`
}

// ToDomain falls back to the caller header when requestedBy is not in the body.
func (r *CancellationRequest) ToDomain(headerUserID string) cancellation.Request {
	requestedBy := strings.TrimSpace(r.RequestedBy)
	if requestedBy == "" {
		requestedBy = strings.TrimSpace(headerUserID)
	}
	return cancellation.Request{
		LineItemIDs: r.LineItemIDs,
		Reason:      strings.TrimSpace(r.Reason),
		RequestedBy: requestedBy,
	}
}
