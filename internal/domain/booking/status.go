package booking

type Status string

const (
	StatusActive              Status = "ACTIVE"
	StatusPartiallyCancelled  Status = "PARTIALLY_CANCELLED"
	StatusFullyCancelled      Status = "FULLY_CANCELLED"
	StatusPendingCancellation Status = "PENDING_CANCELLATION"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPartiallyCancelled, StatusFullyCancelled, StatusPendingCancellation:
		return true
	default:
		return false
	}
}

type LineItemStatus string

const (
	LineItemActive              LineItemStatus = "ACTIVE"
	LineItemCancelled           LineItemStatus = "CANCELLED"
	LineItemCancelling          LineItemStatus = "CANCELLING"
	LineItemPendingCancellation LineItemStatus = "PENDING_CANCELLATION"
)

func (s LineItemStatus) String() string {
	return string(s)
}

func (s LineItemStatus) IsValid() bool {
	switch s {
	case LineItemActive, LineItemCancelled, LineItemCancelling, LineItemPendingCancellation:
		return true
	default:
		return false
	}
}

type LineOfBusiness string

const (
	LineOfBusinessHotel    LineOfBusiness = "HOTEL"
	LineOfBusinessFlight   LineOfBusiness = "FLIGHT"
	LineOfBusinessCar      LineOfBusiness = "CAR"
	LineOfBusinessPackage  LineOfBusiness = "PACKAGE"
	LineOfBusinessActivity LineOfBusiness = "ACTIVITY"
)

func (l LineOfBusiness) IsValid() bool {
	switch l {
	case LineOfBusinessHotel, LineOfBusinessFlight, LineOfBusinessCar, LineOfBusinessPackage, LineOfBusinessActivity:
		return true
	default:
		return false
	}
}

// DeriveStatus computes the booking status from its line items. Items that are
// mid-cancellation take precedence so a booking never reports a settled state
// while reversals are outstanding.
func DeriveStatus(items []*LineItem) Status {
	var active, cancelled, pending int
	for _, item := range items {
		switch item.Status() {
		case LineItemActive:
			active++
		case LineItemCancelled:
			cancelled++
		case LineItemCancelling, LineItemPendingCancellation:
			pending++
		}
	}

	switch {
	case pending > 0:
		return StatusPendingCancellation
	case len(items) > 0 && active == 0:
		return StatusFullyCancelled
	case cancelled > 0 && active > 0:
		return StatusPartiallyCancelled
	default:
		return StatusActive
	}
}
