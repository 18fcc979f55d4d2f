package order

type Status string

const (
	StatusReserved            Status = "reserved"
	StatusPendingVerification Status = "pending_verification"
	StatusPaid                Status = "paid"
	StatusCancelled           Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusPendingVerification, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// HoldsStock reports whether an order in this status still claims one ledger
// unit. Release must happen exactly when an order leaves this set.
func (s Status) HoldsStock() bool {
	return s == StatusReserved || s == StatusPendingVerification
}

type CancelReason string

const (
	CancelReasonUserCancelled   CancelReason = "user_cancelled"
	CancelReasonTimeout         CancelReason = "timeout"
	CancelReasonRejectedPayment CancelReason = "rejected_payment"
	CancelReasonExpiredCleanup  CancelReason = "expired_cleanup"
)

func (r CancelReason) String() string {
	return string(r)
}

func (r CancelReason) IsValid() bool {
	switch r {
	case CancelReasonUserCancelled, CancelReasonTimeout, CancelReasonRejectedPayment, CancelReasonExpiredCleanup:
		return true
	default:
		return false
	}
}
