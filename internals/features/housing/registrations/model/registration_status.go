package model

// RegistrationStatus is a closed set; transitions go through Allowed and
// nothing else. The strings are the externally observable statuses.
type RegistrationStatus string

const (
	RegistrationStatusPending         RegistrationStatus = "PENDING"
	RegistrationStatusAwaitingPayment RegistrationStatus = "AWAITING_PAYMENT"
	RegistrationStatusApproved        RegistrationStatus = "APPROVED"
	RegistrationStatusRejected        RegistrationStatus = "REJECTED"
	RegistrationStatusReturn          RegistrationStatus = "RETURN"
	RegistrationStatusCompleted       RegistrationStatus = "COMPLETED"
)

func (s RegistrationStatus) Valid() bool {
	_, ok := registrationTransitions[s]
	return ok
}

// Terminal statuses have no outgoing transitions.
func (s RegistrationStatus) Terminal() bool {
	return len(registrationTransitions[s]) == 0 && s.Valid()
}

// BlocksNewRegistration reports whether an existing registration in this
// status prevents the student from registering again in the same semester.
// Only REJECTED frees the slot.
func (s RegistrationStatus) BlocksNewRegistration() bool {
	return s != RegistrationStatusRejected
}

var registrationTransitions = map[RegistrationStatus][]RegistrationStatus{
	RegistrationStatusPending:         {RegistrationStatusAwaitingPayment, RegistrationStatusApproved, RegistrationStatusRejected},
	RegistrationStatusAwaitingPayment: {RegistrationStatusApproved, RegistrationStatusRejected, RegistrationStatusPending},
	RegistrationStatusApproved:        {RegistrationStatusCompleted, RegistrationStatusReturn, RegistrationStatusRejected},
	RegistrationStatusReturn:          {RegistrationStatusPending, RegistrationStatusRejected},
	RegistrationStatusRejected:        {},
	RegistrationStatusCompleted:       {},
}

// AllowedTransition reports whether from → to is a legal status change.
// Self-transitions are rejected too; updating only the admin note goes
// through a separate path.
func AllowedTransition(from, to RegistrationStatus) bool {
	for _, next := range registrationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
