package orderdto

// NotifyOutcome names how an inbound gateway notification was handled. The
// notify endpoint acknowledges the gateway regardless of outcome; outcomes
// exist for logging and metrics.
type NotifyOutcome string

const (
	OutcomeFinalized        NotifyOutcome = "finalized"
	OutcomeChecksumMismatch NotifyOutcome = "checksum_mismatch"
	OutcomeMalformedPayload NotifyOutcome = "malformed_payload"
	OutcomePaymentFailed    NotifyOutcome = "payment_failed"
	OutcomeNoReservation    NotifyOutcome = "no_matching_reservation"
	OutcomeLookupFailed     NotifyOutcome = "lookup_failed"
	OutcomeAmountMismatch   NotifyOutcome = "amount_mismatch"
	OutcomeFinalizeFailed   NotifyOutcome = "finalize_failed"
)
