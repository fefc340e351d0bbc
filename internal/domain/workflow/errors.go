package workflow

import "errors"

// Sentinel errors for approval transitions.
var (
	// ErrInvalidTransition means the acting role is not the one the estimation is waiting on.
	ErrInvalidTransition = errors.New("role cannot act on the estimation in its current status")

	// ErrTerminalState means the estimation is already paid.
	ErrTerminalState = errors.New("estimation is paid, no further transitions")

	// ErrMissingInvoiceFile means the invoice upload gate was called without both the PDF and
	// the XML file.
	ErrMissingInvoiceFile = errors.New("invoice requires both pdf and xml files")

	// ErrPaymentRequired means the pagos step was requested as a plain approval. It is only
	// reachable by charging the estimation through the payment flow.
	ErrPaymentRequired = errors.New("pagos step requires a payment")
)
