package domain

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	// StatusNone is never stored; it is the status-query answer for a user
	// with no payment records.
	StatusNone = "none"
)

const (
	MethodBank     = "bank"
	MethodPaybox   = "paybox"
	MethodBit      = "bit"
	MethodPayPal   = "paypal"
	MethodTelegram = "telegram"
)

// PaymentMethods is the fixed enumeration accepted by the submission endpoint.
var PaymentMethods = []string{MethodBank, MethodPaybox, MethodBit, MethodPayPal, MethodTelegram}

func IsValidPaymentMethod(m string) bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether a record may no longer transition.
func IsTerminalStatus(s string) bool {
	return s == StatusApproved || s == StatusRejected
}

// DefaultCustomPrice is the community price in ILS when no per-user setting exists.
const DefaultCustomPrice = 39

// MaxProofImageBytes caps uploaded payment proofs. Enforced server-side,
// the landing page also checks but client checks are bypassable.
const MaxProofImageBytes = 5 << 20
