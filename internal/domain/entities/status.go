package entities

import "strings"

// PaymentStatus is the canonical payment state used across the checkout flow.
//
// Domain notes:
//   - Asaas (and the manual-override admin screen) report free-text status values;
//     everything that enters or leaves storage goes through NormalizeStatus so that
//     handlers, the webhook and the status watcher always branch on the same
//     three values.
//   - PENDING is the only valid initial state. CONFIRMED and REJECTED are terminal.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
	PaymentStatusRejected  PaymentStatus = "REJECTED"
)

// Token sets cover the gateway vocabulary plus the Portuguese values used by the
// manual-entry screen. Unknown tokens fall through to PENDING on purpose: PENDING
// never triggers an irreversible UI transition.
var confirmedTokens = map[string]struct{}{
	"CONFIRMED":  {},
	"APPROVED":   {},
	"PAID":       {},
	"RECEIVED":   {},
	"COMPLETED":  {},
	"SUCCESS":    {},
	"APROVADO":   {},
	"PAGO":       {},
	"CONFIRMADO": {},
	"RECEBIDO":   {},
	"CONCLUIDO":  {},
}

var rejectedTokens = map[string]struct{}{
	"REJECTED":  {},
	"DENIED":    {},
	"FAILED":    {},
	"DECLINED":  {},
	"CANCELLED": {},
	"CANCELED":  {},
	"OVERDUE":   {},
	"EXPIRED":   {},
	"RECUSADO":  {},
	"NEGADO":    {},
	"CANCELADO": {},
	"VENCIDO":   {},
	"EXPIRADO":  {},
}

// NormalizeStatus maps any raw status string into a canonical PaymentStatus.
// It is total: missing or unrecognized input yields PENDING.
func NormalizeStatus(raw string) PaymentStatus {
	token := strings.ToUpper(strings.TrimSpace(raw))
	if token == "" {
		return PaymentStatusPending
	}
	if _, ok := confirmedTokens[token]; ok {
		return PaymentStatusConfirmed
	}
	if _, ok := rejectedTokens[token]; ok {
		return PaymentStatusRejected
	}
	return PaymentStatusPending
}

func IsConfirmedStatus(raw string) bool { return NormalizeStatus(raw) == PaymentStatusConfirmed }
func IsRejectedStatus(raw string) bool  { return NormalizeStatus(raw) == PaymentStatusRejected }
func IsPendingStatus(raw string) bool   { return NormalizeStatus(raw) == PaymentStatusPending }

// IsTerminal reports whether no further transition is allowed out of s.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusConfirmed || s == PaymentStatusRejected
}

// Transition applies next to s enforcing terminal monotonicity: once an order is
// CONFIRMED or REJECTED it never reverts. The returned bool reports whether next
// was accepted; callers log and ignore refused transitions.
func (s PaymentStatus) Transition(next PaymentStatus) (PaymentStatus, bool) {
	if s.IsTerminal() {
		return s, s == next
	}
	return next, true
}
