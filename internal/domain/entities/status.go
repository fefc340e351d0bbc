package entities

import (
	"errors"
	"fmt"
)

// ErrUnknownStatus means a status value outside the eight workflow statuses reached the
// engine. Internally generated values never produce it; seeing it indicates corrupted data.
var ErrUnknownStatus = errors.New("unknown estimation status")

// EstimationStatus is the position of an estimation in the approval chain.
//
// The declaration order below is the workflow order and is relied on by every ordinal
// comparison (progress, visibility, resolver walk).
type EstimationStatus string

const (
	StatusRegistered        EstimationStatus = "registered"
	StatusAuthResident      EstimationStatus = "auth_resident"
	StatusAuthSuper         EstimationStatus = "auth_super"
	StatusAuthLeader        EstimationStatus = "auth_leader"
	StatusValidatedCompras  EstimationStatus = "validated_compras"
	StatusFacturaSubida     EstimationStatus = "factura_subida"
	StatusValidatedFinanzas EstimationStatus = "validated_finanzas"
	StatusPaid              EstimationStatus = "paid"
)

var statusOrder = []EstimationStatus{
	StatusRegistered,
	StatusAuthResident,
	StatusAuthSuper,
	StatusAuthLeader,
	StatusValidatedCompras,
	StatusFacturaSubida,
	StatusValidatedFinanzas,
	StatusPaid,
}

var statusIndex = func() map[EstimationStatus]int {
	m := make(map[EstimationStatus]int, len(statusOrder))
	for i, s := range statusOrder {
		m[s] = i
	}
	return m
}()

// Statuses returns the workflow statuses in order. The slice is a copy.
func Statuses() []EstimationStatus {
	out := make([]EstimationStatus, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// StatusAt returns the status with ordinal i, false when i is outside 0..7.
func StatusAt(i int) (EstimationStatus, bool) {
	if i < 0 || i >= len(statusOrder) {
		return "", false
	}
	return statusOrder[i], true
}

// IndexOf returns the ordinal (0..7) of s.
func IndexOf(s EstimationStatus) (int, error) {
	i, ok := statusIndex[s]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return i, nil
}

func (s EstimationStatus) Valid() bool {
	_, ok := statusIndex[s]
	return ok
}

func (s EstimationStatus) IsTerminal() bool {
	return s == StatusPaid
}

// AtOrPast reports whether s has reached step. Unknown values are never at or past anything.
func (s EstimationStatus) AtOrPast(step EstimationStatus) bool {
	a, okA := statusIndex[s]
	b, okB := statusIndex[step]
	return okA && okB && a >= b
}

// Before reports whether s has not yet reached step.
func (s EstimationStatus) Before(step EstimationStatus) bool {
	a, okA := statusIndex[s]
	b, okB := statusIndex[step]
	return okA && okB && a < b
}
