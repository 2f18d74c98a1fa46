// Package report provides read-only transformations over record snapshots:
// filtering, multi-key sorting, aggregation and date-range selection.
// Nothing here writes back to a store.
package report

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"clinicrecords/internal/model"
)

// Predicate selects records.
type Predicate[T any] func(T) bool

// Compare orders two records, returning a negative, zero or positive number.
type Compare[T any] func(a, b T) int

// Filter returns the records matching every predicate. The input is not modified.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// SortBy returns a stably sorted copy ordered by keys, the first key taking precedence.
func SortBy[T any](items []T, keys ...Compare[T]) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		for _, k := range keys {
			if c := k(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}

// Sum adds up an integer field over all records.
func Sum[T any](items []T, field func(T) int) int {
	total := 0
	for _, it := range items {
		total += field(it)
	}
	return total
}

// CountBy groups records by key and counts each group.
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, it := range items {
		out[key(it)]++
	}
	return out
}

// By builds a Compare from an ordered key.
func By[T any, K cmp.Ordered](key func(T) K) Compare[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// FoldedBy compares string keys ignoring case.
func FoldedBy[T any](key func(T) string) Compare[T] {
	return func(a, b T) int { return strings.Compare(strings.ToLower(key(a)), strings.ToLower(key(b))) }
}

// MinAge keeps patients at least age years old.
func MinAge(age int) Predicate[model.Patient] {
	return func(p model.Patient) bool { return p.Age >= age }
}

// AddressContains keeps patients whose address contains s, ignoring case.
func AddressContains(s string) Predicate[model.Patient] {
	needle := strings.ToLower(s)
	return func(p model.Patient) bool { return strings.Contains(strings.ToLower(p.Address), needle) }
}

// DoctorsBySpecialty orders doctors by specialty, then name.
func DoctorsBySpecialty(doctors []model.Doctor) []model.Doctor {
	return SortBy(doctors,
		FoldedBy(func(d model.Doctor) string { return d.Specialty }),
		FoldedBy(func(d model.Doctor) string { return d.Name }),
	)
}

// TotalInventory sums the quantity of every inventory item.
func TotalInventory(items []model.InventoryItem) int {
	return Sum(items, func(i model.InventoryItem) int { return i.Quantity })
}

// TotalAvailableEquipment sums the available units of every piece of equipment.
func TotalAvailableEquipment(items []model.Equipment) int {
	return Sum(items, func(e model.Equipment) int { return e.AvailableCount })
}

// LowStock keeps items whose quantity is at or below threshold, lowest first.
func LowStock(items []model.InventoryItem, threshold int) []model.InventoryItem {
	low := Filter(items, func(i model.InventoryItem) bool { return i.Quantity <= threshold })
	return SortBy(low,
		By(func(i model.InventoryItem) int { return i.Quantity }),
		By(func(i model.InventoryItem) int { return i.ID }),
	)
}

// Between keeps appointments whose date falls in [from, to], both ends inclusive.
// Only the date part of the timestamps and bounds is compared; untimed appointments are dropped.
func Between(from, to time.Time) Predicate[model.Appointment] {
	lo, hi := dateOf(from), dateOf(to)
	return func(a model.Appointment) bool {
		d, ok := a.Date()
		if !ok {
			return false
		}
		return !d.Before(lo) && !d.After(hi)
	}
}

// AppointmentsBetween applies Between and orders the result chronologically.
func AppointmentsBetween(appts []model.Appointment, from, to time.Time) []model.Appointment {
	return SortBy(Filter(appts, Between(from, to)), func(a, b model.Appointment) int {
		return a.Timestamp.Compare(*b.Timestamp)
	})
}

// AppointmentsPerDoctor counts appointments by doctor id.
func AppointmentsPerDoctor(appts []model.Appointment) map[int]int {
	return CountBy(appts, func(a model.Appointment) int { return a.DoctorID })
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
