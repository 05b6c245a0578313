package memory

import (
	"sort"
	"strings"
	"time"

	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/repository/contract"
)

type base struct {
	store *Store
	uow   *UnitOfWork
}

func (b base) journal() *journal {
	if b.uow == nil {
		return nil
	}
	return b.uow.journal
}

// page sorts items with less, then cuts the requested page. A zero page keeps everything.
func page[T any](items []T, p pagination.Params, less func(a, b T) bool) ([]T, int64) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	total := int64(len(items))
	if !contract.IsPaged(p) {
		return items, total
	}
	return pagination.Slice(items, p), total
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func within(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func oneOf[T comparable](v T, set []T) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func newestFirst(a, b time.Time) bool {
	return a.After(b)
}
