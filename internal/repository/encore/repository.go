// Package encore implements the repository contracts over the Encore backend's
// REST API. Team members and notifications are not served by Encore and stay in
// the dashboard's own store.
package encore

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	encoreclient "brand-dashboard-be/internal/encore"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

type base struct {
	client *encoreclient.Client
}

// notFound turns the client's 404 into the (nil, nil) contract of Find methods.
func notFound(err error) bool {
	return errors.Is(err, encoreclient.ErrNotFound)
}

type query url.Values

func newQuery() query {
	return query(url.Values{})
}

func (q query) set(key, value string) query {
	if value != "" {
		url.Values(q).Set(key, value)
	}
	return q
}

func (q query) id(key string, id *uuid.UUID) query {
	if id != nil {
		url.Values(q).Set(key, id.String())
	}
	return q
}

func (q query) time(key string, t *time.Time) query {
	if t != nil {
		url.Values(q).Set(key, t.UTC().Format(time.RFC3339))
	}
	return q
}

func (q query) page(p pagination.Params) query {
	if contract.IsPaged(p) {
		url.Values(q).Set("page", strconv.Itoa(p.Page))
		url.Values(q).Set("pageSize", strconv.Itoa(p.PageSize))
	}
	return q
}

func (q query) sort(s contract.Sort) query {
	if s.Field != "" {
		url.Values(q).Set("sortBy", s.Field)
		order := "asc"
		if s.Desc {
			order = "desc"
		}
		url.Values(q).Set("sortOrder", order)
	}
	return q
}

func (q query) values() url.Values {
	return url.Values(q)
}

func joinStatuses[S ~string](statuses []S) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}
