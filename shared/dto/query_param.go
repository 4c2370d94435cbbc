package dto

import (
	"net/http"
	"strconv"
	"tourcrm/shared/constant"
)

type QueryParams struct {
	Page   int   `json:"page"   validate:"omitempty,min=1"`
	Limit  int   `json:"limit"  validate:"omitempty,min=1,max=500"`
	Activo *bool `json:"activo" validate:"omitempty"`

	// OrderBy is set by services only, never read from the request.
	OrderBy string `json:"-"`
}

// FromRequest populates QueryParams from the HTTP request.
// Absent or invalid page/limit values leave the list unpaginated unless
// `defaultRequest` is set, in which case the package defaults are applied.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if activo := queryParams.Get(constant.RequestParamActivo); activo != "" {
		if value, err := strconv.ParseBool(activo); err == nil {
			q.Activo = &value
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}

	if q.Limit > 0 && q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}
}

// Paginated reports whether the caller asked for a page of rows.
func (q *QueryParams) Paginated() bool {
	return q.Limit > 0
}
