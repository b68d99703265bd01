package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
)

// formValidate checks the required-field tags on the API input structs
// before a mutation is dispatched.
var formValidate = validator.New(validator.WithRequiredStructEnabled())

// requiredFieldsMessage is shown when a submitted form misses required
// inputs that slipped past the browser.
const requiredFieldsMessage = "Required fields are missing"

// listParamsFromQuery reads page/limit from the query string. Invalid or
// absent values fall back to the backend's defaults.
func listParamsFromQuery(r *http.Request) hrmsapi.ListParams {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if page < 0 {
		page = 0
	}
	if limit < 0 {
		limit = 0
	}
	return hrmsapi.ListParams{Page: page, Limit: limit}
}

// formFloat parses a decimal form field, returning 0 when absent or bad.
func formFloat(r *http.Request, field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue(field)), 64)
	if err != nil {
		return 0
	}
	return v
}

// redirectBack returns to the page the action was submitted from, falling
// back to the root redirect.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, backTarget(r), http.StatusSeeOther)
}

// redirectBackError returns to the submitting page carrying a user-facing
// message for the failed action; the target page renders it as PageData.Err.
func redirectBackError(w http.ResponseWriter, r *http.Request, msg string) {
	u, err := url.Parse(backTarget(r))
	if err != nil {
		u = &url.URL{Path: "/"}
	}
	q := u.Query()
	q.Set("err", msg)
	u.RawQuery = q.Encode()
	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}

// backTarget resolves the Referer to a same-app path, defaulting to "/".
func backTarget(r *http.Request) string {
	referer := r.Header.Get("Referer")
	if referer == "" {
		return "/"
	}
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	if u.IsAbs() {
		target := u.Path
		if u.RawQuery != "" {
			target += "?" + u.RawQuery
		}
		return target
	}
	return u.RequestURI()
}
