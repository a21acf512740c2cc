package common

import (
	"net/http"
	"strconv"
)

// DefaultPageLimit is applied when the caller does not pass a limit.
const DefaultPageLimit = 20

// MaxPageLimit caps page sizes to keep single-request reads bounded.
const MaxPageLimit = 100

// PageParams represents cursor pagination parameters
type PageParams struct {
	Limit     int32
	NextToken string
}

// ExtractPageParams extracts pagination parameters from the request.
// The token is the opaque cursor returned by the previous page.
func ExtractPageParams(r *http.Request) PageParams {
	params := PageParams{
		Limit:     DefaultPageLimit,
		NextToken: r.URL.Query().Get("nextToken"),
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > MaxPageLimit {
				l = MaxPageLimit
			}
			params.Limit = int32(l)
		}
	}

	return params
}
