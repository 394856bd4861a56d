package api

import (
	"net/http"
	"net/url"
	"strings"
)

// Operation names an Experience API call.
type Operation string

const (
	OpChooseVariations                       Operation = "chooseVariations"
	OpSearch                                 Operation = "search"
	OpTrackPageviews                         Operation = "trackPageviews"
	OpTrackEngagement                        Operation = "trackEngagement"
	OpTrackEvents                            Operation = "trackEvents"
	OpUpdateProductFeed                      Operation = "updateProductFeed"
	OpTrackTransactionStatusSpecificItem     Operation = "trackTransactionStatusSpecificItem"
	OpTrackTransactionStatusWholeTransaction Operation = "trackTransactionStatusWholeTransaction"
	OpUpdateBranchFeed                       Operation = "updateBranchFeed"
	OpReportOutages                          Operation = "reportOutages"
	OpUserDataAPI                            Operation = "userDataApi"
	OpExternalEventsAPI                      Operation = "externalEventsApi"
	OpProfileAnywhere                        Operation = "profileAnywhere"
)

// Endpoint describes how an Operation is sent over the wire.
type Endpoint struct {
	Method string
	// Path is relative to the region base URL and may hold {param} placeholders.
	Path string
	// PathParams lists the placeholders of Path, in order.
	PathParams []string
	// Query lists the accepted query parameters.
	Query []string
	// Body is true when the operation sends a JSON body.
	Body bool
	// Identity is true when the session and user identity is merged into the body.
	Identity bool
}

// operations keeps the table order for Operations.
var operations = []Operation{
	OpChooseVariations,
	OpSearch,
	OpTrackPageviews,
	OpTrackEngagement,
	OpTrackEvents,
	OpUpdateProductFeed,
	OpTrackTransactionStatusSpecificItem,
	OpTrackTransactionStatusWholeTransaction,
	OpUpdateBranchFeed,
	OpReportOutages,
	OpUserDataAPI,
	OpExternalEventsAPI,
	OpProfileAnywhere,
}

var endpoints = map[Operation]Endpoint{
	OpChooseVariations: {Method: http.MethodPost, Path: "/serve/user/choose", Body: true, Identity: true},
	OpSearch:           {Method: http.MethodPost, Path: "/serve/user/search", Body: true, Identity: true},
	OpTrackPageviews:   {Method: http.MethodPost, Path: "/collect/user/pageview", Body: true, Identity: true},
	OpTrackEngagement:  {Method: http.MethodPost, Path: "/collect/user/engagement", Body: true, Identity: true},
	OpTrackEvents:      {Method: http.MethodPost, Path: "/collect/user/event", Body: true, Identity: true},
	OpUpdateProductFeed: {
		Method:     http.MethodPost,
		Path:       "/feeds/{feedId}/bulk",
		PathParams: []string{"feedId"},
		Body:       true,
	},
	OpTrackTransactionStatusSpecificItem: {
		Method:     http.MethodGet,
		Path:       "/feeds/{feedId}/transaction/{transactionId}/item/{itemId}",
		PathParams: []string{"feedId", "transactionId", "itemId"},
	},
	OpTrackTransactionStatusWholeTransaction: {
		Method:     http.MethodGet,
		Path:       "/feeds/{feedId}/transaction/{transactionId}",
		PathParams: []string{"feedId", "transactionId"},
	},
	OpUpdateBranchFeed: {
		Method:     http.MethodPost,
		Path:       "/feeds/branch/{id}/inventory",
		PathParams: []string{"id"},
		Body:       true,
	},
	OpReportOutages: {Method: http.MethodPost, Path: "/feeds/branch/outage/bulk", Body: true},
	OpUserDataAPI: {
		Method:     http.MethodPost,
		Path:       "/userdata/{feedKey}/bulk",
		PathParams: []string{"feedKey"},
		Body:       true,
	},
	OpExternalEventsAPI: {Method: http.MethodPost, Path: "/userdata/events", Body: true, Identity: true},
	OpProfileAnywhere: {
		Method: http.MethodGet,
		Path:   "/userprofile",
		Query:  []string{"cuid", "cuidType", "affinity"},
	},
}

// Lookup returns the endpoint of op.
func Lookup(op Operation) (Endpoint, bool) {
	e, ok := endpoints[op]
	if !ok {
		return Endpoint{}, false
	}
	// callers get their own copies of the slices
	e.PathParams = append([]string(nil), e.PathParams...)
	e.Query = append([]string(nil), e.Query...)
	return e, true
}

// Operations returns every known operation.
func Operations() []Operation {
	return append([]Operation(nil), operations...)
}

// resolve builds the request URL of op relative to the base URL.
// Every declared path parameter must be present and non-empty, undeclared query keys are dropped.
func (e Endpoint) resolve(op Operation, params map[string]string, query url.Values) (*url.URL, error) {
	var missing []string
	segments := strings.Split(e.Path, "/")
	pathSegs := make([]string, len(segments))
	rawSegs := make([]string, len(segments))
	for i, seg := range segments {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			pathSegs[i], rawSegs[i] = seg, seg
			continue
		}
		name := seg[1 : len(seg)-1]
		v := params[name]
		if v == "" {
			missing = append(missing, name)
			continue
		}
		raw := url.PathEscape(v)
		if v == "." || v == ".." {
			// dot segments would be collapsed when resolved against the base url
			raw = strings.ReplaceAll(v, ".", "%2E")
		}
		pathSegs[i], rawSegs[i] = v, raw
	}
	if len(missing) > 0 {
		return nil, &PreconditionError{Operation: op, Missing: missing}
	}
	path, rawPath := strings.Join(pathSegs, "/"), strings.Join(rawSegs, "/")

	u := &url.URL{Path: path}
	if rawPath != path {
		u.RawPath = rawPath
	}

	if len(e.Query) > 0 && len(query) > 0 {
		q := url.Values{}
		for _, k := range e.Query {
			for _, v := range query[k] {
				if v != "" {
					q.Add(k, v)
				}
			}
		}
		u.RawQuery = q.Encode()
	}

	return u, nil
}
