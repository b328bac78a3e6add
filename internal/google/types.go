// Package google is a client for the Google Custom Search JSON API.
package google

// Query is everything needed to issue one search request.
type Query struct {
	Text   string // literal query text as typed by the user
	APIKey string
	CX     string // Programmable Search Engine ID
	Safe   bool
}

// Item is a single search result. Its identity is its position in
// Response.Items.
type Item struct {
	Title       string
	Link        string // target URL opened on activation
	DisplayLink string
	Snippet     string
}

// Response is one page of search results. It is never mutated after Search
// returns it.
type Response struct {
	TotalResults string // formatted, e.g. "1,230,000"
	SearchTime   string // formatted seconds, e.g. "0.31"
	Items        []Item
}

// searchResponse mirrors the subset of the API payload we consume.
type searchResponse struct {
	SearchInformation searchInformation `json:"searchInformation"`
	Items             []searchResult    `json:"items"`
}

type searchInformation struct {
	TotalResults          string  `json:"totalResults"`
	FormattedTotalResults string  `json:"formattedTotalResults"`
	SearchTime            float64 `json:"searchTime"`
	FormattedSearchTime   string  `json:"formattedSearchTime"`
}

type searchResult struct {
	Title        string `json:"title"`
	HTMLTitle    string `json:"htmlTitle"`
	Link         string `json:"link"`
	DisplayLink  string `json:"displayLink"`
	Snippet      string `json:"snippet"`
	FormattedURL string `json:"formattedUrl"`
}

// apiErrorBody is the error envelope returned with non-2xx responses.
type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (r searchResponse) toResponse() *Response {
	items := make([]Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, Item{
			Title:       it.Title,
			Link:        it.Link,
			DisplayLink: it.DisplayLink,
			Snippet:     it.Snippet,
		})
	}
	total := r.SearchInformation.FormattedTotalResults
	if total == "" {
		total = r.SearchInformation.TotalResults
	}
	return &Response{
		TotalResults: total,
		SearchTime:   r.SearchInformation.FormattedSearchTime,
		Items:        items,
	}
}
