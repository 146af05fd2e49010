package swiftype

import (
	"bytes"
	"encoding/json"

	"consultant-gaps/internal/consultant"
)

type filter struct {
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

type searchRequest struct {
	EngineKey     string                       `json:"engine_key"`
	PerPage       int                          `json:"per_page"`
	Page          int                          `json:"page"`
	SortDirection map[string]string            `json:"sort_direction"`
	SortField     map[string]string            `json:"sort_field"`
	Query         string                       `json:"q"`
	Filters       map[string]map[string]filter `json:"filters"`
}

type PageInfo struct {
	CurrentPage      int `json:"current_page"`
	NumPages         int `json:"num_pages"`
	PerPage          int `json:"per_page"`
	TotalResultCount int `json:"total_result_count"`
}

type searchResponse struct {
	Info    map[string]PageInfo            `json:"info"`
	Records map[string][]consultant.Record `json:"records"`
}

// Page is one decoded page of results for the configured document type.
type Page struct {
	Info    PageInfo
	Records []consultant.Record
}

func (c *Client) newSearchRequest(page int) searchRequest {
	docType := c.opts.DocumentType
	return searchRequest{
		EngineKey:     c.opts.EngineKey,
		PerPage:       c.opts.PerPage,
		Page:          page,
		SortDirection: map[string]string{docType: c.opts.SortDirection},
		SortField:     map[string]string{docType: c.opts.SortField},
		Query:         "",
		Filters: map[string]map[string]filter{
			docType: {
				"type": {Type: "and", Values: c.opts.TypeFilter},
			},
		},
	}
}

// numbers are kept as json.Number so ids and ranks are written back out
// exactly as the api sent them.
func decodePage(body []byte, docType string) (Page, error) {
	var res searchResponse
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	err := dec.Decode(&res)
	if err != nil {
		return Page{}, err
	}
	return Page{
		Info:    res.Info[docType],
		Records: res.Records[docType],
	}, nil
}
