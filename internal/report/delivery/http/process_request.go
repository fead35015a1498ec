package http

import (
	"encoding/json"

	"analytics-srv/internal/report"
	"analytics-srv/pkg/solr"

	"github.com/gin-gonic/gin"
)

// keywordList accepts either a comma-separated string or a JSON array of
// keywords.
type keywordList []string

func (k *keywordList) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*k = asList
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	*k = solr.SplitKeywords(asString)
	return nil
}

type generateReq struct {
	Source       string      `json:"source"`
	Keywords     keywordList `json:"keywords"`
	Operator     string      `json:"operator"`
	DateStart    string      `json:"date_start"`
	DateEnd      string      `json:"date_end"`
	Language     string      `json:"language"`
	Sentiment    string      `json:"sentiment"`
	Location     string      `json:"location"`
	LocationType string      `json:"location_type"`
	Limit        int         `json:"limit"`
	TopN         int         `json:"count"`
}

func (h *handler) processGenerateRequest(c *gin.Context) (generateReq, error) {
	ctx := c.Request.Context()

	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGenerateRequest: invalid body: %v", err)
		return generateReq{}, errWrongBody
	}
	if req.Source == "" {
		return generateReq{}, errNoDataSource
	}
	return req, nil
}

func (req generateReq) toInput() report.GenerateInput {
	return report.GenerateInput{
		Core:     req.Source,
		Keywords: req.Keywords,
		Operator: req.Operator,
		Filters: solr.Filters{
			DateStart:    req.DateStart,
			DateEnd:      req.DateEnd,
			Language:     req.Language,
			Sentiment:    req.Sentiment,
			Location:     req.Location,
			LocationType: req.LocationType,
		},
		Limit: req.Limit,
		TopN:  req.TopN,
	}
}
