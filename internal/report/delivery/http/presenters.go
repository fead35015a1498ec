package http

import (
	"sort"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
	"analytics-srv/pkg/solr"
)

type featureBreakdownResp struct {
	BySentiment      map[string][]model.ValueCount `json:"bySentiment"`
	AllSentiments    []model.ValueCount            `json:"allSentiments"`
	PositiveNegative []model.ScoredValue           `json:"positiveNegative"`
	NegativePositive []model.ScoredValue           `json:"negativePositive,omitempty"`
}

type locationsByLanguageResp struct {
	PerLanguage  map[string][]model.ValueCount `json:"perLanguage"`
	AllLanguages []model.ValueCount            `json:"allLanguages"`
}

type keywordReportResp struct {
	Count                 int                                  `json:"count"`
	Traffic               []model.DateCount                    `json:"traffic"`
	SentimentTimelines    map[string][]model.DateCount         `json:"sentimentTimelines"`
	SentimentLanguages    map[string][]model.ValueCount        `json:"sentimentPerLanguage"`
	LanguageTimelines     map[string]map[string][]model.DateCount `json:"languageTimelines"`
	LanguageDistributions []model.LanguageCount                `json:"languagesDistributions"`
	Features              map[string]*featureBreakdownResp     `json:"features"`
	TweetLocations        *featureBreakdownResp                `json:"tweetLocationsBySentiment"`
	UserLocations         *featureBreakdownResp                `json:"userLocationsBySentiment"`
	TweetLocationsByLang  locationsByLanguageResp              `json:"tweetLocationsByLanguage"`
	UserLocationsByLang   locationsByLanguageResp              `json:"userLocationsByLanguage"`
	TopTweets             map[string][]report.TopTweet         `json:"topTweets"`
	TopUsers              map[string][]report.TopUser          `json:"topUsers"`
}

type generateResp struct {
	DatasetOrigin string                        `json:"datasetOrigin"`
	Report        map[string]*keywordReportResp `json:"report"`
	Hits          int                           `json:"hits"`
	Keywords      []string                      `json:"keywords"`
	ShowReport    bool                          `json:"show_report"`
	DataSource    string                        `json:"dataSource"`
	Operator      string                        `json:"operator"`
	Error         string                        `json:"error,omitempty"`
}

func newFeatureBreakdownResp(fb *report.FeatureBreakdown) *featureBreakdownResp {
	if fb == nil {
		return nil
	}
	return &featureBreakdownResp{
		BySentiment:      fb.BySentiment,
		AllSentiments:    fb.AllSentiments,
		PositiveNegative: fb.PositiveNegative,
		NegativePositive: fb.NegativePositive,
	}
}

func newKeywordReportResp(kr *report.KeywordReport) *keywordReportResp {
	features := make(map[string]*featureBreakdownResp, len(kr.Features))
	for name, fb := range kr.Features {
		features[name] = newFeatureBreakdownResp(fb)
	}
	return &keywordReportResp{
		Count:                 kr.Count,
		Traffic:               kr.Traffic,
		SentimentTimelines:    kr.SentimentTimelines,
		SentimentLanguages:    kr.SentimentLanguages,
		LanguageTimelines:     kr.LanguageTimelines,
		LanguageDistributions: kr.LanguageDistributions,
		Features:              features,
		TweetLocations:        newFeatureBreakdownResp(kr.TweetLocationsBySentiment),
		UserLocations:         newFeatureBreakdownResp(kr.UserLocationsBySentiment),
		TweetLocationsByLang: locationsByLanguageResp{
			PerLanguage:  kr.TweetLocationsByLanguage.PerLanguage,
			AllLanguages: kr.TweetLocationsByLanguage.AllLanguages,
		},
		UserLocationsByLang: locationsByLanguageResp{
			PerLanguage:  kr.UserLocationsByLanguage.PerLanguage,
			AllLanguages: kr.UserLocationsByLanguage.AllLanguages,
		},
		TopTweets: kr.TopTweets,
		TopUsers:  kr.TopUsers,
	}
}

func (h *handler) newGenerateResp(req generateReq, output report.GenerateOutput) generateResp {
	resp := generateResp{
		DatasetOrigin: output.DatasetOrigin,
		Report:        make(map[string]*keywordReportResp, len(output.Report)),
		Hits:          output.Hits,
		ShowReport:    true,
		DataSource:    req.Source,
		Operator:      req.Operator,
		Error:         output.ErrorMessage,
	}
	for keyword, kr := range output.Report {
		resp.Report[keyword] = newKeywordReportResp(kr)
		if keyword != solr.AllKey {
			resp.Keywords = append(resp.Keywords, keyword)
		}
	}
	sort.Strings(resp.Keywords)
	return resp
}
