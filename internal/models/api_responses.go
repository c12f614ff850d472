package models

// KeywordIdeasResponse is the payload of the keyword ideas endpoint.
type KeywordIdeasResponse struct {
	RequestID string          `json:"request_id"`
	Source    string          `json:"source"`
	Keyword   string          `json:"keyword"`
	Country   string          `json:"country"`
	Language  string          `json:"lang"`
	Items     []RawKeywordRow `json:"items"`
}

// ScoredKeywordIdeasResponse is returned when the caller asks the server to score rows.
type ScoredKeywordIdeasResponse struct {
	KeywordIdeasResponse
	Scored []ScoredKeywordRow `json:"scored"`
	Best   *ScoredKeywordRow  `json:"best"`
}

// SourceInfo describes a registered row source variant.
type SourceInfo struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
