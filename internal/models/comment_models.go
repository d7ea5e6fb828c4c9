package models

// SentimentType classifies how a commenter feels about the product itself,
// not their general mood.
type SentimentType string

const (
	SentimentPositive SentimentType = "positive"
	SentimentNegative SentimentType = "negative"
	SentimentNeutral  SentimentType = "neutral"
	SentimentMixed    SentimentType = "mixed"
)

func (s SentimentType) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral, SentimentMixed:
		return true
	default:
		return false
	}
}

// CommentAnalysis is the resolved analysis for a single comment.
// OriginalIndex is the comment's position within the reduced comment set.
// IssueDescription carries no meaning when HasIssue is false.
type CommentAnalysis struct {
	Comment          string        `json:"comment"`
	OriginalIndex    int           `json:"original_index"`
	ProductSentiment SentimentType `json:"product_sentiment"`
	HasIssue         bool          `json:"has_issue"`
	IssueDescription *string       `json:"issue_description,omitempty"`
	Topic            string        `json:"topic"`
}

type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
	Mixed    int `json:"mixed"`
}

// AnalysisStats aggregates a full set of comment analyses. UniqueTopics counts
// distinct topic labels by exact, case-sensitive string match.
type AnalysisStats struct {
	TotalAnalyzed      int                `json:"total_analyzed"`
	SentimentBreakdown SentimentBreakdown `json:"sentiment_breakdown"`
	IssuesFound        int                `json:"issues_found"`
	UniqueTopics       int                `json:"unique_topics"`
}

type PruneStats struct {
	Total int `json:"total"`
	Kept  int `json:"kept"`
}
