package models

// BatchAnalysisPayload is the structured payload the completion is forced to
// return for one batch of comments.
type BatchAnalysisPayload struct {
	Analyses []CommentAnalysisItem `json:"analyses"`
}

// CommentAnalysisItem is one per-comment analysis as returned by the model.
// CommentIndex is the zero-based position of the comment within the batch it
// was submitted in; it still needs range validation before it can be trusted.
type CommentAnalysisItem struct {
	CommentIndex     int           `json:"comment_index"`
	ProductSentiment SentimentType `json:"product_sentiment"`
	HasIssue         bool          `json:"has_issue"`
	IssueDescription *string       `json:"issue_description,omitempty"`
	Topic            string        `json:"topic"`
}
