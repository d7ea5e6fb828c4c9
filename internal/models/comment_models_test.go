package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentimentTypeValid(t *testing.T) {
	for _, s := range []SentimentType{SentimentPositive, SentimentNegative, SentimentNeutral, SentimentMixed} {
		assert.True(t, s.Valid(), "%q should be valid", s)
	}
	assert.False(t, SentimentType("ecstatic").Valid())
	assert.False(t, SentimentType("").Valid())
	assert.False(t, SentimentType("Positive").Valid())
}

func TestCommentAnalysisOmitsAbsentIssueDescription(t *testing.T) {
	raw, err := json.Marshal(CommentAnalysis{
		Comment:          "solid video",
		ProductSentiment: SentimentPositive,
		Topic:            "general praise",
	})
	require.NoError(t, err)

	var asMap map[string]any
	require.NoError(t, json.Unmarshal(raw, &asMap))
	assert.NotContains(t, asMap, "issue_description")
	assert.Equal(t, false, asMap["has_issue"])
}
