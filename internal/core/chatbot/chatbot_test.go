package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testMatcher() *Matcher {
	return New([]QA{
		{ID: 1, Question: "How do I start a business?", Answer: "Validate your idea first.", Keywords: []string{"start", "begin", "startup"}},
		{ID: 2, Question: "How do I attract investors?", Answer: "Show traction.", Keywords: []string{"attract", "investors", "pitch"}},
		{ID: 3, Question: "What is a business model?", Answer: "How you make money.", Keywords: []string{"business model", "revenue"}},
	})
}

func TestAskExactMatch(t *testing.T) {
	m := testMatcher()

	// Exact match wins regardless of keyword overlap elsewhere.
	ans := m.Ask("  How Do I Start a Business?  ")
	assert.Equal(t, "Validate your idea first.", ans.Answer)
	assert.Equal(t, "high", ans.Confidence)
	assert.Equal(t, "How do I start a business?", ans.Question)
}

func TestAskKeywordMatch(t *testing.T) {
	m := testMatcher()

	ans := m.Ask("any tips on how to pitch to investors?")
	assert.Equal(t, "Show traction.", ans.Answer)
	assert.Equal(t, "high", ans.Confidence)
}

func TestAskSharedWordScoring(t *testing.T) {
	m := testMatcher()

	// "business" and "model" are shared words longer than 3 chars (+5 each),
	// plus the "business model" keyword substring (+10).
	ans := m.Ask("explain the business model idea")
	assert.Equal(t, "How you make money.", ans.Answer)
	assert.Equal(t, "What is a business model?", ans.Question)
}

func TestAskBelowThresholdFallsBack(t *testing.T) {
	m := testMatcher()

	ans := m.Ask("what is the weather today")
	assert.Equal(t, FallbackAnswer, ans.Answer)
	assert.Equal(t, "none", ans.Confidence)
	assert.Equal(t, "what is the weather today", ans.Question)
}

func TestAskTieKeepsFirstEntry(t *testing.T) {
	m := New([]QA{
		{ID: 1, Question: "alpha", Answer: "first", Keywords: []string{"tiebreaker"}},
		{ID: 2, Question: "beta", Answer: "second", Keywords: []string{"tiebreaker"}},
	})

	// Both entries score 10; the scan keeps the first one.
	ans := m.Ask("tiebreaker please")
	assert.Equal(t, "first", ans.Answer)
}

func TestSuggestions(t *testing.T) {
	m := testMatcher()

	got := m.Suggestions(2)
	assert.Len(t, got, 2)

	// Asking for more than available returns everything.
	got = m.Suggestions(10)
	assert.Len(t, got, 3)
}

func TestQuestions(t *testing.T) {
	m := testMatcher()

	refs := m.Questions()
	assert.Len(t, refs, 3)
	assert.Equal(t, 1, refs[0].ID)
	assert.Equal(t, "How do I start a business?", refs[0].Question)
}

func TestLoadFile(t *testing.T) {
	m, err := LoadFile("../../../data/business_qa.json")
	assert.NoError(t, err)
	assert.NotEmpty(t, m.Questions())

	_, err = LoadFile("does-not-exist.json")
	assert.Error(t, err)
}
