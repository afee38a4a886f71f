// Package chatbot implements the keyword-matching FAQ responder.
// The Q&A table is loaded once at startup and never mutated; handlers
// receive the matcher by injection.
package chatbot

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

// FallbackAnswer is returned when no entry scores above the threshold
const FallbackAnswer = "Sorry, I don't have an answer for that yet. I'm trained on entrepreneurship and investment topics. Try asking about startups, funding, investors, business models, or scaling your business!"

// matchThreshold is the minimum score required to return a match
const matchThreshold = 10

// QA is one question/answer entry in the table
type QA struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
}

// Answer is the matcher's reply to a user question
type Answer struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Confidence string `json:"confidence"`
}

// Matcher scores user questions against an immutable Q&A table
type Matcher struct {
	entries []QA
}

// New creates a matcher over the given entries
func New(entries []QA) *Matcher {
	return &Matcher{entries: entries}
}

// LoadFile reads the Q&A table from a JSON file and builds a matcher
func LoadFile(path string) (*Matcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chatbot data: %w", err)
	}

	var entries []QA
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse chatbot data: %w", err)
	}

	return New(entries), nil
}

// Ask finds the best-scoring entry for a user question. An exact
// normalized match scores 100; otherwise each keyword substring hit adds
// 10 and each shared word longer than 3 characters adds 5. Ties keep the
// first-encountered entry. Below the threshold the canned fallback is
// returned with confidence "none".
func (m *Matcher) Ask(question string) Answer {
	normalized := strings.ToLower(strings.TrimSpace(question))

	var best *QA
	highest := 0

	for i := range m.entries {
		qa := &m.entries[i]
		score := 0

		if strings.ToLower(qa.Question) == normalized {
			score = 100
		} else {
			for _, keyword := range qa.Keywords {
				if strings.Contains(normalized, strings.ToLower(keyword)) {
					score += 10
				}
			}

			userWords := strings.Split(normalized, " ")
			for _, word := range strings.Split(strings.ToLower(qa.Question), " ") {
				if len(word) > 3 && containsWord(userWords, word) {
					score += 5
				}
			}
		}

		if score > highest {
			highest = score
			best = qa
		}
	}

	if best == nil || highest < matchThreshold {
		return Answer{Question: question, Answer: FallbackAnswer, Confidence: "none"}
	}

	return Answer{Question: best.Question, Answer: best.Answer, Confidence: "high"}
}

// Suggestions returns up to n random questions from the table
func (m *Matcher) Suggestions(n int) []string {
	perm := rand.Perm(len(m.entries))
	if n > len(perm) {
		n = len(perm)
	}

	suggested := make([]string, 0, n)
	for _, idx := range perm[:n] {
		suggested = append(suggested, m.entries[idx].Question)
	}
	return suggested
}

// QuestionRef identifies one entry without its answer
type QuestionRef struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
}

// Questions lists all entries in table order
func (m *Matcher) Questions() []QuestionRef {
	refs := make([]QuestionRef, 0, len(m.entries))
	for _, qa := range m.entries {
		refs = append(refs, QuestionRef{ID: qa.ID, Question: qa.Question})
	}
	return refs
}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
