package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sreejapuram0307/sherising/internal/core/chatbot"
	"github.com/sreejapuram0307/sherising/internal/pkg/response"
)

// DefaultSuggestionCount is the number of suggested questions returned
const DefaultSuggestionCount = 5

// ChatbotHandler handles the FAQ chatbot endpoints
type ChatbotHandler struct {
	matcher *chatbot.Matcher
}

// NewChatbotHandler creates a new chatbot handler
func NewChatbotHandler(matcher *chatbot.Matcher) *ChatbotHandler {
	return &ChatbotHandler{matcher: matcher}
}

// AskRequest carries the chatbot question payload
type AskRequest struct {
	Question string `json:"question"`
}

// Ask answers a user question
// @Summary Ask the chatbot
// @Description Answer an entrepreneurship question from the Q&A table
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param body body AskRequest true "Question"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /chatbot/ask [post]
func (h *ChatbotHandler) Ask(c *fiber.Ctx) error {
	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Question) == "" {
		return response.BadRequest(c, "Question is required")
	}

	answer := h.matcher.Ask(req.Question)
	return response.Success(c, "Answer retrieved successfully", answer)
}

// Suggestions returns random suggested questions
// @Summary Suggested questions
// @Description A random sample of questions the chatbot can answer
// @Tags Chatbot
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /chatbot/suggestions [get]
func (h *ChatbotHandler) Suggestions(c *fiber.Ctx) error {
	suggestions := h.matcher.Suggestions(DefaultSuggestionCount)
	return response.SuccessWithCount(c, "Suggestions retrieved successfully", suggestions, len(suggestions))
}

// Questions lists every question the chatbot knows
// @Summary List chatbot questions
// @Description All questions in the Q&A table
// @Tags Chatbot
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /chatbot/questions [get]
func (h *ChatbotHandler) Questions(c *fiber.Ctx) error {
	questions := h.matcher.Questions()
	return response.SuccessWithCount(c, "Questions retrieved successfully", questions, len(questions))
}
