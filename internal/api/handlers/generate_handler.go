package handlers

import (
	"strings"

	"Grocery-Tracker/domain"
	"Grocery-Tracker/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type (
	// GenerateHandler forwards a raw prompt to the model using the key held
	// by the server. Its replies use a flat shape instead of presenters.
	GenerateHandler interface {
		Generate(c *fiber.Ctx) error
	}

	generateHandler struct {
		model  llm.Client
		logger zerolog.Logger
	}
)

func NewGenerateHandler(model llm.Client, logger zerolog.Logger) GenerateHandler {
	return &generateHandler{
		model:  model,
		logger: logger,
	}
}

func (h *generateHandler) Generate(c *fiber.Ctx) error {
	req := new(domain.GenerateRequest)
	if err := c.BodyParser(req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(domain.GenerateErrorResponse{
			Error: domain.MessagePromptRequired,
		})
	}

	text, err := h.model.Generate(c.UserContext(), req.Prompt)
	if err != nil {
		h.logger.Error().Err(err).Msg("generate proxy failed")
		if upstream, ok := llm.IsUpstream(err); ok {
			return c.Status(fiber.StatusBadGateway).JSON(domain.GenerateErrorResponse{
				Error:  domain.MessageUpstreamFailed,
				Status: upstream.StatusCode,
				Detail: upstream.Detail,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(domain.GenerateErrorResponse{
			Error: domain.MessageInternalError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(domain.GenerateResponse{Text: text})
}
