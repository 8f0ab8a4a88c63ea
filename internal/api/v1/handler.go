package v1

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/smsassistent/client-go/internal/constants"
	"github.com/smsassistent/client-go/internal/service"
	"github.com/smsassistent/client-go/pkg/smsassistent"
	"go.uber.org/zap"
)

type Handler struct {
	logger  *zap.Logger
	service service.SMSService
}

func NewHandler(logger *zap.Logger, service service.SMSService) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Balance(c *fiber.Ctx) error {
	ctx := c.UserContext()

	balance, err := h.service.Balance(ctx)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.JSON(BalanceResponse{Balance: balance})
}

func (h *Handler) Message(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SendMessageRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return badRequest(c)
	}

	sendAt, err := parseSendAt(request.SendAt)
	if err != nil {
		h.logger.Warn("Invalid send_at value",
			zap.Error(err),
			zap.String("send_at", request.SendAt))
		return badRequest(c)
	}

	cmd := service.SendMessageCommand{
		Phone:  request.To,
		Text:   request.Text,
		Sender: request.Sender,
		SendAt: sendAt,
	}

	id, err := h.service.SendMessage(ctx, cmd)
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Error(err),
			zap.String("to", request.To))
		return h.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(SendMessageResponse{MessageID: id, Status: "submitted"})
}

func (h *Handler) Messages(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SendBatchRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return badRequest(c)
	}

	sendAt, err := parseSendAt(request.SendAt)
	if err != nil {
		h.logger.Warn("Invalid send_at value",
			zap.Error(err),
			zap.String("send_at", request.SendAt))
		return badRequest(c)
	}

	messages := make([]smsassistent.Message, 0, len(request.Messages))
	for _, m := range request.Messages {
		messages = append(messages, smsassistent.Message{Phone: m.To, Text: m.Text, Sender: m.Sender})
	}

	cmd := service.SendBatchCommand{
		Messages: messages,
		Defaults: smsassistent.BatchDefaults{Text: request.DefaultText, Sender: request.DefaultSender},
		SendAt:   sendAt,
	}

	accepted, err := h.service.SendBatch(ctx, cmd)
	if err != nil {
		h.logger.Error("Failed to send batch",
			zap.Error(err),
			zap.Int("messages", len(messages)))
		return h.renderError(c, err)
	}

	status := fiber.StatusCreated
	if !accepted {
		status = fiber.StatusBadGateway
	}

	return c.Status(status).JSON(SendBatchResponse{Accepted: accepted, Messages: len(messages)})
}

func parseSendAt(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Code:    constants.ErrCodeInvalidRequestBody,
		Message: constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
	})
}

// renderError maps the client library's typed errors to HTTP responses.
func (h *Handler) renderError(c *fiber.Ctx, err error) error {
	var svcErr *smsassistent.ServiceError
	var parseErr *smsassistent.ParseError

	switch {
	case errors.Is(err, smsassistent.ErrAuthentication):
		code := constants.ErrCodeAuthentication
		return c.Status(constants.GetHTTPStatus(code)).JSON(ErrorResponse{
			Code:    code,
			Message: constants.GetErrorMessage(code),
		})

	case errors.As(err, &svcErr):
		code := constants.ErrCodeServiceRejected
		return c.Status(constants.GetHTTPStatus(code)).JSON(ErrorResponse{
			Code:        code,
			Message:     svcErr.Description,
			ServiceCode: svcErr.Code,
		})

	case errors.As(err, &parseErr):
		code := constants.ErrCodeProviderResponse
		return c.Status(constants.GetHTTPStatus(code)).JSON(ErrorResponse{
			Code:    code,
			Message: constants.GetErrorMessage(code),
		})

	default:
		code := constants.ErrCodeInternalError
		return c.Status(constants.GetHTTPStatus(code)).JSON(ErrorResponse{
			Code:    code,
			Message: constants.GetErrorMessage(code),
		})
	}
}
