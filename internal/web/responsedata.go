package web

import (
	"errors"
	"strings"

	authservice "github.com/goserg/foodlog/auth/service"
	"github.com/goserg/foodlog/internal/domain"

	"github.com/gofiber/fiber/v2"
)

const serverErrorMessage = "Server error"

type messageResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

// validationMessages lists the individual problems of a joined validation
// error, without the bare ErrValidation sentinel itself.
func validationMessages(err error) []string {
	var msgs []string
	for _, err := range unwrap(err) {
		if err == domain.ErrValidation {
			continue
		}
		msgs = append(msgs, err.Error())
	}
	if len(msgs) == 0 {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// handleError is the fiber ErrorHandler. Every handler error ends up here
// and leaves as {"message": ...}.
func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	code, resp := s.errorResponse(err)
	return ctx.Status(code).JSON(resp)
}

func (s *Server) errorResponse(err error) (int, messageResponse) {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code, messageResponse{Message: fe.Message}
	case errors.Is(err, authservice.ErrUserExists),
		errors.Is(err, authservice.ErrInvalidCredentials):
		return fiber.StatusBadRequest, messageResponse{Message: err.Error()}
	case errors.Is(err, domain.ErrValidation):
		msgs := validationMessages(err)
		return fiber.StatusBadRequest, messageResponse{
			Message: strings.Join(msgs, "; "),
			Errors:  msgs,
		}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, messageResponse{Message: err.Error()}
	}

	s.log.WithError(err).Error("request failed")
	if s.cfg.Debug {
		return fiber.StatusInternalServerError, messageResponse{Message: err.Error()}
	}
	return fiber.StatusInternalServerError, messageResponse{Message: serverErrorMessage}
}
