package web

import (
	"time"

	"github.com/goserg/foodlog/auth/guard"
	"github.com/goserg/foodlog/auth/token"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const userKey = "user"

const (
	noTokenMessage      = "No token, authorization denied"
	invalidTokenMessage = "Token is not valid"
)

// requireToken adapts guard.Authorize to fiber. A missing token is 401, a
// token that fails verification is 400.
func (s *Server) requireToken(ctx *fiber.Ctx) error {
	res := guard.Authorize(s.verifier, ctx.Get(fiber.HeaderAuthorization))
	switch res.Reason {
	case guard.NoCredential:
		return ctx.Status(fiber.StatusUnauthorized).JSON(messageResponse{Message: noTokenMessage})
	case guard.InvalidCredential:
		s.log.WithError(res.Err).WithField("reason", res.Reason.String()).Debug("token rejected")
		return ctx.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: invalidTokenMessage})
	}
	ctx.Locals(userKey, res.Claims)
	return ctx.Next()
}

func claimsFrom(ctx *fiber.Ctx) (token.Claims, bool) {
	claims, ok := ctx.Locals(userKey).(token.Claims)
	return claims, ok
}

// requestLogger logs one line per request. Errors from the chain are turned
// into responses here so the logged status is the one the client gets.
func requestLogger(l *logrus.Entry) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		chainErr := ctx.Next()
		if chainErr != nil {
			if err := ctx.App().ErrorHandler(ctx, chainErr); err != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError)
			}
		}
		entry := l.WithFields(logrus.Fields{
			"method":  ctx.Method(),
			"path":    ctx.Path(),
			"status":  ctx.Response().StatusCode(),
			"latency": time.Since(start),
		})
		if chainErr != nil {
			entry = entry.WithError(chainErr)
		}
		entry.Info("request")
		return nil
	}
}
