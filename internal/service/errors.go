package service

import (
	"strconv"

	"go.uber.org/zap"

	"nc-news-api/internal/domain"
	"nc-news-api/internal/response"
)

// ParseID parses a path identifier. Anything that is not a base 10 integer is malformed.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, response.NewMalformedIDError(raw)
	}
	return id, nil
}

// notFound builds the not-found error for kind, quoting the key the client sent
func notFound(kind domain.EntityKind, key string) *response.AppError {
	field := "ID"
	switch kind {
	case domain.EntityKindUser:
		field = "username"
	case domain.EntityKindTopic:
		field = "slug"
	}
	return response.NewNotFoundError(string(kind), field, key)
}

// storeFailure logs a store error and hides it behind a generic internal error
func storeFailure(logger *zap.Logger, operation string, err error, fields ...zap.Field) *response.AppError {
	logger.Error("Store operation failed",
		append([]zap.Field{zap.String("operation", operation), zap.Error(err)}, fields...)...,
	)
	return response.NewInternalError(operation + ": " + err.Error())
}
