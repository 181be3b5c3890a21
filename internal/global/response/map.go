package response

import (
	"errors"

	"personal-info-system/internal/nlu"
	"personal-info-system/internal/schema"
	"personal-info-system/internal/store"
)

// MapError 把引擎各层的哨兵错误映射为带错误码的响应错误，
// 其余错误一律按数据库错误处理
func MapError(err error) *Error {
	switch {
	case errors.Is(err, schema.ErrUnknownEntity):
		return ErrUnknownEntity.WithOrigin(err)
	case errors.Is(err, store.ErrInvalidField):
		return ErrInvalidField.WithOrigin(err)
	case errors.Is(err, store.ErrValidation):
		return ErrValidation.WithOrigin(err)
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound.WithOrigin(err)
	case errors.Is(err, nlu.ErrMalformedIntent):
		return ErrMalformedIntent.WithOrigin(err)
	case errors.Is(err, nlu.ErrUnrecognizedIntent):
		return ErrUnrecognizedIntent.WithOrigin(err)
	case errors.Is(err, nlu.ErrUpstream):
		return ErrUpstream.WithOrigin(err)
	default:
		return ErrDatabase.WithOrigin(err)
	}
}
