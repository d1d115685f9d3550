package handler

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"labor-intel/internal/delivery/http/middleware"
	"labor-intel/internal/pkg/response"
	"labor-intel/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// bindBody decodes the JSON body into req and runs its validate tags.
func bindBody(c fiber.Ctx, req any) error {
	if err := c.Bind().Body(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
		}
		fields := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		return middleware.NewAppError(fiber.StatusBadRequest, "validation failed", fields, err)
	}
	return nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, key+" must be an integer", nil, err)
	}
	return v, nil
}

func parseQueryFloat(c fiber.Ctx, key string) (*float64, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, key+" must be a number", nil, err)
	}
	return &v, nil
}

func parseQueryBool(c fiber.Ctx, key string) (*bool, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, key+" must be a boolean", nil, err)
	}
	return &v, nil
}

func parseParamID(c fiber.Ctx, key string) (int64, error) {
	v, err := strconv.ParseInt(c.Params(key), 10, 64)
	if err != nil || v <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, key+" must be a positive integer", nil, err)
	}
	return v, nil
}

func parsePage(c fiber.Ctx) (usecase.PageInput, error) {
	page, err := parseQueryIntStrict(c, "page", 0)
	if err != nil {
		return usecase.PageInput{}, err
	}
	perPage, err := parseQueryIntStrict(c, "per_page", 0)
	if err != nil {
		return usecase.PageInput{}, err
	}
	return usecase.PageInput{Page: page, PerPage: perPage}, nil
}

func pageMeta(p usecase.PageResult) response.PageMeta {
	return response.PageMeta{Page: p.Page, PerPage: p.PerPage, Total: p.Total, Pages: p.Pages}
}

// mapUsecaseError turns usecase error kinds into HTTP errors. Client errors
// keep the usecase message.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrRateLimited):
		return middleware.NewAppError(fiber.StatusTooManyRequests, response.MessageTooManyRequests, nil, err)
	case errors.Is(err, usecase.ErrDataAccess), errors.Is(err, usecase.ErrUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
