package service

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/strongpass/strongpass-go/internal/crypto"
	"github.com/strongpass/strongpass-go/internal/model"
)

const (
	// DefaultLength is used when neither the request nor the service
	// configuration sets a length.
	DefaultLength = 16
	// DefaultCount is used when a request leaves the count unset.
	DefaultCount = 1
)

// ErrInvalidRequest wraps request validation failures.
var ErrInvalidRequest = errors.New("invalid request")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	src           crypto.Source
	defaultLength int
	validate      *validator.Validate
}

// NewGeneratorService creates a GeneratorService drawing from src. Requests
// without a length get defaultLength characters. A nil src falls back to
// crypto.DefaultSource and a non-positive defaultLength to DefaultLength.
func NewGeneratorService(src crypto.Source, defaultLength int) *GeneratorService {
	if src == nil {
		src = crypto.DefaultSource()
	}
	if defaultLength <= 0 {
		defaultLength = DefaultLength
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &GeneratorService{
		src:           src,
		defaultLength: defaultLength,
		validate:      v,
	}
}

// Generate produces req.Count passwords of req.Length characters.
// Lengths below crypto.MinLength fail with crypto.ErrInvalidArgument.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.GenerateResponse{}, fmt.Errorf("%w: %s", ErrInvalidRequest, describeValidation(err))
	}

	if req.Length == 0 {
		req.Length = s.defaultLength
	}
	if req.Count == 0 {
		req.Count = DefaultCount
	}

	resp := model.GenerateResponse{
		Passwords: make([]model.GeneratedPassword, 0, req.Count),
	}

	for i := 0; i < req.Count; i++ {
		password, err := crypto.Generate(s.src, req.Length)
		if err != nil {
			return model.GenerateResponse{}, err
		}

		strength := crypto.Strength(password)
		gp := model.GeneratedPassword{
			Password: password,
			Length:   len(password),
			Strength: model.StrengthResponse{
				Score:   strength.Score,
				Label:   strength.Label,
				Percent: strength.Percent,
			},
		}

		if req.Hash {
			gp.Hash, err = crypto.HashSecret(password)
			if err != nil {
				return model.GenerateResponse{}, fmt.Errorf("hashing password: %w", err)
			}
		}

		resp.Passwords = append(resp.Passwords, gp)
	}

	slog.Debug("passwords generated", "count", req.Count, "length", req.Length, "hashed", req.Hash)

	return resp, nil
}

// describeValidation turns validator errors into a short client-facing message.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
