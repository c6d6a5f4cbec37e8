package copywriting

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// GenerationRequest is the inbound body of POST /api/generate.
//
// Features stays raw because clients send either an array of lines or a
// single newline separated string; NormalizeFeatures decides which.
type GenerationRequest struct {
	ProductName    string          `json:"productName"    validate:"required"`
	Features       json.RawMessage `json:"features"`
	TargetCustomer string          `json:"targetCustomer" validate:"required"`
}

// Validate checks the required text fields in declaration order, so a missing
// product name is reported before a missing target customer.
func (r *GenerationRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	switch fieldErrs[0].Field() {
	case "ProductName":
		return ErrMissingProductName
	case "TargetCustomer":
		return ErrMissingTargetCustomer
	default:
		return ErrValidation
	}
}

// Brief is a validated request: the inputs the prompt template is rendered from.
type Brief struct {
	ProductName    string
	Features       []string
	TargetCustomer string
}

// NewBrief validates req and normalizes its features.
func NewBrief(req *GenerationRequest) (*Brief, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	features, err := NormalizeFeatures(req.Features)
	if err != nil {
		return nil, err
	}

	return &Brief{
		ProductName:    req.ProductName,
		Features:       features,
		TargetCustomer: req.TargetCustomer,
	}, nil
}
