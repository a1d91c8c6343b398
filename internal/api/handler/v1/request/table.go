package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RenumberTableRequest struct {
	TableNumber int `json:"tableNumber"`
}

func (req *RenumberTableRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TableNumber, validation.Required, validation.Min(1)),
	)
}
