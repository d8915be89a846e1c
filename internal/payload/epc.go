// internal/payload/epc.go
package payload

import (
	"fmt"
	"strings"

	apperrors "qr-code-backend/pkg/errors"
)

// EPC amount bounds in Euro, per the EPC069-12 guidelines.
const (
	epcMinAmount = 0.01
	epcMaxAmount = 999999999.99
)

// EpcData represents the data of a European Payments Council Quick Response
// Code (EPC QR Code) for initiating a SEPA credit transfer.
//
// Exactly one of Text (unstructured remittance information) or Reference
// (structured creditor reference) must be provided. Readers of payment codes
// require fixed rendering parameters, so callers must render this payload
// with error correction level M and error boosting disabled; see
// RenderOverrides.
type EpcData struct {
	Name      string  `json:"name"`
	IBAN      string  `json:"iban"`
	Amount    float64 `json:"amount"`
	Text      string  `json:"text,omitempty"`
	Reference string  `json:"reference,omitempty"`
	BIC       string  `json:"bic,omitempty"`
	Purpose   string  `json:"purpose,omitempty"`
}

// Data builds the EPC QR payload. It fails when the record invariants are
// violated; missing optional fields are simply omitted.
func (e *EpcData) Data() (string, error) {
	if err := e.validate(); err != nil {
		return "", err
	}

	// Version 001 mandates a BIC, version 002 leaves it optional.
	version := "002"
	if e.BIC != "" {
		version = "001"
	}

	lines := []string{
		"BCD",
		version,
		"1", // charset: UTF-8
		"SCT",
		e.BIC,
		e.Name,
		e.IBAN,
		fmt.Sprintf("EUR%.2f", e.Amount),
		e.Purpose,
		e.Reference,
		e.Text,
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), nil
}

func (e *EpcData) validate() error {
	if e.Name == "" {
		return apperrors.NewInvalidRecordError("EPC data requires a beneficiary name")
	}
	if e.IBAN == "" {
		return apperrors.NewInvalidRecordError("EPC data requires an IBAN")
	}
	if (e.Text == "") == (e.Reference == "") {
		return apperrors.NewInvalidRecordError("EPC data requires either text or reference, but not both")
	}
	if e.Amount < epcMinAmount || e.Amount > epcMaxAmount {
		return apperrors.NewInvalidRecordError(fmt.Sprintf("EPC amount must be in [%.2f, %.2f]", epcMinAmount, epcMaxAmount))
	}
	return nil
}
