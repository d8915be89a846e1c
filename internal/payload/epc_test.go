package payload

import (
	"strings"
	"testing"

	apperrors "qr-code-backend/pkg/errors"
)

func TestEpcDataText(t *testing.T) {
	e := &EpcData{
		Name:   "Wikimedia Foerdergesellschaft",
		IBAN:   "DE33100205000001194700",
		Amount: 20,
		Text:   "To Wikipedia",
	}
	got, err := e.Data()
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"BCD",
		"002",
		"1",
		"SCT",
		"",
		"Wikimedia Foerdergesellschaft",
		"DE33100205000001194700",
		"EUR20.00",
		"",
		"",
		"To Wikipedia",
	}, "\n")
	if got != want {
		t.Errorf("Data() = %q, want %q", got, want)
	}
}

func TestEpcDataReferenceAndBIC(t *testing.T) {
	e := &EpcData{
		Name:      "Red Cross of Belgium",
		IBAN:      "BE72000000001616",
		BIC:       "BPOTBEB1",
		Amount:    50.5,
		Reference: "RF18539007547034",
		Purpose:   "CHAR",
	}
	got, err := e.Data()
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"BCD",
		"001",
		"1",
		"SCT",
		"BPOTBEB1",
		"Red Cross of Belgium",
		"BE72000000001616",
		"EUR50.50",
		"CHAR",
		"RF18539007547034",
	}, "\n")
	if got != want {
		t.Errorf("Data() = %q, want %q", got, want)
	}
	if strings.HasSuffix(got, "\n") {
		t.Errorf("trailing empty lines must be trimmed: %q", got)
	}
}

func TestEpcDataValidation(t *testing.T) {
	tests := []struct {
		name string
		data EpcData
	}{
		{"missing name", EpcData{IBAN: "DE33100205000001194700", Amount: 1, Text: "x"}},
		{"missing iban", EpcData{Name: "x", Amount: 1, Text: "x"}},
		{"neither text nor reference", EpcData{Name: "x", IBAN: "y", Amount: 1}},
		{"both text and reference", EpcData{Name: "x", IBAN: "y", Amount: 1, Text: "a", Reference: "b"}},
		{"amount too small", EpcData{Name: "x", IBAN: "y", Amount: 0.005, Text: "a"}},
		{"amount too large", EpcData{Name: "x", IBAN: "y", Amount: 1000000000, Text: "a"}},
		{"zero amount", EpcData{Name: "x", IBAN: "y", Text: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.data.Data()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !apperrors.IsErrorType(err, apperrors.ErrInvalidRecord) {
				t.Errorf("error type = %v, want %v", apperrors.GetErrorType(err), apperrors.ErrInvalidRecord)
			}
		})
	}
}

func TestEpcDataAmountBounds(t *testing.T) {
	for _, amount := range []float64{epcMinAmount, epcMaxAmount} {
		e := &EpcData{Name: "x", IBAN: "y", Amount: amount, Text: "a"}
		if _, err := e.Data(); err != nil {
			t.Errorf("amount %v should be accepted: %v", amount, err)
		}
	}
}
