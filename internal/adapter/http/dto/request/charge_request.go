package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrInvalidChargeBody = errors.New("request body is not valid json")
	ErrEmptyMPPayload    = errors.New("mp_payload cannot be empty")
)

// ChargeCreateRequest is the payload for POST /charges/{budget_id}.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.
type ChargeCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ParseChargeBody accepts the ChargeCreateRequest envelope, a bare Mercado
// Pago body or an empty body ("{}").
func ParseChargeBody(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidChargeBody
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var req ChargeCreateRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return nil, ErrInvalidChargeBody
			}
			wrapped := strings.TrimSpace(string(req.MPPayload))
			if wrapped == "" || wrapped == "null" {
				return nil, ErrEmptyMPPayload
			}
			return req.MPPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}
