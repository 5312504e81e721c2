package paystack

import (
	"encoding/json"
	"fmt"
)

// Event is an inbound Paystack webhook payload.
type Event struct {
	Event string     `json:"event"`
	Data  ChargeData `json:"data"`
}

type ChargeData struct {
	Reference string   `json:"reference"`
	Status    string   `json:"status"`
	Amount    int64    `json:"amount"`
	Customer  Customer `json:"customer"`
	PaidAt    string   `json:"paid_at"`
	Metadata  Metadata `json:"metadata"`
}

type Customer struct {
	Email string `json:"email"`
}

type Metadata struct {
	CustomFields []CustomField `json:"custom_fields"`
}

type CustomField struct {
	VariableName string `json:"variable_name"`
	Value        string `json:"value"`
}

// FieldSet flattens the metadata custom-fields list into a name → value
// lookup. Scan order is list order, so the last occurrence of a duplicated
// name wins.
func (m Metadata) FieldSet() map[string]string {
	fields := make(map[string]string, len(m.CustomFields))
	for _, f := range m.CustomFields {
		fields[f.VariableName] = f.Value
	}
	return fields
}

func ParseEvent(body []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("parse event: %w", err)
	}
	return &event, nil
}
