package paystack

import "testing"

func TestParseEvent(t *testing.T) {
	body := []byte(`{
		"event": "charge.success",
		"data": {
			"reference": "R1",
			"status": "success",
			"amount": 5000,
			"customer": {"email": "a@b.com"},
			"paid_at": "2024-01-01 10:00:00",
			"metadata": {"custom_fields": [
				{"variable_name": "chat_id", "value": "42"},
				{"variable_name": "full_name", "value": "Ama Mensah"}
			]}
		}
	}`)

	event, err := ParseEvent(body)
	if err != nil {
		t.Fatalf("parse event: %v", err)
	}
	if event.Event != "charge.success" {
		t.Fatalf("unexpected event type %q", event.Event)
	}
	if event.Data.Reference != "R1" {
		t.Fatalf("unexpected reference %q", event.Data.Reference)
	}
	if event.Data.Amount != 5000 {
		t.Fatalf("unexpected amount %d", event.Data.Amount)
	}
	if event.Data.Customer.Email != "a@b.com" {
		t.Fatalf("unexpected email %q", event.Data.Customer.Email)
	}

	fields := event.Data.Metadata.FieldSet()
	if fields["chat_id"] != "42" {
		t.Fatalf("unexpected chat_id %q", fields["chat_id"])
	}
	if fields["full_name"] != "Ama Mensah" {
		t.Fatalf("unexpected full_name %q", fields["full_name"])
	}
}

func TestParseEvent_Invalid(t *testing.T) {
	if _, err := ParseEvent([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestFieldSet_LastMatchWins(t *testing.T) {
	m := Metadata{CustomFields: []CustomField{
		{VariableName: "chat_id", Value: "1"},
		{VariableName: "chat_id", Value: "2"},
	}}

	if got := m.FieldSet()["chat_id"]; got != "2" {
		t.Fatalf("expected last occurrence to win, got %q", got)
	}
}

func TestFieldSet_Empty(t *testing.T) {
	if got := (Metadata{}).FieldSet(); len(got) != 0 {
		t.Fatalf("expected empty field set, got %v", got)
	}
}
