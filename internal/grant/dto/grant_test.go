package dto

import (
	"testing"

	"donorhub-backend/internal/grant/domain"
)

func TestCreateGrantRequest_Parse(t *testing.T) {
	t.Run("status defaults to prospect", func(t *testing.T) {
		data, vErr := CreateGrantRequest{Funder: "Community Trust", UserID: "u1"}.Parse()
		if vErr != nil {
			t.Fatalf("unexpected validation error: %v", vErr)
		}
		if data.Status != domain.StatusProspect {
			t.Errorf("status = %q, want prospect", data.Status)
		}
	})

	t.Run("unknown status is a field violation", func(t *testing.T) {
		_, vErr := CreateGrantRequest{Funder: "Community Trust", UserID: "u1", Status: "pending"}.Parse()
		if vErr == nil {
			t.Fatal("want validation error, got nil")
		}
		if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "status" {
			t.Errorf("fields = %v, want one status violation", vErr.Fields)
		}
	})

	t.Run("deadlines accept bare dates", func(t *testing.T) {
		deadline := "2026-09-30"
		data, vErr := CreateGrantRequest{Funder: "Community Trust", UserID: "u1", ApplicationDeadline: &deadline}.Parse()
		if vErr != nil {
			t.Fatalf("unexpected validation error: %v", vErr)
		}
		if data.ApplicationDeadline == nil || data.ApplicationDeadline.Month() != 9 {
			t.Errorf("applicationDeadline = %v, want September", data.ApplicationDeadline)
		}
	})

	t.Run("malformed deadline is rejected", func(t *testing.T) {
		bad := "next quarter"
		if _, vErr := (CreateGrantRequest{Funder: "Community Trust", UserID: "u1", ReportDeadline: &bad}).Parse(); vErr == nil {
			t.Fatal("want validation error, got nil")
		}
	})
}

func TestUpdateGrantRequest_Parse(t *testing.T) {
	t.Run("legal status transition is accepted", func(t *testing.T) {
		awarded := "awarded"
		data, vErr := UpdateGrantRequest{Status: &awarded}.Parse()
		if vErr != nil {
			t.Fatalf("unexpected validation error: %v", vErr)
		}
		if data.Status == nil || *data.Status != domain.StatusAwarded {
			t.Errorf("status = %v, want awarded", data.Status)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		bad := "withdrawn"
		if _, vErr := (UpdateGrantRequest{Status: &bad}).Parse(); vErr == nil {
			t.Fatal("want validation error, got nil")
		}
	})
}
