package dto

import "testing"

func TestCreateEventRequest_Parse(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := CreateEventRequest{
			UserID:      "u1",
			Title:       "Coffee with the Parkers",
			EventType:   "meeting",
			ScheduledAt: "2026-03-10T14:00:00Z",
		}
		data, vErr := req.Parse()
		if vErr != nil {
			t.Fatalf("unexpected validation error: %v", vErr)
		}
		if data.ScheduledAt.Hour() != 14 {
			t.Errorf("scheduledAt hour = %d, want 14", data.ScheduledAt.Hour())
		}
		if data.Completed != 0 {
			t.Errorf("completed = %d, want default 0", data.Completed)
		}
	})

	t.Run("bare date is accepted", func(t *testing.T) {
		req := CreateEventRequest{UserID: "u1", Title: "x", ScheduledAt: "2026-03-10"}
		data, vErr := req.Parse()
		if vErr != nil {
			t.Fatalf("unexpected validation error: %v", vErr)
		}
		if data.ScheduledAt.Day() != 10 {
			t.Errorf("scheduledAt day = %d, want 10", data.ScheduledAt.Day())
		}
	})

	t.Run("collects all field violations", func(t *testing.T) {
		req := CreateEventRequest{ScheduledAt: "soon"}
		_, vErr := req.Parse()
		if vErr == nil {
			t.Fatal("want validation error, got nil")
		}
		if len(vErr.Fields) != 3 {
			t.Fatalf("fields = %v, want violations on title, userId and scheduledAt", vErr.Fields)
		}
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		zero := 0
		req := CreateEventRequest{UserID: "u1", Title: "x", ScheduledAt: "2026-03-10", DurationMinutes: &zero}
		if _, vErr := req.Parse(); vErr == nil {
			t.Fatal("want validation error, got nil")
		}
	})

	t.Run("rejects completed outside 0 and 1", func(t *testing.T) {
		two := 2
		req := CreateEventRequest{UserID: "u1", Title: "x", ScheduledAt: "2026-03-10", Completed: &two}
		if _, vErr := req.Parse(); vErr == nil {
			t.Fatal("want validation error, got nil")
		}
	})
}

func TestUpdateEventRequest_Parse(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		data, vErr := UpdateEventRequest{}.Parse()
		if vErr != nil {
			t.Fatalf("unexpected validation error: %v", vErr)
		}
		if data.Title != nil || data.ScheduledAt != nil || data.Completed != nil {
			t.Error("empty request should carry no updates")
		}
	})

	t.Run("malformed scheduledAt is rejected", func(t *testing.T) {
		bad := "tomorrow-ish"
		_, vErr := UpdateEventRequest{ScheduledAt: &bad}.Parse()
		if vErr == nil {
			t.Fatal("want validation error, got nil")
		}
	})
}
