package domain

import "testing"

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name      string
		requester *User
		want      bool
	}{
		{"unknown requester", nil, false},
		{"no role", &User{Email: "a@example.com"}, false},
		{"other role", &User{Email: "a@example.com", Role: "editor"}, false},
		{"role differs in case", &User{Email: "a@example.com", Role: "Admin"}, false},
		{"admin", &User{Email: "a@example.com", Role: "admin"}, true},
	}

	for _, tc := range cases {
		got := Authorize(tc.requester, RoleAdmin)
		if got.Allowed != tc.want {
			t.Errorf("%s: expected allowed=%v, got %v (%s)", tc.name, tc.want, got.Allowed, got.Reason)
		}
		if !got.Allowed && got.Reason == "" {
			t.Errorf("%s: denied decision must carry a reason", tc.name)
		}
	}
}

func TestProfileUpdate_Changes_SkipsEmptyFields(t *testing.T) {
	changes := ProfileUpdate{DisplayName: "Ana", Country: ""}.Changes()

	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d: %v", len(changes), changes)
	}
	if changes["displayName"] != "Ana" {
		t.Errorf("unexpected displayName: %v", changes["displayName"])
	}
	if _, ok := changes["country"]; ok {
		t.Error("empty country must not be set")
	}
}

func TestProfileUpdate_Changes_Empty(t *testing.T) {
	if n := len(ProfileUpdate{}.Changes()); n != 0 {
		t.Fatalf("expected no changes, got %d", n)
	}
}

func TestNewTestimonial_DropsClientID(t *testing.T) {
	tm := NewTestimonial(map[string]any{"_id": "forged", "name": "Ana", "review": "great"})

	if _, ok := tm[TestimonialIDKey]; ok {
		t.Error("client-supplied _id must be dropped")
	}
	if tm["review"] != "great" {
		t.Errorf("expected review to be kept, got %v", tm["review"])
	}
	if !tm.Pending() {
		t.Error("new testimonial must be pending")
	}
}

func TestTestimonial_Approved(t *testing.T) {
	if (Testimonial{"approved": true}).Pending() {
		t.Error("approved testimonial must not be pending")
	}
	if !(Testimonial{"approved": true}).Approved() {
		t.Error("expected approved")
	}
	if (Testimonial{"approved": "yes"}).Approved() {
		t.Error("non-bool approved value must not count as approved")
	}
}

func TestUpdateResult_Changed(t *testing.T) {
	var nilResult *UpdateResult
	if nilResult.Changed() {
		t.Error("nil result must not report a change")
	}
	if (&UpdateResult{MatchedCount: 1}).Changed() {
		t.Error("matched-only result must not report a change")
	}
	if !(&UpdateResult{UpsertedCount: 1}).Changed() {
		t.Error("upsert must report a change")
	}
	if !(&UpdateResult{MatchedCount: 1, ModifiedCount: 1}).Changed() {
		t.Error("modification must report a change")
	}
}

func TestUser_IsEmpty(t *testing.T) {
	if !(&User{}).IsEmpty() {
		t.Error("zero user must be empty")
	}
	if (&User{Role: "admin"}).IsEmpty() {
		t.Error("user with a role must not be empty")
	}
}
