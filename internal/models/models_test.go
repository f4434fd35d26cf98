package models

import (
	"testing"
	"time"
)

func TestUserToResponse(t *testing.T) {
	user := &User{
		ID:           1,
		Username:     "john_doe",
		Email:        "john@example.com",
		PasswordHash: "secret-hash",
		FullName:     "John Doe",
		Avatar:       "https://example.com/avatar.jpg",
	}

	response := user.ToResponse()

	if response.ID != user.ID {
		t.Errorf("ToResponse ID = %d, want %d", response.ID, user.ID)
	}
	if response.Username != user.Username {
		t.Errorf("ToResponse Username = %q, want %q", response.Username, user.Username)
	}
	if response.Email != user.Email {
		t.Errorf("ToResponse Email = %q, want %q", response.Email, user.Email)
	}
	if response.FullName != user.FullName {
		t.Errorf("ToResponse FullName = %q, want %q", response.FullName, user.FullName)
	}
	if response.Avatar != user.Avatar {
		t.Errorf("ToResponse Avatar = %q, want %q", response.Avatar, user.Avatar)
	}
}

func TestNotificationKinds(t *testing.T) {
	n := Notification{
		ID:        1,
		Kind:      NotificationBlocked,
		GroupID:   2,
		GroupName: "Book Club",
		Reason:    "spam",
		CreatedAt: time.Now(),
	}
	if n.Kind != "blocked" {
		t.Errorf("NotificationBlocked = %q, want %q", n.Kind, "blocked")
	}
	if NotificationRemoved != "removed" {
		t.Errorf("NotificationRemoved = %q, want %q", NotificationRemoved, "removed")
	}
}
