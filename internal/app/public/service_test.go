package public

import (
	"context"
	"errors"
	"testing"
)

func TestLeaderboardWithoutStore(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.Leaderboard(context.Background(), 10, 0); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestPlayerWithoutStore(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.Player(context.Background(), "p1"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if _, err := svc.Player(context.Background(), ""); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestClampLeaderboardPage(t *testing.T) {
	if limit, ok := clampLeaderboardPage(0, 0); !ok || limit != 50 {
		t.Fatalf("default page = %d/%v, want 50/true", limit, ok)
	}
	if limit, ok := clampLeaderboardPage(80, 50); !ok || limit != 50 {
		t.Fatalf("clamped page = %d/%v, want 50/true", limit, ok)
	}
	if _, ok := clampLeaderboardPage(10, 100); ok {
		t.Fatal("offset past the cap must return no page")
	}
}
