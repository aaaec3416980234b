package service

import (
	"context"
	"errors"
	"testing"
)

func TestSyncUserIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.userSvc.SyncUser(ctx, "idp|alice", "Alice", "")
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}
	second, err := env.userSvc.SyncUser(ctx, "idp|alice", "Alice Changed", "")
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("same subject resolved to different users: %d vs %d", first.ID, second.ID)
	}
	if second.Nickname != "Alice" {
		t.Fatalf("resync overwrote profile, nickname = %q", second.Nickname)
	}
}

func TestResolveSubjectUnsynced(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.userSvc.ResolveSubject(context.Background(), "idp|stranger")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetProfileCountsAndFollowing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustUser(t, "idp|alice", "Alice")
	bob := env.mustUser(t, "idp|bob", "Bob")

	env.mustPost(t, alice.ID, "first")
	env.mustPost(t, alice.ID, "second")
	if err := env.followSvc.Follow(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}

	profile, err := env.userSvc.GetProfile(ctx, bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.PostCount != 2 {
		t.Errorf("post count = %d, want 2", profile.PostCount)
	}
	if profile.FollowerCount != 1 {
		t.Errorf("follower count = %d, want 1", profile.FollowerCount)
	}
	if profile.FollowingCount != 0 {
		t.Errorf("following count = %d, want 0", profile.FollowingCount)
	}
	if !profile.Following {
		t.Error("viewer follows target but Following = false")
	}

	// 匿名视角
	anon, err := env.userSvc.GetProfile(ctx, 0, alice.ID)
	if err != nil {
		t.Fatalf("get profile anonymous: %v", err)
	}
	if anon.Following {
		t.Error("anonymous viewer reported as following")
	}
}

func TestGetProfileNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.userSvc.GetProfile(context.Background(), 0, 9999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
