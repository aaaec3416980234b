package service

import (
	"context"
	"errors"
	"testing"
)

func TestFollowAndCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustUser(t, "idp|alice", "Alice")
	bob := env.mustUser(t, "idp|bob", "Bob")

	if err := env.followSvc.Follow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}

	aliceStats, err := env.statsSvc.GetUserStats(ctx, alice.ID)
	if err != nil {
		t.Fatalf("alice stats: %v", err)
	}
	if aliceStats.FollowingCount != 1 || aliceStats.FollowerCount != 0 {
		t.Fatalf("alice following/follower = %d/%d, want 1/0", aliceStats.FollowingCount, aliceStats.FollowerCount)
	}

	bobStats, err := env.statsSvc.GetUserStats(ctx, bob.ID)
	if err != nil {
		t.Fatalf("bob stats: %v", err)
	}
	if bobStats.FollowerCount != 1 || bobStats.FollowingCount != 0 {
		t.Fatalf("bob follower/following = %d/%d, want 1/0", bobStats.FollowerCount, bobStats.FollowingCount)
	}

	// 关注是单向的
	reverse, err := env.followSvc.IsFollowing(ctx, bob.ID, alice.ID)
	if err != nil || reverse {
		t.Fatalf("reverse IsFollowing = %v, %v, want false", reverse, err)
	}
}

func TestFollowSelf(t *testing.T) {
	env := newTestEnv(t)

	alice := env.mustUser(t, "idp|alice", "Alice")
	err := env.followSvc.Follow(context.Background(), alice.ID, alice.ID)
	if !errors.Is(err, ErrFollowSelf) {
		t.Fatalf("expected ErrFollowSelf, got %v", err)
	}
}

func TestFollowMissingUser(t *testing.T) {
	env := newTestEnv(t)

	alice := env.mustUser(t, "idp|alice", "Alice")
	err := env.followSvc.Follow(context.Background(), alice.ID, 9999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFollowTwice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustUser(t, "idp|alice", "Alice")
	bob := env.mustUser(t, "idp|bob", "Bob")

	if err := env.followSvc.Follow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("first follow: %v", err)
	}
	err := env.followSvc.Follow(ctx, alice.ID, bob.ID)
	if !errors.Is(err, ErrAlreadyFollowing) {
		t.Fatalf("expected ErrAlreadyFollowing, got %v", err)
	}
}

func TestUnfollowIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustUser(t, "idp|alice", "Alice")
	bob := env.mustUser(t, "idp|bob", "Bob")

	if err := env.followSvc.Follow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := env.followSvc.Unfollow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if err := env.followSvc.Unfollow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("second unfollow: %v", err)
	}

	following, err := env.followSvc.IsFollowing(ctx, alice.ID, bob.ID)
	if err != nil || following {
		t.Fatalf("IsFollowing after unfollow = %v, %v, want false", following, err)
	}

	// 目标用户不存在不属于幂等范围
	if err := env.followSvc.Unfollow(ctx, alice.ID, 9999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
