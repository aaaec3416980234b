package api_test

import (
	"Lumigram/internal/api/config"
	"Lumigram/internal/pkg/database"
	"Lumigram/internal/pkg/security"
	"Lumigram/internal/wire"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	Code    int             `json:"Code"`
	Message string          `json:"Message"`
	Data    json.RawMessage `json:"Data"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.Cfg = &config.Config{
		Auth: config.AuthConfig{
			Secret: "test-secret",
			Issuer: "test-idp",
		},
	}

	db, err := database.NewGormDB(&config.DBConfig{DSN: "sqlite://:memory:"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app, err := wire.BuildApplication(db, config.Cfg)
	if err != nil {
		t.Fatalf("build application: %v", err)
	}
	return app.Router
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := &envelope{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), resp); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}

// syncUser 为给定身份签发令牌并完成身份同步，返回可直接使用的 token
func syncUser(t *testing.T, r *gin.Engine, subject, nickname string) string {
	t.Helper()
	token, err := security.GenerateToken(subject, nickname)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	w, _ := doJSON(t, r, http.MethodPost, "/api/users/sync", token, map[string]string{})
	if w.Code != http.StatusOK {
		t.Fatalf("sync %s: status %d body %s", subject, w.Code, w.Body.String())
	}
	return token
}

func TestPing(t *testing.T) {
	r := setupRouter(t)
	w, resp := doJSON(t, r, http.MethodGet, "/api/ping", "", nil)
	if w.Code != http.StatusOK || resp.Code != 200 {
		t.Fatalf("ping: status %d code %d", w.Code, resp.Code)
	}
	if string(resp.Data) != `"pong"` {
		t.Fatalf("ping: data %s", resp.Data)
	}
}

func TestAuthRequired(t *testing.T) {
	r := setupRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/posts", "", map[string]string{"image_key": "k"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status %d, want 401", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/posts", "garbage", map[string]string{"image_key": "k"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status %d, want 401", w.Code)
	}
}

func TestAuthValidButUnsynced(t *testing.T) {
	r := setupRouter(t)

	token, err := security.GenerateToken("idp|ghost", "Ghost")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	// 凭证有效但身份未同步：404，而不是降级成匿名
	w, _ := doJSON(t, r, http.MethodPost, "/api/posts", token, map[string]string{"image_key": "k"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unsynced identity: status %d, want 404", w.Code)
	}
}

func TestFeedScenario(t *testing.T) {
	r := setupRouter(t)

	aliceToken := syncUser(t, r, "idp|alice", "Alice")
	bobToken := syncUser(t, r, "idp|bob", "Bob")

	// Alice 发帖
	w, resp := doJSON(t, r, http.MethodPost, "/api/posts", aliceToken, map[string]string{
		"image_key": "2026/01/01/a.jpg",
		"caption":   "golden hour",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create post: status %d body %s", w.Code, w.Body.String())
	}
	var post struct {
		ID uint64 `json:"id"`
	}
	if err := json.Unmarshal(resp.Data, &post); err != nil {
		t.Fatalf("decode post: %v", err)
	}

	// Bob 点赞
	w, _ = doJSON(t, r, http.MethodPost, "/api/likes", bobToken, map[string]uint64{"post_id": post.ID})
	if w.Code != http.StatusCreated {
		t.Fatalf("like: status %d body %s", w.Code, w.Body.String())
	}

	// 重复点赞冲突
	w, _ = doJSON(t, r, http.MethodPost, "/api/likes", bobToken, map[string]uint64{"post_id": post.ID})
	if w.Code != http.StatusConflict {
		t.Fatalf("double like: status %d, want 409", w.Code)
	}

	// Bob 评论
	w, _ = doJSON(t, r, http.MethodPost, "/api/comments", bobToken, map[string]interface{}{"post_id": post.ID, "content": "stunning"})
	if w.Code != http.StatusCreated {
		t.Fatalf("comment: status %d body %s", w.Code, w.Body.String())
	}

	// 评论列表公开可读
	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/comments?post_id=%d", post.ID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list comments: status %d", w.Code)
	}

	// Bob 视角的信息流带计数和点赞标记
	w, resp = doJSON(t, r, http.MethodGet, "/api/posts", bobToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("feed: status %d", w.Code)
	}
	var feed struct {
		Posts []struct {
			ID           uint64 `json:"id"`
			LikeCount    int64  `json:"like_count"`
			CommentCount int64  `json:"comment_count"`
			Liked        bool   `json:"liked"`
		} `json:"posts"`
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(resp.Data, &feed); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	if feed.Total != 1 || len(feed.Posts) != 1 {
		t.Fatalf("feed total/len = %d/%d, want 1/1", feed.Total, len(feed.Posts))
	}
	got := feed.Posts[0]
	if got.LikeCount != 1 || got.CommentCount != 1 || !got.Liked {
		t.Fatalf("feed entry like/comment/liked = %d/%d/%v, want 1/1/true", got.LikeCount, got.CommentCount, got.Liked)
	}

	// Bob 不能删 Alice 的帖子
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), bobToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("delete others post: status %d, want 403", w.Code)
	}

	// Alice 可以
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete own post: status %d body %s", w.Code, w.Body.String())
	}

	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted post fetch: status %d, want 404", w.Code)
	}
}

func TestCreatePostValidation(t *testing.T) {
	r := setupRouter(t)
	token := syncUser(t, r, "idp|alice", "Alice")

	// 缺 image_key
	w, _ := doJSON(t, r, http.MethodPost, "/api/posts", token, map[string]string{"caption": "no pic"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing image_key: status %d, want 400", w.Code)
	}
}

func TestFollowEndpoints(t *testing.T) {
	r := setupRouter(t)

	aliceToken := syncUser(t, r, "idp|alice", "Alice")
	syncUser(t, r, "idp|bob", "Bob")

	// 查出 Bob 的内部 ID
	w, resp := doJSON(t, r, http.MethodGet, "/api/users/2", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile: status %d", w.Code)
	}
	var bob struct {
		ID uint64 `json:"id"`
	}
	if err := json.Unmarshal(resp.Data, &bob); err != nil {
		t.Fatalf("decode profile: %v", err)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/follows", aliceToken, map[string]uint64{"following_id": bob.ID})
	if w.Code != http.StatusCreated {
		t.Fatalf("follow: status %d body %s", w.Code, w.Body.String())
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/follows", aliceToken, map[string]uint64{"following_id": bob.ID})
	if w.Code != http.StatusConflict {
		t.Fatalf("double follow: status %d, want 409", w.Code)
	}

	// 关注状态查询
	w, resp = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/follows?following_id=%d", bob.ID), aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("follow status: status %d", w.Code)
	}
	var status struct {
		IsFollowing bool `json:"is_following"`
	}
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if !status.IsFollowing {
		t.Fatal("is_following = false after follow")
	}

	// 未知用户 404
	w, _ = doJSON(t, r, http.MethodGet, "/api/follows?following_id=9999", aliceToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status of unknown user: status %d, want 404", w.Code)
	}

	// 带凭证看对方主页，following 为 true
	w, resp = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d", bob.ID), aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile with token: status %d", w.Code)
	}
	var profile struct {
		FollowerCount int64 `json:"follower_count"`
		Following     bool  `json:"following"`
	}
	if err := json.Unmarshal(resp.Data, &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.FollowerCount != 1 || !profile.Following {
		t.Fatalf("follower/following = %d/%v, want 1/true", profile.FollowerCount, profile.Following)
	}

	// 取关幂等
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/follows?following_id=%d", bob.ID), aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unfollow: status %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/follows?following_id=%d", bob.ID), aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("second unfollow: status %d, want 200", w.Code)
	}
}
