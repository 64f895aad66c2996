package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nc-news-api/internal/database"
	"nc-news-api/internal/docs"
	"nc-news-api/internal/metrics"
	"nc-news-api/internal/seed"
)

type testServer struct {
	handler  http.Handler
	db       *gorm.DB
	registry *prometheus.Registry
}

// setupTestServer builds the full router over a freshly seeded in-memory database
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := database.New(database.Config{
		Driver:       database.DriverSQLite,
		DSN:          "file::memory:?_foreign_keys=on",
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	data, err := seed.Load(seed.DatasetTest)
	require.NoError(t, err)
	require.NoError(t, seed.Seed(context.Background(), db, data, zap.NewNop()))

	registry := prometheus.NewRegistry()
	return &testServer{
		handler: Setup(Config{
			DB:               db,
			Logger:           zap.NewNop(),
			BasePath:         "/api",
			Metrics:          metrics.NewWithRegistry(registry, zap.NewNop()),
			Gatherer:         registry,
			SanitizeComments: true,
		}),
		db:       db,
		registry: registry,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func msgOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Msg string `json:"msg"`
	}
	decode(t, w, &body)
	return body.Msg
}

type articleJSON struct {
	ArticleID    int64   `json:"article_id"`
	Title        string  `json:"title"`
	Topic        string  `json:"topic"`
	Author       string  `json:"author"`
	Body         *string `json:"body"`
	CreatedAt    string  `json:"created_at"`
	Votes        int     `json:"votes"`
	CommentCount *int64  `json:"comment_count"`
}

type commentJSON struct {
	CommentID int64  `json:"comment_id"`
	ArticleID int64  `json:"article_id"`
	Body      string `json:"body"`
	Votes     int    `json:"votes"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

func TestRoot(t *testing.T) {
	s := setupTestServer(t)

	t.Run("welcome", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Welcome to the API! Visit /api for documentation", msgOf(t, w))
	})

	t.Run("endpoints", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api", "")
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Endpoints map[string]json.RawMessage `json:"endpoints"`
		}
		decode(t, w, &body)
		assert.Contains(t, body.Endpoints, "GET /api/articles")
		assert.Contains(t, body.Endpoints, "DELETE /api/comments/:comment_id")
	})

	t.Run("unknown route", func(t *testing.T) {
		for _, path := range []string{"/api/not-a-route", "/nope", "/api/topics/extra/segments"} {
			w := s.do(t, http.MethodGet, path, "")
			assert.Equal(t, http.StatusNotFound, w.Code, path)
			assert.Equal(t, "Route not found", msgOf(t, w), path)
		}
	})

	t.Run("unsupported method", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/api/topics", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTopicsAndUsers(t *testing.T) {
	s := setupTestServer(t)

	t.Run("topics", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/topics", "")
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Topics []map[string]interface{} `json:"topics"`
		}
		decode(t, w, &body)
		require.Len(t, body.Topics, 3)
		for _, topic := range body.Topics {
			assert.Contains(t, topic, "slug")
			assert.Contains(t, topic, "description")
		}
	})

	t.Run("users", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/users", "")
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Users []map[string]interface{} `json:"users"`
		}
		decode(t, w, &body)
		require.Len(t, body.Users, 4)
		for _, user := range body.Users {
			assert.Contains(t, user, "username")
			assert.Contains(t, user, "name")
			assert.Contains(t, user, "avatar_url")
		}
	})

	t.Run("single user", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/users/lurker", "")
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			User map[string]interface{} `json:"user"`
		}
		decode(t, w, &body)
		assert.Equal(t, "lurker", body.User["username"])

		w = s.do(t, http.MethodGet, "/api/users/nobody", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found for username: nobody", msgOf(t, w))
	})
}

func TestGetArticles(t *testing.T) {
	s := setupTestServer(t)

	list := func(t *testing.T, query string) []articleJSON {
		t.Helper()
		w := s.do(t, http.MethodGet, "/api/articles"+query, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var body struct {
			Articles []articleJSON `json:"articles"`
		}
		decode(t, w, &body)
		return body.Articles
	}

	t.Run("defaults to newest first without bodies", func(t *testing.T) {
		articles := list(t, "")
		require.Len(t, articles, 7)
		assert.True(t, sort.SliceIsSorted(articles, func(i, j int) bool {
			return articles[i].CreatedAt > articles[j].CreatedAt
		}))
		for _, a := range articles {
			assert.Nil(t, a.Body)
			require.NotNil(t, a.CommentCount)
		}
		assert.Equal(t, "Eight pug gifs that remind me of mitch", articles[0].Title)
	})

	t.Run("comment_count", func(t *testing.T) {
		counts := map[int64]int64{}
		for _, a := range list(t, "") {
			counts[a.ArticleID] = *a.CommentCount
		}
		assert.Equal(t, map[int64]int64{1: 5, 2: 0, 3: 2, 4: 0, 5: 2, 6: 2, 7: 0}, counts)
	})

	t.Run("sort_by and order", func(t *testing.T) {
		articles := list(t, "?sort_by=votes&order=asc")
		assert.True(t, sort.SliceIsSorted(articles, func(i, j int) bool {
			return articles[i].Votes < articles[j].Votes
		}))
		assert.Equal(t, -3, articles[0].Votes)

		articles = list(t, "?sort_by=title&order=ASC")
		assert.Equal(t, "A", articles[0].Title)

		articles = list(t, "?sort_by=comment_count")
		assert.Equal(t, int64(1), articles[0].ArticleID)
	})

	t.Run("topic filter", func(t *testing.T) {
		articles := list(t, "?topic=cats")
		require.Len(t, articles, 1)
		assert.Equal(t, "cats", articles[0].Topic)

		assert.Len(t, list(t, "?topic=mitch&sort_by=article_id&order=asc"), 6)
	})

	t.Run("existing topic without articles", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/articles?topic=paper", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"articles":[]}`, w.Body.String())
	})

	t.Run("unknown topic", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/articles?topic=dogs", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Topic not found for slug: dogs", msgOf(t, w))
	})

	t.Run("invalid sort column", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/articles?sort_by=body;DROP%20TABLE%20articles", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, msgOf(t, w), "body;DROP TABLE articles")
		assert.Len(t, list(t, ""), 7)
	})

	t.Run("semicolon values are validated, not dropped", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/articles?topic=nope;x", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Topic not found for slug: nope;x", msgOf(t, w))

		w = s.do(t, http.MethodGet, "/api/articles?sort_by=votes;x", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, msgOf(t, w), "votes;x")

		w = s.do(t, http.MethodGet, "/api/articles?order=asc;x", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, msgOf(t, w), "asc;x")
	})

	t.Run("invalid order", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/articles?order=sideways", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, msgOf(t, w), "sideways")
	})
}

func TestGetArticle(t *testing.T) {
	s := setupTestServer(t)

	t.Run("found", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/articles/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Article articleJSON `json:"article"`
		}
		decode(t, w, &body)
		assert.Equal(t, "Living in the shadow of a great man", body.Article.Title)
		require.NotNil(t, body.Article.Body)
		require.NotNil(t, body.Article.CommentCount)
		assert.Equal(t, int64(5), *body.Article.CommentCount)
		assert.Equal(t, 100, body.Article.Votes)
	})

	t.Run("no comments", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/articles/2", "")
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Article articleJSON `json:"article"`
		}
		decode(t, w, &body)
		assert.Equal(t, int64(0), *body.Article.CommentCount)
	})

	t.Run("missing", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/articles/999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Article not found for ID: 999", msgOf(t, w))
	})

	t.Run("malformed", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/articles/not-an-id", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Bad request", msgOf(t, w))
	})
}

func TestUpdateArticleVotes(t *testing.T) {
	s := setupTestServer(t)

	patch := func(t *testing.T, path, body string) *httptest.ResponseRecorder {
		t.Helper()
		return s.do(t, http.MethodPatch, path, body)
	}

	t.Run("decrement", func(t *testing.T) {
		w := patch(t, "/api/articles/1", `{"inc_votes": -10}`)
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Article articleJSON `json:"article"`
		}
		decode(t, w, &body)
		assert.Equal(t, 90, body.Article.Votes)
		assert.Equal(t, int64(1), body.Article.ArticleID)
	})

	t.Run("below zero", func(t *testing.T) {
		w := patch(t, "/api/articles/2", `{"inc_votes": -5}`)
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Article articleJSON `json:"article"`
		}
		decode(t, w, &body)
		assert.Equal(t, -5, body.Article.Votes)
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			path, body string
			status     int
			code       string
		}{
			{"/api/articles/1", `{}`, http.StatusBadRequest, "MISSING_INCREMENT"},
			{"/api/articles/1", ``, http.StatusBadRequest, "MISSING_INCREMENT"},
			{"/api/articles/1", `{"inc_votes": null}`, http.StatusBadRequest, "MISSING_INCREMENT"},
			{"/api/articles/1", `{"inc_votes": "ten"}`, http.StatusBadRequest, "INVALID_INCREMENT"},
			{"/api/articles/1", `{"inc_votes": 1.5}`, http.StatusBadRequest, "INVALID_INCREMENT"},
			{"/api/articles/1", `{"inc_votes": true}`, http.StatusBadRequest, "INVALID_INCREMENT"},
			{"/api/articles/1", `{"inc_votes":`, http.StatusBadRequest, "VALIDATION_ERROR"},
			{"/api/articles/abc", `{"inc_votes": 1}`, http.StatusBadRequest, "MALFORMED_ID"},
			{"/api/articles/abc", `{}`, http.StatusBadRequest, "MALFORMED_ID"},
			{"/api/articles/999", `{"inc_votes": 1}`, http.StatusNotFound, "NOT_FOUND"},
			{"/api/articles/1", `{"inc_votes": 9223372036854775807}`, http.StatusBadRequest, "VOTES_OUT_OF_RANGE"},
			{"/api/articles/1", `{"inc_votes": 9223372036854775808}`, http.StatusBadRequest, "INVALID_INCREMENT"},
		}
		for _, tt := range tests {
			w := patch(t, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, "%s %s", tt.path, tt.body)
			var body struct {
				Code string `json:"code"`
			}
			decode(t, w, &body)
			assert.Equal(t, tt.code, body.Code, "%s %s", tt.path, tt.body)
		}

		w := s.do(t, http.MethodGet, "/api/articles/1", "")
		var body struct {
			Article articleJSON `json:"article"`
		}
		decode(t, w, &body)
		assert.Equal(t, 90, body.Article.Votes, "rejected patches must not change votes")
	})

	t.Run("concurrent deltas all land", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(delta int) {
				defer wg.Done()
				body := `{"inc_votes": 1}`
				if delta%2 == 0 {
					body = `{"inc_votes": 3}`
				}
				req := httptest.NewRequest(http.MethodPatch, "/api/articles/3", strings.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				s.handler.ServeHTTP(httptest.NewRecorder(), req)
			}(i)
		}
		wg.Wait()

		w := s.do(t, http.MethodGet, "/api/articles/3", "")
		var body struct {
			Article articleJSON `json:"article"`
		}
		decode(t, w, &body)
		assert.Equal(t, 2+5*1+5*3, body.Article.Votes)
	})
}

func TestComments(t *testing.T) {
	s := setupTestServer(t)

	getComments := func(t *testing.T, articleID string) (int, []commentJSON) {
		t.Helper()
		w := s.do(t, http.MethodGet, "/api/articles/"+articleID+"/comments", "")
		if w.Code != http.StatusOK {
			return w.Code, nil
		}
		var body struct {
			Comments []commentJSON `json:"comments"`
		}
		decode(t, w, &body)
		return w.Code, body.Comments
	}

	t.Run("newest first", func(t *testing.T) {
		status, comments := getComments(t, "1")
		require.Equal(t, http.StatusOK, status)
		require.Len(t, comments, 5)
		assert.True(t, sort.SliceIsSorted(comments, func(i, j int) bool {
			return comments[i].CreatedAt > comments[j].CreatedAt
		}))
		assert.Equal(t, int64(3), comments[0].CommentID)
		for _, c := range comments {
			assert.Equal(t, int64(1), c.ArticleID)
		}
	})

	t.Run("article without comments", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/articles/2/comments", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"comments":[]}`, w.Body.String())
	})

	t.Run("missing article", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/articles/999/comments", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Article not found for ID: 999", msgOf(t, w))
	})

	t.Run("malformed article id", func(t *testing.T) {
		status, _ := getComments(t, "one")
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("post", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/articles/1/comments", `{"username":"butter_bridge","body":"hi"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var body struct {
			Comment commentJSON `json:"comment"`
		}
		decode(t, w, &body)
		assert.Greater(t, body.Comment.CommentID, int64(11))
		assert.Equal(t, int64(1), body.Comment.ArticleID)
		assert.Equal(t, 0, body.Comment.Votes)
		assert.Equal(t, "butter_bridge", body.Comment.Author)
		assert.Equal(t, "hi", body.Comment.Body)
		assert.NotEmpty(t, body.Comment.CreatedAt)

		_, comments := getComments(t, "1")
		require.Len(t, comments, 6)
		assert.Equal(t, body.Comment.CommentID, comments[0].CommentID)
	})

	t.Run("post ignores extra fields", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/articles/2/comments", `{"username":"lurker","body":"first","votes":99}`)
		require.Equal(t, http.StatusCreated, w.Code)
		var body struct {
			Comment commentJSON `json:"comment"`
		}
		decode(t, w, &body)
		assert.Equal(t, 0, body.Comment.Votes)
	})

	t.Run("post keeps special characters as sent", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/articles/3/comments", `{"username":"lurker","body":"Tom & Jerry say 2 < 3 \"quoted\""}`)
		require.Equal(t, http.StatusCreated, w.Code)
		var body struct {
			Comment commentJSON `json:"comment"`
		}
		decode(t, w, &body)
		assert.Equal(t, `Tom & Jerry say 2 < 3 "quoted"`, body.Comment.Body)

		_, comments := getComments(t, "3")
		require.NotEmpty(t, comments)
		assert.Equal(t, `Tom & Jerry say 2 < 3 "quoted"`, comments[0].Body)
	})

	t.Run("post strips markup", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/articles/3/comments", `{"username":"lurker","body":"<b>bold</b><script>alert(1)</script>"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		var body struct {
			Comment commentJSON `json:"comment"`
		}
		decode(t, w, &body)
		assert.Equal(t, "<b>bold</b>", body.Comment.Body)
	})

	t.Run("post rejections", func(t *testing.T) {
		tests := []struct {
			path, body string
			status     int
			code       string
		}{
			{"/api/articles/1/comments", `{"username":"butter_bridge"}`, http.StatusBadRequest, "MISSING_FIELDS"},
			{"/api/articles/1/comments", `{"body":"hi"}`, http.StatusBadRequest, "MISSING_FIELDS"},
			{"/api/articles/1/comments", `{"username":"butter_bridge","body":"   "}`, http.StatusBadRequest, "MISSING_FIELDS"},
			{"/api/articles/1/comments", ``, http.StatusBadRequest, "MISSING_FIELDS"},
			{"/api/articles/1/comments", `{"username":["x"],"body":"hi"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
			{"/api/articles/one/comments", `{"username":"butter_bridge","body":"hi"}`, http.StatusBadRequest, "MALFORMED_ID"},
			{"/api/articles/999/comments", `{"username":"butter_bridge","body":"hi"}`, http.StatusNotFound, "NOT_FOUND"},
			{"/api/articles/1/comments", `{"username":"nobody","body":"hi"}`, http.StatusNotFound, "NOT_FOUND"},
		}
		for _, tt := range tests {
			w := s.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, "%s %s", tt.path, tt.body)
			var body struct {
				Code string `json:"code"`
			}
			decode(t, w, &body)
			assert.Equal(t, tt.code, body.Code, "%s %s", tt.path, tt.body)
		}

		w := s.do(t, http.MethodPost, "/api/articles/1/comments", `{"username":"nobody","body":"hi"}`)
		assert.Equal(t, "User not found for username: nobody", msgOf(t, w))
	})

	t.Run("delete twice", func(t *testing.T) {
		w := s.do(t, http.MethodDelete, "/api/comments/1", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		w = s.do(t, http.MethodDelete, "/api/comments/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Comment not found for ID: 1", msgOf(t, w))
	})

	t.Run("delete malformed", func(t *testing.T) {
		w := s.do(t, http.MethodDelete, "/api/comments/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Bad request", msgOf(t, w))
	})
}

func TestOperationalEndpoints(t *testing.T) {
	s := setupTestServer(t)

	for _, path := range []string{"/health", "/api/health"} {
		w := s.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := s.do(t, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())

	s.do(t, http.MethodGet, "/api/articles/1", "")
	s.do(t, http.MethodPost, "/api/articles/1/comments", `{"username":"lurker","body":"metrics"}`)
	s.do(t, http.MethodPatch, "/api/articles/1", `{"inc_votes": -1}`)

	w = s.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	body := w.Body.String()
	assert.Contains(t, body, `nc_news_http_requests_total{endpoint="/api/articles/:article_id",method="GET",status="2xx"} 1`)
	assert.Contains(t, body, "nc_news_comment_created_total 1")
	assert.Contains(t, body, `nc_news_article_vote_adjustments_total{direction="down"} 1`)
	assert.NotContains(t, body, `endpoint="/metrics"`)
	assert.NotContains(t, body, `endpoint="/api/health"`)
}

func TestSwaggerDocument(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(t, http.MethodGet, "/api/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Swagger  string                     `json:"swagger"`
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/api", doc.BasePath)
	for _, path := range []string{
		"/topics", "/articles", "/articles/{article_id}", "/articles/{article_id}/comments",
		"/comments/{comment_id}", "/users", "/users/{username}",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestSwaggerDocument_FollowsBasePath(t *testing.T) {
	s := setupTestServer(t)
	r := Setup(Config{DB: s.db, BasePath: "/v1", Gatherer: prometheus.NewRegistry()})
	t.Cleanup(func() { docs.SwaggerInfo.BasePath = defaultBasePath })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		BasePath string `json:"basePath"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/v1", doc.BasePath)
}

func TestReady_DatabaseClosed(t *testing.T) {
	s := setupTestServer(t)
	require.NoError(t, database.Close(s.db))

	w := s.do(t, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSetup_DefaultBasePath(t *testing.T) {
	s := setupTestServer(t)
	r := Setup(Config{DB: s.db, Gatherer: prometheus.NewRegistry()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/topics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
