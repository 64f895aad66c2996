package handler

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"nc-news-api/internal/dto"
	"nc-news-api/internal/query"
	"nc-news-api/internal/response"
	"nc-news-api/internal/service"
)

// ArticleHandler handles HTTP requests for articles
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler creates a new instance of ArticleHandler
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// GetArticles godoc
// @Summary      List articles
// @Description  Returns articles without their body, each with a comment_count.
// @Description  Sorted by created_at descending unless sort_by/order say otherwise.
// @Tags         articles
// @Produce      json
// @Param        sort_by query string false "Sort column" Enums(article_id, title, topic, author, created_at, votes, article_img_url, comment_count)
// @Param        order   query string false "Sort direction" Enums(asc, desc)
// @Param        topic   query string false "Topic slug"
// @Success      200 {object} map[string][]domain.ArticleSummary
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /articles [get]
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	values, err := rawQueryValues(c.Request.URL.RawQuery)
	if err != nil {
		badRequestBody(c, err)
		return
	}
	var q dto.ListArticlesQuery
	if err := binding.MapFormWithTag(&q, values, "form"); err != nil {
		badRequestBody(c, err)
		return
	}

	articles, err := h.articleService.ListArticles(c.Request.Context(), query.Params{
		SortBy: q.SortBy,
		Order:  q.Order,
		Topic:  q.Topic,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "articles", articles)
}

// GetArticle godoc
// @Summary      Get an article
// @Tags         articles
// @Produce      json
// @Param        article_id path int true "Article ID"
// @Success      200 {object} map[string]domain.ArticleDetail
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /articles/{article_id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetArticle(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "article", article)
}

// UpdateArticleVotes godoc
// @Summary      Adjust an article's votes
// @Description  Adds inc_votes to the article's votes. Votes may go negative.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article_id path int true "Article ID"
// @Param        request body dto.UpdateVotesRequest true "Vote increment"
// @Success      200 {object} map[string]domain.Article
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /articles/{article_id} [patch]
func (h *ArticleHandler) UpdateArticleVotes(c *gin.Context) {
	var req dto.UpdateVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequestBody(c, err)
		return
	}

	article, err := h.articleService.UpdateVotes(c.Request.Context(), c.Param("article_id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "article", article)
}

// rawQueryValues splits the query string on '&' only. url.ParseQuery drops
// any pair containing ';', which would let a rejected sort_by or topic
// through as if it were absent.
func rawQueryValues(raw string) (map[string][]string, error) {
	values := make(map[string][]string)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, err
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}
		values[k] = append(values[k], v)
	}
	return values, nil
}
