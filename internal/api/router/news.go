package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/auth"
	"github.com/DjordjeVuckovic/news-digest/internal/news"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NewsRouter struct {
	e    *echo.Echo
	news *news.Service
	auth *auth.Service
}

func NewNewsRouter(e *echo.Echo, news *news.Service, auth *auth.Service) *NewsRouter {
	return &NewsRouter{
		e:    e,
		news: news,
		auth: auth,
	}
}

func (r *NewsRouter) Bind() {
	requireUser := auth.RequireUser(r.auth)

	g := r.e.Group("/api/v1/news")
	g.GET("/news", r.list)
	g.POST("/search_news", r.search)
	g.GET("/user_news", r.userList, requireUser)
	g.POST("/news_summary", r.summary, requireUser)
	g.POST("/:id/upvote", r.upvote, requireUser)
}

// list godoc
// @Summary List stored articles, newest first
// @Tags news
// @Produce json
// @Success 200 {array} domain.ArticleView
// @Router /api/v1/news/news [get]
func (r *NewsRouter) list(c echo.Context) error {
	views, err := r.news.List(c.Request().Context(), uuid.Nil)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// userList godoc
// @Summary List stored articles with the caller's upvote flag
// @Tags news
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.ArticleView
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/news/user_news [get]
func (r *NewsRouter) userList(c echo.Context) error {
	user, ok := auth.UserFrom(c)
	if !ok {
		return apperr.NewAuthentication("not authenticated")
	}
	views, err := r.news.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// search godoc
// @Summary Search and summarize fresh articles for a free-text prompt
// @Description Results are not persisted; ids are only valid for this process.
// @Tags news
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Prompt"
// @Success 200 {array} domain.SearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/news/search_news [post]
func (r *NewsRouter) search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	results, err := r.news.Search(c.Request().Context(), req.Prompt)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}

// summary godoc
// @Summary Summarize arbitrary article text
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SummaryRequest true "Article body"
// @Success 200 {object} domain.Summary
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/news/news_summary [post]
func (r *NewsRouter) summary(c echo.Context) error {
	var req SummaryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	summary, err := r.news.Summarize(c.Request().Context(), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// upvote godoc
// @Summary Toggle the caller's upvote on an article
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article id"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/news/{id}/upvote [post]
func (r *NewsRouter) upvote(c echo.Context) error {
	user, ok := auth.UserFrom(c)
	if !ok {
		return apperr.NewAuthentication("not authenticated")
	}
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid article id", err)
	}

	result, err := r.news.ToggleUpvote(c.Request().Context(), articleID, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: result.Message()})
}
