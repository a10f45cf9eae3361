package controllers

import (
	"net/http"
	"strconv"

	"articlehub/middlewares"
	"articlehub/models"
	"articlehub/services"

	"github.com/gin-gonic/gin"
)

type ArticleController struct {
	svc *services.ArticleService
}

func NewArticleController(svc *services.ArticleService) *ArticleController {
	return &ArticleController{svc: svc}
}

func (c *ArticleController) Create(ctx *gin.Context) {
	var input services.ArticleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := middlewares.CurrentIdentity(ctx)
	article, err := c.svc.CreateArticle(ctx.Request.Context(), identity, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, article)
}

// List supports the search filters from the query string: status
// (moderation roles only), header, body, author, tag and marks
// (">7", "<3" or an exact "5" against sum_of_marks).
func (c *ArticleController) List(ctx *gin.Context) {
	params := services.SearchParams{
		Status: ctx.Query("status"),
		Header: ctx.Query("header"),
		Body:   ctx.Query("body"),
		Author: ctx.Query("author"),
		Tag:    ctx.Query("tag"),
		Marks:  ctx.Query("marks"),
	}

	identity := middlewares.CurrentIdentity(ctx)
	articles, err := c.svc.ListArticles(ctx.Request.Context(), identity, params)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, articles)
}

func (c *ArticleController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	article, err := c.svc.GetArticle(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, article)
}

func (c *ArticleController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var input services.ArticleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := middlewares.CurrentIdentity(ctx)
	article, err := c.svc.UpdateArticle(ctx.Request.Context(), identity, id, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, article)
}

type changeStatusRequest struct {
	Status models.ArticleStatus `json:"status" binding:"required"`
}

func (c *ArticleController) ChangeStatus(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req changeStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := middlewares.CurrentIdentity(ctx)
	article, err := c.svc.ChangeStatus(ctx.Request.Context(), identity, id, req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, article)
}

func (c *ArticleController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	identity := middlewares.CurrentIdentity(ctx)
	if err := c.svc.DeleteArticle(ctx.Request.Context(), identity, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (c *ArticleController) LeaveComment(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req commentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := middlewares.CurrentIdentity(ctx)
	comment, err := c.svc.LeaveComment(ctx.Request.Context(), identity, id, req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}

func (c *ArticleController) GetComments(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	identity := middlewares.CurrentIdentity(ctx)
	comments, err := c.svc.GetComments(ctx.Request.Context(), identity, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

type markRequest struct {
	Value *int `json:"value" binding:"required"`
}

func (c *ArticleController) LeaveMark(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req markRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := middlewares.CurrentIdentity(ctx)
	article, err := c.svc.LeaveMark(ctx.Request.Context(), identity, id, *req.Value)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, article)
}

type attachTagRequest struct {
	TagID uint `json:"tag_id" binding:"required"`
}

func (c *ArticleController) AttachTag(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req attachTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := middlewares.CurrentIdentity(ctx)
	article, err := c.svc.AttachTag(ctx.Request.Context(), identity, id, req.TagID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, article)
}

type createTagRequest struct {
	Name string `json:"name" binding:"required"`
}

func (c *ArticleController) CreateTag(ctx *gin.Context) {
	var req createTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := middlewares.CurrentIdentity(ctx)
	tag, err := c.svc.CreateTag(ctx.Request.Context(), identity, req.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, tag)
}

// TopRated serves the Redis mark ranking.
func (c *ArticleController) TopRated(ctx *gin.Context) {
	top, err := strconv.Atoi(ctx.DefaultQuery("top", "10"))
	if err != nil || top <= 0 {
		top = 10
	}

	list, err := c.svc.TopRated(ctx.Request.Context(), top)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"list": list})
}
