package controller

import (
	"errors"

	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SnippetController struct {
	SnippetService *service.SnippetService
}

func NewSnippetController(snippetService *service.SnippetService) *SnippetController {
	return &SnippetController{SnippetService: snippetService}
}

// ListSnippets godoc
// @Summary 获取代码片段列表
// @Tags 代码片段
// @Produce  json
// @Security ApiKeyAuth
// @Param language query string false "语言筛选"
// @Param topic query string false "主题筛选"
// @Param chapterId query int false "章节ID"
// @Param search query string false "标题或描述关键字"
// @Success 200 {object} util.Response{data=[]model.CodeSnippet}
// @Router /api/snippets [get]
func (c *SnippetController) ListSnippets(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	filter := repository.SnippetFilter{
		Language: ctx.Query("language"),
		Topic:    ctx.Query("topic"),
		Search:   ctx.Query("search"),
	}
	if raw := ctx.Query("chapterId"); raw != "" {
		id := util.MustParseUint(raw)
		filter.ChapterID = &id
	}

	snippets, err := c.SnippetService.List(user.UserID, filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, snippets)
}

// GetSnippet godoc
// @Summary 获取单个代码片段
// @Tags 代码片段
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "片段ID"
// @Success 200 {object} util.Response{data=model.CodeSnippet}
// @Failure 404 {object} util.Response "片段不存在"
// @Router /api/snippets/{id} [get]
func (c *SnippetController) GetSnippet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	snippet, err := c.SnippetService.Get(user.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, snippet)
}

// CreateSnippet godoc
// @Summary 新建代码片段
// @Tags 代码片段
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.SnippetRequest true "片段信息"
// @Success 201 {object} util.Response{data=model.CodeSnippet}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/snippets [post]
func (c *SnippetController) CreateSnippet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.SnippetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	snippet, err := c.SnippetService.Create(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, snippet)
}

// UpdateSnippet godoc
// @Summary 更新代码片段
// @Tags 代码片段
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "片段ID"
// @Param   body body service.SnippetRequest true "片段信息"
// @Success 200 {object} util.Response{data=model.CodeSnippet}
// @Failure 404 {object} util.Response "片段不存在"
// @Router /api/snippets/{id} [put]
func (c *SnippetController) UpdateSnippet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.SnippetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	snippet, err := c.SnippetService.Update(user.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, snippet)
}

// DeleteSnippet godoc
// @Summary 删除代码片段
// @Tags 代码片段
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "片段ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "片段不存在"
// @Router /api/snippets/{id} [delete]
func (c *SnippetController) DeleteSnippet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	if err := c.SnippetService.Delete(user.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
