package controller

import (
	"errors"

	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ChapterController struct {
	ChapterService *service.ChapterService
}

func NewChapterController(chapterService *service.ChapterService) *ChapterController {
	return &ChapterController{ChapterService: chapterService}
}

// ListChapters godoc
// @Summary 获取章节列表
// @Description 按排序字段升序返回全部章节
// @Tags 章节
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Chapter}
// @Router /api/chapters [get]
func (c *ChapterController) ListChapters(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	chapters, err := c.ChapterService.List(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, chapters)
}

// GetChapter godoc
// @Summary 获取单个章节
// @Tags 章节
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "章节ID"
// @Success 200 {object} util.Response{data=model.Chapter}
// @Failure 404 {object} util.Response "章节不存在"
// @Router /api/chapters/{id} [get]
func (c *ChapterController) GetChapter(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	chapter, err := c.ChapterService.Get(user.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, chapter)
}

// CreateChapter godoc
// @Summary 新建章节
// @Tags 章节
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.ChapterRequest true "章节信息"
// @Success 201 {object} util.Response{data=model.Chapter}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/chapters [post]
func (c *ChapterController) CreateChapter(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.ChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.ChapterService.Create(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, chapter)
}

// UpdateChapter godoc
// @Summary 更新章节
// @Tags 章节
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "章节ID"
// @Param   body body service.ChapterRequest true "章节信息"
// @Success 200 {object} util.Response{data=model.Chapter}
// @Failure 404 {object} util.Response "章节不存在"
// @Router /api/chapters/{id} [put]
func (c *ChapterController) UpdateChapter(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.ChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.ChapterService.Update(user.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, chapter)
}

// UpdateChapterProgress godoc
// @Summary 更新章节进度
// @Description 标记某个主题的完成状态并重算章节进度百分比
// @Tags 章节
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "章节ID"
// @Param   body body service.ChapterProgressRequest true "进度更新"
// @Success 200 {object} util.Response{data=model.Chapter}
// @Failure 400 {object} util.Response "主题序号越界"
// @Failure 404 {object} util.Response "章节不存在"
// @Router /api/chapters/{id}/progress [put]
func (c *ChapterController) UpdateChapterProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.ChapterProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.ChapterService.UpdateProgress(user.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrTopicIndexOutOfRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, chapter)
}

// DeleteChapter godoc
// @Summary 删除章节
// @Tags 章节
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "章节ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "章节不存在"
// @Router /api/chapters/{id} [delete]
func (c *ChapterController) DeleteChapter(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	if err := c.ChapterService.Delete(user.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
