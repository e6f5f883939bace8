package controller

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UploadController struct {
	StorageService *service.StorageService
	ProblemService *service.ProblemService
}

func NewUploadController(storageService *service.StorageService, problemService *service.ProblemService) *UploadController {
	return &UploadController{
		StorageService: storageService,
		ProblemService: problemService,
	}
}

// UploadAttachment godoc
// @Summary 上传题目附件
// @Description 校验文件类型后存入配置的存储后端，可选关联到题目
// @Tags 上传
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param file formData file true "附件文件（图片、PDF或文本）"
// @Param problemId formData int false "关联的题目ID"
// @Success 201 {object} util.Response{data=object} "上传成功"
// @Failure 400 {object} util.Response "文件类型不支持或超出大小限制"
// @Router /api/uploads/attachments [post]
func (c *UploadController) UploadAttachment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}
	if fileHeader.Size > util.MaxAttachmentSize {
		util.BadRequest(ctx, "file too large")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	// 读头部做MIME深度校验，再拼回完整流
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		util.LogInternalError(ctx, err)
		return
	}
	head = head[:n]

	mimeType, err := util.ValidateMimeType(bytes.NewReader(head), []string{util.MimeImage, util.MimePDF, util.MimeText})
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	filename := fmt.Sprintf("attachments/%d/%d%s", user.UserID, time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))
	reader := io.MultiReader(bytes.NewReader(head), src)

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, reader, fileHeader.Size, mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if raw := ctx.PostForm("problemId"); raw != "" {
		if _, err := c.ProblemService.AddAttachment(user.UserID, util.MustParseUint(raw), url); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.NotFound(ctx)
			} else {
				util.LogInternalError(ctx, err)
			}
			return
		}
	}

	util.Created(ctx, gin.H{"url": url, "contentType": mimeType})
}
