package controllers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"sec-platform/dto"
	"sec-platform/internal/apperr"
	"sec-platform/internal/repository"
)

// FileHandler manages blob attachments on resources: the bytes live in the
// blob store, only the file ids are embedded in the entity tree.
type FileHandler struct {
	Resources *repository.ResourceRepository
	Files     *repository.FileRepository
}

// Upload godoc
// @Summary      Upload files to a resource
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        institutionId  path      string  true  "Institution ID"
// @Param        classId        path      string  true  "Class ID"
// @Param        resourceId     path      string  true  "Resource ID"
// @Param        files          formData  file    true  "Files to attach"
// @Success      201            {object}  dto.FileUploadResp
// @Failure      400            {object}  dto.ErrorResponse
// @Failure      404            {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId}/resources/{resourceId}/files [post]
func (h *FileHandler) Upload(c *fiber.Ctx) error {
	instID, classID, resourceID, err := h.resourcePath(c)
	if err != nil {
		return respondErr(c, err)
	}

	// Resolve the resource before touching the blob store so a bad path
	// cannot leave orphaned blobs.
	if _, err := h.Resources.Get(c.Context(), instID, classID, resourceID); err != nil {
		return respondErr(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return respondErr(c, apperr.Validation("multipart form required"))
	}
	files := form.File["files"]
	if len(files) == 0 {
		return respondErr(c, apperr.Validation("no files provided"))
	}

	fileIDs := make([]bson.ObjectID, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return respondErr(c, err)
		}
		id, err := h.Files.Upload(c.Context(), fh.Filename, fh.Header.Get("Content-Type"), src)
		src.Close()
		if err != nil {
			return respondErr(c, err)
		}
		fileIDs = append(fileIDs, id)
	}

	if err := h.Resources.AttachFiles(c.Context(), instID, classID, resourceID, fileIDs); err != nil {
		return respondErr(c, err)
	}

	resp := dto.FileUploadResp{FileIDs: make([]string, 0, len(fileIDs))}
	for _, id := range fileIDs {
		resp.FileIDs = append(resp.FileIDs, id.Hex())
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      List files of a resource
// @Tags         files
// @Produce      json
// @Param        institutionId  path     string  true  "Institution ID"
// @Param        classId        path     string  true  "Class ID"
// @Param        resourceId     path     string  true  "Resource ID"
// @Success      200            {array}  dto.FileInfoResp
// @Failure      404            {object} dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId}/resources/{resourceId}/files [get]
func (h *FileHandler) List(c *fiber.Ctx) error {
	instID, classID, resourceID, err := h.resourcePath(c)
	if err != nil {
		return respondErr(c, err)
	}

	res, err := h.Resources.Get(c.Context(), instID, classID, resourceID)
	if err != nil {
		return respondErr(c, err)
	}

	infos := make([]dto.FileInfoResp, 0, len(res.FileIDs))
	for _, fid := range res.FileIDs {
		info, err := h.Files.Stat(c.Context(), fid)
		if err != nil {
			return respondErr(c, err)
		}
		infos = append(infos, dto.FileInfoResp{
			FileID:      info.ID.Hex(),
			Filename:    info.Filename,
			ContentType: info.ContentType,
		})
	}
	return c.JSON(infos)
}

// Download godoc
// @Summary      Download a file attached to a resource
// @Tags         files
// @Produce      application/octet-stream
// @Param        institutionId  path  string  true  "Institution ID"
// @Param        classId        path  string  true  "Class ID"
// @Param        resourceId     path  string  true  "Resource ID"
// @Param        fileId         path  string  true  "File ID"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId}/resources/{resourceId}/files/{fileId} [get]
func (h *FileHandler) Download(c *fiber.Ctx) error {
	instID, classID, resourceID, err := h.resourcePath(c)
	if err != nil {
		return respondErr(c, err)
	}
	fileID, err := paramID(c, "fileId")
	if err != nil {
		return respondErr(c, err)
	}

	res, err := h.Resources.Get(c.Context(), instID, classID, resourceID)
	if err != nil {
		return respondErr(c, err)
	}
	if !res.HasFile(fileID) {
		return respondErr(c, apperr.NotFound(apperr.KindFile, fileID.Hex()))
	}

	stream, info, err := h.Files.Download(c.Context(), fileID)
	if err != nil {
		return respondErr(c, err)
	}
	return sendBlob(c, stream, info)
}

// sendBlob streams the content with an inline disposition. The server closes
// the body stream after the response is written.
func sendBlob(c *fiber.Ctx, stream io.Reader, info *repository.FileInfo) error {
	if info.ContentType != "" {
		c.Set(fiber.HeaderContentType, info.ContentType)
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", info.Filename))
	return c.SendStream(stream, int(info.Length))
}

func (h *FileHandler) resourcePath(c *fiber.Ctx) (instID, classID, resourceID bson.ObjectID, err error) {
	if instID, err = paramID(c, "institutionId"); err != nil {
		return
	}
	if classID, err = paramID(c, "classId"); err != nil {
		return
	}
	resourceID, err = paramID(c, "resourceId")
	return
}
