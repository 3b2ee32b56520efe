package handler

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alkbooks/invoicing-api/pkg/apperror"
)

// parseIDParam parses a UUID path parameter
func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.NewBadRequestError("Invalid " + name)
	}
	return id, nil
}

// openUpload opens the multipart file of an import request. The filename
// is returned alongside because it selects the extractor.
func openUpload(c *gin.Context) (multipart.File, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", apperror.NewBadRequestError("A file upload is required")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", apperror.NewBadRequestError("Could not read the uploaded file")
	}
	return f, fileHeader.Filename, nil
}
