package controllers

import (
	"context"

	"hotelbooking/config"
	"hotelbooking/response"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// UploadImage nhận một file ảnh và đẩy lên Cloudinary, trả về secure URL
func UploadImage(c *gin.Context) {
	if config.Cloudinary == nil {
		response.ServerError(c, "Image upload is not configured")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Failed to open file")
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "hotels"})
	if err != nil {
		response.ServerError(c, "Upload failed")
		return
	}

	response.OK(c, gin.H{"url": resp.SecureURL})
}
