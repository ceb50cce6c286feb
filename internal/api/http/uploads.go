package http

import (
	"net/http"

	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/pkg/httpx"
)

type UploadHandler struct {
	UploadService *service.UploadService
}

// maxMultipartMemory bounds what ParseMultipartForm buffers in RAM; the
// rest spills to temp files.
const maxMultipartMemory = 8 << 20

type uploadResponse struct {
	Path string `json:"path"`
}

// HandleUpload stores a single file and returns its public path.
//
//	@Summary	Upload a file
//	@Tags		Uploads
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"File"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Router		/api/v1/upload [post].
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		httpx.Write(w, httpx.Error(httpx.BadRequest("upload", "invalid multipart form")))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.Write(w, httpx.Error(httpx.BadRequest("upload", "file is required")))
		return
	}
	defer file.Close()

	path, err := h.UploadService.Save(r.Context(), file, header)
	if err != nil {
		writeServiceError(w, r, "upload", err)
		return
	}

	httpx.Write(w, httpx.Success(uploadResponse{Path: path}, "Upload file successfully"))
}

type uploadMultipleResponse struct {
	Paths []string `json:"paths"`
}

// HandleUploadMultiple stores a batch of files; the batch is all or
// nothing.
//
//	@Summary	Upload multiple files
//	@Tags		Uploads
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		files	formData	file	true	"Files"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Router		/api/v1/upload-multiple [post].
func (h *UploadHandler) HandleUploadMultiple(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		httpx.Write(w, httpx.Error(httpx.BadRequest("upload", "invalid multipart form")))
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		httpx.Write(w, httpx.Error(httpx.BadRequest("upload", "files are required")))
		return
	}

	paths, err := h.UploadService.SaveAll(r.Context(), r.MultipartForm.File["files"])
	if err != nil {
		writeServiceError(w, r, "upload", err)
		return
	}

	httpx.Write(w, httpx.Success(uploadMultipleResponse{Paths: paths}, "Upload files successfully"))
}
