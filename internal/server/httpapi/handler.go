package httpapi

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkveil/inkveil/internal/common"
	"github.com/inkveil/inkveil/internal/logging"
	"github.com/inkveil/inkveil/internal/server/artifacts"
	"github.com/inkveil/inkveil/internal/server/redact"
)

type handler struct {
	store          *artifacts.Store
	logger         logging.Logger
	maxUploadBytes int64
}

type fileEntry struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// redactMulti processes the whole upload as one batch. Entries that
// cannot be read or are not PDFs are dropped from the result; the
// client marks them as not processed.
func (h *handler) redactMulti(c *gin.Context) {
	ctx := c.Request.Context()

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid multipart form: " + err.Error()})
		return
	}

	uploads := form.File[common.MultipartFieldName]
	if len(uploads) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "no files in batch"})
		return
	}

	entries := make([]fileEntry, 0, len(uploads))
	for _, fh := range uploads {
		f, err := fh.Open()
		if err != nil {
			h.logger.Warn(ctx, "upload not readable", "name", fh.Filename, "error", err)
			continue
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			h.logger.Warn(ctx, "upload not readable", "name", fh.Filename, "error", err)
			continue
		}

		name, out, err := redact.Process(fh.Filename, data)
		if err != nil {
			h.logger.Warn(ctx, "upload rejected", "name", fh.Filename, "error", err)
			continue
		}

		h.store.Put(name, out)
		entries = append(entries, fileEntry{Filename: name, URL: "/files/" + name})
	}

	if len(entries) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "error": "no file in the batch could be processed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "files": entries})
}

func (h *handler) clearAll(c *gin.Context) {
	h.store.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *handler) getFile(c *gin.Context) {
	name := c.Param("name")

	data, ok := h.store.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": "no such artifact"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
