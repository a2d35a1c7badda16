package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"forum-directory/importer"
	"forum-directory/models"
)

// maxUploadBytes caps the size of an uploaded import file.
const maxUploadBytes = 10 << 20

// previewRows is how many data rows an import response echoes back.
const previewRows = 5

// importView describes a staged import to the mapping screen.
type importView struct {
	ID       string           `json:"id"`
	Filename string           `json:"filename"`
	Header   []string         `json:"header"`
	DataRows int              `json:"dataRows"`
	Preview  [][]string       `json:"preview"`
	Fields   []models.Field   `json:"fields"`
	Mapping  importer.Mapping `json:"mapping"`
}

func newImportView(s *importer.Session) importView {
	data := s.DataRows()
	preview := data
	if len(preview) > previewRows {
		preview = preview[:previewRows]
	}
	return importView{
		ID:       s.ID,
		Filename: s.Filename,
		Header:   s.Header(),
		DataRows: len(data),
		Preview:  preview,
		Fields:   models.Fields,
		Mapping:  s.Mapping,
	}
}

// importErrorStatus maps import errors to HTTP status codes.
func importErrorStatus(err error) int {
	switch {
	case errors.Is(err, importer.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, importer.ErrSessionClosed):
		return http.StatusConflict
	case errors.Is(err, importer.ErrUnknownField), errors.Is(err, importer.ErrColumnOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *APIHandler) importError(c *gin.Context, op string, err error) {
	status := importErrorStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("Error in import handler", "op", op, "import_id", c.Param("id"), "error", err)
		c.JSON(status, gin.H{"error": "Failed to " + op})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// loadSession fetches the session named by the :id path parameter.
func (h *APIHandler) loadSession(c *gin.Context) (*importer.Session, bool) {
	sess, err := h.Sessions.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.importError(c, "load import", err)
		return nil, false
	}
	return sess, true
}

func (h *APIHandler) saveSession(c *gin.Context, sess *importer.Session) bool {
	if err := h.Sessions.Save(c.Request.Context(), sess); err != nil {
		h.importError(c, "save import", err)
		return false
	}
	return true
}

// StartImport handles POST /api/admin/imports. The form field "file" holds a
// CSV or .xlsx export; set "automap=false" to start with an empty mapping.
func (h *APIHandler) StartImport(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		slog.Warn("Error getting form file", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error retrieving uploaded file: " + err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		h.importError(c, "read upload", err)
		return
	}
	if len(data) > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Uploaded file is too large"})
		return
	}

	rows, err := importer.ReadFile(header.Filename, data)
	if err != nil {
		slog.Warn("Unreadable import file", "filename", header.Filename, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file: " + err.Error()})
		return
	}

	sess := importer.NewSession(header.Filename, rows)
	if c.PostForm("automap") != "false" {
		if err := sess.AutoMap(); err != nil {
			h.importError(c, "map import", err)
			return
		}
	}
	if !h.saveSession(c, sess) {
		return
	}

	h.Metrics.ImportsStarted.Inc()
	slog.Info("Import staged",
		"import_id", sess.ID,
		"filename", sess.Filename,
		"data_rows", len(sess.DataRows()),
		"mapped_fields", len(sess.Mapping),
	)
	c.JSON(http.StatusCreated, newImportView(sess))
}

// GetImport handles GET /api/admin/imports/:id
func (h *APIHandler) GetImport(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newImportView(sess))
}

// AutoMapImport handles POST /api/admin/imports/:id/automap
func (h *APIHandler) AutoMapImport(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	if err := sess.AutoMap(); err != nil {
		h.importError(c, "map import", err)
		return
	}
	if !h.saveSession(c, sess) {
		return
	}
	c.JSON(http.StatusOK, newImportView(sess))
}

type remapRequest struct {
	Column *int `json:"column"`
}

// SetImportMapping handles PUT /api/admin/imports/:id/mapping/:field
func (h *APIHandler) SetImportMapping(c *gin.Context) {
	var req remapRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Column == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must contain a column index"})
		return
	}

	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	if err := sess.Remap(models.Field(c.Param("field")), *req.Column); err != nil {
		h.importError(c, "map import", err)
		return
	}
	if !h.saveSession(c, sess) {
		return
	}
	c.JSON(http.StatusOK, newImportView(sess))
}

// ClearImportMapping handles DELETE /api/admin/imports/:id/mapping/:field
func (h *APIHandler) ClearImportMapping(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	if err := sess.Unmap(models.Field(c.Param("field"))); err != nil {
		h.importError(c, "map import", err)
		return
	}
	if !h.saveSession(c, sess) {
		return
	}
	c.JSON(http.StatusOK, newImportView(sess))
}

// CommitImport handles POST /api/admin/imports/:id/commit
func (h *APIHandler) CommitImport(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}

	result, err := sess.Commit(h.Directory, h.IDs, h.Directory.Catalog().Default())
	if err != nil {
		h.Metrics.ImportResults.WithLabelValues("failed").Inc()
		h.importError(c, "commit import", err)
		return
	}

	if result.NoOp {
		h.Metrics.ImportResults.WithLabelValues("noop").Inc()
		c.JSON(http.StatusOK, gin.H{
			"message":  "No data rows to import",
			"imported": 0,
			"noOp":     true,
		})
		return
	}

	if err := h.Sessions.Delete(c.Request.Context(), sess.ID); err != nil {
		slog.Warn("Committed import could not be discarded", "import_id", sess.ID, "error", err)
	}
	h.Metrics.ImportResults.WithLabelValues("committed").Inc()
	h.Metrics.ImportedRows.Add(float64(result.Imported))

	c.JSON(http.StatusOK, gin.H{
		"message":  "Import successful",
		"imported": result.Imported,
		"noOp":     false,
		"total":    h.Directory.Len(),
	})
}

// CancelImport handles DELETE /api/admin/imports/:id
func (h *APIHandler) CancelImport(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	if err := sess.Cancel(); err != nil {
		h.importError(c, "cancel import", err)
		return
	}
	if err := h.Sessions.Delete(c.Request.Context(), sess.ID); err != nil {
		h.importError(c, "cancel import", err)
		return
	}
	h.Metrics.ImportResults.WithLabelValues("canceled").Inc()
	c.Status(http.StatusNoContent)
}
