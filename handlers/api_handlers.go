package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"forum-directory/auth"
	"forum-directory/db"
	"forum-directory/filter"
	"forum-directory/importer"
	"forum-directory/metrics"
	"forum-directory/models"
)

// APIHandler holds the dependencies for API handlers
type APIHandler struct {
	Directory *db.Directory
	IDs       *db.IDSequence
	Sessions  importer.SessionStore
	Gate      *auth.Gate
	Tokens    *auth.TokenManager
	Metrics   *metrics.Metrics
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(
	directory *db.Directory,
	ids *db.IDSequence,
	sessions importer.SessionStore,
	gate *auth.Gate,
	tokens *auth.TokenManager,
	m *metrics.Metrics,
) *APIHandler {
	return &APIHandler{
		Directory: directory,
		IDs:       ids,
		Sessions:  sessions,
		Gate:      gate,
		Tokens:    tokens,
		Metrics:   m,
	}
}

// personView is a record as shown to visitors, with the mobile redaction
// rule already applied.
type personView struct {
	models.Person
	Mobile        string `json:"mobile"`
	MobileVisible bool   `json:"mobileVisible"`
}

func newPersonView(p models.Person) personView {
	return personView{
		Person:        p,
		Mobile:        models.DisplayMobile(p),
		MobileVisible: models.CanShowMobile(p),
	}
}

func newPersonViews(people []models.Person) []personView {
	out := make([]personView, len(people))
	for i, p := range people {
		out[i] = newPersonView(p)
	}
	return out
}

// searchResponse is the body of both list views.
type searchResponse struct {
	Union    string       `json:"union,omitempty"`
	Query    string       `json:"query"`
	Count    int          `json:"count"`
	Students []personView `json:"students"`
}

// --- Union Handlers ---

// GetUnions handles GET /api/unions
func (h *APIHandler) GetUnions(c *gin.Context) {
	c.JSON(http.StatusOK, h.Directory.Groups())
}

// GetStudentsByUnion handles GET /api/unions/:union/students
func (h *APIHandler) GetStudentsByUnion(c *gin.Context) {
	union := c.Param("union")
	if !h.Directory.Catalog().Contains(union) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Union not found"})
		return
	}

	query := c.Query("q")
	visible := filter.Visible(h.Directory.AllRecords(), union, query)
	h.Metrics.Searches.WithLabelValues("union").Inc()

	c.JSON(http.StatusOK, searchResponse{
		Union:    union,
		Query:    query,
		Count:    len(visible),
		Students: newPersonViews(visible),
	})
}

// --- Student Handlers ---

// SearchStudents handles GET /api/students. Without a query the result is
// empty; the whole roster is never listed by default.
func (h *APIHandler) SearchStudents(c *gin.Context) {
	query := c.Query("q")
	visible := filter.Visible(h.Directory.AllRecords(), "", query)
	h.Metrics.Searches.WithLabelValues("roster").Inc()

	c.JSON(http.StatusOK, searchResponse{
		Query:    query,
		Count:    len(visible),
		Students: newPersonViews(visible),
	})
}

// GetStudentByID handles GET /api/students/:id
func (h *APIHandler) GetStudentByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	person, found := h.Directory.Get(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	c.JSON(http.StatusOK, newPersonView(person))
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		slog.Debug("Invalid student id", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Student ID must be a number"})
		return 0, false
	}
	return id, true
}

// --- Ping Handler ---
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Pong!"})
}
