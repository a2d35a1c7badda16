package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"forum-directory/db"
	"forum-directory/filter"
	"forum-directory/models"
)

// defaultAdminListLimit is how many records the admin overview shows unless
// the client asks for more.
const defaultAdminListLimit = 10

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/admin/login
func (h *APIHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.Gate.Check(req.Password); err != nil {
		slog.Warn("Admin login rejected", "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	token, err := h.Tokens.Generate()
	if err != nil {
		slog.Error("Error in Login handler", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	slog.Info("Admin logged in", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListStudents handles GET /api/admin/students?limit=N
func (h *APIHandler) ListStudents(c *gin.Context) {
	limit := defaultAdminListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative number"})
			return
		}
		limit = n
	}

	all := h.Directory.AllRecords()
	c.JSON(http.StatusOK, gin.H{
		"total":    len(all),
		"students": filter.Limit(all, limit),
	})
}

// addStudentRequest carries every Person field except the identifier, which
// the server assigns.
type addStudentRequest struct {
	Name        string `json:"name"`
	Union       string `json:"union"`
	Department  string `json:"department"`
	Session     string `json:"session"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	HighSchool  string `json:"highSchool"`
	College     string `json:"college"`
	VillageWard string `json:"villageWard"`
	Facebook    string `json:"facebook"`
	Gender      string `json:"gender"`
}

// AddStudent handles POST /api/admin/students
func (h *APIHandler) AddStudent(c *gin.Context) {
	var req addStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	person := models.Person{
		ID:          h.IDs.Next(),
		Name:        req.Name,
		Union:       req.Union,
		Department:  req.Department,
		Session:     req.Session,
		Mobile:      req.Mobile,
		Email:       req.Email,
		HighSchool:  req.HighSchool,
		College:     req.College,
		VillageWard: req.VillageWard,
		Facebook:    req.Facebook,
		Gender:      models.ParseGender(req.Gender),
	}

	if err := h.Directory.AddOne(person); err != nil {
		slog.Error("Error in AddStudent handler", "id", person.ID, "error", err)
		if errors.Is(err, db.ErrDuplicateID) {
			c.JSON(http.StatusConflict, gin.H{"error": "Student ID already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add student"})
		return
	}
	h.Metrics.Mutations.WithLabelValues("add").Inc()

	stored, _ := h.Directory.Get(person.ID)
	c.JSON(http.StatusCreated, stored)
}

// DeleteStudent handles DELETE /api/admin/students/:id. Unknown ids are not
// an error.
func (h *APIHandler) DeleteStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.Directory.Remove(id)
	h.Metrics.Mutations.WithLabelValues("remove").Inc()
	c.Status(http.StatusNoContent)
}
