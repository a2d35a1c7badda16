package handlers

import "github.com/gin-gonic/gin"

// NewRouter builds the gin engine with every API route registered.
func NewRouter(h *APIHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger())

	router.GET("/metrics", gin.WrapH(h.Metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/ping", PingHandler)

		// Union routes
		api.GET("/unions", h.GetUnions)
		api.GET("/unions/:union/students", h.GetStudentsByUnion)

		// Student routes
		api.GET("/students", h.SearchStudents)
		api.GET("/students/:id", h.GetStudentByID)

		api.POST("/admin/login", h.Login)
	}

	admin := api.Group("/admin", h.RequireAdmin())
	{
		admin.GET("/students", h.ListStudents)
		admin.POST("/students", h.AddStudent)
		admin.DELETE("/students/:id", h.DeleteStudent)

		// Import routes
		admin.POST("/imports", h.StartImport)
		admin.GET("/imports/:id", h.GetImport)
		admin.DELETE("/imports/:id", h.CancelImport)
		admin.POST("/imports/:id/automap", h.AutoMapImport)
		admin.POST("/imports/:id/commit", h.CommitImport)
		admin.PUT("/imports/:id/mapping/:field", h.SetImportMapping)
		admin.DELETE("/imports/:id/mapping/:field", h.ClearImportMapping)
	}

	return router
}
