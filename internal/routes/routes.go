package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/handlers"
	"github.com/BruksfildServices01/service-scheduler/internal/metrics"
	"github.com/BruksfildServices01/service-scheduler/internal/middleware"
	ucScheduling "github.com/BruksfildServices01/service-scheduler/internal/usecase/scheduling"
)

type Deps struct {
	Repo        domain.Repository
	Guard       ucScheduling.SubmissionGuard
	Audit       ucScheduling.AuditDispatcher
	Definitions []domain.Definition

	// nil desliga /metrics
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// termo de /filtrar pode conter "/" escapado
	r.UseRawPath = true
	r.UnescapePathValues = true

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(deps.AllowedOrigins...))

	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createUC := ucScheduling.NewCreateSchedulingRequest(deps.Repo, deps.Guard, deps.Audit)
	updateUC := ucScheduling.NewUpdateSchedulingRequest(deps.Repo, deps.Audit)
	deleteUC := ucScheduling.NewDeleteSchedulingRequest(deps.Repo, deps.Audit)
	getUC := ucScheduling.NewGetSchedulingRequest(deps.Repo)
	listUC := ucScheduling.NewListSchedulingRequests(deps.Repo)
	serviceTypesUC := ucScheduling.NewServiceTypes(deps.Repo)

	// ======================================================
	// 🧩 TIPOS DE SERVIÇO
	// ======================================================
	serviceTypeHandler := handlers.NewServiceTypeHandler(serviceTypesUC)

	r.GET("/servico", serviceTypeHandler.List)
	r.POST("/servico", serviceTypeHandler.Create)

	// ======================================================
	// 📅 AGENDAMENTOS (uma rota por definição)
	// ======================================================
	for _, def := range deps.Definitions {
		h := handlers.NewSchedulingHandler(def, createUC, updateUC, deleteUC, getUC, listUC)

		g := r.Group(def.Prefix)
		{
			g.GET("", h.List)
			g.POST("", h.Create)
			g.GET("/filtrar/:termo", h.Search)
			g.GET("/:id", h.Get)
			g.PUT("/:id", h.Update)
			g.DELETE("/:id", h.Delete)
		}
	}
}
