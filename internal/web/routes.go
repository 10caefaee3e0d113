package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/middleware"
	"github.com/BruksfildServices01/service-scheduler/internal/page"
)

type Deps struct {
	Definitions []scheduling.Definition
	// Backend devolve o backend (cliente HTTP) de cada definição.
	Backend  func(def scheduling.Definition) page.Backend
	Timezone string
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	r.SetHTMLTemplate(Templates())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if len(deps.Definitions) > 0 {
		home := deps.Definitions[0].ListRoute
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, home)
		})
	}

	for _, def := range deps.Definitions {
		h := NewPageHandler(def, deps.Backend(def), deps.Definitions, deps.Timezone)

		g := r.Group(def.ListRoute)
		{
			g.GET("", h.Show)
			g.POST("", h.Save)
			g.GET("/:id/editar", h.Edit)
			g.POST("/:id/editar", h.Save)
			g.POST("/:id/excluir", h.Delete)
		}
	}
}
