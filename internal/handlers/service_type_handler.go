package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/httpresp"
	ucScheduling "github.com/BruksfildServices01/service-scheduler/internal/usecase/scheduling"
)

type ServiceTypeHandler struct {
	types *ucScheduling.ServiceTypes
}

func NewServiceTypeHandler(types *ucScheduling.ServiceTypes) *ServiceTypeHandler {
	return &ServiceTypeHandler{types: types}
}

type CreateServiceTypeRequest struct {
	Name string `json:"nome" binding:"required,min=2,max=100"`
}

func (h *ServiceTypeHandler) List(c *gin.Context) {
	types, err := h.types.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_service_types", "Erro ao listar tipos de serviço.")
		return
	}
	httpresp.List(c, types)
}

func (h *ServiceTypeHandler) Create(c *gin.Context) {
	var req CreateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome do tipo de serviço inválido.")
		return
	}

	st, err := h.types.Create(c.Request.Context(), req.Name)
	if err != nil {
		if httperr.IsBusiness(err, ucScheduling.CodeServiceTypeExists) {
			httperr.Conflict(c, ucScheduling.CodeServiceTypeExists, "Tipo de serviço já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_service_type", "Erro ao cadastrar tipo de serviço.")
		return
	}
	httpresp.Created(c, st)
}
