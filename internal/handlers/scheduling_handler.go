package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/service-scheduler/internal/middleware"
	ucScheduling "github.com/BruksfildServices01/service-scheduler/internal/usecase/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

// SchedulingHandler atende o CRUD de uma Definition; as duas fatias
// (realizaragserv, agendamentos) usam o mesmo handler.
type SchedulingHandler struct {
	def    domain.Definition
	create *ucScheduling.CreateSchedulingRequest
	update *ucScheduling.UpdateSchedulingRequest
	remove *ucScheduling.DeleteSchedulingRequest
	get    *ucScheduling.GetSchedulingRequest
	list   *ucScheduling.ListSchedulingRequests
}

func NewSchedulingHandler(
	def domain.Definition,
	create *ucScheduling.CreateSchedulingRequest,
	update *ucScheduling.UpdateSchedulingRequest,
	remove *ucScheduling.DeleteSchedulingRequest,
	get *ucScheduling.GetSchedulingRequest,
	list *ucScheduling.ListSchedulingRequests,
) *SchedulingHandler {
	return &SchedulingHandler{
		def:    def,
		create: create,
		update: update,
		remove: remove,
		get:    get,
		list:   list,
	}
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, httperr.CodeInvalidID, "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func (h *SchedulingHandler) writeError(c *gin.Context, op string, err error) {
	var fields validators.FieldErrors

	switch {
	case errors.As(err, &fields):
		httperr.Validation(c, fields)

	case httperr.IsBusiness(err, httperr.CodeNotFound):
		httperr.NotFound(c, httperr.CodeNotFound, "Agendamento não encontrado.")

	case httperr.IsBusiness(err, httperr.CodeServiceTypeNotFound):
		httperr.BadRequest(c, httperr.CodeServiceTypeNotFound, "Tipo de serviço não encontrado.")

	case httperr.IsBusiness(err, httperr.CodeDuplicateSubmission):
		httperr.Conflict(c, httperr.CodeDuplicateSubmission, "Agendamento já enviado, aguarde.")

	default:
		log.Printf("%s %s failed: request_id=%s error=%v",
			h.def.Name, op, c.GetString(middleware.ContextRequestID), err)
		httperr.Internal(c, "failed_to_"+op, "Erro ao processar o agendamento.")
	}
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *SchedulingHandler) List(c *gin.Context) {
	rows, err := h.list.Execute(c.Request.Context(), h.def)
	if err != nil {
		h.writeError(c, "list", err)
		return
	}
	httpresp.List(c, rows)
}

func (h *SchedulingHandler) Search(c *gin.Context) {
	rows, err := h.list.Search(c.Request.Context(), h.def, c.Param("termo"))
	if err != nil {
		h.writeError(c, "search", err)
		return
	}
	httpresp.List(c, rows)
}

// ======================================================
// GET
// ======================================================

func (h *SchedulingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	req, err := h.get.Execute(c.Request.Context(), h.def, id)
	if err != nil {
		h.writeError(c, "get", err)
		return
	}
	httpresp.OK(c, req)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *SchedulingHandler) Create(c *gin.Context) {
	var in validators.SchedulingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	req, err := h.create.Execute(c.Request.Context(), h.def, in)
	if err != nil {
		h.writeError(c, "create", err)
		return
	}
	httpresp.Created(c, req)
}

func (h *SchedulingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in validators.SchedulingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	req, err := h.update.Execute(c.Request.Context(), h.def, id, in)
	if err != nil {
		h.writeError(c, "update", err)
		return
	}
	httpresp.OK(c, req)
}

// ======================================================
// DELETE
// ======================================================

func (h *SchedulingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), h.def, id); err != nil {
		h.writeError(c, "delete", err)
		return
	}
	httpresp.NoContent(c)
}
