package web

import (
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/page"
	"github.com/BruksfildServices01/service-scheduler/internal/timezone"
	usecase "github.com/BruksfildServices01/service-scheduler/internal/usecase/scheduling"
)

const pageTemplate = "page.html"

// campos do formulário repassados para a página no POST
var formFields = []string{
	"nomeSolicitante",
	"cpfSolicitante",
	"contatoSolicitante",
	"enderecoSolicitante",
	"bairroSolicitante",
	"numeroSolicitante",
	"tipoServico",
	"dataAgendamento",
	"horario",
	"horarioFim",
	"descricaoServico",
}

// flash sobrevive ao redirect como código na query string
var flashes = map[string]string{
	"criado":     page.MsgCreated,
	"atualizado": page.MsgUpdated,
	"excluido":   page.MsgDeleted,
}

type view struct {
	Page        *page.Page
	Today       string
	Definitions []scheduling.Definition
}

// PageHandler serve a página de uma Definition.
type PageHandler struct {
	def      scheduling.Definition
	backend  page.Backend
	all      []scheduling.Definition
	timezone string

	// submissões em andamento, por fingerprint
	inflight sync.Map
}

func NewPageHandler(def scheduling.Definition, backend page.Backend, all []scheduling.Definition, tz string) *PageHandler {
	return &PageHandler{
		def:      def,
		backend:  backend,
		all:      all,
		timezone: tz,
	}
}

func (h *PageHandler) render(c *gin.Context, status int, p *page.Page) {
	c.HTML(status, pageTemplate, view{
		Page:        p,
		Today:       timezone.FormatDate(timezone.NowIn(h.timezone)),
		Definitions: h.all,
	})
}

func (h *PageHandler) redirect(c *gin.Context, flash string) {
	target := h.def.ListRoute
	if flash != "" {
		target += "?" + url.Values{"flash": {flash}}.Encode()
	}
	c.Redirect(http.StatusSeeOther, target)
}

// GET <list route>  (?termo= filtra por nome)
func (h *PageHandler) Show(c *gin.Context) {
	p := page.New(h.def, h.backend)
	p.Mount(c.Request.Context(), "")

	if term := c.Query("termo"); term != "" {
		p.Filter(c.Request.Context(), term)
	}
	if msg, ok := flashes[c.Query("flash")]; ok {
		p.Success = msg
	}

	h.render(c, http.StatusOK, p)
}

// GET <list route>/:id/editar
func (h *PageHandler) Edit(c *gin.Context) {
	p := page.New(h.def, h.backend)
	p.Mount(c.Request.Context(), c.Param("id"))

	status := http.StatusOK
	if p.Failure == page.MsgLoadFailed {
		status = http.StatusNotFound
	}
	h.render(c, status, p)
}

// POST <list route> e POST <list route>/:id/editar
func (h *PageHandler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	p := page.New(h.def, h.backend)
	p.Mount(ctx, c.Param("id"))
	if p.Mode == page.ModeEdit && p.ID == 0 {
		h.render(c, http.StatusNotFound, p)
		return
	}

	for _, name := range formFields {
		p.Change(name, c.PostForm(name))
	}

	key := usecase.Fingerprint(h.def.Name+"/"+strconv.FormatUint(uint64(p.ID), 10), p.Submission())
	if _, busy := h.inflight.LoadOrStore(key, struct{}{}); busy {
		// mesmo envio ainda em andamento: nada a fazer
		h.redirect(c, "")
		return
	}
	defer h.inflight.Delete(key)

	editing := p.Mode == page.ModeEdit
	if !p.Save(ctx) {
		h.render(c, http.StatusUnprocessableEntity, p)
		return
	}

	if editing {
		h.redirect(c, "atualizado")
		return
	}
	h.redirect(c, "criado")
}

// POST <list route>/:id/excluir  (exige confirmar=sim)
func (h *PageHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		h.redirect(c, "")
		return
	}

	p := page.New(h.def, h.backend)
	confirmed := func(string) bool { return c.PostForm("confirmar") == "sim" }

	if p.Remove(ctx, uint(id), confirmed) {
		h.redirect(c, "excluido")
		return
	}
	if p.Failure == "" {
		// não confirmado
		h.redirect(c, "")
		return
	}

	p.Mount(ctx, "")
	h.render(c, http.StatusBadGateway, p)
}
