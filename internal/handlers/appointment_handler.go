package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EspacoVitaServices/salon-scheduler/internal/domain/catalog"
	domain "github.com/EspacoVitaServices/salon-scheduler/internal/domain/schedule"
	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
	"github.com/EspacoVitaServices/salon-scheduler/internal/httpresp"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
	"github.com/EspacoVitaServices/salon-scheduler/internal/usecase/appointment"
	"github.com/EspacoVitaServices/salon-scheduler/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo    domain.Repository
	catalog catalog.Gateway

	create   *appointment.CreateAppointment
	delete   *appointment.DeleteAppointment
	finalize *appointment.FinalizeAppointment
	retry    *appointment.RetryReport
	dayView  *appointment.DayView
	composer *order.Composer
}

func NewAppointmentHandler(
	repo domain.Repository,
	gateway catalog.Gateway,
	create *appointment.CreateAppointment,
	del *appointment.DeleteAppointment,
	finalize *appointment.FinalizeAppointment,
	retry *appointment.RetryReport,
	dayView *appointment.DayView,
	composer *order.Composer,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		catalog:  gateway,
		create:   create,
		delete:   del,
		finalize: finalize,
		retry:    retry,
		dayView:  dayView,
		composer: composer,
	}
}

// ======================================================
// ITEM PICKER
// ======================================================

// ItemRequest referencia uma linha do catálogo. Nome e preço são congelados
// aqui, no momento da seleção: mudanças posteriores no catálogo não alteram
// comandas já montadas.
type ItemRequest struct {
	Kind string `json:"kind" binding:"required"`
	ID   uint   `json:"id" binding:"required"`
}

func (h *AppointmentHandler) resolveItems(
	ctx context.Context,
	salonID uint,
	reqs []ItemRequest,
) ([]models.Item, error) {

	items := make([]models.Item, 0, len(reqs))

	for _, r := range reqs {
		switch models.ItemKind(r.Kind) {
		case models.KindServico:
			svc, err := h.catalog.GetService(ctx, salonID, r.ID)
			if err != nil {
				return nil, httperr.ErrBusiness("service_not_found")
			}
			items = append(items, models.Item{
				CatalogID: svc.ID,
				Nome:      svc.Name,
				Preco:     svc.Price,
				Kind:      models.KindServico,
			})

		case models.KindProduto:
			p, err := h.catalog.GetProduct(ctx, salonID, r.ID)
			if err != nil {
				return nil, httperr.ErrBusiness("product_not_found")
			}
			items = append(items, models.Item{
				CatalogID: p.ID,
				Nome:      p.Name,
				Preco:     p.SalePrice,
				Kind:      models.KindProduto,
			})

		default:
			return nil, httperr.ErrBusiness("invalid_item_kind")
		}
	}

	return items, nil
}

// ======================================================
// CREATE
// ======================================================

type CreateAppointmentRequest struct {
	Date    string        `json:"date" binding:"required"`
	Inicio  string        `json:"inicio" binding:"required"`
	Fim     string        `json:"fim" binding:"required"`
	Cliente string        `json:"cliente" binding:"required"`
	Items   []ItemRequest `json:"items"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	salonID, userID := currentIdentity(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	items, err := h.resolveItems(c.Request.Context(), salonID, req.Items)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		SalonID: salonID,
		UserID:  userID,
		Date:    req.Date,
		Inicio:  req.Inicio,
		Fim:     req.Fim,
		Cliente: req.Cliente,
		Items:   items,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// DAY VIEW + SLOT CLICK
// ======================================================

func (h *AppointmentHandler) Day(c *gin.Context) {
	salonID, _ := currentIdentity(c)
	date := c.Query("date")

	view, err := h.dayView.Execute(c.Request.Context(), salonID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, view)
}

type FillRangeRequest struct {
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
	Label  string `json:"label" binding:"required"`
}

// FillRange reproduz o clique num slot da grade: preenche o início vazio
// primeiro, depois passa a sobrescrever o fim.
func (h *AppointmentHandler) FillRange(c *gin.Context) {
	var req FillRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	if !domain.ValidTime(req.Label) {
		httperr.BadRequest(c, "invalid_time", "Horário inválido. Use o formato HH:MM.")
		return
	}

	inicio, fim := domain.FillRange(req.Inicio, req.Fim, req.Label)

	httpresp.OK(c, gin.H{"inicio": inicio, "fim": fim})
}

// ======================================================
// LISTAS
// ======================================================

func (h *AppointmentHandler) ByClient(c *gin.Context) {
	salonID, _ := currentIdentity(c)
	name := c.Query("name")

	if name == "" {
		httperr.BadRequest(c, "missing_required_field", "Informe o nome do cliente.")
		return
	}

	aps, err := h.repo.ListAppointmentsByClient(c.Request.Context(), salonID, name)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ByEmployee(c *gin.Context) {
	salonID, _ := currentIdentity(c)
	name := c.Query("name")

	if name == "" {
		httperr.BadRequest(c, "missing_required_field", "Informe o nome do funcionário.")
		return
	}

	aps, err := h.repo.ListAppointmentsByEmployee(c.Request.Context(), salonID, name)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// DETAIL / DELETE
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	salonID, _ := currentIdentity(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), salonID, id)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	salonID, userID := currentIdentity(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), salonID, userID, id); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// FINALIZE / RETRY REPORT
// ======================================================

type FinalizeRequest struct {
	Funcionario string        `json:"funcionario" binding:"required"`
	ExtraItems  []ItemRequest `json:"extra_items"`
}

func (h *AppointmentHandler) Finalize(c *gin.Context) {
	salonID, userID := currentIdentity(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_employee", "Informe o funcionário responsável pela finalização.")
		return
	}

	extras, err := h.resolveItems(c.Request.Context(), salonID, req.ExtraItems)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	result, err := h.finalize.Execute(c.Request.Context(), appointment.FinalizeAppointmentInput{
		SalonID:       salonID,
		UserID:        userID,
		AppointmentID: id,
		EmployeeName:  req.Funcionario,
		ExtraItems:    extras,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, result)
}

func (h *AppointmentHandler) RetryReport(c *gin.Context) {
	salonID, _ := currentIdentity(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	written, err := h.retry.Execute(c.Request.Context(), salonID, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"written": written})
}

// ======================================================
// ITENS DA COMANDA
// ======================================================

type AddItemsRequest struct {
	Items []ItemRequest `json:"items" binding:"required"`
}

func (h *AppointmentHandler) AddItems(c *gin.Context) {
	salonID, _ := currentIdentity(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AddItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		httperr.BadRequest(c, "invalid_request", "Informe ao menos um item.")
		return
	}

	items, err := h.resolveItems(c.Request.Context(), salonID, req.Items)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	ap, err := h.composer.AddItems(c.Request.Context(), salonID, id, items)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) RemoveItem(c *gin.Context) {
	salonID, _ := currentIdentity(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.BadRequest(c, "invalid_item_index", "Item inexistente na comanda.")
		return
	}

	ap, err := h.composer.RemoveItem(c.Request.Context(), salonID, id, index)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
