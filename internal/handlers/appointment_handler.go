package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-turnos/internal/dto"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/httpresp"
	"github.com/BruksfildServices01/barber-turnos/internal/middleware"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-turnos/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucAppointment.BookAppointment
	list         *ucAppointment.ListAppointments
	cancel       *ucAppointment.CancelAppointment
	availability *ucAppointment.GetAvailability
	receipt      *ucAppointment.RenderReceipt
	payment      *ucAppointment.StartPayment
	loc          *time.Location
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	list *ucAppointment.ListAppointments,
	cancel *ucAppointment.CancelAppointment,
	availability *ucAppointment.GetAvailability,
	receipt *ucAppointment.RenderReceipt,
	payment *ucAppointment.StartPayment,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		list:         list,
		cancel:       cancel,
		availability: availability,
		receipt:      receipt,
		payment:      payment,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookRequest struct {
	Cliente   string `json:"cliente" validate:"required"`
	Barbero   string `json:"barbero" validate:"required"`
	Fecha     string `json:"fecha" validate:"required"`
	Tipo      string `json:"tipo" validate:"required"`
	Servicios string `json:"servicios"`
}

type ClientTurnosRequest struct {
	Cliente string `json:"cliente"`
}

type typeView struct {
	Tipo      string `json:"tipo"`
	Duracion  int    `json:"duracion"`
	Precio    int    `json:"precio"`
	Servicios string `json:"servicios,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req BookRequest
	if !bindAndValidate(c, &req) {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookInput{
		Client:    req.Cliente,
		Barber:    req.Barbero,
		Type:      req.Tipo,
		StartTime: req.Fecha,
		Services:  req.Servicios,
		Actor:     actor(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.list.All(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, apps)
}

// ListByClient reads the client name from the body and falls back to the
// authenticated user's name.
func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	var req ClientTurnosRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Validation(c, map[string]string{"body": "JSON inválido"})
			return
		}
	}

	client := strings.TrimSpace(req.Cliente)
	if client == "" {
		if claims := middleware.GetClaims(c); claims != nil {
			client = claims.UserName
		}
	}

	apps, err := h.list.ByClient(c.Request.Context(), client)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, apps)
}

// Agenda is the authenticated barber's own schedule.
func (h *AppointmentHandler) Agenda(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil || claims.UserName == "" {
		httperr.Unauthorized(c, "invalid_token", "Token inválido o expirado")
		return
	}

	apps, err := h.list.ByBarber(c.Request.Context(), claims.UserName)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewAgenda(apps, h.loc))
}

func (h *AppointmentHandler) Types(c *gin.Context) {
	entries := domain.Types()
	out := make([]typeView, 0, len(entries))
	for _, e := range entries {
		out = append(out, typeView{
			Tipo:      string(e.Type),
			Duracion:  e.DurationMinutes,
			Precio:    e.Price,
			Servicios: e.DefaultServices,
		})
	}
	httpresp.List(c, out)
}

// Availability expects ?barbero=&tipo=&fecha=YYYY-MM-DD.
func (h *AppointmentHandler) Availability(c *gin.Context) {
	barber := strings.TrimSpace(c.Query("barbero"))
	typ := strings.TrimSpace(c.DefaultQuery("tipo", string(domain.TypeSimple)))
	dateStr := strings.TrimSpace(c.Query("fecha"))

	fields := map[string]string{}
	if barber == "" {
		fields["barbero"] = "required"
	}
	date, err := timezone.ParseDate(dateStr, h.loc)
	if err != nil {
		fields["fecha"] = "date"
	}
	if len(fields) > 0 {
		httperr.Validation(c, fields)
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		Barber: barber,
		Type:   domain.Type(typ),
		Date:   date,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"barbero": barber,
		"tipo":    typ,
		"fecha":   dateStr,
		"slots":   slots,
	})
}

func (h *AppointmentHandler) Receipt(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	pdf, err := h.receipt.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="turno_%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *AppointmentHandler) Pay(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	checkout, err := h.payment.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, checkout)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.cancel.ByID(c.Request.Context(), id, actor(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *AppointmentHandler) DeleteByClient(c *gin.Context) {
	ap, err := h.cancel.ByClientName(c.Request.Context(), c.Param("cliente"), actor(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}
