package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vaishnav/edutech_backend_v1/internal/database"
	"github.com/vaishnav/edutech_backend_v1/internal/models"
	"github.com/vaishnav/edutech_backend_v1/internal/utils"
)

type EventController struct {
	Store    *database.Store
	Uploader *Uploader
	Clock    Clock
	Log      *zap.Logger
}

type eventRequest struct {
	Title           string      `json:"title" binding:"required,notblank"`
	Description     string      `json:"description" binding:"required,notblank"`
	Date            string      `json:"date" binding:"required,notblank,isodate"`
	Time            string      `json:"time" binding:"required,notblank,clock"`
	Location        string      `json:"location" binding:"required,notblank"`
	MaxParticipants FlexibleInt `json:"max_participants"`
	Status          string      `json:"status"`
}

func (r eventRequest) status() (models.EventStatus, bool) {
	st := models.EventStatus(strings.ToLower(strings.TrimSpace(r.Status)))
	if st == "" {
		return models.EventOpen, true
	}
	return st, st.Valid()
}

// List groups events by type. ?type= narrows to one group.
func (ec *EventController) List(c *gin.Context) {
	groups := map[models.EventType][]models.Event{
		models.EventLive:      {},
		models.EventCompleted: {},
		models.EventUpcoming:  {},
	}
	for _, e := range ec.Store.ListEvents() {
		groups[e.Type] = append(groups[e.Type], e)
	}

	typ := models.EventType(strings.ToLower(strings.TrimSpace(c.Query("type"))))
	if typ != "" {
		items, ok := groups[typ]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": items, "meta": gin.H{"type": typ, "total": len(items)}})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": groups,
		"meta": gin.H{
			"live":      len(groups[models.EventLive]),
			"completed": len(groups[models.EventCompleted]),
			"upcoming":  len(groups[models.EventUpcoming]),
		},
	})
}

func (ec *EventController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	e, err := ec.Store.GetEvent(id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": e, "time_12h": utils.FormatClock(e.Time)})
}

func (ec *EventController) Create(c *gin.Context) {
	req, typ, ok := ec.bind(c)
	if !ok {
		return
	}
	st, _ := req.status()
	e := ec.Store.CreateEvent(models.Event{
		Title:           strings.TrimSpace(req.Title),
		Description:     strings.TrimSpace(req.Description),
		Date:            req.Date,
		Time:            req.Time,
		Location:        strings.TrimSpace(req.Location),
		Type:            typ,
		MaxParticipants: req.MaxParticipants.Ptr(),
		Status:          st,
	})
	ec.Log.Info("event created", zap.Int("id", e.ID), zap.String("type", string(e.Type)))
	c.JSON(http.StatusCreated, e)
}

// Update keeps the participant count and re-derives the type from the new date.
func (ec *EventController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, typ, ok := ec.bind(c)
	if !ok {
		return
	}
	st, _ := req.status()
	e, err := ec.Store.UpdateEvent(id, func(e *models.Event) error {
		e.Title = strings.TrimSpace(req.Title)
		e.Description = strings.TrimSpace(req.Description)
		e.Date = req.Date
		e.Time = req.Time
		e.Location = strings.TrimSpace(req.Location)
		e.MaxParticipants = req.MaxParticipants.Ptr()
		e.Status = st
		e.Type = typ
		return nil
	})
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (ec *EventController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ec.Store.DeleteEvent(id); err != nil {
		storeError(c, err)
		return
	}
	ec.Log.Info("event deleted", zap.Int("id", id))
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// bind validates the form and classifies the event by its calendar date.
func (ec *EventController) bind(c *gin.Context) (eventRequest, models.EventType, bool) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, missingFieldsMsg)
		return req, "", false
	}
	if _, ok := req.status(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of open, closed, cancelled"})
		return req, "", false
	}
	at, err := utils.ParseSchedule(req.Date, "", ec.Clock.location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, "", false
	}
	return req, utils.ClassifyEvent(at, ec.Clock.now()), true
}

// Certificates lists certificates, optionally filtered by ?status=.
func (ec *EventController) Certificates(c *gin.Context) {
	status := models.CertificateStatus(strings.ToLower(strings.TrimSpace(c.Query("status"))))
	out := []models.Certificate{}
	for _, cert := range ec.Store.ListCertificates() {
		if status == "" || cert.Status == status {
			out = append(out, cert)
		}
	}
	items, meta := paginate(out, parsePage(c))
	c.JSON(http.StatusOK, gin.H{"data": items, "meta": meta})
}

func (ec *EventController) IssueCertificate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cert, err := ec.Store.IssueCertificate(id, ec.Clock.now())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (ec *EventController) UploadODForm(c *gin.Context) {
	ec.upload(c, models.UploadODForm, "OD Form uploaded successfully!")
}

func (ec *EventController) UploadCertificate(c *gin.Context) {
	ec.upload(c, models.UploadCertificate, "Certificate uploaded successfully!")
}

func (ec *EventController) upload(c *gin.Context, kind models.UploadKind, msg string) {
	uVal, _ := c.Get("user")
	up, ok := ec.Uploader.accept(c, kind, uVal.(models.User))
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg, "upload": up})
}
