package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeclock"
	"github.com/timeflowhq/timeflow/internal/timeutil"
)

// EntryHandler serves the JSON surface over the timeclock service.
// Identity comes from the X-User-ID header; authentication is the
// caller's problem.
type EntryHandler struct {
	Service *timeclock.Service
}

func NewEntryHandler(svc *timeclock.Service) *EntryHandler {
	return &EntryHandler{Service: svc}
}

func userID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader("X-User-ID"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return "", false
	}
	return id, true
}

// fail maps engine errors onto HTTP statuses: rejections are
// unprocessable (the request was understood, the log forbids it),
// everything else is a store failure.
func fail(c *gin.Context, err error) {
	if timeclock.IsRejection(err) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable", "detail": err.Error()})
}

type submitRequest struct {
	EntryType   string     `json:"entry_type" binding:"required"`
	OccurredAt  *time.Time `json:"occurred_at"`
	Description string     `json:"description"`
}

func (h *EntryHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}
	uid, ok := userID(c)
	if !ok {
		return
	}

	typ := models.EntryType(req.EntryType)
	if !typ.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown entry_type"})
		return
	}
	var occurredAt time.Time
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	entry, err := h.Service.SubmitAction(uid, typ, occurredAt, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": entry})
}

func (h *EntryHandler) Status(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	status, err := h.Service.Status(uid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": gin.H{
		"mode":  status.Mode,
		"since": status.Since,
	}})
}

func (h *EntryHandler) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	now := time.Now()
	from, to := timeutil.StartOfDay(now), timeutil.StartOfDay(now).AddDate(0, 0, 1)
	if s := c.Query("from"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, now.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, now.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		to = parsed.AddDate(0, 0, 1)
	}

	entries, err := h.Service.Entries(uid, from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": entries})
}

func (h *EntryHandler) Totals(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	ref := time.Now()
	if s := c.Query("date"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, ref.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		ref = parsed
	}

	var (
		totals timeclock.Totals
		err    error
	)
	switch c.Query("window") {
	case "week":
		totals, err = h.Service.WeeklyTotals(uid, ref)
	case "year":
		totals, err = h.Service.YearlyTotals(uid, ref)
	default:
		totals, err = h.Service.DailyTotals(uid, ref)
	}
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": gin.H{
		"working_minutes": int(totals.Working.Minutes()),
		"break_minutes":   int(totals.Break.Minutes()),
		"others_minutes":  int(totals.Others.Minutes()),
		"free_minutes":    int(totals.Free.Minutes()),
	}})
}

type editRequest struct {
	OccurredAt  *time.Time `json:"occurred_at"`
	Description *string    `json:"description"`
}

func (h *EntryHandler) Edit(c *gin.Context) {
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	entry, err := h.Service.Entry(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}

	newTime := entry.EffectiveTime()
	if req.OccurredAt != nil {
		newTime = *req.OccurredAt
	}
	newDescription := entry.Description
	if req.Description != nil {
		newDescription = *req.Description
	}

	if err := h.Service.EditEntry(entry.ID, newTime, newDescription); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *EntryHandler) Delete(c *gin.Context) {
	cascadedID, err := h.Service.DeleteEntry(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp := gin.H{"status": "ok"}
	if cascadedID != "" {
		resp["cascaded_id"] = cascadedID
	}
	c.JSON(http.StatusOK, resp)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
