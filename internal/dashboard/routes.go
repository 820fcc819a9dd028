package dashboard

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/yardline/internal/models"
	"github.com/zulandar/yardline/internal/view"
)

// registerRoutes sets up all dashboard routes on the Gin router.
func registerRoutes(router *gin.Engine, ctrl *view.Controller, hub *Hub) {
	// Embedded static assets (served from assets/ subdir of the embed.FS).
	staticFS, _ := fs.Sub(assetsFS, "assets")
	router.StaticFS("/static", http.FS(staticFS))

	router.GET("/", handleIndex(ctrl))
	router.POST("/records", handleSubmit(ctrl))
	router.POST("/form/reset", handleReset(ctrl))
	router.POST("/records/:id/edit", handleEdit(ctrl))
	router.POST("/records/:id/delete", handleDeleteRequest(ctrl))
	router.POST("/delete/confirm", handleDeleteConfirm(ctrl))
	router.POST("/delete/cancel", handleDeleteCancel(ctrl))

	router.GET("/api/records", handleRecordsJSON(ctrl))
	router.GET("/api/events", handleSSE(hub))
}

// pageData is what layout.html renders.
type pageData struct {
	State       view.State
	SubmitLabel string
	// Pending is the record awaiting delete confirmation, nil when none.
	Pending *models.Record
}

func handleIndex(ctrl *view.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := ctrl.State()
		data := pageData{State: s, SubmitLabel: s.SubmitLabel()}
		if s.PendingDelete != 0 {
			for i := range s.Records {
				if s.Records[i].ID == s.PendingDelete {
					data.Pending = &s.Records[i]
					break
				}
			}
		}
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.HTML(http.StatusOK, "layout.html", data)
	}
}

func handleSubmit(ctrl *view.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := view.Form{
			Name:       c.PostForm("name"),
			Yardage:    c.PostForm("yardage"),
			UnitCount:  c.PostForm("unit_count"),
			ScoreCount: c.PostForm("score_count"),
		}
		// Store failures are logged by the controller; an empty name just
		// re-renders the form.
		if err := ctrl.SubmitForm(c.Request.Context(), form); err != nil && !errors.Is(err, view.ErrNameRequired) {
			c.Error(err)
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func handleReset(ctrl *view.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl.Reset()
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func handleEdit(ctrl *view.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		ctrl.StartEdit(id)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func handleDeleteRequest(ctrl *view.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		ctrl.RequestDelete(id)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func handleDeleteConfirm(ctrl *view.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ctrl.ConfirmDelete(c.Request.Context()); err != nil {
			c.Error(err)
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func handleDeleteCancel(ctrl *view.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl.CancelDelete()
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func handleRecordsJSON(ctrl *view.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		recs := ctrl.State().Records
		if recs == nil {
			recs = []models.Record{}
		}
		c.JSON(http.StatusOK, recs)
	}
}

// paramID parses the :id path segment, answering 400 when it is not a
// positive integer.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "invalid record id %q", c.Param("id"))
		return 0, false
	}
	return id, true
}
