package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get all events
// @Tags events
// @Produce json
// @Success 200 {array} Event "List of events"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/events [get]
func (a *App) getEvents(c *gin.Context) {
	events, err := a.ledger.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEvents(events))
}

// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event data"
// @Success 201 {object} Event "Created event"
// @Failure 400 {object} MessageResponse "Name required"
// @Failure 409 {object} MessageResponse "Event already exists"
// @Router /api/events [post]
func (a *App) createEvent(c *gin.Context) {
	var req EventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := a.ledger.CreateEvent(c.Request.Context(), req.EventName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toEvent(event))
}
