package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// People handler functions

// @Summary Get all people
// @Description Retrieve all people from the database
// @Tags people
// @Produce json
// @Success 200 {array} Person "List of people"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/people [get]
func (a *App) getPeople(c *gin.Context) {
	people, err := a.ledger.ListPeople(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPeople(people))
}

// @Summary Create person
// @Description Create a new person in the system
// @Tags people
// @Accept json
// @Produce json
// @Param person body PersonRequest true "Person data"
// @Success 201 {object} Person "Created person"
// @Failure 400 {object} MessageResponse "Name required"
// @Failure 409 {object} MessageResponse "Person already exists"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/people [post]
func (a *App) createPerson(c *gin.Context) {
	var req PersonRequest
	if !bindJSON(c, &req) {
		return
	}

	person, err := a.ledger.CreatePerson(c.Request.Context(), req.PersonName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPerson(person))
}
