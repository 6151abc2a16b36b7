package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Admin handler functions. Everything except login and logout sits behind
// requireAdmin.

// @Summary Admin login
// @Description Start an admin session. Sets the admin_session cookie.
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} MessageResponse "Invalid credentials"
// @Router /admin/login [post]
func (a *App) adminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.admin.Authenticate(req.Username, req.Password); err != nil {
		respondError(c, err)
		return
	}

	id, err := a.sessions.Create(c.Request.Context(), req.Username)
	if err != nil {
		slog.Error("Failed to create admin session", "error", err)
		c.JSON(http.StatusInternalServerError, MessageResponse{Msg: "Error creating session"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(adminSessionCookie, id, 0, "/", "", a.cfg.IsProduction(), true)
	slog.Info("Admin logged in", "username", req.Username)
	c.JSON(http.StatusOK, MessageResponse{Msg: "Logged in"})
}

// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /admin/logout [post]
func (a *App) adminLogout(c *gin.Context) {
	if id, err := c.Cookie(adminSessionCookie); err == nil && id != "" {
		if err := a.sessions.Delete(c.Request.Context(), id); err != nil {
			slog.Error("Failed to delete admin session", "error", err)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(adminSessionCookie, "", -1, "/", "", a.cfg.IsProduction(), true)
	c.JSON(http.StatusOK, MessageResponse{Msg: "Logged out"})
}

// @Summary Admin dashboard
// @Description Record counts
// @Tags admin
// @Produce json
// @Success 200 {object} AdminCounts
// @Failure 401 {object} MessageResponse "Admin login required"
// @Router /admin/ [get]
func (a *App) adminIndex(c *gin.Context) {
	counts, err := a.admin.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAdminCounts(counts))
}

// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {array} AdminUser
// @Router /admin/users [get]
func (a *App) adminListUsers(c *gin.Context) {
	users, err := a.admin.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	out := make([]AdminUser, 0, len(users))
	for _, u := range users {
		out = append(out, AdminUser{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			OTPState: u.OTPState(now).String(),
		})
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Delete user
// @Tags admin
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /admin/users/{id} [delete]
func (a *App) adminDeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.admin.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Msg: "User deleted"})
}

// @Summary List people
// @Tags admin
// @Produce json
// @Success 200 {array} Person
// @Router /admin/people [get]
func (a *App) adminListPeople(c *gin.Context) {
	people, err := a.admin.ListPeople(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPeople(people))
}

// @Summary Rename person
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Person ID"
// @Param person body PersonRequest true "New name"
// @Success 200 {object} Person
// @Failure 404 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Router /admin/people/{id} [put]
func (a *App) adminRenamePerson(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req PersonRequest
	if !bindJSON(c, &req) {
		return
	}

	person, err := a.admin.RenamePerson(c.Request.Context(), id, req.PersonName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPerson(person))
}

// @Summary Delete person
// @Description Refused while the person has transactions
// @Tags admin
// @Param id path int true "Person ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 409 {object} MessageResponse "Person still has transactions"
// @Router /admin/people/{id} [delete]
func (a *App) adminDeletePerson(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.admin.DeletePerson(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Msg: "Person deleted"})
}

// @Summary List events
// @Tags admin
// @Produce json
// @Success 200 {array} Event
// @Router /admin/events [get]
func (a *App) adminListEvents(c *gin.Context) {
	events, err := a.admin.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEvents(events))
}

// @Summary Rename event
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body EventRequest true "New name"
// @Success 200 {object} Event
// @Failure 404 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Router /admin/events/{id} [put]
func (a *App) adminRenameEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req EventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := a.admin.RenameEvent(c.Request.Context(), id, req.EventName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEvent(event))
}

// @Summary Delete event
// @Description Transactions keep existing with no event
// @Tags admin
// @Param id path int true "Event ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /admin/events/{id} [delete]
func (a *App) adminDeleteEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.admin.DeleteEvent(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Msg: "Event deleted"})
}

// @Summary List transactions
// @Tags admin
// @Produce json
// @Success 200 {array} Transaction
// @Router /admin/transactions [get]
func (a *App) adminListTransactions(c *gin.Context) {
	details, err := a.admin.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransactions(details))
}

// @Summary Delete transaction
// @Tags admin
// @Param id path int true "Transaction ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /admin/transactions/{id} [delete]
func (a *App) adminDeleteTransaction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.admin.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Msg: "Transaction deleted"})
}
