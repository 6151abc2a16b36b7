package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Auth handler functions

// @Summary Sign up
// @Description Create an account with an email and a 4 digit mPin
// @Tags auth
// @Accept json
// @Produce json
// @Param account body SignupRequest true "Account data (username optional)"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Invalid input"
// @Failure 409 {object} MessageResponse "Email or username already registered"
// @Router /auth/signup [post]
func (a *App) signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := a.auth.Signup(c.Request.Context(), req.Username, req.Email, req.MPin); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Msg: "Account created successfully"})
}

// @Summary Log in
// @Description Exchange email and mPin for access and refresh tokens. Limited to 5 per minute per client.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and mPin"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} MessageResponse "Invalid email or PIN"
// @Failure 429 {object} MessageResponse "Rate limited"
// @Router /auth/login [post]
func (a *App) login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, err := a.auth.Login(c.Request.Context(), req.Email, req.MPin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Msg:          "Login successful",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary Refresh access token
// @Description Issue a new access token for a refresh token sent as a Bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RefreshResponse
// @Failure 401 {object} MessageResponse
// @Router /auth/refresh [post]
func (a *App) refresh(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Msg: "Missing Authorization Header"})
		return
	}

	access, err := a.auth.Refresh(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{Msg: "Token refreshed", AccessToken: access})
}

// @Summary Request OTP
// @Description Mail a 6 digit reset code valid for 10 minutes. Limited to 3 per hour per client.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body OTPRequest true "Account email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse "No user with this email"
// @Failure 429 {object} MessageResponse "Rate limited"
// @Router /auth/request-otp [post]
func (a *App) requestOTP(c *gin.Context) {
	var req OTPRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.auth.RequestOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	otpsIssued.Inc()

	c.JSON(http.StatusOK, MessageResponse{Msg: "OTP sent to email"})
}

// @Summary Verify OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Email and code"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Invalid or expired OTP"
// @Failure 404 {object} MessageResponse "User not found"
// @Router /auth/verify-otp [post]
func (a *App) verifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.auth.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Msg: "OTP verified"})
}

// @Summary Reset mPin
// @Description Set a new mPin. Requires a verified OTP and consumes it.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetMPINRequest true "Email and new mPin"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "OTP not verified yet"
// @Failure 404 {object} MessageResponse "User not found"
// @Router /auth/reset-mpin [post]
func (a *App) resetMPIN(c *gin.Context) {
	var req ResetMPINRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.auth.ResetMPIN(c.Request.Context(), req.Email, req.NewMPin); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Msg: "MPIN has been reset successfully"})
}
