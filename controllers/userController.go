package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator"
	"go.uber.org/zap"

	"github.com/Dineshj396/FoodMafia/helper"
	"github.com/Dineshj396/FoodMafia/store"
)

const requestTimeout = 10 * time.Second

var validate = validator.New()

type UserController struct {
	store store.Store
	log   *zap.Logger
}

func NewUserController(s store.Store, log *zap.Logger) *UserController {
	return &UserController{store: s, log: log}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if err := validate.Struct(req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Passwords are stored and compared verbatim.
	// TODO: hash with bcrypt once the stored documents can be migrated.
	err := c.store.CreateUser(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, store.ErrUserExists):
		helper.RespondError(w, http.StatusConflict, "User already exists")
	case err != nil:
		c.log.Error("register failed", zap.String("email", req.Email), zap.Error(err))
		helper.RespondError(w, http.StatusInternalServerError, "internal server error")
	default:
		helper.RespondJSON(w, http.StatusCreated, map[string]string{
			"message": "User registered successfully",
			"email":   req.Email,
		})
	}
}

func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if err := validate.Struct(req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := c.store.GetUser(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		// Same response for unknown user and bad password.
		helper.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		c.log.Error("login failed", zap.String("email", req.Email), zap.Error(err))
		helper.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if user.Password != req.Password {
		helper.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"email":   req.Email,
	})
}
