package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Dineshj396/FoodMafia/helper"
	"github.com/Dineshj396/FoodMafia/store"
)

type CartController struct {
	store store.Store
	log   *zap.Logger
}

func NewCartController(s store.Store, log *zap.Logger) *CartController {
	return &CartController{store: s, log: log}
}

type cartMutationRequest struct {
	Email  string `json:"email" validate:"required"`
	ItemID string `json:"item_id" validate:"required"`
}

func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	email := r.URL.Query().Get("email")
	if email == "" {
		helper.RespondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	user, err := c.store.GetUser(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		helper.RespondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		c.log.Error("cart lookup failed", zap.String("email", email), zap.Error(err))
		helper.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{"cart": user.Cart})
}

func (c *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	req, ok := c.decodeMutation(w, r)
	if !ok {
		return
	}

	cart, err := c.store.AddToCart(ctx, req.Email, req.ItemID)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		helper.RespondError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, store.ErrItemNotFound):
		helper.RespondError(w, http.StatusNotFound, "Item not found")
	case err != nil:
		c.log.Error("cart add failed", zap.String("email", req.Email), zap.String("item_id", req.ItemID), zap.Error(err))
		helper.RespondError(w, http.StatusInternalServerError, "internal server error")
	default:
		helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Item added to cart",
			"cart":    cart,
		})
	}
}

func (c *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	req, ok := c.decodeMutation(w, r)
	if !ok {
		return
	}

	cart, err := c.store.RemoveFromCart(ctx, req.Email, req.ItemID)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		helper.RespondError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, store.ErrItemNotInCart):
		helper.RespondError(w, http.StatusNotFound, "Item not in cart")
	case err != nil:
		c.log.Error("cart remove failed", zap.String("email", req.Email), zap.String("item_id", req.ItemID), zap.Error(err))
		helper.RespondError(w, http.StatusInternalServerError, "internal server error")
	default:
		helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Item removed from cart",
			"cart":    cart,
		})
	}
}

func (c *CartController) decodeMutation(w http.ResponseWriter, r *http.Request) (cartMutationRequest, bool) {
	var req cartMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Email and item_id are required")
		return req, false
	}
	if err := validate.Struct(req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Email and item_id are required")
		return req, false
	}
	return req, true
}
