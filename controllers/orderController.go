package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Dineshj396/FoodMafia/helper"
	"github.com/Dineshj396/FoodMafia/models"
	"github.com/Dineshj396/FoodMafia/store"
)

const defaultPaymentMethod = "Not specified"

type OrderController struct {
	store store.Store
	log   *zap.Logger
}

func NewOrderController(s store.Store, log *zap.Logger) *OrderController {
	return &OrderController{store: s, log: log}
}

type checkoutRequest struct {
	Email         string `json:"email" validate:"required"`
	PaymentMethod string `json:"payment_method"`
}

func (c *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if err := validate.Struct(req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	user, err := c.store.GetUser(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		helper.RespondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		c.log.Error("checkout lookup failed", zap.String("email", req.Email), zap.Error(err))
		helper.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(user.Cart) == 0 {
		helper.RespondError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	order := &models.Order{
		OrderID:       uuid.NewString(),
		Email:         req.Email,
		Items:         user.Cart,
		Total:         models.CartTotal(user.Cart),
		PaymentMethod: paymentMethod,
		Status:        models.OrderStatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}

	if err := c.store.CreateOrder(ctx, order); err != nil {
		c.log.Error("order insert failed", zap.String("email", req.Email), zap.Error(err))
		helper.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// The cart is cleared only after the order is safely persisted. A
	// fault between the two leaves the cart intact alongside the order.
	if err := c.store.ClearCart(ctx, req.Email); err != nil && !errors.Is(err, store.ErrUserNotFound) {
		c.log.Error("cart clear failed", zap.String("email", req.Email), zap.String("order_id", order.OrderID), zap.Error(err))
		helper.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Order placed successfully",
		"order":   order,
	})
}

func (c *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	email := r.URL.Query().Get("email")
	if email == "" {
		helper.RespondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	orders, err := c.store.Orders(ctx, email)
	if err != nil {
		c.log.Error("order listing failed", zap.String("email", email), zap.Error(err))
		helper.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}
