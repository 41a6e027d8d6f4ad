package controller

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/Dineshj396/FoodMafia/helper"
	"github.com/Dineshj396/FoodMafia/store"
)

type MenuController struct {
	store store.Store
	log   *zap.Logger
}

func NewMenuController(s store.Store, log *zap.Logger) *MenuController {
	return &MenuController{store: s, log: log}
}

func (c *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	items, err := c.store.Menu(ctx)
	if err != nil {
		c.log.Error("menu listing failed", zap.Error(err))
		helper.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{"menu": items})
}
