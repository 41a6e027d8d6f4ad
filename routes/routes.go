package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	controller "github.com/Dineshj396/FoodMafia/controllers"
	"github.com/Dineshj396/FoodMafia/helper"
	"github.com/Dineshj396/FoodMafia/store"
)

// Register wires every endpoint under /api.
func Register(router *mux.Router, s store.Store, log *zap.Logger) {
	users := controller.NewUserController(s, log)
	menu := controller.NewMenuController(s, log)
	cart := controller.NewCartController(s, log)
	orders := controller.NewOrderController(s, log)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/register", users.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", users.Login).Methods(http.MethodPost)

	api.HandleFunc("/menu", menu.GetMenu).Methods(http.MethodGet)

	api.HandleFunc("/cart", cart.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart/add", cart.AddToCart).Methods(http.MethodPost)
	api.HandleFunc("/cart/remove", cart.RemoveFromCart).Methods(http.MethodPost)

	api.HandleFunc("/checkout", orders.Checkout).Methods(http.MethodPost)
	api.HandleFunc("/orders", orders.GetOrders).Methods(http.MethodGet)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		helper.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
}
