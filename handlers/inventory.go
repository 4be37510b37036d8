package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"WorkforceBackend/core"
	"WorkforceBackend/middleware"
	"WorkforceBackend/models"
)

// GetInventory returns every inventory item.
func (a *API) GetInventory(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, a.svc.ListInventory())
}

// ReportInventoryStatus records a stock status change. Shortages carry a
// dashboard notice back to the client.
func (a *API) ReportInventoryStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status models.StockStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	itemID := mux.Vars(r)["id"]

	item, notice, err := a.svc.ReportInventoryStatus(userID, itemID, req.Status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, struct {
		Item   *models.InventoryItem `json:"item"`
		Notice *core.Notice          `json:"notice,omitempty"`
	}{Item: item, Notice: notice})
}

// GetOrders returns every equipment order.
func (a *API) GetOrders(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, a.svc.ListOrders())
}

// CreateOrder opens a pending equipment order.
func (a *API) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemName      string `json:"item_name"`
		Quantity      int    `json:"quantity"`
		PriceEstimate string `json:"price_estimate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	order, err := a.svc.CreateOrder(req.ItemName, req.Quantity, req.PriceEstimate)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, order)
}

// AdvanceOrder moves an order one step forward.
func (a *API) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	order, err := a.svc.AdvanceOrder(mux.Vars(r)["id"], req.Status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, order)
}
