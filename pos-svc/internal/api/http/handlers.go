package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"overcooked-pos/pos-svc/internal/domain"
	"overcooked-pos/pos-svc/internal/service"
	"overcooked-pos/pos-svc/internal/store"

	"github.com/gorilla/mux"
)

type Handler struct {
	Inventory    service.InventoryServiceInterface
	Orders       service.OrderServiceInterface
	Reservations service.ReservationServiceInterface
	Reports      service.ReportServiceInterface
}

func NewHandler(inv service.InventoryServiceInterface, orders service.OrderServiceInterface, res service.ReservationServiceInterface, reports service.ReportServiceInterface) *Handler {
	return &Handler{
		Inventory:    inv,
		Orders:       orders,
		Reservations: res,
		Reports:      reports,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/state", h.getState).Methods("GET")

	r.HandleFunc("/api/inventory", h.getInventory).Methods("GET")
	r.HandleFunc("/api/inventory", h.replaceInventory).Methods("PUT")
	r.HandleFunc("/api/inventory", h.addInventoryItem).Methods("POST")
	r.HandleFunc("/api/inventory/low-stock", h.getLowStock).Methods("GET")
	r.HandleFunc("/api/inventory/{itemId}", h.getInventoryItem).Methods("GET")
	r.HandleFunc("/api/inventory/{itemId}", h.deleteInventoryItem).Methods("DELETE")
	r.HandleFunc("/api/inventory/{itemId}/decrease", h.decreaseInventory).Methods("POST")

	r.HandleFunc("/api/tables", h.getTableOrders).Methods("GET")
	r.HandleFunc("/api/tables/{tableId}/order", h.getTableOrder).Methods("GET")
	r.HandleFunc("/api/tables/{tableId}/order", h.clearTableOrder).Methods("DELETE")
	r.HandleFunc("/api/tables/{tableId}/total", h.getTableTotal).Methods("GET")
	r.HandleFunc("/api/tables/{tableId}/reservation", h.getTableReservation).Methods("GET")
	r.HandleFunc("/api/tables/{tableId}/items", h.addTableItem).Methods("POST")
	r.HandleFunc("/api/tables/{tableId}/items/{itemId}", h.removeTableItem).Methods("DELETE")
	r.HandleFunc("/api/tables/{tableId}/items/{itemId}/kitchen-status", h.setKitchenStatus).Methods("PUT")
	r.HandleFunc("/api/tables/{tableId}/ready", h.markReady).Methods("POST")
	r.HandleFunc("/api/tables/{tableId}/pay", h.payTable).Methods("POST")

	r.HandleFunc("/api/kitchen", h.getKitchenQueue).Methods("GET")

	r.HandleFunc("/api/history", h.getHistory).Methods("GET")
	r.HandleFunc("/api/history/{id}", h.getHistoryEntry).Methods("GET")
	r.HandleFunc("/api/history/{id}/qrcode", h.getReceiptQRCode).Methods("GET")

	r.HandleFunc("/api/reservations", h.getReservations).Methods("GET")
	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", h.getReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", h.updateReservation).Methods("PUT")
	r.HandleFunc("/api/reservations/{id}", h.deleteReservation).Methods("DELETE")
	r.HandleFunc("/api/reservations/{id}/assign-table", h.assignTable).Methods("POST")
	r.HandleFunc("/api/reservations/{id}/preorder", h.addPreOrderItem).Methods("POST")
	r.HandleFunc("/api/reservations/{id}/preorder/{itemId}", h.removePreOrderItem).Methods("DELETE")
	r.HandleFunc("/api/reservations/{id}/activate", h.activateReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}/seat", h.seatReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}/cancel", h.cancelReservation).Methods("POST")

	r.HandleFunc("/api/reports", h.getReport).Methods("GET")
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type addItemRequest struct {
	ItemID      string `json:"item_id"`
	Quantity    int    `json:"quantity"`
	TableNumber int    `json:"table_number"`
}

type kitchenStatusRequest struct {
	Status domain.KitchenStatus `json:"status"`
}

type assignTableRequest struct {
	TableID     string `json:"table_id"`
	TableNumber int    `json:"table_number"`
}

type paidOrderResponse struct {
	domain.OrderHistoryEntry
	ReceiptURL string `json:"receipt_url"`
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "pos-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Orders.Snapshot())
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Inventory.List())
}

func (h *Handler) getLowStock(w http.ResponseWriter, r *http.Request) {
	items := h.Inventory.LowStock()
	if items == nil {
		items = []domain.InventoryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getInventoryItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Inventory.Get(mux.Vars(r)["itemId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) replaceInventory(w http.ResponseWriter, r *http.Request) {
	var items []domain.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Inventory.Replace(items); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Inventory.List())
}

func (h *Handler) addInventoryItem(w http.ResponseWriter, r *http.Request) {
	var item domain.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.Inventory.Add(item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) deleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Inventory.Delete(mux.Vars(r)["itemId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decreaseInventory(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Inventory.Decrease(itemID, req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	item, err := h.Inventory.Get(itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) getTableOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Orders.TableOrders())
}

func (h *Handler) getTableOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.TableOrder(mux.Vars(r)["tableId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getTableTotal(w http.ResponseWriter, r *http.Request) {
	tableID := mux.Vars(r)["tableId"]
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"table_id": tableID,
		"total":    h.Orders.TableTotal(tableID),
	})
}

func (h *Handler) getTableReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Reservations.ByTable(mux.Vars(r)["tableId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) addTableItem(w http.ResponseWriter, r *http.Request) {
	tableID := mux.Vars(r)["tableId"]
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ItemID == "" {
		writeError(w, service.ErrMissingID)
		return
	}
	if tableID == store.DirectSaleTableID {
		req.TableNumber = 0
	}
	order, err := h.Orders.AddItem(tableID, req.TableNumber, req.ItemID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) removeTableItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Orders.RemoveItem(vars["tableId"], vars["itemId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setKitchenStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req kitchenStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Orders.SetKitchenStatus(vars["tableId"], vars["itemId"], req.Status); err != nil {
		writeError(w, err)
		return
	}
	order, err := h.Orders.TableOrder(vars["tableId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) clearTableOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Orders.Clear(mux.Vars(r)["tableId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markReady(w http.ResponseWriter, r *http.Request) {
	tableID := mux.Vars(r)["tableId"]
	if err := h.Orders.MarkReady(tableID); err != nil {
		writeError(w, err)
		return
	}
	order, err := h.Orders.TableOrder(tableID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) payTable(w http.ResponseWriter, r *http.Request) {
	entry, err := h.Orders.Pay(r.Context(), mux.Vars(r)["tableId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, paidOrderResponse{
		OrderHistoryEntry: entry,
		ReceiptURL:        h.Orders.ReceiptLink(entry.ID),
	})
}

func (h *Handler) getKitchenQueue(w http.ResponseWriter, r *http.Request) {
	tickets := h.Orders.KitchenQueue()
	if tickets == nil {
		tickets = []domain.KitchenTicket{}
	}
	writeJSON(w, http.StatusOK, tickets)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Orders.History())
}

func (h *Handler) getHistoryEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.Orders.HistoryEntry(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) getReceiptQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.Receipt(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Reservations.List())
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var in domain.ReservationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	res, err := h.Reservations.Create(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Reservations.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) updateReservation(w http.ResponseWriter, r *http.Request) {
	var patch domain.ReservationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	res, err := h.Reservations.Update(mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) deleteReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.Reservations.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) assignTable(w http.ResponseWriter, r *http.Request) {
	var req assignTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	res, err := h.Reservations.AssignTable(mux.Vars(r)["id"], req.TableID, req.TableNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) addPreOrderItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ItemID == "" {
		writeError(w, service.ErrMissingID)
		return
	}
	res, err := h.Reservations.AddPreOrderItem(mux.Vars(r)["id"], req.ItemID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) removePreOrderItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Reservations.RemovePreOrderItem(vars["id"], vars["itemId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) activateReservation(w http.ResponseWriter, r *http.Request) {
	order, err := h.Reservations.Activate(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) seatReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Reservations.Seat(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Reservations.Cancel(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.Report(domain.Period(r.URL.Query().Get("period")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[pos-svc] ERROR: failed to encode response: %v", err)
	}
}

// writeError maps domain errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrItemNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrLineNotFound),
		errors.Is(err, store.ErrReservationNotFound),
		errors.Is(err, service.ErrHistoryNotFound),
		errors.Is(err, service.ErrNoReservation):
		return http.StatusNotFound

	case errors.Is(err, store.ErrInsufficientStock),
		errors.Is(err, store.ErrDuplicateItem),
		errors.Is(err, store.ErrEmptyOrder),
		errors.Is(err, store.ErrTableOccupied),
		errors.Is(err, store.ErrNotKitchenItem),
		errors.Is(err, store.ErrTableReserved),
		errors.Is(err, store.ErrNoTableAssigned),
		errors.Is(err, store.ErrNoPreOrder),
		errors.Is(err, store.ErrInvalidTransition):
		return http.StatusConflict

	case errors.Is(err, store.ErrInvalidQuantity),
		errors.Is(err, store.ErrNegativeStock),
		errors.Is(err, store.ErrInvalidKitchenStatus),
		errors.Is(err, service.ErrMissingID),
		errors.Is(err, service.ErrMissingName),
		errors.Is(err, service.ErrMissingTable),
		errors.Is(err, service.ErrNegativePrice),
		errors.Is(err, service.ErrInvalidReservation),
		errors.Is(err, service.ErrInvalidPeriod):
		return http.StatusBadRequest
	}
	log.Printf("[pos-svc] ERROR: %v", err)
	return http.StatusInternalServerError
}
