package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"

	"github.com/devkekops/starshop/internal/app/entity"
	"github.com/devkekops/starshop/internal/app/service"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type OrderRequest struct {
	Username   string `json:"username"`
	StarAmount int    `json:"star_amount"`
}

type OrderResponse struct {
	Success       bool   `json:"success"`
	OrderID       int64  `json:"order_id"`
	TransactionID string `json:"transaction_id"`
	Username      string `json:"username"`
	StarAmount    int    `json:"star_amount"`
	Message       string `json:"message"`
}

type HistoryResponse struct {
	Success bool           `json:"success"`
	Orders  []entity.Order `json:"orders"`
	Count   int            `json:"count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		log.Println(err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

func (bh *BaseHandler) createOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var orderReq OrderRequest
		if err := json.NewDecoder(req.Body).Decode(&orderReq); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
			log.Println(err)
			return
		}

		transactionID := middleware.GetReqID(req.Context())
		if transactionID == "" {
			transactionID = uuid.NewString()
		}

		result, err := bh.submission.Submit(orderReq.Username, orderReq.StarAmount, transactionID)
		if err != nil {
			var persistenceErr *service.PersistenceError
			var rejectedErr *service.RejectedError
			var unavailableErr *service.UnavailableError

			switch {
			case errors.Is(err, service.ErrEmptyUsername):
				writeError(w, http.StatusBadRequest, "Username is required")
			case errors.Is(err, service.ErrInvalidStarAmount):
				writeError(w, http.StatusBadRequest, "Invalid star amount")
			case errors.As(err, &rejectedErr):
				writeError(w, http.StatusBadRequest, rejectedErr.Error())
			case errors.As(err, &unavailableErr):
				writeError(w, http.StatusBadGateway, unavailableErr.Error())
			case errors.As(err, &persistenceErr):
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgerrcode.IsConnectionException(pgErr.Code) {
					writeError(w, http.StatusInternalServerError, "Database unavailable")
				} else {
					writeError(w, http.StatusInternalServerError, "Internal Server Error")
				}
			default:
				writeError(w, http.StatusInternalServerError, "Internal Server Error")
			}
			log.Println(err)
			return
		}

		writeJSON(w, http.StatusOK, OrderResponse{
			Success:       true,
			OrderID:       result.OrderID,
			TransactionID: result.TransactionID,
			Username:      result.Username,
			StarAmount:    result.StarAmount,
			Message:       "Order sent to Telegram successfully",
		})
	}
}

func (bh *BaseHandler) getOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		usernameFilter := req.URL.Query().Get("username")

		limit := defaultHistoryLimit
		if rawLimit := req.URL.Query().Get("limit"); rawLimit != "" {
			if v, err := strconv.Atoi(rawLimit); err == nil && v > 0 {
				limit = v
			}
		}
		if limit > maxHistoryLimit {
			limit = maxHistoryLimit
		}

		orders, err := bh.repo.GetOrders(usernameFilter, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			log.Println(err)
			return
		}

		if orders == nil {
			orders = []entity.Order{}
		}

		writeJSON(w, http.StatusOK, HistoryResponse{
			Success: true,
			Orders:  orders,
			Count:   len(orders),
		})
	}
}
