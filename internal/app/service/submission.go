package service

import (
	"github.com/shopspring/decimal"

	"github.com/devkekops/starshop/internal/app/client"
	"github.com/devkekops/starshop/internal/app/logger"
	"github.com/devkekops/starshop/internal/app/storage"
)

var starUnitPrice = decimal.RequireFromString("0.10")

// PersistenceError means the order could not be written; no notification was
// attempted.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "order persistence failed: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// RejectedError means the provider responded but declined the message. The
// order stays pending.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "Telegram API error: " + e.Reason
}

// UnavailableError means the provider call did not complete as an HTTP
// exchange. The order stays pending.
type UnavailableError struct {
	Detail string
}

func (e *UnavailableError) Error() string {
	return "Telegram API request failed: " + e.Detail
}

type SubmissionResult struct {
	OrderID       int64
	TransactionID string
	Username      string
	StarAmount    int
}

type SubmissionService struct {
	repo   storage.Repository
	client client.Client
}

func NewSubmissionService(repo storage.Repository, client client.Client) *SubmissionService {
	return &SubmissionService{
		repo:   repo,
		client: client,
	}
}

// Submit runs one purchase through validation, persistence, notification and
// status reconciliation, strictly in that order. The created order is never
// rolled back: once it exists it stays, pending or sent, whatever happens to
// the notification. A failed status update after a confirmed delivery is
// logged and swallowed so a delivered notification never reads as a failed
// purchase.
func (s *SubmissionService) Submit(username string, starAmount int, transactionID string) (SubmissionResult, error) {
	var result SubmissionResult

	normalized, err := validateRequest(username, starAmount)
	if err != nil {
		return result, err
	}

	priceUSD := starUnitPrice.Mul(decimal.NewFromInt(int64(starAmount)))

	orderID, err := s.repo.CreateOrder(normalized, starAmount, priceUSD, transactionID)
	if err != nil {
		return result, &PersistenceError{Err: err}
	}

	text := formatOrderMessage(normalized, starAmount, priceUSD, orderID, transactionID)
	sendResult := s.client.SendMessage(normalized, text)
	switch sendResult.Outcome {
	case client.TransportFailure:
		return result, &UnavailableError{Detail: sendResult.Description}
	case client.Rejected:
		return result, &RejectedError{Reason: sendResult.Description}
	}

	if err := s.repo.MarkSent(orderID); err != nil {
		logger.Logger.Err(err).Int64("order_id", orderID).Msg("failed to mark delivered order as sent")
	}

	result = SubmissionResult{
		OrderID:       orderID,
		TransactionID: transactionID,
		Username:      normalized,
		StarAmount:    starAmount,
	}
	return result, nil
}
