package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SlotBot_Go/internal/economy"
	"github.com/osse101/SlotBot_Go/internal/game"
	"github.com/osse101/SlotBot_Go/internal/logger"
)

// Economy is the slice of game.EconomyState the API serves.
type Economy interface {
	PlaceBet(ctx context.Context, accountID string, wager int64, notifier game.Notifier) (*game.Spin, error)
	ClaimDaily(ctx context.Context, accountID string) (game.Claim, error)
	AdminCredit(ctx context.Context, requesterID, targetID string, amount int64) (int64, error)
	Balance(ctx context.Context, accountID string) (int64, error)
	CooldownRemaining(accountID string) time.Duration
	Leaderboard(limit int) []economy.Standing
}

// PlaceBetRequest is the body of POST /api/v1/bet. The wager is decoded as a
// number literal so the same whole-number rules apply as for chat input.
type PlaceBetRequest struct {
	AccountID string      `json:"account_id" validate:"required,max=64,accountid"`
	Wager     json.Number `json:"wager" validate:"required"`
}

// ClaimDailyRequest is the body of POST /api/v1/daily
type ClaimDailyRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64,accountid"`
}

// AdminCreditRequest is the body of POST /api/v1/admin/credit
type AdminCreditRequest struct {
	RequesterID string `json:"requester_id" validate:"required,max=64,accountid"`
	TargetID    string `json:"target_id" validate:"required,max=64,accountid"`
	Amount      int64  `json:"amount" validate:"gt=0"`
}

// BalanceResponse is returned by the balance endpoint. CooldownMS is how long
// the account must wait before its next bet.
type BalanceResponse struct {
	AccountID  string `json:"account_id"`
	Balance    int64  `json:"balance"`
	CooldownMS int64  `json:"cooldown_remaining_ms"`
}

// LeaderboardResponse lists the richest accounts first
type LeaderboardResponse struct {
	Standings []economy.Standing `json:"standings"`
}

// BetResponse is a settled spin
type BetResponse struct {
	game.Outcome
	BigWin bool `json:"big_win"`
}

// ClaimResponse is a granted daily bonus
type ClaimResponse struct {
	Amount         int64 `json:"amount"`
	NewBalance     int64 `json:"new_balance"`
	ResetInSeconds int64 `json:"reset_in_seconds"`
}

// AdminCreditResponse reports the credited account's new balance
type AdminCreditResponse struct {
	TargetID   string `json:"target_id"`
	NewBalance int64  `json:"new_balance"`
}

// HandleGetBalance returns an account balance, seeding unseen accounts.
// @Summary Get balance
// @Description Unseen accounts are created with the starting balance. Also reports the remaining bet cooldown.
// @Tags economy
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /balance/{id} [get]
func HandleGetBalance(svc Economy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "id")

		balance, err := svc.Balance(r.Context(), accountID)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgServiceError, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{
			AccountID:  accountID,
			Balance:    balance,
			CooldownMS: svc.CooldownRemaining(accountID).Milliseconds(),
		})
	}
}

// HandleGetLeaderboard returns the top accounts. ?limit defaults to 10.
// @Summary Get leaderboard
// @Tags economy
// @Produce json
// @Param limit query int false "Number of accounts (1-100)"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /leaderboard [get]
func HandleGetLeaderboard(svc Economy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultLeaderboardLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > MaxLeaderboardLimit {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidLimit, MaxLeaderboardLimit))
				return
			}
			limit = n
		}

		standings := svc.Leaderboard(limit)
		if standings == nil {
			standings = []economy.Standing{}
		}
		respondJSON(w, http.StatusOK, LeaderboardResponse{Standings: standings})
	}
}

// HandlePlaceBet settles a bet and returns the outcome right away. API
// callers have no message to reveal into, so no announcement is sent.
// @Summary Place a bet
// @Description Debits the wager, spins three reels and credits any payout
// @Tags slots
// @Accept json
// @Produce json
// @Param request body PlaceBetRequest true "Bet"
// @Success 200 {object} BetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /bet [post]
func HandlePlaceBet(svc Economy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlaceBetRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionPlaceBet); err != nil {
			return
		}

		wager, err := game.ParseWager(req.Wager.String())
		if err != nil {
			respondServiceError(w, err)
			return
		}

		spin, err := svc.PlaceBet(r.Context(), req.AccountID, wager, game.NopNotifier{})
		if err != nil {
			logger.FromContext(r.Context()).Debug(LogMsgServiceError, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, BetResponse{
			Outcome: spin.Outcome,
			BigWin:  spin.Payout.IsBigWin(),
		})
	}
}

// HandleClaimDaily grants the daily bonus.
// @Summary Claim daily bonus
// @Description Once per UTC calendar day
// @Tags economy
// @Accept json
// @Produce json
// @Param request body ClaimDailyRequest true "Claim"
// @Success 200 {object} ClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /daily [post]
func HandleClaimDaily(svc Economy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimDailyRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionClaimDaily); err != nil {
			return
		}

		claim, err := svc.ClaimDaily(r.Context(), req.AccountID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, ClaimResponse{
			Amount:         claim.Amount,
			NewBalance:     claim.NewBalance,
			ResetInSeconds: int64(claim.ResetIn.Seconds()),
		})
	}
}

// HandleAdminCredit credits an account on behalf of the configured admin.
// @Summary Credit an account
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminCreditRequest true "Credit"
// @Success 200 {object} AdminCreditResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/credit [post]
func HandleAdminCredit(svc Economy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminCreditRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionAdminCredit); err != nil {
			return
		}

		balance, err := svc.AdminCredit(r.Context(), req.RequesterID, req.TargetID, req.Amount)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, AdminCreditResponse{TargetID: req.TargetID, NewBalance: balance})
	}
}
