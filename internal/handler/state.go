package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BabyEggBot_Go/internal/economy"
	"github.com/osse101/BabyEggBot_Go/internal/egg"
	"github.com/osse101/BabyEggBot_Go/internal/inventory"
	"github.com/osse101/BabyEggBot_Go/internal/marriage"
)

// BalanceResponse is a user's coin balance
type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int    `json:"balance"`
}

// InventoryResponse is a user's resolved inventory
type InventoryResponse struct {
	UserID string            `json:"user_id"`
	Items  inventory.Listing `json:"items"`
}

// HandleGetEgg returns the egg status view for a user. Viewing an egg runs the
// same death evaluation as the status command.
// @Summary Get egg status
// @Description Returns the user's egg and their partner's egg, with age and care countdowns
// @Tags eggs
// @Produce json
// @Security ApiKeyAuth
// @Param userID path string true "Discord user ID"
// @Success 200 {object} DataResponse{data=egg.StatusView}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/eggs/{userID} [get]
func HandleGetEgg(eggs egg.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}
		view := eggs.Status(r.Context(), userID)
		if view.Own == nil && view.Partner == nil {
			respondError(w, http.StatusNotFound, ErrMsgNoEgg)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: view})
	}
}

// HandleGetBalance returns a user's balance. Unknown users have zero.
// @Summary Get coin balance
// @Tags economy
// @Produce json
// @Security ApiKeyAuth
// @Param userID path string true "Discord user ID"
// @Success 200 {object} DataResponse{data=BalanceResponse}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/balances/{userID} [get]
func HandleGetBalance(ledger economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: BalanceResponse{UserID: userID, Balance: ledger.Balance(userID)}})
	}
}

// HandleGetInventory returns a user's owned items
// @Summary Get inventory
// @Description Returns owned items split into pets and apparel
// @Tags inventory
// @Produce json
// @Security ApiKeyAuth
// @Param userID path string true "Discord user ID"
// @Success 200 {object} DataResponse{data=InventoryResponse}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/inventory/{userID} [get]
func HandleGetInventory(inv inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: InventoryResponse{UserID: userID, Items: inv.List(userID)}})
	}
}

// HandleListMarriages returns every married pair
// @Summary List marriages
// @Description Each pair appears once, with the lower user ID first
// @Tags marriages
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DataResponse{data=[]marriage.Pair}
// @Router /api/v1/marriages [get]
func HandleListMarriages(marriages marriage.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pairs := marriages.Pairs()
		if pairs == nil {
			pairs = []marriage.Pair{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: pairs})
	}
}

func userIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := chi.URLParam(r, ParamUserID)
	if userID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingUserID)
		return "", false
	}
	return userID, true
}
