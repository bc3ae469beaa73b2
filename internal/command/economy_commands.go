package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/BabyEggBot_Go/internal/catalog"
	"github.com/osse101/BabyEggBot_Go/internal/cooldown"
	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/economy"
)

func (r *Router) registerEconomyCommands() {
	r.Register(CmdShop, r.shop)
	r.Register(CmdPetShop, r.petShop)
	r.Register(CmdBuy, r.buy(catalog.KindApparel, MsgInvalidItemFmt))
	r.Register(CmdBuyPet, r.buy(catalog.KindPet, MsgInvalidPetFmt))
	r.Register(CmdDaily, r.daily)
	r.Register(CmdBalance, r.balance)
	r.Register(CmdViewBalance, r.viewBalance)
	r.Register(CmdShareCoins, r.shareCoins)
	r.Register(CmdAddCoins, r.adjustCoins(domain.AdjustAdd))
	r.Register(CmdRemoveCoins, r.adjustCoins(domain.AdjustRemove))
	r.Register(CmdBet, r.bet)
	r.Register(CmdRob, r.rob)
}

// parseAmount reads a strictly positive integer
func parseAmount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// parseUserID accepts a raw id or a <@id> / <@!id> mention
func parseUserID(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<@") && strings.HasSuffix(s, ">") {
		s = strings.TrimPrefix(strings.TrimSuffix(s[2:], ">"), "!")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return ""
		}
	}
	return s
}

// userAndAmount parses "<userId> <amount>"
func userAndAmount(args []string) (string, int, bool) {
	if len(args) < 2 {
		return "", 0, false
	}
	id := parseUserID(args[0])
	amount, ok := parseAmount(args[1])
	if id == "" || !ok {
		return "", 0, false
	}
	return id, amount, true
}

func (r *Router) shop(ctx context.Context, msg Message, _ []string) error {
	r.reply(ctx, msg, renderShop())
	return nil
}

func (r *Router) petShop(ctx context.Context, msg Message, _ []string) error {
	r.reply(ctx, msg, renderPetShop())
	return nil
}

func (r *Router) buy(kind catalog.Kind, invalidFmt string) Handler {
	return func(ctx context.Context, msg Message, args []string) error {
		itemID := catalog.NormalizeID(strings.Join(args, " "))
		invalid := fmt.Sprintf(invalidFmt, strings.Join(catalog.IDs(kind), ", "))
		if itemID == "" {
			r.reply(ctx, msg, invalid)
			return nil
		}

		res, err := r.Ledger.Purchase(ctx, msg.AuthorID, kind, itemID)
		var short economy.InsufficientFundsError
		switch {
		case errors.Is(err, domain.ErrUnknownItem):
			r.reply(ctx, msg, invalid)
		case errors.As(err, &short):
			r.reply(ctx, msg, fmt.Sprintf(MsgCannotAffordFmt, itemID, short.Need))
		case err != nil:
			return err
		default:
			r.reply(ctx, msg, fmt.Sprintf(MsgBoughtFmt, res.Item.ID, res.NewBalance))
		}
		return nil
	}
}

func (r *Router) daily(ctx context.Context, msg Message, _ []string) error {
	amount, err := r.Ledger.ClaimDaily(ctx, msg.AuthorID)
	var onCooldown cooldown.ErrOnCooldown
	switch {
	case errors.As(err, &onCooldown):
		r.reply(ctx, msg, fmt.Sprintf(MsgDailyCooldownFmt, onCooldown.HoursRemaining()))
	case err != nil:
		return err
	default:
		r.reply(ctx, msg, fmt.Sprintf(MsgDailyClaimedFmt, amount))
	}
	return nil
}

func (r *Router) balance(ctx context.Context, msg Message, _ []string) error {
	r.reply(ctx, msg, fmt.Sprintf(MsgBalanceFmt, r.Ledger.Balance(msg.AuthorID)))
	return nil
}

func (r *Router) viewBalance(ctx context.Context, msg Message, args []string) error {
	var targetID string
	if m, ok := msg.FirstMention(); ok {
		targetID = m.ID
	} else if len(args) > 0 {
		targetID = parseUserID(args[0])
	}
	if targetID == "" {
		r.reply(ctx, msg, MsgViewBalanceNeedsTarget)
		return nil
	}
	r.reply(ctx, msg, fmt.Sprintf(MsgViewBalanceFmt, targetID, r.Ledger.Balance(targetID)))
	return nil
}

func (r *Router) shareCoins(ctx context.Context, msg Message, args []string) error {
	recipientID, amount, ok := userAndAmount(args)
	if !ok {
		r.reply(ctx, msg, MsgInvalidShareArgs)
		return nil
	}

	res, err := r.Ledger.Transfer(ctx, msg.AuthorID, recipientID, amount)
	var short economy.InsufficientFundsError
	switch {
	case errors.As(err, &short):
		r.reply(ctx, msg, fmt.Sprintf(MsgShareTooMuchFmt, short.Need, short.Have))
	case errors.Is(err, domain.ErrInvalidAmount):
		r.reply(ctx, msg, MsgInvalidShareArgs)
	case err != nil:
		return err
	default:
		r.reply(ctx, msg, fmt.Sprintf(MsgSharedFmt, amount, recipientID, res.SenderBalance))
	}
	return nil
}

// adjustCoins leaves the permission check to the ledger so a caller who is not
// the owner is refused before any argument validation
func (r *Router) adjustCoins(direction domain.AdjustDirection) Handler {
	invalid, doneFmt := MsgInvalidAddArgs, MsgAddedFmt
	if direction == domain.AdjustRemove {
		invalid, doneFmt = MsgInvalidRemoveArgs, MsgRemovedFmt
	}

	return func(ctx context.Context, msg Message, args []string) error {
		targetID, amount, ok := userAndAmount(args)
		if !ok {
			amount = 0
		}

		balance, err := r.Ledger.Adjust(ctx, msg.AuthorID, targetID, amount, direction)
		var short economy.InsufficientFundsError
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			r.reply(ctx, msg, MsgNoPermission)
		case errors.Is(err, domain.ErrInvalidAmount):
			r.reply(ctx, msg, invalid)
		case errors.As(err, &short):
			r.reply(ctx, msg, fmt.Sprintf(MsgRemoveTooMuchFmt, short.Have))
		case err != nil:
			return err
		default:
			r.reply(ctx, msg, fmt.Sprintf(doneFmt, amount, targetID, balance))
		}
		return nil
	}
}

func (r *Router) bet(ctx context.Context, msg Message, args []string) error {
	var amount int
	if len(args) > 0 {
		amount, _ = parseAmount(args[0])
	}
	if amount <= 0 {
		r.reply(ctx, msg, MsgInvalidBet)
		return nil
	}

	res, err := r.Ledger.Bet(ctx, msg.AuthorID, amount)
	var short economy.InsufficientFundsError
	switch {
	case errors.As(err, &short):
		r.reply(ctx, msg, fmt.Sprintf(MsgBetTooMuchFmt, short.Need, short.Have))
	case err != nil:
		return err
	default:
		r.reply(ctx, msg, betReply(res))
	}
	return nil
}

func betReply(res domain.BetResult) string {
	switch res.Outcome {
	case domain.BetLose:
		return fmt.Sprintf(MsgBetLostFmt, res.Amount)
	case domain.BetBreakEven:
		return fmt.Sprintf(MsgBetBreakEvenFmt, res.NewBalance)
	case domain.BetTriple:
		return fmt.Sprintf(MsgBetTripleFmt, res.Delta, res.NewBalance)
	default:
		return fmt.Sprintf(MsgBetDoubleFmt, res.Delta, res.NewBalance)
	}
}

// rob reads the amount from the last argument so the mention may come first
func (r *Router) rob(ctx context.Context, msg Message, args []string) error {
	target, ok := msg.FirstMention()
	if !ok {
		r.reply(ctx, msg, MsgRobNeedsMention)
		return nil
	}
	var amount int
	if len(args) > 0 {
		amount, _ = parseAmount(args[len(args)-1])
	}
	if amount <= 0 {
		r.reply(ctx, msg, MsgInvalidRobAmount)
		return nil
	}

	res, err := r.Ledger.Rob(ctx, msg.AuthorID, target.ID, amount)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		r.reply(ctx, msg, MsgSelfRobbery)
	case errors.Is(err, domain.ErrTargetHasNothing):
		r.reply(ctx, msg, fmt.Sprintf(MsgTargetBrokeFmt, target.ID))
	case errors.Is(err, domain.ErrRobberHasNothing):
		r.reply(ctx, msg, MsgRobberBroke)
	case err != nil:
		return err
	case res.Success:
		r.reply(ctx, msg, fmt.Sprintf(MsgRobSucceededFmt, res.Coins, target.ID, res.NewBalance))
	default:
		r.reply(ctx, msg, fmt.Sprintf(MsgRobFailedFmt, res.Coins))
	}
	return nil
}
