package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/prompt"
)

func (r *Router) registerEggCommands() {
	r.Register(CmdCreateEgg, r.createEgg)
	r.Register(CmdEggStatus, r.eggStatus)
	r.Register(CmdInventory, r.inventory)
	r.Register(CmdRevive, r.revive)
	r.Register(CmdDisownEgg, r.disownEgg)

	for _, action := range domain.CareActions {
		r.Register(Prefix+string(action), r.care(action))
	}
}

// createEgg asks for a gender and a name, one prompt each
func (r *Router) createEgg(ctx context.Context, msg Message, _ []string) error {
	if r.Eggs.HasEgg(msg.AuthorID) {
		r.reply(ctx, msg, MsgAlreadyHasEgg)
		return nil
	}

	r.reply(ctx, msg, MsgAskGender)
	answer, err := r.await(ctx, msg, msg.AuthorID, PromptGender, prompt.AnyReply)
	if err != nil {
		return r.promptEnded(ctx, msg, err)
	}
	gender, err := domain.ParseGender(answer)
	if err != nil {
		r.reply(ctx, msg, MsgInvalidGender)
		return nil
	}

	r.reply(ctx, msg, MsgAskEggName)
	name, err := r.await(ctx, msg, msg.AuthorID, PromptName, prompt.AnyReply)
	if err != nil {
		return r.promptEnded(ctx, msg, err)
	}

	created, err := r.Eggs.Create(ctx, msg.AuthorID, gender, name)
	switch {
	case errors.Is(err, domain.ErrEggAlreadyExists):
		r.reply(ctx, msg, MsgAlreadyHasEgg)
	case errors.Is(err, domain.ErrInvalidInput):
		r.reply(ctx, msg, MsgInvalidEggName)
	case err != nil:
		return err
	default:
		r.reply(ctx, msg, fmt.Sprintf(MsgCreatedFmt, created.Name, created.Gender))
	}
	return nil
}

// promptEnded answers a lapsed prompt. Superseded and cancelled prompts end silently.
func (r *Router) promptEnded(ctx context.Context, msg Message, err error) error {
	if errors.Is(err, domain.ErrPromptTimeout) {
		r.reply(ctx, msg, MsgCreateTimedOut)
		return nil
	}
	if isPromptEnd(err) {
		return nil
	}
	return err
}

func (r *Router) eggStatus(ctx context.Context, msg Message, _ []string) error {
	text, full := renderStatus(r.Eggs.Status(ctx, msg.AuthorID))
	r.reply(ctx, msg, text)
	if full {
		r.reply(ctx, msg, renderInventory(r.Inventory.List(msg.AuthorID)))
	}
	return nil
}

func (r *Router) inventory(ctx context.Context, msg Message, _ []string) error {
	r.reply(ctx, msg, renderInventory(r.Inventory.List(msg.AuthorID)))
	return nil
}

func (r *Router) revive(ctx context.Context, msg Message, _ []string) error {
	revived, err := r.Eggs.Revive(ctx, msg.AuthorID)
	switch {
	case errors.Is(err, domain.ErrEggNotFound):
		r.reply(ctx, msg, MsgNoEggToRevive)
	case errors.Is(err, domain.ErrEggNotDead):
		r.reply(ctx, msg, MsgEggNotDead)
	case errors.Is(err, domain.ErrAlreadyRevived):
		r.reply(ctx, msg, MsgAlreadyRevived)
	case err != nil:
		return err
	default:
		r.reply(ctx, msg, fmt.Sprintf(MsgRevivedFmt, revived.Name))
	}
	return nil
}

func (r *Router) disownEgg(ctx context.Context, msg Message, _ []string) error {
	_, err := r.Eggs.Disown(ctx, msg.AuthorID)
	switch {
	case errors.Is(err, domain.ErrEggNotFound):
		r.reply(ctx, msg, MsgNoEggToDisown)
	case err != nil:
		return err
	default:
		r.reply(ctx, msg, MsgDisowned)
	}
	return nil
}

func (r *Router) care(action domain.CareAction) Handler {
	return func(ctx context.Context, msg Message, args []string) error {
		name := strings.Join(args, " ")
		if name == "" {
			r.reply(ctx, msg, MsgCareNeedsName)
			return nil
		}

		res, err := r.Eggs.Care(ctx, msg.AuthorID, name, action)
		switch {
		case errors.Is(err, domain.ErrEggNotFound):
			r.reply(ctx, msg, MsgNoEggWithName)
		case err != nil:
			return err
		default:
			r.reply(ctx, msg, fmt.Sprintf(MsgCaredFmt, action.PastTense(), res.Egg.Name))
		}
		return nil
	}
}
