package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/BabyEggBot_Go/internal/domain"
)

func (r *Router) registerSocialCommands() {
	r.Register(CmdMarry, r.marry)
	r.Register(CmdBreakup, r.breakup)
	r.Register(CmdHug, r.hug)
	r.Register(CmdMarriageStatus, r.marriageStatus)
}

func yesOrNo(content string) bool {
	answer := strings.ToLower(strings.TrimSpace(content))
	return answer == AnswerYes || answer == AnswerNo
}

func (r *Router) marry(ctx context.Context, msg Message, _ []string) error {
	partner, ok := msg.FirstMention()
	if !ok {
		r.reply(ctx, msg, MsgMarryNeedsMention)
		return nil
	}

	ask := func(ctx context.Context) (bool, error) {
		r.reply(ctx, msg, fmt.Sprintf(MsgProposalFmt, partner.Username, msg.AuthorName))
		answer, err := r.await(ctx, msg, partner.ID, PromptProposal, yesOrNo)
		if err != nil {
			return false, err
		}
		return strings.EqualFold(strings.TrimSpace(answer), AnswerYes), nil
	}

	err := r.Marriages.Propose(ctx, msg.AuthorID, partner.ID, ask)
	switch {
	case errors.Is(err, domain.ErrSelfMarriage):
		r.reply(ctx, msg, MsgSelfMarriage)
	case errors.Is(err, domain.ErrAlreadyMarried):
		r.reply(ctx, msg, MsgAlreadyMarried)
	case errors.Is(err, domain.ErrPartnerAlreadyMarried):
		r.reply(ctx, msg, fmt.Sprintf(MsgPartnerMarriedFmt, partner.Username))
	case errors.Is(err, domain.ErrProposalDeclined):
		r.reply(ctx, msg, fmt.Sprintf(MsgProposalDeclinedFmt, partner.Username))
	case errors.Is(err, domain.ErrPromptTimeout):
		r.reply(ctx, msg, fmt.Sprintf(MsgProposalLapsedFmt, partner.Username))
	case isPromptEnd(err):
	case err != nil:
		return err
	default:
		r.reply(ctx, msg, fmt.Sprintf(MsgMarriedFmt, partner.Username))
	}
	return nil
}

func (r *Router) breakup(ctx context.Context, msg Message, _ []string) error {
	partner, ok := msg.FirstMention()
	if !ok {
		r.reply(ctx, msg, MsgBreakupNeedsMention)
		return nil
	}

	err := r.Marriages.Breakup(ctx, msg.AuthorID, partner.ID)
	switch {
	case errors.Is(err, domain.ErrNotMarried):
		r.reply(ctx, msg, MsgNotMarried)
	case err != nil:
		return err
	default:
		r.reply(ctx, msg, fmt.Sprintf(MsgBrokeUpFmt, partner.Username))
	}
	return nil
}

func (r *Router) hug(ctx context.Context, msg Message, _ []string) error {
	target, ok := msg.FirstMention()
	if !ok {
		r.reply(ctx, msg, MsgHugNeedsMention)
		return nil
	}
	r.reply(ctx, msg, fmt.Sprintf(MsgHugFmt, msg.AuthorName, target.Username))
	return nil
}

func (r *Router) marriageStatus(ctx context.Context, msg Message, _ []string) error {
	pairs := r.Marriages.Pairs()
	if len(pairs) == 0 {
		r.reply(ctx, msg, MsgNoMarriages)
		return nil
	}

	var b strings.Builder
	b.WriteString(MsgMarriageStatusHeader)
	for _, p := range pairs {
		b.WriteString("\n")
		fmt.Fprintf(&b, MsgMarriageLineFmt, p.A, p.B)
	}
	r.reply(ctx, msg, b.String())
	return nil
}
