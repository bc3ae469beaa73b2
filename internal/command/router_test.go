package command

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BabyEggBot_Go/internal/catalog"
	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/prompt"
)

func TestParse(t *testing.T) {
	tests := []struct {
		content  string
		wantName string
		wantArgs []string
		wantOK   bool
	}{
		{"!daily", "!daily", []string{}, true},
		{"!FEED  Spot   Jr", "!feed", []string{"Spot", "Jr"}, true},
		{"hello !daily", "", nil, false},
		{"", "", nil, false},
		{"   ", "", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			name, args, ok := Parse(tt.content)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
			if tt.wantOK {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestHandle_IgnoresNonCommands(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	assert.False(t, h.router.Handle(ctx, Message{AuthorID: "u1", Content: "just chatting"}))
	assert.False(t, h.router.Handle(ctx, Message{AuthorID: "u1", Content: "!unknown"}))
	assert.Empty(t, h.replies.all())
	assert.Equal(t, 27, h.router.Commands())
}

func TestCreateEgg(t *testing.T) {
	t.Run("gender then name", func(t *testing.T) {
		h := newHarness(t)
		h.prompts.push("1", "Male", "Spot")
		replies := h.send(t, "1", "!create-egg")
		assert.Equal(t, []string{MsgAskGender, MsgAskEggName, "You have created a baby egg named Spot (male)!"}, replies)
		assert.True(t, h.eggs.HasEgg("1"))
	})

	t.Run("timeout aborts", func(t *testing.T) {
		h := newHarness(t)
		replies := h.send(t, "1", "!create-egg")
		assert.Equal(t, []string{MsgAskGender, MsgCreateTimedOut}, replies)
		assert.False(t, h.eggs.HasEgg("1"))
	})

	t.Run("invalid gender", func(t *testing.T) {
		h := newHarness(t)
		h.prompts.push("1", "robot")
		replies := h.send(t, "1", "!create-egg")
		assert.Equal(t, []string{MsgAskGender, MsgInvalidGender}, replies)
		assert.False(t, h.eggs.HasEgg("1"))
	})

	t.Run("already has egg", func(t *testing.T) {
		h := newHarness(t)
		h.prompts.push("1", "female", "Dot")
		h.send(t, "1", "!create-egg")
		assert.Equal(t, []string{MsgAlreadyHasEgg}, h.send(t, "1", "!create-egg"))
	})
}

func TestEggStatus(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, []string{MsgNoEggOrPartner}, h.send(t, "1", "!egg-status"))

	h.prompts.push("1", "male", "Spot")
	h.send(t, "1", "!create-egg")

	replies := h.send(t, "1", "!egg-status")
	require.Len(t, replies, 2)
	status := replies[0]
	assert.Contains(t, status, "- Name: Spot")
	assert.Contains(t, status, "- Gender: male")
	assert.Contains(t, status, "**Egg-Age**: 0 days, 0 hours, and 0 minutes")
	for _, action := range domain.CareActions {
		assert.Contains(t, status, "72 hours and 0 minutes until "+string(action))
	}
	assert.Contains(t, status, "**Partner's Egg:**\n- Name: No egg yet\n- Gender: Unknown")
	assert.Equal(t, MsgInventoryEmpty, replies[1])
}

func TestEggDeathAndCare(t *testing.T) {
	h := newHarness(t)
	h.prompts.push("1", "male", "Spot")
	h.send(t, "1", "!create-egg")
	assert.Equal(t, []string{MsgEggNotDead}, h.send(t, "1", "!revive"))

	h.clock.AdvanceHours(73)
	assert.Equal(t, []string{"Your egg named Spot has sadly passed away! RIP"}, h.send(t, "1", "!egg-status"))

	assert.Equal(t, []string{"You have successfully fed the egg named Spot!"}, h.send(t, "1", "!feed spot"))
	assert.Equal(t, []string{MsgNoEggWithName}, h.send(t, "1", "!wash Rex"))
	assert.Equal(t, []string{MsgCareNeedsName}, h.send(t, "1", "!play"))

	// Other timers are still stale, so status sees the egg die again
	assert.Equal(t, []string{"Your egg named Spot has sadly passed away! RIP"}, h.send(t, "1", "!egg-status"))

	assert.Equal(t, []string{"Your egg named Spot has been revived! Care for it quickly, every neglected need still counts!"}, h.send(t, "1", "!revive"))
	assert.Equal(t, []string{MsgAlreadyRevived}, h.send(t, "1", "!revive"))

	assert.Equal(t, []string{MsgDisowned}, h.send(t, "1", "!disown-egg"))
	assert.Equal(t, []string{MsgNoEggToDisown}, h.send(t, "1", "!disown-egg"))
	assert.Equal(t, []string{MsgNoEggToRevive}, h.send(t, "1", "!revive"))
}

func TestDaily(t *testing.T) {
	h := newHarness(t)

	replies := h.send(t, "1", "!daily")
	require.Len(t, replies, 1)
	balance := h.ledger.Balance("1")
	assert.GreaterOrEqual(t, balance, 50)
	assert.LessOrEqual(t, balance, 200)
	assert.Equal(t, fmt.Sprintf(MsgDailyClaimedFmt, balance), replies[0])

	h.clock.AdvanceHours(1.5)
	assert.Equal(t, []string{"You can claim your daily reward in 23 hours."}, h.send(t, "1", "!daily"))
	assert.Equal(t, balance, h.ledger.Balance("1"))

	assert.Equal(t, []string{fmt.Sprintf(MsgBalanceFmt, balance)}, h.send(t, "1", "!balance"))
}

func TestMarryAndCareForPartnerEgg(t *testing.T) {
	h := newHarness(t)
	h.prompts.push("1", "female", "Spot")
	h.send(t, "1", "!create-egg")

	// The first answer is not yes/no and is left alone
	h.prompts.push("2", "maybe", "YES")
	replies := h.send(t, "1", "!marry <@2>", user("2"))
	assert.Equal(t, []string{
		"user2, do you want to marry user1? Please reply with 'yes' or 'no'.",
		"user2 accepted the marriage! You both take care of each other's eggs!",
	}, replies)

	assert.Equal(t, []string{"You have successfully fed the egg named Spot!"}, h.send(t, "2", "!feed Spot"))

	status := h.send(t, "2", "!egg-status")
	require.Len(t, status, 1)
	assert.Contains(t, status[0], "You currently don't have a baby egg.")
	assert.Contains(t, status[0], "- Name: Spot")

	assert.Equal(t, []string{"Current Marriages:\n<@1> is married to <@2>"}, h.send(t, "3", "!marriage-status"))
	assert.Equal(t, []string{MsgAlreadyMarried}, h.send(t, "1", "!marry <@3>", user("3")))
	assert.Equal(t, []string{"user1 is already married to someone else."}, h.send(t, "3", "!marry <@1>", user("1")))

	assert.Equal(t, []string{MsgNotMarried}, h.send(t, "1", "!breakup <@3>", user("3")))
	assert.Equal(t, []string{"You have broken up with user2. You are no longer married."}, h.send(t, "1", "!breakup <@2>", user("2")))
	assert.Equal(t, []string{MsgNoMarriages}, h.send(t, "1", "!marriage-status"))
	assert.Equal(t, []string{MsgNoEggWithName}, h.send(t, "2", "!feed Spot"))
}

func TestMarryRejections(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, []string{MsgMarryNeedsMention}, h.send(t, "1", "!marry"))
	assert.Equal(t, []string{MsgSelfMarriage}, h.send(t, "1", "!marry <@1>", user("1")))

	h.prompts.push("2", "no")
	replies := h.send(t, "1", "!marry <@2>", user("2"))
	assert.Equal(t, "user2 said no to the marriage.", replies[len(replies)-1])

	replies = h.send(t, "1", "!marry <@2>", user("2"))
	assert.Equal(t, "user2 didn't answer in time. The proposal has lapsed.", replies[len(replies)-1])
}

func TestMarryWithBroker(t *testing.T) {
	h := newHarness(t)
	broker := prompt.NewBroker()
	h.router.Prompts = broker

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.router.Handle(context.Background(), Message{ChannelID: "chan-1", AuthorID: "1", AuthorName: "user1", Content: "!marry <@2>", Mentions: []Mention{user("2")}})
	}()

	key := prompt.Key{ChannelID: "chan-1", UserID: "2"}
	require.Eventually(t, func() bool { return broker.Pending() == 1 }, time.Second, time.Millisecond)
	assert.False(t, broker.Deliver(prompt.Key{ChannelID: "chan-1", UserID: "1"}, "yes"), "the proposer cannot answer")
	assert.True(t, broker.Deliver(key, "yes"))
	<-done

	assert.Contains(t, h.replies.last(), "accepted the marriage")
}

func TestShopAndBuy(t *testing.T) {
	h := newHarness(t)

	shop := h.send(t, "1", "!shop")
	require.Len(t, shop, 1)
	assert.Contains(t, shop[0], "🧢 Baseball Cap - 100 coins")
	assert.Contains(t, shop[0], "🧥 Brandons Leather Jacket - 1000 coins **RARE ⭐**")

	pets := h.send(t, "1", "!pet-shop")
	assert.Contains(t, pets[0], "🐶 Dog: 500 coins")
	assert.Contains(t, pets[0], "🐍 Emilys Snake **RARE ⭐**: 2000 coins")

	h.setBalance(t, "1", 40)
	assert.Equal(t, []string{"You don't have enough coins to buy a baseball cap. You need 100 coins."}, h.send(t, "1", "!buy Baseball Cap"))
	assert.Equal(t, 40, h.ledger.Balance("1"))
	assert.Empty(t, h.inv.Items("1"))

	invalid := h.send(t, "1", "!buy dog")
	assert.True(t, strings.HasPrefix(invalid[0], "Please specify a valid item to buy. Available items: baseball cap, "))

	h.setBalance(t, "1", 1000)
	assert.Equal(t, []string{"You have successfully bought a baseball cap! Your remaining balance is 900 coins."}, h.send(t, "1", "!buy baseball cap"))
	assert.Equal(t, []string{"You have successfully bought a dog! Your remaining balance is 400 coins."}, h.send(t, "1", "!buy-pet DOG"))

	inv := h.send(t, "1", "!inventory")
	assert.Equal(t, []string{"**Your Pets**\n🐶 Dog\n\n**Eggie Accessories**\n🧢 Baseball Cap"}, inv)

	missing := h.send(t, "1", "!buy-pet unicorn")
	assert.True(t, strings.HasPrefix(missing[0], "Please specify a valid pet to buy. Available pets: dog, cat"))
	assert.Len(t, catalog.IDs(catalog.KindPet), 21)
}

func TestOwnerCommands(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, []string{MsgNoPermission}, h.send(t, "1", "!add-coins 2 100"))
	assert.Equal(t, []string{MsgNoPermission}, h.send(t, "1", "!remove-coins"), "permission is checked before arguments")
	assert.Equal(t, []string{MsgInvalidAddArgs}, h.send(t, testOwner, "!add-coins 2 abc"))
	assert.Equal(t, []string{MsgInvalidRemoveArgs}, h.send(t, testOwner, "!remove-coins 2 -4"))

	assert.Equal(t, []string{"Successfully added 100 coins to <@2>'s balance! They now have 100 coins."}, h.send(t, testOwner, "!add-coins <@2> 100"))
	assert.Equal(t, []string{"The user doesn't have enough coins to remove. They currently have 100 coins."}, h.send(t, testOwner, "!remove-coins 2 150"))
	assert.Equal(t, []string{"Successfully removed 60 coins from <@2>'s balance! They now have 40 coins."}, h.send(t, testOwner, "!remove-coins 2 60"))

	assert.Equal(t, []string{"<@2> currently has 40 coins."}, h.send(t, "1", "!view-balance <@2>", user("2")))
	assert.Equal(t, []string{MsgViewBalanceNeedsTarget}, h.send(t, "1", "!view-balance"))
}

func TestShareCoins(t *testing.T) {
	h := newHarness(t)
	h.setBalance(t, "1", 30)

	assert.Equal(t, []string{MsgInvalidShareArgs}, h.send(t, "1", "!share-coins 2"))
	assert.Equal(t, []string{"You don't have enough coins to share. You need 50 coins, but you only have 30 coins."}, h.send(t, "1", "!share-coins 2 50"))
	assert.Equal(t, []string{"Successfully shared 20 coins with <@2>! Your new balance is 10 coins."}, h.send(t, "1", "!share-coins 2 20"))
	assert.Equal(t, 20, h.ledger.Balance("2"))
}

func TestBetAndRob(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, []string{MsgInvalidBet}, h.send(t, "1", "!bet"))
	assert.Equal(t, []string{MsgInvalidBet}, h.send(t, "1", "!bet zero"))
	assert.Equal(t, []string{"You don't have enough coins to bet. You need 10 coins, but you only have 0 coins."}, h.send(t, "1", "!bet 10"))

	h.setBalance(t, "1", 100)
	bet := h.send(t, "1", "!bet 10")
	require.Len(t, bet, 1)
	assert.Regexp(t, `^You (lost your bet|broke even|won double)`, bet[0])

	assert.Equal(t, []string{MsgRobNeedsMention}, h.send(t, "1", "!rob 10"))
	assert.Equal(t, []string{MsgInvalidRobAmount}, h.send(t, "1", "!rob <@2>", user("2")))
	assert.Equal(t, []string{"<@2> doesn't have any coins to rob."}, h.send(t, "1", "!rob <@2> 10", user("2")))
	assert.Equal(t, []string{MsgSelfRobbery}, h.send(t, "1", "!rob <@1> 10", user("1")))

	h.setBalance(t, "1", 100)
	h.setBalance(t, "2", 50)
	h.setBalance(t, "3", 0)
	assert.Equal(t, []string{MsgRobberBroke}, h.send(t, "3", "!rob <@2> 10", user("2")))

	rob := h.send(t, "1", "!rob <@2> 10", user("2"))
	require.Len(t, rob, 1)
	assert.Regexp(t, `^The robbery (failed|was successful)`, rob[0])
	// Success moves 10 coins, failure burns a penalty of 5
	total := h.ledger.Balance("1") + h.ledger.Balance("2")
	assert.Contains(t, []int{150, 145}, total)
}

func TestHugAndHelp(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, []string{MsgHugNeedsMention}, h.send(t, "1", "!hug"))
	assert.Equal(t, []string{"user1 gives user2 a warm, cozy hug! 🤗💖"}, h.send(t, "1", "!hug <@2>", user("2")))

	help := h.send(t, "1", "!help")
	require.Len(t, help, 1)
	for _, cmd := range []string{CmdCreateEgg, CmdMarry, CmdDaily, CmdBet, CmdRob, CmdBuyPet} {
		assert.Contains(t, help[0], cmd)
	}
}

func TestInternalFailureRepliesGenerically(t *testing.T) {
	h := newHarness(t)
	h.backend.FailSaves(true)

	assert.Equal(t, []string{MsgGenericError}, h.send(t, "1", "!daily"))
	assert.Equal(t, 0, h.ledger.Balance("1"))
}
