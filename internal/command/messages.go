package command

// Egg replies
const (
	MsgAlreadyHasEgg    = "You already have an egg! Use !egg-status to check its status."
	MsgAskGender        = "What is the gender of your egg? Please respond with 'male', 'female', or 'non-binary'."
	MsgInvalidGender    = "Invalid gender! Please respond with 'male', 'female', or 'non-binary'."
	MsgAskEggName       = "What would you like to name your egg?"
	MsgInvalidEggName   = "Your egg needs a name! Run !create-egg again when you've picked one."
	MsgCreatedFmt       = "You have created a baby egg named %s (%s)!"
	MsgCreateTimedOut   = "You took too long to answer. Run !create-egg again when you're ready."
	MsgNoEggOrPartner   = "You currently don't have a baby egg. You can create one now! Use !create-egg."
	MsgEggPassedAwayFmt = "Your egg named %s has sadly passed away! RIP"
	MsgNoEggToRevive    = "You don't have an egg to revive! Create one first using !create-egg."
	MsgEggNotDead       = "Your egg is not dead, so there is no need to revive it!"
	MsgAlreadyRevived   = "You have already revived your egg! You cannot revive it again."
	MsgRevivedFmt       = "Your egg named %s has been revived! Care for it quickly, every neglected need still counts!"
	MsgNoEggToDisown    = "You don't have an egg to disown!"
	MsgDisowned         = "You have successfully disowned your egg. It is no longer yours."
	MsgCareNeedsName    = "You need to specify the egg's name to care for it."
	MsgNoEggWithName    = "You don't have an egg with that name!"
	MsgCaredFmt         = "You have successfully %s the egg named %s!"
)

// Status rendering
const (
	StatusNoEggHeader   = "You currently don't have a baby egg."
	StatusOwnHeader     = "**Your Egg:**"
	StatusPartnerHeader = "**Partner's Egg:**"
	StatusNameFmt       = "- Name: %s"
	StatusGenderFmt     = "- Gender: %s"
	StatusAgeFmt        = "**Egg-Age**: %s"
	StatusNoEggName     = "No egg yet"
	StatusUnknownGender = "Unknown"
	StatusPartnerDead   = "This egg has sadly passed away! RIP"
)

// Inventory rendering
const (
	MsgInventoryEmpty   = "You don't have any pets or accessories yet! Buy some from the shop!"
	InventoryPetsHeader = "**Your Pets**"
	InventoryGearHeader = "**Eggie Accessories**"
	InventoryNoPets     = "You don't have any pets yet! Buy some from the pet shop!"
	InventoryNoApparel  = "You don't have any accessories yet! Buy some from the shop!"
)

// Relationship replies
const (
	MsgMarryNeedsMention    = "Please mention a user to marry."
	MsgSelfMarriage         = "You cannot marry yourself!"
	MsgAlreadyMarried       = "You are already married to someone else. You can't marry another user until you break up."
	MsgPartnerMarriedFmt    = "%s is already married to someone else."
	MsgProposalFmt          = "%s, do you want to marry %s? Please reply with 'yes' or 'no'."
	MsgProposalDeclinedFmt  = "%s said no to the marriage."
	MsgProposalLapsedFmt    = "%s didn't answer in time. The proposal has lapsed."
	MsgMarriedFmt           = "%s accepted the marriage! You both take care of each other's eggs!"
	MsgBreakupNeedsMention  = "Please mention the user you want to break up with."
	MsgNotMarried           = "You are not married to this user!"
	MsgBrokeUpFmt           = "You have broken up with %s. You are no longer married."
	MsgHugNeedsMention      = "You need to mention someone to give them a hug!"
	MsgHugFmt               = "%s gives %s a warm, cozy hug! 🤗💖"
	MsgMarriageStatusHeader = "Current Marriages:"
	MsgMarriageLineFmt      = "<@%s> is married to <@%s>"
	MsgNoMarriages          = "No one is married yet."
)

// Economy replies
const (
	MsgShopHeader             = "**Welcome to the shop! Here are the items available for purchase:** "
	MsgShopLineFmt            = "%s - %d coins%s"
	MsgPetShopHeader          = "**Welcome to the Pet Shop!**\nHere are the pets you can buy:"
	MsgPetShopLineFmt         = "%s: %d coins"
	MsgDailyCooldownFmt       = "You can claim your daily reward in %d hours."
	MsgDailyClaimedFmt        = "You have successfully claimed %d coins!"
	MsgBalanceFmt             = "Your current coin balance is: %d coins."
	MsgInvalidItemFmt         = "Please specify a valid item to buy. Available items: %s"
	MsgInvalidPetFmt          = "Please specify a valid pet to buy. Available pets: %s"
	MsgCannotAffordFmt        = "You don't have enough coins to buy a %s. You need %d coins."
	MsgBoughtFmt              = "You have successfully bought a %s! Your remaining balance is %d coins."
	MsgNoPermission           = "You do not have permission to use this command."
	MsgInvalidAddArgs         = "Please specify a valid user ID and a positive number of coins to add."
	MsgInvalidRemoveArgs      = "Please specify a valid user ID and a positive number of coins to remove."
	MsgInvalidShareArgs       = "Please specify a valid user ID and a positive number of coins to share."
	MsgAddedFmt               = "Successfully added %d coins to <@%s>'s balance! They now have %d coins."
	MsgRemovedFmt             = "Successfully removed %d coins from <@%s>'s balance! They now have %d coins."
	MsgRemoveTooMuchFmt       = "The user doesn't have enough coins to remove. They currently have %d coins."
	MsgShareTooMuchFmt        = "You don't have enough coins to share. You need %d coins, but you only have %d coins."
	MsgSharedFmt              = "Successfully shared %d coins with <@%s>! Your new balance is %d coins."
	MsgViewBalanceNeedsTarget = "Please mention the user whose balance you want to view."
	MsgViewBalanceFmt         = "<@%s> currently has %d coins."
	MsgInvalidBet             = "Please specify a valid bet amount."
	MsgBetTooMuchFmt          = "You don't have enough coins to bet. You need %d coins, but you only have %d coins."
	MsgBetLostFmt             = "You lost your bet of %d coins. Better luck next time!"
	MsgBetBreakEvenFmt        = "You broke even! You didn't win or lose any coins. Your balance remains %d coins."
	MsgBetDoubleFmt           = "You won double! You gained %d coins. Your new balance is %d coins."
	MsgBetTripleFmt           = "You won triple! You gained %d coins. Your new balance is %d coins."
	MsgRobNeedsMention        = "Please mention the user you want to rob."
	MsgInvalidRobAmount       = "Please specify a valid amount of coins to rob."
	MsgSelfRobbery            = "You can't rob yourself!"
	MsgTargetBrokeFmt         = "<@%s> doesn't have any coins to rob."
	MsgRobberBroke            = "You don't have any coins to start a robbery. Try earning some first."
	MsgRobFailedFmt           = "The robbery failed! You lost %d coins in the attempt. Better luck next time!"
	MsgRobSucceededFmt        = "The robbery was successful! You stole %d coins from <@%s>. Your new balance is %d coins."
)

// MsgGenericError is sent when a command fails for a reason the user cannot fix
const MsgGenericError = "❌ Something went wrong. Please try again later."

// HelpText lists every command
const HelpText = `
**Welcome to the Bot Help!** Here are the commands you can use:

**!create-egg**
Creates a new egg lifeform :)

**!egg-status**
Check on your egg and your partner's egg, then view your pets and accessories.

**!inventory**
View the pets and accessories you've purchased so far.

**!revive**
Bring your dead egg back to life. You can only do this once!

**!disown-egg**
Disowns a current egg you have dead or alive

**!feed, !hydrate, !play, !wash, !cuddle [egg name]**
General care commands when caring for your egg or your partner's egg.

**!marry [@user]**
Marry a user in the server and take care of eggs with them

**!breakup [@user]**
Breakup with a user in the server

**!marriage-status**
See who is married to whom.

**!hug [@user]**
Give someone a warm, cozy hug.

**!daily**
Claim your daily coins. Once every 24 hours.

**!balance**
Check your coin balance.

**!shop**, **!buy [item]**
Browse the shop and buy an accessory. Items include Baseball Cap, Hoodie, Dress, Jeans, T-shirt, and more.

**!pet-shop**, **!buy-pet [pet]**
Browse the pet shop and buy a pet. Pets include Dog, Cat, Parrot, Hamster, and more.

**!share-coins [user ID] [amount]**
Share coins with another user. You must have enough coins to send.

**!view-balance [@user]**
View the balance of a user.

**!bet [amount]**
Bet some of your coins. You might lose it all, break even or win double!

**!rob [@user] [amount]**
Try to steal coins from someone. Fail and you lose half of what you tried to take.

**!add-coins [user ID] [amount]**, **!remove-coins [user ID] [amount]**
(Bot Owner Only) Adjust a user's balance.

**For more information or help, feel free to ask!**
`
