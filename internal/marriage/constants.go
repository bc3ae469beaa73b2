package marriage

// Log messages
const (
	LogMsgMarried          = "Marriage accepted"
	LogMsgProposalDeclined = "Marriage proposal declined"
	LogMsgProposalLapsed   = "Marriage proposal lapsed"
	LogMsgBrokeUp          = "Marriage ended"
)
