package interview

// Canned answer pools, one per handler bucket.
var (
	priceResistantAnswers = []string{
		"The price feels like a burden. I'm looking for a cheaper alternative.",
		"I'd like to try a free version or a trial first.",
		"It seems hard to fit into our current budget.",
	}
	priceConsideringAnswers = []string{
		"I could consider it if the value is clear.",
		"I'll compare it with competitors before deciding.",
		"I'd need to discuss it with my team.",
	}
	priceAcceptingAnswers = []string{
		"I think the price is reasonable.",
		"Given the value it provides, it seems fair.",
		"I think it's worth the investment.",
	}

	advancedFeatureAnswers = []string{
		"Advanced features and customization options matter most.",
		"API integrations and automation are essential.",
		"I value data analytics and insight features.",
	}
	simplicityAnswers = []string{
		"An easy-to-use interface matters most.",
		"The basics just need to work well.",
		"Stability matters more than complex features.",
	}

	switchingCostAnswers = []string{
		"I'm happy with my current tool, so switching is hard.",
		"I'd have to weigh switching costs and the learning curve.",
		"I'm worried about how long my team would take to adapt.",
	}
	openToSwitchAnswers = []string{
		"I'm willing to switch any time for a better solution.",
		"It's worth a try if it offers differentiated value.",
		"Its advantages over competitors are clear.",
	}

	generalAnswers = []string{
		"Interesting proposal. I'd like to learn more.",
		"It seems to fit our team's needs well.",
		"I have a few more questions.",
	}
)

// Discovery channels by age bracket
var (
	youngChannels  = []string{"Instagram", "YouTube", "LinkedIn", "Facebook"}
	middleChannels = []string{"Google search", "a colleague's referral", "an industry community", "a webinar"}
	seniorChannels = []string{"an industry publication", "a conference", "a partner referral", "an email newsletter"}
)

// Keywords attached to each handler's responses for hypothesis matching
var (
	priceKeywords       = []string{"price", "cost", "budget", "value"}
	featureKeywords     = []string{"feature", "interface", "usability"}
	competitionKeywords = []string{"competition", "differentiation", "switching"}
	discoveryKeywords   = []string{"marketing", "channel", "discovery"}
	generalKeywords     = []string{"general", "interest"}
)
