package suggest

import "github.com/blackwell-systems/funnelscout/internal/intent"

// goalPoints maps (goal, template id) to the goal-match portion of the
// score (0-40). Unmapped combinations score zero. The tables are kept as
// explicit maps rather than conditional chains so every pair is auditable
// and enumerable in tests.
var goalPoints = map[intent.Goal]map[string]int{
	intent.GoalBuildEmailList: {
		"lead-magnet-basic": 40,
		"lead-magnet-quiz":  35,
		"virtual-summit":    30,
	},
	intent.GoalInteractiveLeadGen: {
		"lead-magnet-quiz":  40,
		"lead-magnet-basic": 25,
	},
	intent.GoalWebinar: {
		"webinar-basic":  40,
		"virtual-summit": 25,
	},
	intent.GoalProductLaunch: {
		"product-launch":   40,
		"webinar-basic":    25,
		"ecommerce-simple": 20,
	},
	intent.GoalSellProduct: {
		"ecommerce-simple": 40,
		"tripwire-funnel":  35,
		"webinar-basic":    25,
		"product-launch":   20,
	},
	intent.GoalMembership: {
		"membership-site": 40,
		"webinar-basic":   20,
	},
	intent.GoalSummit: {
		"virtual-summit": 40,
		"webinar-basic":  25,
	},
}

// priceTierTemplates lists, per price tier, the template ids that earn the
// flat price-point award. Membership is all-or-nothing.
var priceTierTemplates = map[intent.PricePoint]map[string]bool{
	intent.PriceLow: {
		"tripwire-funnel":   true,
		"ecommerce-simple":  true,
		"lead-magnet-basic": true,
	},
	intent.PriceMedium: {
		"ecommerce-simple": true,
		"product-launch":   true,
		"membership-site":  true,
	},
	intent.PriceHigh: {
		"webinar-basic":   true,
		"virtual-summit":  true,
		"membership-site": true,
		"product-launch":  true,
	},
}

// goalReasons holds the canned opening sentence for each (goal, template)
// pair in goalPoints. Reason assembly appends experience, timeline, and
// conversion notes after this sentence.
var goalReasons = map[intent.Goal]map[string]string{
	intent.GoalBuildEmailList: {
		"lead-magnet-basic": "A proven opt-in flow that turns cold traffic into email subscribers.",
		"lead-magnet-quiz":  "Grows your list while segmenting every new subscriber by their answers.",
		"virtual-summit":    "Builds a large list fast by borrowing your speakers' audiences.",
	},
	intent.GoalInteractiveLeadGen: {
		"lead-magnet-quiz":  "Purpose-built for interactive lead capture with answer-based segmentation.",
		"lead-magnet-basic": "A simpler alternative if you want opt-ins without building a quiz.",
	},
	intent.GoalWebinar: {
		"webinar-basic":  "Handles registration, the live room, and the replay in one flow.",
		"virtual-summit": "Scales the webinar format into a multi-speaker event.",
	},
	intent.GoalProductLaunch: {
		"product-launch":   "Builds anticipation with a waitlist before you open the cart.",
		"webinar-basic":    "Launch with a live training that ends in your offer.",
		"ecommerce-simple": "A lean option if you want to start selling without a launch runway.",
	},
	intent.GoalSellProduct: {
		"ecommerce-simple": "Takes buyers straight from product page to checkout with no detours.",
		"tripwire-funnel":  "Converts browsers into buyers with a low-risk front-end offer.",
		"webinar-basic":    "Sells higher-priced offers by educating before the pitch.",
		"product-launch":   "Wraps your product in a launch sequence for bigger opening sales.",
	},
	intent.GoalMembership: {
		"membership-site": "Covers the full journey from sales page to member onboarding.",
		"webinar-basic":   "Use a webinar to pitch the membership to a warm audience.",
	},
	intent.GoalSummit: {
		"virtual-summit": "Built for multi-speaker events with registration and session hosting.",
		"webinar-basic":  "A single-session alternative if a full summit is more than you need.",
	},
}
