package catalog

// templates is the full catalog in insertion order. Ranking relies on this
// order for tie-breaking, so entries must not be reordered casually.
var templates = []Template{
	{
		ID:                 "lead-magnet-basic",
		Name:               "Classic Lead Magnet",
		Description:        "A simple opt-in funnel that trades a free resource for an email address.",
		Category:           CategoryLeadGen,
		Complexity:         ComplexitySimple,
		ConversionRate:     45,
		EstimatedSetupTime: "30 minutes",
		Tags:               []string{"lead-magnet", "email", "opt-in", "beginner"},
		SuggestedFor: []string{
			"Growing an email list from scratch",
			"Giving away a checklist, PDF, or template",
			"Validating interest in a new topic",
		},
		Steps: []Step{
			{Name: "Opt-In Page", Purpose: "Pitch the free resource and collect the email address"},
			{Name: "Thank You Page", Purpose: "Confirm the signup and set expectations"},
			{Name: "Resource Delivery Page", Purpose: "Host the download and a soft next-step offer"},
		},
	},
	{
		ID:                 "lead-magnet-quiz",
		Name:               "Quiz Lead Magnet",
		Description:        "An interactive quiz funnel that segments subscribers by their answers.",
		Category:           CategoryLeadGen,
		Complexity:         ComplexityMedium,
		ConversionRate:     50,
		EstimatedSetupTime: "60 minutes",
		Tags:               []string{"quiz", "interactive", "segmentation", "engagement"},
		SuggestedFor: []string{
			"Segmenting leads by interest or skill level",
			"Boosting engagement from social traffic",
			"Personalizing follow-up email sequences",
		},
		Steps: []Step{
			{Name: "Quiz Landing Page", Purpose: "Hook visitors with the quiz promise"},
			{Name: "Quiz Questions", Purpose: "Collect segmentation answers"},
			{Name: "Results Opt-In Page", Purpose: "Gate the personalized result behind an email"},
			{Name: "Results Page", Purpose: "Deliver the result and a tailored offer"},
		},
	},
	{
		ID:                 "webinar-basic",
		Name:               "Webinar Funnel",
		Description:        "A registration-to-replay webinar flow built for selling high-ticket offers.",
		Category:           CategoryWebinar,
		Complexity:         ComplexityMedium,
		ConversionRate:     40,
		EstimatedSetupTime: "2 hours",
		Tags:               []string{"webinar", "registration", "presentation", "high-ticket"},
		SuggestedFor: []string{
			"Selling courses or coaching over $500",
			"Building authority with a live presentation",
			"Warming up a cold audience before an offer",
		},
		Steps: []Step{
			{Name: "Registration Page", Purpose: "Sell the webinar topic and collect signups"},
			{Name: "Confirmation Page", Purpose: "Confirm the seat and push calendar adds"},
			{Name: "Live Room Page", Purpose: "Host the live or automated presentation"},
			{Name: "Replay Page", Purpose: "Catch registrants who missed the live session"},
			{Name: "Offer Page", Purpose: "Present the pitch made during the webinar"},
		},
	},
	{
		ID:                 "product-launch",
		Name:               "Product Launch Sequence",
		Description:        "A pre-launch waitlist and open-cart sequence for building anticipation.",
		Category:           CategoryProductLaunch,
		Complexity:         ComplexityAdvanced,
		ConversionRate:     35,
		EstimatedSetupTime: "3 hours",
		Tags:               []string{"launch", "waitlist", "anticipation", "email"},
		SuggestedFor: []string{
			"Launching a new product to an existing audience",
			"Building a waitlist before opening the cart",
			"Creating urgency with a limited launch window",
		},
		Steps: []Step{
			{Name: "Coming Soon Page", Purpose: "Tease the launch and capture early interest"},
			{Name: "Waitlist Opt-In Page", Purpose: "Collect waitlist signups"},
			{Name: "Launch Announcement Page", Purpose: "Open the cart to the waitlist"},
			{Name: "Sales Page", Purpose: "Make the full case for the product"},
			{Name: "Checkout Page", Purpose: "Take the order"},
		},
	},
	{
		ID:                 "ecommerce-simple",
		Name:               "Simple Product Checkout",
		Description:        "A direct product-to-checkout funnel for selling a single item.",
		Category:           CategoryEcommerce,
		Complexity:         ComplexitySimple,
		ConversionRate:     30,
		EstimatedSetupTime: "45 minutes",
		Tags:               []string{"store", "checkout", "product", "upsell"},
		SuggestedFor: []string{
			"Selling a single physical or digital product",
			"Testing demand before building a full store",
			"Running paid traffic straight to an offer",
		},
		Steps: []Step{
			{Name: "Product Page", Purpose: "Present the product and its benefits"},
			{Name: "Checkout Page", Purpose: "Collect payment"},
			{Name: "Order Confirmation Page", Purpose: "Confirm the purchase and deliver next steps"},
		},
	},
	{
		ID:                 "tripwire-funnel",
		Name:               "Tripwire Offer",
		Description:        "A low-ticket impulse offer that converts subscribers into buyers fast.",
		Category:           CategoryEcommerce,
		Complexity:         ComplexitySimple,
		ConversionRate:     38,
		EstimatedSetupTime: "40 minutes",
		Tags:               []string{"tripwire", "low-ticket", "impulse", "upsell"},
		SuggestedFor: []string{
			"Turning new subscribers into first-time buyers",
			"Offsetting ad spend with a cheap front-end offer",
			"Leading into a higher-priced core offer",
		},
		Steps: []Step{
			{Name: "Offer Page", Purpose: "Present the irresistible low-ticket deal"},
			{Name: "Checkout Page", Purpose: "Take the impulse purchase"},
			{Name: "One-Click Upsell Page", Purpose: "Offer a complementary add-on"},
			{Name: "Confirmation Page", Purpose: "Confirm the order"},
		},
	},
	{
		ID:                 "membership-site",
		Name:               "Membership Program",
		Description:        "A recurring-subscription funnel with onboarding for a members-only area.",
		Category:           CategoryMembership,
		Complexity:         ComplexityAdvanced,
		ConversionRate:     25,
		EstimatedSetupTime: "4 hours",
		Tags:               []string{"membership", "subscription", "recurring", "community"},
		SuggestedFor: []string{
			"Building recurring revenue from a community",
			"Packaging ongoing training or coaching",
			"Offering a free trial into a paid tier",
		},
		Steps: []Step{
			{Name: "Sales Page", Purpose: "Sell the ongoing value of membership"},
			{Name: "Pricing Page", Purpose: "Present tiers and trial options"},
			{Name: "Checkout Page", Purpose: "Start the subscription"},
			{Name: "Member Onboarding Page", Purpose: "Orient new members"},
			{Name: "Member Home Page", Purpose: "Anchor the members-only experience"},
		},
	},
	{
		ID:                 "virtual-summit",
		Name:               "Virtual Summit",
		Description:        "A multi-speaker online event funnel that builds a list at scale.",
		Category:           CategorySummit,
		Complexity:         ComplexityAdvanced,
		ConversionRate:     30,
		EstimatedSetupTime: "6 hours",
		Tags:               []string{"summit", "event", "speakers", "email"},
		SuggestedFor: []string{
			"Building a large email list through speaker audiences",
			"Positioning yourself at the center of a niche",
			"Monetizing with an all-access pass",
		},
		Steps: []Step{
			{Name: "Summit Registration Page", Purpose: "Sell the event and collect registrations"},
			{Name: "Speaker Schedule Page", Purpose: "Showcase sessions and speakers"},
			{Name: "Session Hub Page", Purpose: "Host the daily session streams"},
			{Name: "All-Access Pass Offer Page", Purpose: "Sell lifetime access to recordings"},
			{Name: "Thank You Page", Purpose: "Confirm registration and encourage sharing"},
		},
	},
}

// All returns the full catalog in insertion order. The returned slice is
// shared; callers must not modify it.
func All() []Template {
	return templates
}
