// Package content holds the site copy as data. The client renders one set of
// page components over this catalog; campaign variants are entries here, not
// forked page files.
package content

import "boost_site/internal/domain"

const (
	DefaultVariant = "default"
	ClassicVariant = "classic"

	// External collaborators. The server never calls these; the client opens
	// them in a new tab.
	consultChatURL = "https://open.kakao.com/o/sBoostTeam"
	recruitChatURL = "https://open.kakao.com/o/gBoostCrew"
	checkoutURL    = "https://www.itemmania.com/shop/boost-team"
)

type Catalog struct {
	Home        map[string]domain.HomeContent
	FAQ         domain.FAQCatalog
	Services    domain.ServiceCatalog
	Recruitment domain.RecruitmentContent
}

func Default() Catalog {
	return Catalog{
		Home:        homeVariants(),
		FAQ:         faqCatalog(),
		Services:    serviceCatalog(),
		Recruitment: recruitment(),
	}
}

func homeVariants() map[string]domain.HomeContent {
	gallery := []domain.GalleryItem{
		{Title: "Boss raid clear", Caption: "Order-tier boss cleared during a 100-hour package", ImageURL: "/images/gallery/raid.jpg"},
		{Title: "Level 52 milestone", Caption: "Reached in 9 days on a short-term package", ImageURL: "/images/gallery/level52.jpg"},
		{Title: "Live progress stream", Caption: "Every session is broadcast for the account owner", ImageURL: "/images/gallery/stream.jpg"},
	}
	process := []domain.ProcessStep{
		{Step: 1, Title: "Consultation", Body: "Tell us your character, goal and schedule over chat."},
		{Step: 2, Title: "Contract", Body: "We agree hours, price and safety rules before touching the account."},
		{Step: 3, Title: "Boosting", Body: "A dedicated pilot plays your schedule with live progress reports."},
		{Step: 4, Title: "Handback", Body: "Account returned with a session log and a password-change reminder."},
	}
	consult := domain.ConsultWidget{Label: "Chat with us", ChatURL: consultChatURL}
	video := "https://www.youtube.com/embed/boost-team-live"

	return map[string]domain.HomeContent{
		DefaultVariant: {
			Variant: DefaultVariant,
			SEO: domain.SEOMeta{
				Title:       "Boost Team | Premium account leveling, done by hand",
				Description: "Hand-played account leveling with live progress reports, strict account security and 24-hour operation.",
			},
			Hero: domain.HomeSection{ID: "hero", Heading: "Premium leveling, played by professionals",
				Body: "Every hour is hand-played by a vetted pilot. No bots, no macros, no shared credentials."},
			Sections: []domain.HomeSection{
				{ID: "safety", Heading: "Your account, protected", Body: "Two-factor setup, dedicated IP per client and a password-change handback routine."},
				{ID: "reporting", Heading: "Live reporting", Body: "Watch the session stream or get chat updates at the cadence you choose."},
				{ID: "guarantee", Heading: "Triple compensation", Body: "If an incident is our fault, we compensate three times the package price."},
			},
			Gallery: gallery, Process: process, VideoURL: video, Consult: consult,
		},
		ClassicVariant: {
			Variant: ClassicVariant,
			SEO: domain.SEOMeta{
				Title:       "Boost Team | Lineage Classic leveling, dungeon runs and hunting packages",
				Description: "Lineage Classic leveling service: hourly hunting, dungeon packages and long-term growth plans. 100% hand-played, live-streamed, triple compensation on incidents.",
				Keywords: []string{
					"lineage classic boosting", "lineage leveling service", "lineage dungeon package",
					"lineage classic pilot", "account leveling price", "lineage hunting hours",
				},
			},
			Hero: domain.HomeSection{ID: "hero", Heading: "Lineage Classic leveling by the Giran crew",
				Body: "From 11-hour hunts to 240-hour VIP plans, our Lineage Classic pilots grow your character while you sleep."},
			Sections: []domain.HomeSection{
				{ID: "classic", Heading: "Built for Lineage Classic", Body: "Pilots with years of Classic experience: efficient hunting routes, dungeon rotations and spec-up guidance."},
				{ID: "safety", Heading: "Account safety first", Body: "Two-factor setup on day one and a clean handback with password-change guidance."},
				{ID: "live", Heading: "24-hour live broadcast", Body: "Every working session is streamed, so you can verify hand-play at any hour."},
			},
			Gallery: gallery, Process: process, VideoURL: video, Consult: consult,
		},
	}
}

func faqCatalog() domain.FAQCatalog {
	return domain.FAQCatalog{Categories: []domain.FAQCategory{
		{ID: "payment", Label: "Payment", Items: []domain.FAQItem{
			{ID: 1, Question: "How do I pay?", Answer: "After the chat consultation we send a payment link; work starts once the deposit clears."},
			{ID: 2, Question: "Which payment methods are accepted?", Answer: "Bank transfer and the marketplace checkout. We never ask for card details over chat."},
			{ID: 3, Question: "How is the price set?", Answer: "By package hours. Longer packages have a lower hourly rate; see the pricing page."},
			{ID: 4, Question: "Can extra costs come up?", Answer: "Only if you extend hours or add services mid-contract, and always agreed in chat first."},
		}},
		{ID: "account", Label: "Account", Items: []domain.FAQItem{
			{ID: 5, Question: "Is my account information safe?", Answer: "Credentials are held by one dedicated pilot, never shared, and wiped after handback."},
			{ID: 6, Question: "Can I log in while work is in progress?", Answer: "Please coordinate in chat first; a surprise login mid-session can trip the game's duplicate-login checks."},
			{ID: 7, Question: "How do I follow progress?", Answer: "Through the live stream and scheduled chat reports with screenshots."},
			{ID: 8, Question: "What if the account gets suspended?", Answer: "If the suspension traces to our work, the triple-compensation rule applies."},
		}},
		{ID: "refund", Label: "Refund", Items: []domain.FAQItem{
			{ID: 9, Question: "What is the refund policy?", Answer: "Unused hours are refundable at the contracted hourly rate."},
			{ID: 10, Question: "When is a refund paid out?", Answer: "Within three business days of the cancellation being agreed in chat."},
			{ID: 11, Question: "Are partial refunds possible?", Answer: "Yes; completed hours are billed, the remainder is returned."},
			{ID: 12, Question: "Is anything non-refundable?", Answer: "Hours already played and any add-ons consumed during them."},
		}},
	}}
}

func serviceCatalog() domain.ServiceCatalog {
	return domain.ServiceCatalog{
		Packages: []domain.ServicePackage{
			{ID: 1, Name: "Starter", Hours: 10, Price: 160000, PricePerHour: 16000,
				Description: "An entry package to experience the crew's quality.",
				Features:    []string{"Live progress reports", "Basic security setup", "Chat support"}},
			{ID: 2, Name: "Value", Hours: 33, Price: 495000, PricePerHour: 15000, Popular: true,
				Description: "The most popular mid-term growth package.",
				Features:    []string{"Live progress reports", "Two-factor security", "Chat support", "Mid-contract report", "Priority pilot assignment"}},
			{ID: 3, Name: "Long-term", Hours: 100, Price: 1400000, PricePerHour: 14000,
				Description: "Optimized for sustained mid-to-long-term growth.",
				Features:    []string{"Live progress reports", "Two-factor security", "24-hour monitoring", "Detailed session reports", "Priority pilot assignment", "Spec-up guide"}},
			{ID: 4, Name: "VIP Season", Hours: 240, Price: 3120000, PricePerHour: 13000,
				Description: "Top-tier dedicated management season pass.",
				Features:    []string{"Live progress reports", "Two-factor security", "24-hour monitoring", "Detailed session reports", "Dedicated top-grade pilot", "Emergency response", "Aftercare support", "1:1 spec-up consulting"}},
		},
		Features: []domain.ServiceFeature{
			{Title: "24-hour operation", Description: "Consultation any time; work runs around the clock."},
			{Title: "Fast start", Description: "Work can begin immediately after the contract."},
			{Title: "Expert pilots", Description: "Handled by pilots with deep game experience."},
		},
		CheckoutURL: checkoutURL,
	}
}

func recruitment() domain.RecruitmentContent {
	return domain.RecruitmentContent{
		Title: "Pilots wanted",
		Intro: "We hire experienced players as boosting pilots. Applications go through chat; nothing you type on the form is sent to our servers.",
		Requirements: []string{
			"Deep experience with the game's endgame content",
			"Six or more available hours per day",
			"A stable connection and a dedicated play environment",
		},
		Benefits: []string{
			"Per-hour pay with volume bonuses",
			"Flexible scheduling",
			"Long-term contracts for reliable pilots",
		},
		ChatURL: recruitChatURL,
	}
}
