package domain

// Page content served by the content API. The site's pages are one set of
// components over this data; copy variants are rows here, not forked files.

type SEOMeta struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
}

type HomeSection struct {
	ID      string `json:"id"`
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type GalleryItem struct {
	Title    string `json:"title"`
	Caption  string `json:"caption"`
	ImageURL string `json:"imageUrl"`
}

type ProcessStep struct {
	Step  int    `json:"step"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ConsultWidget backs the floating contact launcher; the client only ever
// opens ChatURL in a new tab.
type ConsultWidget struct {
	Label   string `json:"label"`
	ChatURL string `json:"chatUrl"`
}

type HomeContent struct {
	Variant  string        `json:"variant"`
	SEO      SEOMeta       `json:"seo"`
	Hero     HomeSection   `json:"hero"`
	Sections []HomeSection `json:"sections"`
	Gallery  []GalleryItem `json:"gallery"`
	Process  []ProcessStep `json:"process"`
	VideoURL string        `json:"videoUrl"`
	Consult  ConsultWidget `json:"consult"`
}

type FAQItem struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQCategory struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Items []FAQItem `json:"items"`
}

type FAQCatalog struct {
	Categories []FAQCategory `json:"categories"`
}

type ServicePackage struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Hours        int      `json:"hours"`
	Price        int      `json:"price"`
	PricePerHour int      `json:"pricePerHour"`
	Popular      bool     `json:"popular"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
}

type ServiceFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ServiceCatalog struct {
	Packages []ServicePackage `json:"packages"`
	Features []ServiceFeature `json:"features"`
	// CheckoutURL is the fixed third-party marketplace link; selecting a
	// package card never changes it.
	CheckoutURL string `json:"checkoutUrl"`
}

type RecruitmentContent struct {
	Title        string   `json:"title"`
	Intro        string   `json:"intro"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
	// ChatURL receives the composed application text; the form fields are
	// never transmitted to this server.
	ChatURL string `json:"chatUrl"`
}
