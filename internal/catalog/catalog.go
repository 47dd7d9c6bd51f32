// Package catalog serves the studio's package offerings so the site
// renders prices from one source of truth. Fixed-price packages carry
// a kobo amount the client posts straight to checkout; custom work has
// no amount and goes through the contact flow instead.
package catalog

type PackageType string

const (
	TypeFixed  PackageType = "fixed"
	TypeCustom PackageType = "custom"
)

type Package struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Subtitle   string      `json:"subtitle"`
	AmountKobo int64       `json:"amount,omitempty"`
	PriceLabel string      `json:"price_label"`
	Type       PackageType `json:"type"`
	Popular    bool        `json:"popular,omitempty"`
	Features   []string    `json:"features"`
}

var packages = []Package{
	{
		ID:         "basic",
		Name:       "Basic",
		Subtitle:   "Static website",
		AmountKobo: 20_000_000, // ₦200,000
		PriceLabel: "₦200k",
		Type:       TypeFixed,
		Features: []string{
			"Single Page Design",
			"Mobile Responsive",
			"Contact Form",
			"Social Media Links",
			"SEO Optimized",
			"Fast Loading Speed",
			"1-Week Delivery",
		},
	},
	{
		ID:         "business",
		Name:       "Business",
		Subtitle:   "CMS & E-Commerce",
		AmountKobo: 60_000_000, // ₦600,000
		PriceLabel: "₦600k",
		Type:       TypeFixed,
		Popular:    true,
		Features: []string{
			"Multi-Page Website",
			"Content Management System",
			"E-Commerce Ready",
			"Payment Integration (Paystack)",
			"Admin Dashboard",
			"Email Notifications",
			"2-Week Delivery",
		},
	},
	{
		ID:         "custom",
		Name:       "Custom",
		Subtitle:   "SaaS, dApps & More",
		PriceLabel: "Let's discuss",
		Type:       TypeCustom,
		Features: []string{
			"Full-Stack Web Application",
			"Smart Contracts / Web3",
			"Custom API Development",
			"Database Architecture",
			"Authentication & Security",
			"Scalable Infrastructure",
			"Ongoing Support",
		},
	},
}

func Packages() []Package {
	return packages
}

// Find looks up a package by name. Checkout does not require a known
// package name; this exists for clients that want the canonical price.
func Find(name string) (Package, bool) {
	for _, p := range packages {
		if p.Name == name || p.ID == name {
			return p, true
		}
	}
	return Package{}, false
}
