package entity

// CreditPackage is a purchasable bundle of credits
type CreditPackage struct {
	ID           string // Stable package identifier (e.g. "starter")
	Name         string // Display name
	PriceCents   int64  // Charge amount in cents
	Credits      int64  // Base credits in the bundle
	BonusCredits int64  // Extra credits bundled on top
	Active       bool   // Inactive packages are hidden from the catalogue
}
