package dto

// CheckoutRequest represents the API request for starting a credit purchase
type CheckoutRequest struct {
	PackageID string `json:"packageId" binding:"required"`
}

// CheckoutResponse represents the API response with the hosted checkout URL
type CheckoutResponse struct {
	ProviderPaymentID string `json:"providerPaymentId"`
	URL               string `json:"url"`
}

// PackageResponse represents a purchasable credit package
type PackageResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PriceCents   int64  `json:"priceCents"`
	Credits      int64  `json:"credits"`
	BonusCredits int64  `json:"bonusCredits"`
}

// PackageListResponse represents the list of purchasable packages
type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
}
