package dto

// BalanceResponse represents the API response for a user's credit balance
type BalanceResponse struct {
	UserID  uint64 `json:"userId"`
	Credits int64  `json:"credits"`
}

// CheckInResponse represents the API response for a successful daily check-in
type CheckInResponse struct {
	CreditsEarned int64  `json:"creditsEarned"`
	NewBalance    int64  `json:"newBalance"`
	NextAvailable string `json:"nextAvailable"`
}

// LedgerEntryResponse represents one ledger entry in the history listing
type LedgerEntryResponse struct {
	ID            uint64 `json:"id"`
	Amount        int64  `json:"amount"`
	Type          string `json:"type"`
	Source        string `json:"source"`
	RelatedID     string `json:"relatedId,omitempty"`
	ResultBalance int64  `json:"resultBalance"`
	CreatedAt     string `json:"createdAt"`
}

// HistoryResponse represents a page of the user's credit history
type HistoryResponse struct {
	UserID  uint64                `json:"userId"`
	Entries []LedgerEntryResponse `json:"entries"`
}

// RegisterRequest represents the API request for onboarding a user
type RegisterRequest struct {
	UserID       uint64 `json:"userId" binding:"required"`
	ReferralCode string `json:"referralCode"`
}

// RegisterResponse represents the API response after onboarding
type RegisterResponse struct {
	UserID       uint64 `json:"userId"`
	Credits      int64  `json:"credits"`
	ReferralCode string `json:"referralCode"`
}

// AdminCreditRequest represents the admin award/deduct request body
type AdminCreditRequest struct {
	UserID uint64 `json:"userId" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
	Reason string `json:"reason"`
}

// AdminCreditResponse represents the admin award/deduct response
type AdminCreditResponse struct {
	UserID     uint64 `json:"userId"`
	NewBalance int64  `json:"newBalance"`
}
