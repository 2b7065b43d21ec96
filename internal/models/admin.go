package models

// Bank is an institution whose notification emails are parsed. The editor
// only needs the id and name to resolve bankId references for display.
type Bank struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code,omitempty"`
	Country   string `json:"country,omitempty"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Currency is a supported currency with its display settings.
type Currency struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol,omitempty"`
	DecimalPlaces int    `json:"decimalPlaces"`
}

// CurrencySynonym maps a spelling seen in emails to a canonical currency code.
type CurrencySynonym struct {
	ID           string `json:"id"`
	CurrencyCode string `json:"currencyCode"`
	Synonym      string `json:"synonym"`
}

// User is an administrative user of the product.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// MerchantDuplicate is a suspected duplicate merchant pair awaiting review.
type MerchantDuplicate struct {
	ID            string `json:"id" csv:"id"`
	CanonicalName string `json:"canonicalName" csv:"canonical_name"`
	DuplicateName string `json:"duplicateName" csv:"duplicate_name"`
	Occurrences   int    `json:"occurrences" csv:"occurrences"`
	Status        string `json:"status" csv:"status"`
}

// CategoryChangeEntry is one row of the category-change report: a transaction
// whose category was changed, by whom, and from/to what. The amount stays a
// string on the wire; amountutils renders it.
type CategoryChangeEntry struct {
	ID            string `json:"id" csv:"id"`
	TransactionID string `json:"transactionId" csv:"transaction_id"`
	Merchant      string `json:"merchant" csv:"merchant"`
	Amount        string `json:"amount" csv:"amount"`
	Currency      string `json:"currency" csv:"currency"`
	OldCategory   string `json:"oldCategory" csv:"old_category"`
	NewCategory   string `json:"newCategory" csv:"new_category"`
	ChangedBy     string `json:"changedBy" csv:"changed_by"`
	ChangedAt     string `json:"changedAt" csv:"changed_at"`
}
