package models

// AccountTemplate describes one account to provision when a user is approved.
type AccountTemplate struct {
	Type   string
	Name   string
	Frozen bool
}

var personalTemplate = []AccountTemplate{
	{Type: "current", Name: "Current Account"},
	{Type: "savings", Name: "Savings Account"},
	{Type: "credit_card", Name: "Gold Credit Card", Frozen: true},
	{Type: "retirement", Name: "Retirement Savings"},
}

var businessTemplate = []AccountTemplate{
	{Type: "business_current", Name: "Business Current"},
	{Type: "business_savings", Name: "Business Savings"},
	{Type: "treasury", Name: "Treasury Account"},
}

// DefaultAccountTemplate returns the fixed set of accounts a newly approved
// user receives, keyed by the user's category. Credit cards start frozen;
// everything else starts active.
func DefaultAccountTemplate(category string) []AccountTemplate {
	if category == CategoryBusiness {
		return businessTemplate
	}
	return personalTemplate
}
