package form

// ContactSubmission is an immutable snapshot of the contact form.
// Phone and Budget are optional; the rest are required at submit time.
type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Budget  string
	Message string
}

// MissingRequired returns the required fields that are empty, in form order.
func (c ContactSubmission) MissingRequired() []Field {
	var missing []Field
	if c.Name == "" {
		missing = append(missing, FieldName)
	}
	if c.Email == "" {
		missing = append(missing, FieldEmail)
	}
	if c.Service == "" {
		missing = append(missing, FieldService)
	}
	if c.Message == "" {
		missing = append(missing, FieldMessage)
	}
	return missing
}

// NewsletterSubscription is an immutable snapshot of the newsletter form.
type NewsletterSubscription struct {
	Email string
}

// Option is a selectable value with a display label.
type Option struct {
	Value string
	Label string
}

// Services lists the accepted values of the contact form's service field.
var Services = []Option{
	{Value: "seo", Label: "SEO Services"},
	{Value: "meta", Label: "Meta Ads"},
	{Value: "social", Label: "Social Media Marketing"},
	{Value: "all", Label: "All Services"},
}

// Budgets lists the accepted values of the contact form's budget field.
var Budgets = []Option{
	{Value: "1k-3k", Label: "$1,000 - $3,000"},
	{Value: "3k-5k", Label: "$3,000 - $5,000"},
	{Value: "5k-10k", Label: "$5,000 - $10,000"},
	{Value: "10k+", Label: "$10,000+"},
}

// IsService reports whether v is one of Services.
func IsService(v string) bool { return hasOption(Services, v) }

// IsBudget reports whether v is one of Budgets.
func IsBudget(v string) bool { return hasOption(Budgets, v) }

// ServiceValues returns the raw values of Services.
func ServiceValues() []string { return optionValues(Services) }

// BudgetValues returns the raw values of Budgets.
func BudgetValues() []string { return optionValues(Budgets) }

func hasOption(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

func optionValues(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Value
	}
	return out
}
