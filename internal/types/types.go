package types

// Category labels a class of personally identifiable information.
type Category string

const (
	CategoryPhone         Category = "phone"
	CategoryEmail         Category = "email"
	CategoryIPv4          Category = "ipv4"
	CategoryIPv6          Category = "ipv6"
	CategoryName          Category = "name"
	CategoryStreetAddress Category = "street_address"
	CategoryCreditCard    Category = "credit_card"
	CategorySSN           Category = "ssn"
	CategoryHandle        Category = "handle"
)

// AllCategories returns every category in canonical order.
func AllCategories() []Category {
	return []Category{
		CategoryPhone,
		CategoryEmail,
		CategoryIPv4,
		CategoryIPv6,
		CategoryName,
		CategoryStreetAddress,
		CategoryCreditCard,
		CategorySSN,
		CategoryHandle,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Index returns the canonical position of c, or -1 when unknown.
func (c Category) Index() int {
	for i, known := range AllCategories() {
		if known == c {
			return i
		}
	}
	return -1
}

// Label returns a short human-readable label.
func (c Category) Label() string {
	switch c {
	case CategoryPhone:
		return "US phone number"
	case CategoryEmail:
		return "Email address"
	case CategoryIPv4:
		return "IPv4 address"
	case CategoryIPv6:
		return "IPv6 address"
	case CategoryName:
		return "Name"
	case CategoryStreetAddress:
		return "Street address"
	case CategoryCreditCard:
		return "Credit card number"
	case CategorySSN:
		return "Social security number"
	case CategoryHandle:
		return "Social handle"
	default:
		return string(c)
	}
}

// OutputFormat selects scan report rendering.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)
