package contact

// Info is the storefront's fixed contact record.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Info struct {
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
	Telegram  string `json:"telegram"`
}

// Defaults returns the built-in contact record used when nothing is persisted.
func Defaults() Info {
	return Info{
		Phone:     "+998 99 690 95 75",
		Instagram: "https://www.instagram.com/premium_parfumes_org",
		Telegram:  "https://t.me/PremiumParfumes",
	}
}
