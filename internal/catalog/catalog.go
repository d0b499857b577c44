package catalog

// Perfume represents a single catalog entry. JSON tags follow the camelCase
// convention used across the API.
type Perfume struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Notes       []string `json:"notes"`
	Category    string   `json:"category"`
	Price       *int     `json:"price,omitempty"`
	OldPrice    *int     `json:"oldPrice,omitempty"`
}

// AllowedCategories contains the supported perfume categories used across the app.
var AllowedCategories = []string{
	"Floral",
	"Woody",
	"Oriental",
	"Fresh",
	"Citrus",
}

// Defaults returns the built-in seed catalog used whenever no persisted
// catalog is available. Descriptions carry both display languages inline,
// matching the storefront copy.
func Defaults() []Perfume {
	return []Perfume{
		{
			ID:          "aventus",
			Name:        "Aventus",
			Brand:       "CREED",
			Description: "Kuch va g'alaba ramzi. Qora smorodina, italyan bergamoti va eman moxi uyg'unligi. / Символ силы и успеха. Гармония черной смородины, итальянского бергамота и дубового мха.",
			Image:       "https://images.unsplash.com/photo-1557170334-a9632e77c6e4?auto=format&fit=crop&q=80&w=800",
			Notes:       []string{"Pineapple", "Birch", "Musk", "Bergamot"},
			Category:    "Woody",
		},
		{
			ID:          "sauvage",
			Name:        "Sauvage Elixir",
			Brand:       "DIOR",
			Description: "Yovvoyi tabiat va aslzodalik chorrahasi. Qalampir va Kalabriya bergamotining o'tkir nafasi. / Перекресток дикой природы и благородства. Острый вдох перца и калабрийского бергамота.",
			Image:       "https://images.unsplash.com/photo-1615332159800-479532587063?auto=format&fit=crop&q=80&w=800",
			Notes:       []string{"Sichuan Pepper", "Bergamot", "Ambrosan"},
			Category:    "Fresh",
		},
		{
			ID:          "ombreleather",
			Name:        "Ombre Leather",
			Brand:       "TOM FORD",
			Description: "Ochiq cho'l va teri hidi. Erkinlik va qat'iyatlik ifodasi. / Запах открытой пустыни и кожи. Выражение свободы и решительности.",
			Image:       "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?auto=format&fit=crop&q=80&w=800",
			Notes:       []string{"Leather", "Jasmine", "Amber", "Patchouli"},
			Category:    "Woody",
		},
		{
			ID:          "blue-chanel",
			Name:        "Bleu de Chanel",
			Brand:       "CHANEL",
			Description: "Zamonaviy erkak uchun klassik tanlov. Tinchlik va ishonch. / Классический выбор для современного мужчины. Спокойствие и уверенность.",
			Image:       "https://images.unsplash.com/photo-1541643600914-78b084683601?auto=format&fit=crop&q=80&w=800",
			Notes:       []string{"Grapefruit", "Incense", "Ginger", "Cedar"},
			Category:    "Citrus",
		},
		{
			ID:          "strongerwithyou",
			Name:        "Stronger With You",
			Brand:       "ARMANI",
			Description: "Zamonaviy energiya va shahvoniy iliqlik. Kardamon va adaçayı notalari. / Современная энергия и чувственное тепло. Ноты кардамона и шалфея.",
			Image:       "https://images.unsplash.com/photo-1594035910387-fea47794261f?auto=format&fit=crop&q=80&w=1200",
			Notes:       []string{"Cardamom", "Pink Pepper", "Vanilla", "Chestnut"},
			Category:    "Oriental",
		},
		{
			ID:          "herod",
			Name:        "Herod",
			Brand:       "PARFUMS DE MARLY",
			Description: "Tutunli tamaki va vanilning shohona uyg'unligi. / Королевское сочетание дымного табака и ванили.",
			Image:       "https://images.unsplash.com/photo-1583445013765-46c20c4a6772?auto=format&fit=crop&q=80&w=1200",
			Notes:       []string{"Tobacco", "Vanilla", "Cinnamon", "Incense"},
			Category:    "Woody",
		},
	}
}
