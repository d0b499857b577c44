package translations

// Languages lists the two display languages supported by the storefront.
var Languages = []string{"uz", "ru"}

// Strings maps translation keys to display strings for one language.
type Strings map[string]string

// Bundle maps a language code to its strings. Both languages are expected to
// carry identical key sets; the service enforces this on save.
type Bundle map[string]Strings

// Defaults returns the built-in storefront copy.
func Defaults() Bundle {
	return Bundle{
		"uz": {
			"collection":   "ARSENAL",
			"aiAdvisor":    "AI EKSPERT",
			"contact":      "BOG'LANISH",
			"heroTitle":    "Haqiqiy Erkaklar Atirlari",
			"heroSub":      "Kuch, xarakter va uslub ifodasi. Faqat eng sara va original erkaklar parfyumeriyasi.",
			"explore":      "Arsenalni ko'rish",
			"aiGuide":      "AI Ekspert",
			"boutiqueColl": "Aslzodalar To'plami",
			"quote":        "Xarakter - bu siz tanlagan hid.",
			"orderNow":     "SO'ROV YUBORISH",
			"aiTitle":      "Scent Strategist",
			"aiDesc":       "Maqsadingizni ayting, biz sizga g'olibona hidni tanlab beramiz.",
			"aiPlaceholder": "Masalan: 'Muzokaralar uchun ishonchli va kuchli hid kerak...'",
			"discoverBtn":  "Strategiyani tanlang",
			"analyzing":    "Tahlil...",
			"recTitle":     "Sizning tanlovingiz",
			"tgAction":     "Telegram orqali buyurtma bering",
			"socialTitle":  "Jamiyatimiz",
			"socialDesc":   "Eksklyuziv takliflar va yangiliklar.",
			"tgBtn":        "Telegram",
			"igBtn":        "Instagram",
			"followIg":     "Obuna bo'ling",
			"happyUsers":   "3000+ janoblar tanlovi",
			"limitedOffer": "SHOHONA TAKLIF",
			"chatGreeting": "Assalomu alaykum. Men sizning shaxsiy parfyumeriya bo'yicha maslahatdoshingizman.",
			"chatError":    "Kechirasiz, aloqada xatolik yuz berdi.",
			"msgSuccess":   "Xabaringiz qabul qilindi. Tez orada bog'lanamiz.",
			"msgError":     "Xatolik yuz berdi. Iltimos qaytadan urinib ko'ring.",
		},
		"ru": {
			"collection":   "АРСЕНАЛ",
			"aiAdvisor":    "AI ЭКСПЕРТ",
			"contact":      "СВЯЗЬ",
			"heroTitle":    "Ароматы Настоящих Мужчин",
			"heroSub":      "Выражение силы, характера и стиля. Только лучшая и оригинальная мужская парфюмерия.",
			"explore":      "Смотреть арсенал",
			"aiGuide":      "AI Эксперт",
			"boutiqueColl": "Коллекция Джентльменов",
			"quote":        "Характер — это аромат, который вы выбираете.",
			"orderNow":     "ОТПРАВИТЬ ЗАПРОС",
			"aiTitle":      "Scent Strategist",
			"aiDesc":       "Назовите свою цель, и мы подберем для вас победный аромат.",
			"aiPlaceholder": "Например: 'Нужен уверенный и сильный аромат для переговоров...'",
			"discoverBtn":  "Выбрать стратегию",
			"analyzing":    "Анализ...",
			"recTitle":     "Ваш выбор",
			"tgAction":     "Заказать через Telegram",
			"socialTitle":  "Наше сообщество",
			"socialDesc":   "Эксклюзивные предложения и новости.",
			"tgBtn":        "Telegram",
			"igBtn":        "Instagram",
			"followIg":     "Подписаться",
			"happyUsers":   "3000+ выбор джентльменов",
			"limitedOffer": "КОРОЛЕВСКОЕ ПРЕДЛОЖЕНИЕ",
			"chatGreeting": "Здравствуйте. Я ваш персональный консультант по парфюмерии.",
			"chatError":    "Извините, произошла ошибка связи.",
			"msgSuccess":   "Сообщение принято. Мы скоро свяжемся с вами.",
			"msgError":     "Произошла ошибка. Пожалуйста, попробуйте еще раз.",
		},
	}
}

// Clone returns a deep copy so callers can mutate freely.
func (b Bundle) Clone() Bundle {
	out := make(Bundle, len(b))
	for lang, strs := range b {
		cp := make(Strings, len(strs))
		for k, v := range strs {
			cp[k] = v
		}
		out[lang] = cp
	}
	return out
}
