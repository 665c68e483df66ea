package rules

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

var (
	upiHintRe = regexp.MustCompile(`(?i)\bUPI[/\-]|/UPI/|VPA\b`)

	// VPA handles like zomato@ybl or hpcl001@okhdfcbank.
	vpaRe = regexp.MustCompile(`(?i)([A-Za-z0-9.\-]+)@([A-Za-z0-9]+)`)

	// Fallback: the numeric reference form UPI/036509813258/HOTEL RAJ.
	upiIDRe = regexp.MustCompile(`(?i)UPI/(\d{12,15})/([^/\s]+)`)
)

// upiMerchantMap resolves merchant hints inside UPI handles. Separate from
// the vendor map because handle prefixes are shorter and glued, so the keys
// skew toward brand stems.
var upiMerchantMap = map[string]Prediction{
	"ZOMATO": {"Dining", "FoodDelivery"},
	"SWIGGY": {"Dining", "FoodDelivery"},
	"DUNZO":  {"Dining", "FoodDelivery"},
	"EATFIT": {"Dining", "FoodDelivery"},
	"BOX8":   {"Dining", "FoodDelivery"},
	"FAASOS": {"Dining", "FoodDelivery"},

	"HOTEL RAJ":        {"Dining", "Restaurant"},
	"HOTEL RAYAT":      {"Dining", "Restaurant"},
	"HOTEL SAMMAN":     {"Dining", "Restaurant"},
	"GIRIDHAR VEG":     {"Dining", "Restaurant"},
	"SAGAR RESTAURANT": {"Dining", "Restaurant"},
	"KFC":              {"Dining", "Restaurant"},
	"MCDONALD":         {"Dining", "Restaurant"},
	"DOMINOS":          {"Dining", "Restaurant"},
	"PIZZA HUT":        {"Dining", "Restaurant"},
	"PIZZAHUT":         {"Dining", "Restaurant"},

	"CCD":           {"Dining", "Cafe"},
	"CAFECOFFEEDAY": {"Dining", "Cafe"},
	"PUNERI CHAI":   {"Dining", "Cafe"},

	"SHETKARI BHOJANALAY": {"Dining", "SnacksAndBeverages"},
	"SHREE SAINATH BHEL":  {"Dining", "SnacksAndBeverages"},
	"MEENA SNACKS":        {"Dining", "SnacksAndBeverages"},
	"DEEPAK SNACKS":       {"Dining", "SnacksAndBeverages"},
	"SAI FOODS":           {"Dining", "SnacksAndBeverages"},
	"ANUSHKA BHEL":        {"Dining", "SnacksAndBeverages"},
	"BALAJI FAST FOOD":    {"Dining", "SnacksAndBeverages"},
	"HARSH TEA":           {"Dining", "SnacksAndBeverages"},
	"SONAI DAVANGIRI":     {"Dining", "SnacksAndBeverages"},

	"DMART":         {"Groceries", "Supermarket"},
	"BIGBASKET":     {"Groceries", "OnlineGroceries"},
	"BBDAILY":       {"Groceries", "OnlineGroceries"},
	"BB-":           {"Groceries", "OnlineGroceries"},
	"JIOMART":       {"Groceries", "Supermarket"},
	"JIO MART":      {"Groceries", "Supermarket"},
	"ZEPT":          {"Groceries", "OnlineGroceries"},
	"ZEPTO":         {"Groceries", "OnlineGroceries"},
	"BLINKIT":       {"Groceries", "OnlineGroceries"},
	"NATURESBASKET": {"Groceries", "Supermarket"},
	"SPENCERS":      {"Groceries", "Supermarket"},
	"MOREMEGASTORE": {"Groceries", "Supermarket"},
	"STARQUICK":     {"Groceries", "Supermarket"},

	"GURUKRUPA SUPER MARKET": {"Groceries", "LocalShops"},
	"GURUKRUPA":              {"Groceries", "LocalShops"},
	"KATRAJ DAIRY":           {"Groceries", "LocalShops"},
	"TRUPTI":                 {"Groceries", "LocalShops"},
	"VISHAL VEGETABLES":      {"Groceries", "LocalShops"},
	"COSMOS":                 {"Groceries", "LocalShops"},
	"PJSB":                   {"Groceries", "LocalShops"},
	"SHRI AAIJI":             {"Groceries", "LocalShops"},

	"AMAZON":           {"Shopping", "Online"},
	"FLIPKART":         {"Shopping", "Online"},
	"AJIO":             {"Shopping", "Fashion"},
	"MYNTRA":           {"Shopping", "Fashion"},
	"TATACLIQ":         {"Shopping", "Online"},
	"TATANEU":          {"Shopping", "Online"},
	"NYKAA":            {"Shopping", "Beauty"},
	"MEESHO":           {"Shopping", "Online"},
	"SNAPDEAL":         {"Shopping", "Online"},
	"SHOPPERSSTOP":     {"Shopping", "Fashion"},
	"LIFESTYLE":        {"Shopping", "Fashion"},
	"MAXFASHION":       {"Shopping", "Fashion"},
	"CROMA":            {"Shopping", "Electronics"},
	"VIJAYSALES":       {"Shopping", "Electronics"},
	"RELIANCE DIGITAL": {"Shopping", "Electronics"},
	"REL DIGITAL":      {"Shopping", "Electronics"},
	"PANTALOONS":       {"Shopping", "Fashion"},

	"BOMBAY STATIONERS":     {"Shopping", "Stationery"},
	"IPRINT ENTERPRISES":    {"Shopping", "Stationery"},
	"RIBBONS AND BALLOONS":  {"Shopping", "Decorations"},
	"NEW MAYUR COLLECTION":  {"Shopping", "Fashion"},
	"SUYASH DRESSES":        {"Shopping", "Fashion"},
	"SHREE ENTERPRISES":     {"Shopping", "GeneralStore"},
	"VIDHATA XEROX":         {"Shopping", "Stationery"},
	"JEEVANDEEP STATIONERY": {"Shopping", "Stationery"},
	"PAVAN APPLE STORE":     {"Shopping", "Electronics"},

	"SHRUTI MEDICAL":      {"Shopping", "Pharmacy"},
	"DHARESHWAR MEDICAL":  {"Shopping", "Pharmacy"},
	"SHRIKRISHNA MEDICAL": {"Shopping", "Pharmacy"},

	"UBER":   {"Transport", "Cab"},
	"OLA":    {"Transport", "Cab"},
	"RAPIDO": {"Transport", "BikeTaxi"},
	"MERU":   {"Transport", "Cab"},
	"REDBUS": {"Transport", "PublicTransport"},
	"IRCTC":  {"Transport", "PublicTransport"},

	"HPCL":      {"Transport", "Fuel"},
	"BPCL":      {"Transport", "Fuel"},
	"IOCL":      {"Transport", "Fuel"},
	"INDIANOIL": {"Transport", "Fuel"},
	"BHARATPET": {"Transport", "Fuel"},
	"HINDPETRO": {"Transport", "Fuel"},

	"AIRTEL":     {"Utilities", "MobileRecharge"},
	"JIO":        {"Utilities", "MobileRecharge"},
	"VODAFONE":   {"Utilities", "MobileRecharge"},
	"VI-":        {"Utilities", "MobileRecharge"},
	"VI ":        {"Utilities", "MobileRecharge"},
	"BSNL":       {"Utilities", "MobileRecharge"},
	"SUN DIRECT": {"Utilities", "DTH"},
	"TATASKY":    {"Utilities", "DTH"},
	"D2H":        {"Utilities", "DTH"},
	"DISHTV":     {"Utilities", "DTH"},
	"HPGAS":      {"Utilities", "Gas"},
	"HP GAS":     {"Utilities", "Gas"},
	"BESCOM":     {"Utilities", "Electricity"},
	"BSES":       {"Utilities", "Electricity"},
	"TNEB":       {"Utilities", "Electricity"},
	"MSEDCL":     {"Utilities", "Electricity"},
	"TORRENTPOWER": {"Utilities", "Electricity"},
	"BBPS":       {"Utilities", "BillPayment"},

	"NETFLIX":     {"Entertainment", "Streaming"},
	"SPOTIFY":     {"Entertainment", "Music"},
	"HOTSTAR":     {"Entertainment", "Streaming"},
	"DISNEY":      {"Entertainment", "Streaming"},
	"SONYLIV":     {"Entertainment", "Streaming"},
	"ZEE5":        {"Entertainment", "Streaming"},
	"PRIME VIDEO": {"Entertainment", "Streaming"},

	"PAYTM":            {"Transfers", "ToBusiness"},
	"PHONEPE":          {"Transfers", "ToBusiness"},
	"GOOGLEPAY":        {"Transfers", "ToBusiness"},
	"GPAY":             {"Transfers", "ToBusiness"},
	"AMAZONPAY":        {"Transfers", "ToBusiness"},
	"MOBIKWIK":         {"Transfers", "ToBusiness"},
	"FREECHARGE":       {"Transfers", "ToBusiness"},
	"RAZORPAY":         {"Transfers", "ToBusiness"},
	"BILLDESK":         {"Transfers", "ToBusiness"},
	"CASHFREE":         {"Transfers", "ToBusiness"},
	"BHARATPEMERCHANT": {"Transfers", "ToBusiness"},
	"BHARATPE":         {"Transfers", "ToBusiness"},

	"MAKEMYTRIP": {"Travel", "FlightTickets"},
	"EASEMYTRIP": {"Travel", "FlightTickets"},
	"YATRA":      {"Travel", "FlightTickets"},
	"CLEARTRIP":  {"Travel", "FlightTickets"},
	"GOIBIBO":    {"Travel", "Accommodation"},
	"OYO":        {"Travel", "Accommodation"},

	"DREAM11":     {"Leisure", "Gaming"},
	"MPL":         {"Leisure", "Gaming"},
	"RUMMYCIRCLE": {"Leisure", "Gaming"},
	"GAMING":      {"Leisure", "Gaming"},

	"SIMACES LEARNING": {"Education", "Courses"},

	"LIC":          {"Insurance", "Life"},
	"HDFCLIFE":     {"Insurance", "Life"},
	"SBILIFE":      {"Insurance", "Life"},
	"ICICIPRULIFE": {"Insurance", "Life"},

	"ZERODHA":   {"Investment", "Stocks"},
	"UPSTOX":    {"Investment", "Stocks"},
	"GROWW":     {"Investment", "Stocks"},
	"ANGEL ONE": {"Investment", "Stocks"},

	"RAJ PAN SHOP":   {"Miscellaneous", "PanShop"},
	"MUTAI PAN SHOP": {"Miscellaneous", "PanShop"},
}

var upiKeys = sortedKeysByLength(upiMerchantMap)

// indianNameParts flags tokens common in Indian person names. A handle prefix
// containing one of these is almost always a person, not a merchant.
var indianNameParts = map[string]bool{}

func init() {
	parts := []string{
		"KUMAR", "RAJ", "SINGH", "SHARMA", "VERMA", "GUPTA", "PATEL",
		"ANIL", "SUNIL", "VINOD", "RAJESH", "RAMESH", "MAHESH", "DINESH",
		"PRIYA", "NEHA", "POOJA", "ANJALI", "KAVITA", "SUNITA",
		"MR", "MRS", "MS", "DR", "MISS", "M/S",
		"SAI", "GANESH", "SHIVA", "KRISHNA", "RAMA",
		"PRAKASH", "ASHOK", "VITTHAL", "SUBHASH", "MAHADEO",
		"BHARGAV", "MANDAR", "CHAITALI", "BIPIN", "ASHISH",
		"RUPESH", "SAJAL", "RAVI", "DEOCHAND", "VINAYAK",
		"PRAJAKTA", "KAMALESH", "HRUSHIKESH", "CHHAYA",
		"PRAMOD", "OMPRAKASH", "SANDEEP", "KAVIRATNA", "MALLESH",
		"PRABHAKAR", "SADHU", "MOTALIB", "VAGAD", "BANGARATAL",
		"WAGHMARE", "GAGANDEEP", "MOHD", "MOHAMMAD", "AMJAD",
		"BABLU", "GAURISHANKAR", "BHAVESH", "CHUNNILAL",
		"VIJAYKUMAR", "DAGADU", "NALAWADE", "AVINASH", "GAUTAM",
		"DNYANESHWAR", "KONDIBA", "MARGALE", "MINA", "SURESH",
		"AKSHAY", "BABANRAO", "PATHARE", "YASHASHREE", "JAYANT",
		"SADAVARTE", "ANAND", "HANUMANT", "JAGTAP", "KIRATAKARVE",
		"MANOHAR", "BUDHKAR", "SADHANA", "REKHA", "SURYAKANT",
		"DHOTRE", "SHITOLE", "KALURAM", "PAWAR", "MANOJ",
		"JAGADE", "NATHURAM", "WADEKAR", "DILIP", "MUDHOLKAR",
		"INAMDAR", "SUVARNA", "PASALKAR", "RAJENDRA", "DINKAR",
		"DAHATONDE", "SALUNKE", "MANDA", "MEHTA", "NATH",
		"KASHYA", "CHOUDHARY", "SUPEKAR", "UTTAM", "VIKAS",
		"PAKHARE", "CHANDRAKANT", "GAWDEY", "RAO",
		"SHETE", "POPAT", "KADAM", "KALE", "SHIVAJI",
		"SAPA", "HARIPPYA", "RAJURKAR", "VASANT", "SWATI",
		"MUDSHINGIKAR", "SAKUNDE", "PUJARI", "WAGH", "KAMBLE",
		"ATUL", "YUVARAJ", "SHINDE", "DHAKANE",
		"CHAVAN", "SANJEEVKUMAR", "ANAPPA",
	}
	for _, p := range parts {
		indianNameParts[p] = true
	}
}

// looksLikePerson decides whether a UPI handle prefix names a person rather
// than a merchant.
func looksLikePerson(prefix string) bool {
	p := strings.ToUpper(prefix)

	for _, k := range upiKeys {
		if strings.Contains(p, k) {
			return false
		}
	}

	for _, title := range []string{"MR ", "MRS ", "MS ", "DR ", "MISS "} {
		if strings.Contains(p, title) {
			return true
		}
	}

	words := strings.Fields(p)
	for _, w := range words {
		if indianNameParts[w] {
			return true
		}
	}
	for name := range indianNameParts {
		if strings.Contains(p, name) {
			return true
		}
	}

	// Multiple words and no digits reads like a first/last name.
	if len(words) >= 2 && !strings.ContainsFunc(p, unicode.IsDigit) {
		return true
	}
	if len(words) >= 2 && len(words) <= 4 && strings.Contains(p, " ") {
		return true
	}

	return false
}

// classifyUPI resolves UPI narrations from the VPA handle or the numeric
// reference form. The second return is false when the text carries no UPI
// hint at all.
func classifyUPI(textNorm string) (model.ClassificationResult, bool) {
	if !upiHintRe.MatchString(textNorm) {
		return model.ClassificationResult{}, false
	}

	meta := map[string]any{"matched_rule": "upi"}

	if m := vpaRe.FindStringSubmatch(textNorm); m != nil {
		prefix := strings.ToUpper(m[1])
		domain := strings.ToUpper(m[2])
		meta["handle"] = prefix + "@" + domain
		meta["handle_prefix"] = prefix
		meta["handle_domain"] = domain

		for _, key := range upiKeys {
			if strings.Contains(prefix, key) {
				p := upiMerchantMap[key]
				meta["matched_merchant_key"] = key
				return model.Resolved(p.Category, p.Subcategory, titleCase(prefix), 0.90, meta), true
			}
		}

		if looksLikePerson(prefix) {
			meta["reason"] = "upi_person_detected"
			return model.Resolved("Transfers", "ToPerson", titleCase(prefix), 0.80, meta), true
		}

		meta["reason"] = "upi_business_generic"
		return model.Resolved("Transfers", "ToBusiness", titleCase(prefix), 0.70, meta), true
	}

	if m := upiIDRe.FindStringSubmatch(textNorm); m != nil {
		hint := strings.ToUpper(m[2])
		meta["transaction_id"] = m[1]
		meta["merchant_hint"] = hint

		for _, key := range upiKeys {
			if strings.Contains(hint, key) {
				p := upiMerchantMap[key]
				meta["matched_merchant_key"] = key
				return model.Resolved(p.Category, p.Subcategory, titleCase(hint), 0.85, meta), true
			}
		}

		if looksLikePerson(hint) {
			meta["reason"] = "upi_person_from_id"
			return model.Resolved("Transfers", "ToPerson", titleCase(hint), 0.75, meta), true
		}

		meta["reason"] = "upi_business_from_id"
		return model.Resolved("Transfers", "ToBusiness", titleCase(hint), 0.65, meta), true
	}

	result := model.PendingResult("upi_detected_but_no_details", 0.30, meta)
	result.Subcategory = "UPI"
	return result, true
}
