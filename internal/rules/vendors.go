package rules

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Prediction is a category/subcategory pair from a lookup table.
type Prediction struct {
	Category    string
	Subcategory string
}

// VendorCategoryMap maps known merchant strings, as they appear in narrations
// after normalization, to their category. Keys are matched as substrings with
// longer keys tried first.
var VendorCategoryMap = map[string]Prediction{
	// Food delivery
	"ZOMATO": {"Dining", "FoodDelivery"},
	"SWIGGY": {"Dining", "FoodDelivery"},
	"DUNZO":  {"Dining", "FoodDelivery"},
	"EATFIT": {"Dining", "FoodDelivery"},
	"BOX8":   {"Dining", "FoodDelivery"},
	"FAASOS": {"Dining", "FoodDelivery"},

	// Restaurants
	"HOTEL RAJ":              {"Dining", "Restaurant"},
	"HOTEL RAYAT":            {"Dining", "Restaurant"},
	"MSW(HOTEL RAJ":          {"Dining", "Restaurant"},
	"GIRIJA CATERERS":        {"Dining", "Restaurant"},
	"SAGAR RESTAURANT":       {"Dining", "Restaurant"},
	"SONA GARDEN RESTAURANT": {"Dining", "Restaurant"},
	"DHARESHWAR RESTAURANT":  {"Dining", "Restaurant"},
	"HOTEL JAGDAMB":          {"Dining", "Restaurant"},
	"MAULI DHABA":            {"Dining", "Restaurant"},
	"SHETKARI BHOJANALAY":    {"Dining", "Restaurant"},
	"HOTEL SAMMAN":           {"Dining", "Restaurant"},
	"GIRIDHAR VEG RESTURANT": {"Dining", "Restaurant"},
	"KFC":                    {"Dining", "Restaurant"},
	"MCDONALD":               {"Dining", "Restaurant"},
	"DOMINOS":                {"Dining", "Restaurant"},
	"PIZZA HUT":              {"Dining", "Restaurant"},
	"PIZZAHUT":               {"Dining", "Restaurant"},

	// Cafes
	"CCD":             {"Dining", "Cafe"},
	"CAFECOFFEEDAY":   {"Dining", "Cafe"},
	"CAFE COFFEE DAY": {"Dining", "Cafe"},
	"PUNERI CHAI":     {"Dining", "Cafe"},
	"HARSH TEA":       {"Dining", "Cafe"},

	// Snacks and quick bites
	"SHREE SAINATH BHEL":         {"Dining", "SnacksAndBeverages"},
	"MEENA SNACKS CENTRE":        {"Dining", "SnacksAndBeverages"},
	"DEEPAK SNACKS":              {"Dining", "SnacksAndBeverages"},
	"DEEPAK SNACKS CENTER":       {"Dining", "SnacksAndBeverages"},
	"SHREE RAMKRUSHNA FOODS":     {"Dining", "SnacksAndBeverages"},
	"ANUSHKA BHEL PAKODI CENTER": {"Dining", "SnacksAndBeverages"},
	"SONAI DAVANGIRI DOSA":       {"Dining", "SnacksAndBeverages"},
	"BALAJI FAST FOOD":           {"Dining", "SnacksAndBeverages"},
	"SHREE UPHAR GRUH":           {"Dining", "SnacksAndBeverages"},
	"JAGDAMBA SNACKS":            {"Dining", "SnacksAndBeverages"},
	"SAI FOODS":                  {"Dining", "SnacksAndBeverages"},

	// Pan shops
	"RAJ PAN SHOP":   {"Miscellaneous", "PanShop"},
	"MUTAI PAN SHOP": {"Miscellaneous", "PanShop"},

	// Supermarkets
	"DMART":              {"Groceries", "Supermarket"},
	"D MART NANDED CITY": {"Groceries", "Supermarket"},
	"JIOMART":            {"Groceries", "Supermarket"},
	"JIO MART":           {"Groceries", "Supermarket"},
	"NATURESBASKET":      {"Groceries", "Supermarket"},
	"SPENCERS":           {"Groceries", "Supermarket"},
	"MOREMEGASTORE":      {"Groceries", "Supermarket"},
	"STARQUICK":          {"Groceries", "Supermarket"},
	"RELIANCE FRESH":     {"Groceries", "Supermarket"},

	// Online groceries
	"BIGBASKET":        {"Groceries", "OnlineGroceries"},
	"BBDAILY":          {"Groceries", "OnlineGroceries"},
	"BB-":              {"Groceries", "OnlineGroceries"},
	"ZEPT":             {"Groceries", "OnlineGroceries"},
	"ZEPTO":            {"Groceries", "OnlineGroceries"},
	"BLINKIT":          {"Groceries", "OnlineGroceries"},
	"GROFERS":          {"Groceries", "OnlineGroceries"},
	"SWIGGY INSTAMART": {"Groceries", "OnlineGroceries"},
	"DUNZO DAILY":      {"Groceries", "OnlineGroceries"},

	// Local groceries
	"GURUKRUPA SUPER MARKET": {"Groceries", "LocalShops"},
	"SHRI AAIJI SUPER MARKET": {"Groceries", "LocalShops"},
	"KATRAJ DAIRY":      {"Groceries", "LocalShops"},
	"VISHAL VEGETABLES": {"Groceries", "LocalShops"},
	"TRUPTI":            {"Groceries", "LocalShops"},
	"COSMOS":            {"Groceries", "LocalShops"},

	// Online shopping
	"AMAZON":    {"Shopping", "Online"},
	"AMAZON.IN": {"Shopping", "Online"},
	"FLIPKART":  {"Shopping", "Online"},
	"MYNTRA":    {"Shopping", "Fashion"},
	"AJIO":      {"Shopping", "Fashion"},
	"TATACLIQ":  {"Shopping", "Online"},
	"TATANEU":   {"Shopping", "Online"},
	"NYKAA":     {"Shopping", "Beauty"},
	"MEESHO":    {"Shopping", "Online"},
	"SNAPDEAL":  {"Shopping", "Online"},

	// Fashion
	"SHOPPERSSTOP":         {"Shopping", "Fashion"},
	"SHOPPERS STOP":        {"Shopping", "Fashion"},
	"LIFESTYLE":            {"Shopping", "Fashion"},
	"MAXFASHION":           {"Shopping", "Fashion"},
	"MAX FASHION":          {"Shopping", "Fashion"},
	"RELIANCE TRENDS":      {"Shopping", "Fashion"},
	"PANTALOONS":           {"Shopping", "Fashion"},
	"WESTSIDE":             {"Shopping", "Fashion"},
	"NEW MAYUR COLLECTION": {"Shopping", "Fashion"},
	"SUYASH DRESSES":       {"Shopping", "Fashion"},

	// Electronics
	"CROMA":                 {"Shopping", "Electronics"},
	"VIJAYSALES":            {"Shopping", "Electronics"},
	"RELIANCE DIGITAL":      {"Shopping", "Electronics"},
	"REL DIGITAL":           {"Shopping", "Electronics"},
	"CLASSIC RETAIL OUTLET": {"Shopping", "Electronics"},

	// Stationery
	"BOMBAY STATIONERS":               {"Shopping", "Stationery"},
	"JEEVANDEEP STATIONERY":           {"Shopping", "Stationery"},
	"IPRINT ENTERPRISES":              {"Shopping", "Stationery"},
	"VIDHATA XEROX AND GENERAL STORE": {"Shopping", "Stationery"},

	// Pharmacy
	"SHRUTI MEDICAL":                  {"Shopping", "Pharmacy"},
	"SHRUTI MEDICAL AND GEN":          {"Shopping", "Pharmacy"},
	"DHARESHWAR MEDICAL":              {"Shopping", "Pharmacy"},
	"SHRIKRISHNA MEDICAL AND GENERAL": {"Shopping", "Pharmacy"},
	"APOLLO PHARMACY":                 {"Shopping", "Pharmacy"},
	"NETMEDS":                         {"Shopping", "Pharmacy"},
	"1MG":                             {"Shopping", "Pharmacy"},

	// Decorations
	"RIBBONS AND BALLOONS":     {"Shopping", "Decorations"},
	"RIBBONS AND BALLOONS DSK": {"Shopping", "Decorations"},

	// General stores
	"SHITAL VAIBHAV BHANDAR": {"Shopping", "GeneralStore"},
	"R S ENTERPRISE":         {"Shopping", "GeneralStore"},
	"SHREE ENTERPRISES":      {"Shopping", "GeneralStore"},
	"RK":                     {"Shopping", "GeneralStore"},

	// Fuel stations
	"HPCL":                   {"Transport", "Fuel"},
	"BPCL":                   {"Transport", "Fuel"},
	"IOCL":                   {"Transport", "Fuel"},
	"INDIANOIL":              {"Transport", "Fuel"},
	"INDIAN OIL":             {"Transport", "Fuel"},
	"BHARATPET":              {"Transport", "Fuel"},
	"BHARAT PETROLEUM":       {"Transport", "Fuel"},
	"HINDPETRO":              {"Transport", "Fuel"},
	"HINDUSTAN PETROLEUM":    {"Transport", "Fuel"},
	"3S SERVICE STATION":     {"Transport", "Fuel"},
	"THREE S SERVICE":        {"Transport", "Fuel"},
	"BABAR PETROL PUMP":      {"Transport", "Fuel"},
	"BAFNA BROTHERS":         {"Transport", "Fuel"},
	"MITALI SERVICE":         {"Transport", "Fuel"},
	"ADHOC KANKARIYA SERVIC": {"Transport", "Fuel"},
	"ADHOC KANKARIYA SERVICE": {"Transport", "Fuel"},
	"SHAHID LT COL PRAKASH":  {"Transport", "Fuel"},
	"BABJI PETROLEUM":        {"Transport", "Fuel"},
	"DNYANESHWARI PETROLINK": {"Transport", "Fuel"},
	"KOTHRUD PETROL CIRCLE":  {"Transport", "Fuel"},
	"KOTHRUD PETROL":         {"Transport", "Fuel"},
	"HIGHWAY PETROLEUM CENT": {"Transport", "Fuel"},
	"SHOLAPUR MOTOR STORES":  {"Transport", "Fuel"},
	"SHOLAPUR":               {"Transport", "Fuel"},
	"SAMARTH SERVICE STAT":   {"Transport", "Fuel"},
	"INDUSTRIAL SERVICE STA": {"Transport", "Fuel"},
	"SHRI SWAMI SAMARTH EN":  {"Transport", "Fuel"},
	"BPCL SHREE SWAMI SHANK": {"Transport", "Fuel"},
	"BPCL MITALI SERVICE S":  {"Transport", "Fuel"},
	"IOCL BAFNA BROTHERS":    {"Transport", "Fuel"},

	// Cabs and public transport
	"UBER":     {"Transport", "Cab"},
	"OLA":      {"Transport", "Cab"},
	"OLA CABS": {"Transport", "Cab"},
	"RAPIDO":   {"Transport", "BikeTaxi"},
	"MERU":     {"Transport", "Cab"},
	"REDBUS":   {"Transport", "PublicTransport"},
	"IRCTC":    {"Transport", "PublicTransport"},

	// Vehicle services
	"FAMOUS AUTO CENTRE":   {"Transport", "AutoService"},
	"EXCEL SERVICE CENTRE": {"Transport", "AutoService"},

	// Telecom and DTH
	"AIRTEL":     {"Utilities", "MobileRecharge"},
	"JIO":        {"Utilities", "MobileRecharge"},
	"VODAFONE":   {"Utilities", "MobileRecharge"},
	"VI-":        {"Utilities", "MobileRecharge"},
	"VI ":        {"Utilities", "MobileRecharge"},
	"BSNL":       {"Utilities", "MobileRecharge"},
	"SUN DIRECT": {"Utilities", "DTH"},
	"TATASKY":    {"Utilities", "DTH"},
	"TATA SKY":   {"Utilities", "DTH"},
	"D2H":        {"Utilities", "DTH"},
	"DISHTV":     {"Utilities", "DTH"},
	"DISH TV":    {"Utilities", "DTH"},
	"DTHRCG":     {"Utilities", "DTH"},

	// Gas and electricity
	"HPGAS":         {"Utilities", "Gas"},
	"HP GAS":        {"Utilities", "Gas"},
	"BHARAT GAS":    {"Utilities", "Gas"},
	"INDANE":        {"Utilities", "Gas"},
	"BESCOM":        {"Utilities", "Electricity"},
	"BSES":          {"Utilities", "Electricity"},
	"TNEB":          {"Utilities", "Electricity"},
	"MSEDCL":        {"Utilities", "Electricity"},
	"TORRENTPOWER":  {"Utilities", "Electricity"},
	"TORRENT POWER": {"Utilities", "Electricity"},
	"BBPS":          {"Utilities", "BillPayment"},

	// Streaming and music
	"NETFLIX":      {"Entertainment", "Streaming"},
	"SPOTIFY":      {"Entertainment", "Music"},
	"HOTSTAR":      {"Entertainment", "Streaming"},
	"DISNEY":       {"Entertainment", "Streaming"},
	"SONYLIV":      {"Entertainment", "Streaming"},
	"SONY LIV":     {"Entertainment", "Streaming"},
	"ZEE5":         {"Entertainment", "Streaming"},
	"PRIME VIDEO":  {"Entertainment", "Streaming"},
	"AMAZON PRIME": {"Entertainment", "Streaming"},
	"VOOT":         {"Entertainment", "Streaming"},
	"ALT BALAJI":   {"Entertainment", "Streaming"},

	// Wallets and gateways
	"PAYTM":             {"Transfers", "ToBusiness"},
	"PHONEPE":           {"Transfers", "ToBusiness"},
	"GOOGLEPAY":         {"Transfers", "ToBusiness"},
	"GPAY":              {"Transfers", "ToBusiness"},
	"AMAZONPAY":         {"Transfers", "ToBusiness"},
	"MOBIKWIK":          {"Transfers", "ToBusiness"},
	"FREECHARGE":        {"Transfers", "ToBusiness"},
	"RAZORPAY":          {"Transfers", "ToBusiness"},
	"BILLDESK":          {"Transfers", "ToBusiness"},
	"CASHFREE":          {"Transfers", "ToBusiness"},
	"BHARATPEMERCHANT":  {"Transfers", "ToBusiness"},
	"BHARATPE MERCHANT": {"Transfers", "ToBusiness"},

	// Travel
	"MAKEMYTRIP": {"Travel", "FlightTickets"},
	"EASEMYTRIP": {"Travel", "FlightTickets"},
	"YATRA":      {"Travel", "FlightTickets"},
	"CLEARTRIP":  {"Travel", "FlightTickets"},
	"GOIBIBO":    {"Travel", "Accommodation"},
	"OYO":        {"Travel", "Accommodation"},
	"TREEBO":     {"Travel", "Accommodation"},

	// Gaming
	"DREAM11":        {"Leisure", "Gaming"},
	"DREAM11ONLINE":  {"Leisure", "Gaming"},
	"DREAM11ON LINE": {"Leisure", "Gaming"},
	"MPL":            {"Leisure", "Gaming"},
	"RUMMYCIRCLE":    {"Leisure", "Gaming"},

	// Education and services
	"SIMACES LEARNING LLP":  {"Education", "Courses"},
	"SIMACES LEARNING":      {"Education", "Courses"},
	"RESILIENT INNOVATIONS": {"Education", "TechServices"},

	// Healthcare
	"DR RAWLE DENTEL CLINIC": {"Healthcare", "Consultation"},
	"DR RAWLE DENTAL CLINIC": {"Healthcare", "Consultation"},

	// Income
	"SALARY CREDIT":          {"Income", "Salary"},
	"SALARYCREDIT":           {"Income", "Salary"},
	"INT.PD":                 {"Income", "Interest"},
	"INT PD":                 {"Income", "Interest"},
	"INTEREST":               {"Income", "Interest"},
	"NIKSHAY TB PATI":        {"Income", "Government"},
	"ACHPFM-NIKSHAY TB PATI": {"Income", "Government"},

	// Loans
	"EMI PAYMENT": {"Debt", "LoanEMI"},
	"HDFC-LOAN":   {"Debt", "LoanEMI"},
	"HDFC L-":     {"Debt", "LoanEMI"},

	// ATM
	"ATM WDR":    {"Cash", "ATMWithdrawal"},
	"ATMWDR":     {"Cash", "ATMWithdrawal"},
	"ATMWDL":     {"Cash", "ATMWithdrawal"},
	"ATM DEP":    {"Cash", "ATMDeposit"},
	"ATMDEPOSIT": {"Cash", "ATMDeposit"},

	// Bank charges
	"QUARTERLY AVG BAL CHARGE": {"BankCharges", "BalanceCharge"},
	"QTRLY AVG BAL CHARGE":     {"BankCharges", "BalanceCharge"},
	"SMS CHRG":                 {"BankCharges", "SMS"},
	"SMS CHARGES":              {"BankCharges", "SMS"},
	"SMS_CHARGE":               {"BankCharges", "SMS"},
	"CA KEEPING CHGS":          {"BankCharges", "Other"},
	"ANNUAL_CARDFEE":           {"BankCharges", "CardFee"},
	"ANNUAL CARD FEE":          {"BankCharges", "CardFee"},
	"LATE FINE FEES":           {"BankCharges", "LateFee"},
	"VLP CHARGES":              {"BankCharges", "Other"},

	// Insurance
	"PMSBY":        {"Insurance", "GovtScheme"},
	"PMJJBY":       {"Insurance", "GovtScheme"},
	"LIC":          {"Insurance", "Life"},
	"HDFCLIFE":     {"Insurance", "Life"},
	"SBILIFE":      {"Insurance", "Life"},
	"ICICIPRULIFE": {"Insurance", "Life"},

	// Investments
	"ZERODHA":   {"Investment", "Stocks"},
	"UPSTOX":    {"Investment", "Stocks"},
	"GROWW":     {"Investment", "Stocks"},
	"ANGEL ONE": {"Investment", "Stocks"},
}

// vendorKeys holds the map keys longest-first so the most specific merchant
// wins a substring race.
var vendorKeys = sortedKeysByLength(VendorCategoryMap)

// VendorKeys returns the vendor map keys ordered longest-first, for callers
// that scan narrations against the map themselves.
func VendorKeys() []string {
	return vendorKeys
}

func sortedKeysByLength(m map[string]Prediction) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// matchVendor resolves a normalized description against the vendor map in
// three passes of decreasing confidence: exact substring, word overlap, then
// partial word match.
func matchVendor(norm string) (string, float64, bool) {
	for _, key := range vendorKeys {
		if strings.Contains(norm, key) {
			return key, 0.95, true
		}
	}

	descWords := map[string]bool{}
	for _, w := range strings.Fields(norm) {
		descWords[w] = true
	}

	for _, key := range vendorKeys {
		keyWords := strings.Fields(key)
		if len(keyWords) == 0 {
			continue
		}
		hits := 0
		for _, w := range keyWords {
			if descWords[w] {
				hits++
			}
		}
		if float64(hits)/float64(len(keyWords)) >= 0.8 {
			return key, 0.85, true
		}
	}

	for _, key := range vendorKeys {
		parts := strings.Fields(key)
		if len(parts) == 1 {
			for w := range descWords {
				if strings.Contains(w, key) {
					return key, 0.75, true
				}
			}
		} else if strings.Contains(norm, parts[0]) {
			return key, 0.80, true
		}
	}

	return "", 0, false
}

// suggestVendor returns the closest known merchant for an unmatched
// description, for diagnostics only. The suggestion never drives
// classification.
func suggestVendor(norm string) (string, bool) {
	best := ""
	bestDist := -1
	for _, word := range strings.Fields(norm) {
		if len(word) < 3 {
			continue
		}
		ranks := fuzzy.RankFindNormalizedFold(word, vendorKeys)
		for _, r := range ranks {
			if bestDist == -1 || r.Distance < bestDist {
				best, bestDist = r.Target, r.Distance
			}
		}
	}
	return best, bestDist != -1
}
