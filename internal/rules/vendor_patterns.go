package rules

// vendorPatterns is the looser fallback table for naming a vendor when the
// exact vendor map misses. Lookahead forms from the narration data (ola but
// not ola electric, jio but not jiomart) are expressed with word boundaries
// since RE2 has no lookahead.
var vendorPatterns = []labeledPatterns{
	{"Hotel/Restaurant", compileAll(
		`hotel\s+\w+`, `restaurant`, `dhaba`, `caterer`,
		`bhojanalay`, `eatery`, `food.*court`,
	)},
	{"Snacks/FastFood", compileAll(
		`bhel`, `snacks`, `chai`, `tea\s+stall`,
		`fast\s+food`, `dosa`, `vada`, `pakodi`,
	)},
	{"FoodDelivery", compileAll(
		`swiggy`, `zomato`, `dunzo`, `food.*delivery`,
	)},
	{"Supermarket", compileAll(
		`d[-\s]?mart`, `super\s*market`, `hyper\s*market`,
		`reliance\s+fresh`, `more\s+mega`, `star\s+bazaar`,
	)},
	{"OnlineGrocery", compileAll(
		`bigbasket`, `bb[-\s]?daily`, `grofers`, `blinkit`,
		`zepto`, `instamart`,
	)},
	{"LocalGrocery", compileAll(
		`kirana`, `provision`, `dairy`, `vegetables`,
	)},
	{"OnlineShopping", compileAll(
		`amazon`, `flipkart`, `myntra`, `ajio`,
		`tatacliq`, `meesho`, `snapdeal`,
	)},
	{"Fashion", compileAll(
		`trends`, `lifestyle`, `westside`, `pantaloons`,
		`max\s+fashion`, `shoppers\s+stop`, `collection`,
	)},
	{"Electronics", compileAll(
		`croma`, `reliance\s+digital`, `vijay\s+sales`,
		`retail\s+outlet`,
	)},
	{"Stationery", compileAll(
		`stationer`, `xerox`, `print`, `paper`,
	)},
	{"Pharmacy", compileAll(
		`medical`, `pharmacy`, `chemist`, `drug`,
	)},
	{"FuelStation", compileAll(
		`petrol`, `petroleum`, `service\s+station`,
		`hpcl`, `bpcl`, `iocl`, `indian\s+oil`,
		`bharat\s+petroleum`, `hindustan\s+petroleum`,
		`fuel`, `pump`,
	)},
	{"CabService", compileAll(
		`uber`, `ola\s+cab`, `\bola\b`, `taxi`,
		`rapido`, `meru`,
	)},
	{"AutoService", compileAll(
		`auto\s+centre`, `auto\s+service`, `garage`,
		`service\s+centre`,
	)},
	{"MobileRecharge", compileAll(
		`mobile\s+recharge`, `recharge`, `prepaid`,
		`airtel`, `\bjio\b`, `vodafone`, `vi[-\s]`,
		`bsnl`,
	)},
	{"DTH", compileAll(
		`dth`, `dish\s+tv`, `tata\s+sky`, `sun\s+direct`,
		`d2h`,
	)},
	{"Electricity", compileAll(
		`electricity`, `power\s+bill`, `bescom`,
		`msedcl`, `tneb`, `torrent`,
	)},
	{"Gas", compileAll(
		`gas\s+bill`, `lpg`, `hp\s+gas`, `bharat\s+gas`,
		`indane`,
	)},
	{"Streaming", compileAll(
		`netflix`, `hotstar`, `prime\s+video`, `disney`,
		`sony\s*liv`, `zee5`, `voot`,
	)},
	{"Music", compileAll(
		`spotify`, `youtube\s+music`, `gaana`, `wynk`,
	)},
	{"DigitalWallet", compileAll(
		`paytm`, `phonepe`, `googlepay`, `gpay`,
		`mobikwik`, `freecharge`, `amazonpay`,
	)},
	{"PaymentGateway", compileAll(
		`razorpay`, `billdesk`, `cashfree`, `payu`,
		`ccavenue`,
	)},
	{"BankTransfer", compileAll(
		`neft[-/]`, `imps[-/]`, `rtgs[-/]`, `upi[-/]`,
	)},
	{"ATM", compileAll(
		`atm\s+wdr`, `atm\s+dep`, `atmwdl`, `atmwdr`,
		`nfs/`, `cashnet/`,
	)},
	{"Government", compileAll(
		`ipay/eshp`, `cbdt`, `income\s+tax`, `rto`,
		`property\s+tax`, `municipal`, `nikshay`,
	)},
	{"Education", compileAll(
		`learning`, `academy`, `institute`, `coaching`,
		`tuition`, `training`,
	)},
	{"Healthcare", compileAll(
		`clinic`, `hospital`, `doctor`, `dr\s+\w+`,
		`dental`, `medical\s+centre`,
	)},
	{"Travel", compileAll(
		`makemytrip`, `cleartrip`, `yatra`, `goibibo`,
		`irctc`, `redbus`,
	)},
	{"Hotel", compileAll(
		`oyo`, `treebo`, `hotel\s+booking`,
	)},
	{"Gaming", compileAll(
		`dream11`, `mpl`, `rummy`, `fantasy`,
		`gaming`, `playstore\s+game`,
	)},
	{"Insurance", compileAll(
		`insurance`, `lic\s`, `policy`, `premium`,
		`pmsby`, `pmjjby`,
	)},
	{"Investment", compileAll(
		`zerodha`, `upstox`, `groww`, `angel\s+one`,
		`mutual\s+fund`, `sip\s+`,
	)},
	{"PanShop", compileAll(
		`pan\s+shop`, `paan`, `tobacco`,
	)},
	{"GeneralStore", compileAll(
		`general\s+store`, `enterprise`, `corporation`,
		`traders`, `stores`,
	)},
}
