package rules

import "regexp"

type labeledPatterns struct {
	label    string
	patterns []*regexp.Regexp
}

func compileAll(pats ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(pats))
	for i, p := range pats {
		out[i] = regexp.MustCompile("(?i)" + p)
	}
	return out
}

// categoryPatterns is the ordered category fallback table. Earlier entries
// win, so the specific categories sit above the catch-all ones.
var categoryPatterns = []labeledPatterns{
	{"Transport.Fuel", compileAll(
		`petrol`, `diesel`, `fuel`, `petroleum`,
		`hpcl`, `bpcl`, `iocl`, `indian oil`, `indianoil`,
		`bharat petroleum`, `hindustan petroleum`,
		`service station`, `petrol pump`, `gas station`,
		`cashless.*fuel`, `fuel.*cashback`,
		`babar petrol`, `shree swami samarth`, `bafna brothers`,
		`mitali service`, `adhoc kankariya`, `shahid.*prakash`,
		`3s service`, `babji petroleum`, `dnyaneshwari petrolink`,
		`kothrud petrol`, `highway petroleum`, `sholapur motor`,
		`samarth service stat`,
	)},
	{"Dining.Restaurant", compileAll(
		`restaurant`, `hotel raj`, `hotel rayat`, `msw.*hotel`,
		`girija caterers`, `sagar restaurant`, `sona garden`,
		`dhareshwar restaurant`, `hotel jagdamb`, `mauli dhaba`,
		`shetkari bhojanalay`, `hotel samman`, `giridhar veg`,
	)},
	{"Dining.FoodDelivery", compileAll(
		`swiggy`, `zomato`, `dunzo`, `eatfit`, `box8`, `faasos`,
	)},
	{"Dining.SnacksAndBeverages", compileAll(
		`chai`, `tea`, `bhel`, `snacks`, `fast food`,
		`puneri chai`, `shree sainath bhel`, `meena snacks`,
		`deepak snacks`, `shree ramkrushna foods`, `anushka bhel`,
		`davangiri dosa`, `balaji fast food`, `shree uphar gruh`,
	)},
	{"Dining.Cafe", compileAll(
		`cafe`, `coffee`, `ccd`, `cafecoffeeday`, `starbucks`,
	)},
	{"Groceries.Supermarket", compileAll(
		`dmart`, `d-mart`, `d mart`, `more megastore`, `reliance fresh`,
		`jiomart`, `jio mart`, `spencers`, `star bazaar`,
		`gurukrupa super market`, `super market`, `katraj dairy`,
		`shri aaiji super market`, `vishal vegetables`,
	)},
	{"Groceries.OnlineGroceries", compileAll(
		`bigbasket`, `bb daily`, `bb-`, `grofers`, `blinkit`,
		`zepto`, `zept`, `dunzo daily`, `swiggy instamart`,
	)},
	{"Groceries.LocalShops", compileAll(
		`kirana`, `provision`, `general store`,
		`vidhata xerox and general`,
	)},
	{"Shopping.Online", compileAll(
		`amazon`, `flipkart`, `snapdeal`, `paytm mall`,
		`tatacliq`, `tataneu`, `meesho`, `shopsy`,
	)},
	{"Shopping.Fashion", compileAll(
		`myntra`, `ajio`, `lifestyle`, `westside`,
		`pantaloons`, `max fashion`, `shoppers stop`,
		`reliance trends`, `new mayur collection`,
	)},
	{"Shopping.Electronics", compileAll(
		`croma`, `reliance digital`, `rel digital`, `vijay sales`,
		`electronics`, `classic retail outlet`,
	)},
	{"Shopping.Beauty", compileAll(
		`nykaa`, `purplle`, `sugar cosmetics`,
	)},
	{"Shopping.Stationery", compileAll(
		`stationery`, `stationers`, `xerox`,
		`bombay stationers`, `iprint enterprises`, `jeevandeep stationery`,
	)},
	{"Shopping.Pharmacy", compileAll(
		`medical`, `pharmacy`, `chemist`, `medicine`,
		`apollo pharmacy`, `netmeds`, `1mg`,
		`shruti medical`, `dhareshwar medical`, `shrikrishna medical`,
	)},
	{"Shopping.Decorations", compileAll(
		`balloons`, `ribbons`, `party`,
		`ribbons and balloons`,
	)},
	{"Transport.Cab", compileAll(
		`uber`, `ola cabs`, `ola`, `rapido`, `meru`, `taxi`,
	)},
	{"Transport.PublicTransport", compileAll(
		`metro`, `bus`, `railway`, `irctc`, `train ticket`,
		`redbus`, `abhibus`,
	)},
	{"Transport.BikeTaxi", compileAll(
		`rapido`, `bike taxi`,
	)},
	{"Utilities.Electricity", compileAll(
		`electricity`, `power bill`, `bescom`, `msedcl`,
		`torrent power`, `tneb`, `bses`,
	)},
	{"Utilities.Gas", compileAll(
		`gas bill`, `lpg`, `bharat gas`, `hp gas`, `indane`,
		`hpgas`,
	)},
	{"Utilities.Water", compileAll(
		`water bill`, `water charges`,
	)},
	{"Utilities.MobileRecharge", compileAll(
		`mobile recharge`, `prepaid`, `recharge`,
		`airtel`, `jio`, `vodafone`, `vi-`, `bsnl`,
	)},
	{"Utilities.DTH", compileAll(
		`dth`, `dish tv`, `tata sky`, `sun direct`, `d2h`,
		`dthrcg`,
	)},
	{"Utilities.Internet", compileAll(
		`broadband`, `wifi`, `internet`, `fiber`,
	)},
	{"Entertainment.Streaming", compileAll(
		`netflix`, `hotstar`, `prime video`, `disney`,
		`sony liv`, `zee5`, `voot`, `alt balaji`,
	)},
	{"Entertainment.Music", compileAll(
		`spotify`, `youtube music`, `gaana`, `wynk`,
	)},
	{"Healthcare.Consultation", compileAll(
		`doctor`, `clinic`, `hospital`, `medical consultation`,
		`dental`, `dentel`,
		`dr rawle dentel clinic`,
	)},
	{"Healthcare.Medicine", compileAll(
		`pharmacy`, `medical and general`,
	)},
	{"Education.Courses", compileAll(
		`course`, `training`, `tuition`, `coaching`,
		`simaces learning`,
	)},
	{"PersonalCare.Salon", compileAll(
		`salon`, `barber`, `haircut`, `spa`,
	)},
	{"Leisure.Gaming", compileAll(
		`dream11`, `mpl`, `rummy`, `fantasy`, `gaming`,
		`dream11online`, `dream11on line`,
	)},
	{"Income.Salary", compileAll(
		`salary`, `payroll`, `salary credit`, `salarycredit`,
		`credited by employer`,
	)},
	{"Income.Interest", compileAll(
		`int\.pd`, `int pd`, `interest`, `interest credit`,
	)},
	{"Income.Refund", compileAll(
		`refund`, `cashback`, `credit.*cashback`,
		`ref\\`, `cashless.*%`,
	)},
	{"Income.Government", compileAll(
		`nikshay`, `tb pati`, `achpfm`,
	)},
	{"Transfers.ToPerson", compileAll(
		`neft.*(?:to|credit)`, `imps.*(?:to|credit)`,
		`upi.*(?:person|individual)`,
	)},
	{"Transfers.ToBusiness", compileAll(
		`phonepe`, `paytm`, `googlepay`, `gpay`,
		`razorpay`, `billdesk`, `cashfree`,
	)},
	{"Cash.ATMWithdrawal", compileAll(
		`atm wdr`, `atmwdr`, `atm withdrawal`,
		`atmwdl`, `nfs/`, `cashnet/`,
	)},
	{"Cash.ATMDeposit", compileAll(
		`atm dep`, `atm deposit`,
	)},
	{"BankCharges.SMS", compileAll(
		`sms.*charge`, `sms chrg`, `smschrg`,
	)},
	{"BankCharges.BalanceCharge", compileAll(
		`quarterly.*avg.*bal`, `qtrly.*avg.*bal`,
		`minimum balance`, `avg bal charge`,
	)},
	{"BankCharges.CardFee", compileAll(
		`annual.*card.*fee`, `card.*maintenance`,
		`debit card`, `credit card.*fee`,
		`annual_cardfee`,
	)},
	{"BankCharges.ATMFee", compileAll(
		`atm.*fee`, `atm.*charge`,
	)},
	{"BankCharges.Other", compileAll(
		`ca keeping chgs`, `service charge`, `processing fee`,
		`late fine`, `vlp charges`,
	)},
	{"Debt.LoanEMI", compileAll(
		`emi`, `loan`, `hdfc.*loan`, `hdfc l-`,
		`home loan`, `personal loan`, `car loan`,
	)},
	{"Insurance.GovtScheme", compileAll(
		`pmsby`, `pmjjby`, `atal pension`,
	)},
	{"Insurance.Life", compileAll(
		`lic`, `life insurance`, `term insurance`,
	)},
	{"Insurance.Health", compileAll(
		`health insurance`, `mediclaim`,
	)},
	{"Government.Tax", compileAll(
		`income tax`, `tds`, `advance tax`,
		`ipay/eshp.*cbdt`, `cbdt`,
	)},
	{"Government.RTO", compileAll(
		`rto`, `vehicle tax`, `road tax`,
		`ipay/eshp.*mh\d+`,
	)},
	{"Government.PropertyTax", compileAll(
		`property tax`, `house tax`, `municipal`,
	)},
	{"Investment.MutualFunds", compileAll(
		`mutual fund`, `sip`, `systematic investment`,
	)},
	{"Investment.Stocks", compileAll(
		`zerodha`, `upstox`, `groww`, `angel one`,
	)},
	{"Travel.Accommodation", compileAll(
		`hotel booking`, `oyo`, `treebo`, `goibibo`,
	)},
	{"Travel.FlightTickets", compileAll(
		`flight`, `airline`, `indigo`, `spicejet`,
		`makemytrip`, `cleartrip`, `easemytrip`, `yatra`,
	)},
	{"Miscellaneous.PanShop", compileAll(
		`pan shop`, `tobacco`,
	)},
	{"Miscellaneous.Enterprises", compileAll(
		`enterprise`, `corporation`, `services`,
		`sago corporation`, `excel service centre`,
		`shree enterprises`, `vagad enterprises`,
	)},
	{"Miscellaneous.Dresses", compileAll(
		`dresses`, `garments`, `suyash dresses`,
	)},
}
