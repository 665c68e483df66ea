package embedding

// DefaultTaxonomy maps "Category.Subcategory" labels to example narration
// phrases. The classifier embeds every phrase at startup and matches incoming
// descriptions against the nearest prototype.
var DefaultTaxonomy = map[string][]string{
	"Income.Salary": {
		"salary credit from employer",
		"monthly salary credited",
		"payroll deposit",
	},
	"Income.Interest": {
		"interest paid on savings account",
		"int pd quarterly interest credit",
	},
	"Income.Refund": {
		"refund credited back to account",
		"cashback received on purchase",
	},
	"Dining.FoodDelivery": {
		"zomato food order",
		"swiggy delivery payment",
		"online food delivery order",
	},
	"Dining.Restaurant": {
		"restaurant bill payment",
		"dinner at hotel restaurant",
		"kfc mcdonalds fast food",
	},
	"Dining.Cafe": {
		"coffee shop payment",
		"cafe coffee day outlet",
	},
	"Groceries.Supermarket": {
		"dmart supermarket purchase",
		"grocery shopping at reliance fresh",
		"jiomart monthly groceries",
	},
	"Groceries.OnlineGroceries": {
		"bigbasket online grocery order",
		"blinkit instant grocery delivery",
	},
	"Groceries.LocalShops": {
		"kirana store purchase",
		"local vegetables and dairy",
	},
	"Shopping.Online": {
		"amazon online order",
		"flipkart purchase",
		"online marketplace shopping",
	},
	"Shopping.Fashion": {
		"myntra clothing order",
		"apparel purchase at fashion store",
	},
	"Shopping.Electronics": {
		"croma electronics purchase",
		"reliance digital gadget buy",
	},
	"Shopping.Pharmacy": {
		"medical store medicine purchase",
		"apollo pharmacy bill",
	},
	"Shopping.POS": {
		"pos card purchase at merchant",
		"debit card swipe at store",
	},
	"Transport.Fuel": {
		"petrol pump fuel purchase",
		"hpcl bpcl fuel station",
		"diesel refill payment",
	},
	"Transport.Cab": {
		"uber cab ride fare",
		"ola taxi trip payment",
	},
	"Transport.PublicTransport": {
		"irctc train ticket booking",
		"redbus bus ticket",
		"metro card recharge",
	},
	"Transport.TollParking": {
		"toll plaza fastag payment",
		"parking fee",
	},
	"Utilities.Electricity": {
		"electricity bill payment",
		"msedcl power bill",
	},
	"Utilities.Gas": {
		"lpg gas cylinder booking",
		"gas bill payment",
	},
	"Utilities.MobileRecharge": {
		"mobile prepaid recharge",
		"airtel jio recharge payment",
	},
	"Utilities.DTH": {
		"dth recharge tata sky",
		"dish tv subscription renewal",
	},
	"Utilities.Internet": {
		"broadband internet bill",
		"wifi monthly charge",
	},
	"Entertainment.Streaming": {
		"netflix monthly subscription",
		"hotstar streaming plan",
	},
	"Entertainment.Music": {
		"spotify premium subscription",
	},
	"Healthcare.Consultation": {
		"doctor consultation fee",
		"clinic visit payment",
		"hospital bill",
	},
	"Education.Courses": {
		"online course fee payment",
		"tuition and coaching fees",
	},
	"Leisure.Gaming": {
		"dream11 fantasy contest entry",
		"online gaming wallet top up",
	},
	"Transfers.ToPerson": {
		"upi transfer to person",
		"neft transfer to individual",
		"money sent to friend",
	},
	"Transfers.ToBusiness": {
		"upi payment to merchant",
		"paytm payment to business",
	},
	"Transfers.BankTransfer": {
		"imps fund transfer",
		"rtgs interbank transfer",
	},
	"Transfers.Refund": {
		"transaction reversal credit",
		"payment refund received",
	},
	"Cash.ATMWithdrawal": {
		"atm cash withdrawal",
		"cash wdl at branch atm",
	},
	"Cash.ATMDeposit": {
		"cash deposit at atm",
	},
	"BankCharges.SMS": {
		"sms alert charges",
	},
	"BankCharges.BalanceCharge": {
		"quarterly average balance charge",
		"minimum balance penalty",
	},
	"BankCharges.CardFee": {
		"annual debit card fee",
	},
	"BankCharges.Other": {
		"bank service charge",
		"processing fee debit",
	},
	"Debt.LoanEMI": {
		"monthly loan emi debit",
		"home loan installment payment",
	},
	"Insurance.GovtScheme": {
		"pmsby insurance premium",
		"pmjjby annual renewal",
	},
	"Insurance.Life": {
		"lic life insurance premium",
	},
	"Government.Tax": {
		"income tax payment",
		"tds deduction",
	},
	"Investment.Stocks": {
		"zerodha broking fund transfer",
		"stock trading account deposit",
	},
	"Investment.MutualFunds": {
		"mutual fund sip debit",
	},
	"Travel.FlightTickets": {
		"flight ticket booking makemytrip",
		"airline ticket purchase",
	},
	"Travel.Accommodation": {
		"oyo hotel room booking",
		"hotel stay payment",
	},
	"Miscellaneous.PanShop": {
		"pan shop purchase",
	},
}
