package models

// Currency is an ISO-like currency code from the closed set the platform
// supports. EUR is the reference currency all conversions pivot through.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyPLN Currency = "PLN"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyBGN Currency = "BGN"
	CurrencyCZK Currency = "CZK"
	CurrencyDKK Currency = "DKK"
	CurrencyHUF Currency = "HUF"
	CurrencyRON Currency = "RON"
	CurrencySEK Currency = "SEK"
	CurrencyCHF Currency = "CHF"
	CurrencyISK Currency = "ISK"
	CurrencyNOK Currency = "NOK"
	CurrencyTRY Currency = "TRY"
	CurrencyAUD Currency = "AUD"
	CurrencyBRL Currency = "BRL"
	CurrencyCAD Currency = "CAD"
	CurrencyCNY Currency = "CNY"
	CurrencyHKD Currency = "HKD"
	CurrencyIDR Currency = "IDR"
	CurrencyILS Currency = "ILS"
	CurrencyINR Currency = "INR"
	CurrencyKRW Currency = "KRW"
	CurrencyMXN Currency = "MXN"
	CurrencyMYR Currency = "MYR"
	CurrencyNZD Currency = "NZD"
	CurrencyPHP Currency = "PHP"
	CurrencySGD Currency = "SGD"
	CurrencyTHB Currency = "THB"
	CurrencyZAR Currency = "ZAR"
)

// Currencies lists every supported code. A code outside this set is a
// configuration error, not runtime data.
var Currencies = []Currency{
	CurrencyUSD, CurrencyPLN, CurrencyEUR, CurrencyGBP, CurrencyJPY,
	CurrencyBGN, CurrencyCZK, CurrencyDKK, CurrencyHUF, CurrencyRON,
	CurrencySEK, CurrencyCHF, CurrencyISK, CurrencyNOK, CurrencyTRY,
	CurrencyAUD, CurrencyBRL, CurrencyCAD, CurrencyCNY, CurrencyHKD,
	CurrencyIDR, CurrencyILS, CurrencyINR, CurrencyKRW, CurrencyMXN,
	CurrencyMYR, CurrencyNZD, CurrencyPHP, CurrencySGD, CurrencyTHB,
	CurrencyZAR,
}

func (c Currency) Valid() bool {
	for _, known := range Currencies {
		if c == known {
			return true
		}
	}
	return false
}

// ComparisonMode governs how an alert's budget threshold is compared
// against a converted request budget.
type ComparisonMode string

const (
	ComparisonEquals             ComparisonMode = "EQUALS"
	ComparisonLessThan           ComparisonMode = "LESS_THAN"
	ComparisonLessThanOrEqual    ComparisonMode = "LESS_THAN_OR_EQUAL_TO"
	ComparisonGreaterThan        ComparisonMode = "GREATER_THAN"
	ComparisonGreaterThanOrEqual ComparisonMode = "GREATER_THAN_OR_EQUAL_TO"
)

var ComparisonModes = []ComparisonMode{
	ComparisonEquals,
	ComparisonLessThan,
	ComparisonLessThanOrEqual,
	ComparisonGreaterThan,
	ComparisonGreaterThanOrEqual,
}

func (m ComparisonMode) Valid() bool {
	for _, known := range ComparisonModes {
		if m == known {
			return true
		}
	}
	return false
}

// NotificationType enumerates the events users get notified about.
type NotificationType string

const (
	NotificationNewOffer        NotificationType = "NEW_OFFER"
	NotificationNewMessage      NotificationType = "NEW_MESSAGE"
	NotificationNewOfferComment NotificationType = "NEW_OFFER_COMMENT"
	NotificationNewAlertMatch   NotificationType = "NEW_ALERT_MATCH"
	NotificationOfferAccepted   NotificationType = "OFFER_ACCEPTED"
)

// LogType enumerates admin-visible activity log entries.
type LogType string

const (
	LogUserLogin        LogType = "USER_LOGIN"
	LogUserLoginFailure LogType = "USER_LOGIN_FAILURE"
	LogUserLogout       LogType = "USER_LOGOUT"
	LogUserRegistration LogType = "USER_REGISTRATION"
	LogRequestCreate    LogType = "REQUEST_CREATE"
	LogRequestUpdate    LogType = "REQUEST_UPDATE"
	LogRequestDelete    LogType = "REQUEST_DELETE"
	LogOfferCreate      LogType = "OFFER_CREATE"
	LogOfferUpdate      LogType = "OFFER_UPDATE"
	LogOfferDelete      LogType = "OFFER_DELETE"
	LogRateLimitHit     LogType = "RATELIMIT_HIT"
)
