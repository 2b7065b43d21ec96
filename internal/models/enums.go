// Package models defines the domain entities shared by the editor, the API
// client, and the command handlers.
package models

// FieldName identifies one logical output the parser should produce.
// The set is closed: the backend rejects anything outside it, so the same
// constants feed both the editor choices and the payload builder.
type FieldName string

const (
	FieldMerchant             FieldName = "merchant"
	FieldAmount               FieldName = "amount"
	FieldCurrency             FieldName = "currency"
	FieldDate                 FieldName = "date"
	FieldLocation             FieldName = "location"
	FieldCity                 FieldName = "city"
	FieldCountry              FieldName = "country"
	FieldCardBrand            FieldName = "cardBrand"
	FieldCardLast4            FieldName = "cardLast4"
	FieldTransactionType      FieldName = "transactionType"
	FieldTransactionDirection FieldName = "transactionDirection"
	FieldAuthorizationCode    FieldName = "authorizationCode"
	FieldReference            FieldName = "reference"
	FieldClientName           FieldName = "clientName"
)

// AllFieldNames lists every valid field name in display order.
var AllFieldNames = []FieldName{
	FieldMerchant,
	FieldAmount,
	FieldCurrency,
	FieldDate,
	FieldLocation,
	FieldCity,
	FieldCountry,
	FieldCardBrand,
	FieldCardLast4,
	FieldTransactionType,
	FieldTransactionDirection,
	FieldAuthorizationCode,
	FieldReference,
	FieldClientName,
}

// IsValid reports whether the field name belongs to the closed set.
// The empty value means "not chosen yet" and is not valid for saving.
func (f FieldName) IsValid() bool {
	for _, known := range AllFieldNames {
		if f == known {
			return true
		}
	}
	return false
}

// ExtractorType selects the extraction engine an extractor pattern targets.
type ExtractorType string

const (
	ExtractorRegex       ExtractorType = "REGEX"
	ExtractorXPath       ExtractorType = "XPATH"
	ExtractorCSSSelector ExtractorType = "CSS_SELECTOR"
	ExtractorJSONPath    ExtractorType = "JSON_PATH"
)

// AllExtractorTypes lists every supported extractor type.
var AllExtractorTypes = []ExtractorType{
	ExtractorRegex,
	ExtractorXPath,
	ExtractorCSSSelector,
	ExtractorJSONPath,
}

// IsValid reports whether the extractor type is one of the supported engines.
func (t ExtractorType) IsValid() bool {
	switch t {
	case ExtractorRegex, ExtractorXPath, ExtractorCSSSelector, ExtractorJSONPath:
		return true
	}
	return false
}

// RuleType identifies a post-extraction validation rule.
type RuleType string

const (
	RuleRequired RuleType = "REQUIRED"
	RuleMin      RuleType = "MIN"
	RuleMax      RuleType = "MAX"
	RulePattern  RuleType = "PATTERN"
	RuleEnum     RuleType = "ENUM"
)

// AllRuleTypes lists every supported validation rule type.
var AllRuleTypes = []RuleType{RuleRequired, RuleMin, RuleMax, RulePattern, RuleEnum}

// IsValid reports whether the rule type is supported.
func (r RuleType) IsValid() bool {
	switch r {
	case RuleRequired, RuleMin, RuleMax, RulePattern, RuleEnum:
		return true
	}
	return false
}

// NeedsValue reports whether the rule type uses its value operand.
// REQUIRED checks presence only; its value is carried but ignored.
func (r RuleType) NeedsValue() bool {
	return r != RuleRequired
}

// Strategy is the overall parsing approach for a bank's email format.
type Strategy string

const (
	StrategyRuleBased Strategy = "RULE_BASED"
	StrategyAI        Strategy = "AI"
	StrategyHybrid    Strategy = "HYBRID"
)

// AllStrategies lists every supported parsing strategy.
var AllStrategies = []Strategy{StrategyRuleBased, StrategyAI, StrategyHybrid}

// IsValid reports whether the strategy is supported.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyRuleBased, StrategyAI, StrategyHybrid:
		return true
	}
	return false
}

// UsesAI reports whether the strategy involves the AI extraction path.
// Only then is an aiConfig meaningful, and only then is it serialized.
func (s Strategy) UsesAI() bool {
	return s == StrategyAI || s == StrategyHybrid
}

// EmailKind classifies the kind of email a configuration targets.
type EmailKind string

const (
	EmailTransactionNotification EmailKind = "TRANSACTION_NOTIFICATION"
	EmailPaymentReceipt          EmailKind = "PAYMENT_RECEIPT"
	EmailBalanceAlert            EmailKind = "BALANCE_ALERT"
	EmailStatement               EmailKind = "STATEMENT"
	EmailOther                   EmailKind = "OTHER"
)

// AllEmailKinds lists every supported email kind.
var AllEmailKinds = []EmailKind{
	EmailTransactionNotification,
	EmailPaymentReceipt,
	EmailBalanceAlert,
	EmailStatement,
	EmailOther,
}

// IsValid reports whether the email kind is supported.
func (k EmailKind) IsValid() bool {
	for _, known := range AllEmailKinds {
		if k == known {
			return true
		}
	}
	return false
}
