package provider

// FallbackChain exports fallbackChain for testing.
var FallbackChain = fallbackChain

// ParseExemplarSet exports parseExemplarSet for testing.
var ParseExemplarSet = parseExemplarSet

// ParsePluralRules exports parsePluralRules for testing.
var ParsePluralRules = parsePluralRules
