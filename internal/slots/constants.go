package slots

// Symbol constants
const (
	SymbolCherry  Symbol = "CHERRY"
	SymbolLemon   Symbol = "LEMON"
	SymbolMoney   Symbol = "MONEY"
	SymbolDiamond Symbol = "DIAMOND"
	SymbolCrown   Symbol = "CROWN"
)

// ReelCount is the number of reels drawn per spin
const ReelCount = 3

// Payout kinds
const (
	KindTriple PayoutKind = "triple"
	KindPair   PayoutKind = "pair"
	KindNone   PayoutKind = "none"
)

// Error messages
const (
	ErrMsgEmptyTable        = "odds table has no symbols"
	ErrMsgUnknownSymbol     = "unknown symbol %q"
	ErrMsgDuplicateSymbol   = "duplicate symbol %q"
	ErrMsgNonPositiveWeight = "symbol %s: weight must be positive, got %d"
	ErrMsgNonPositiveFactor = "symbol %s: %s multiplier must be positive"
	ErrMsgReadOddsFile      = "failed to read odds file: %w"
	ErrMsgParseOddsFile     = "failed to parse odds file: %w"
	ErrMsgInvalidMultiplier = "invalid multiplier %q: %w"
)

// knownSymbols is the closed symbol set in reference table order
var knownSymbols = []Symbol{SymbolCherry, SymbolLemon, SymbolMoney, SymbolDiamond, SymbolCrown}
