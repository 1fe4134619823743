// Package token defines the closed token-kind enumeration for the cand
// front-end (CST node kinds live in internal/cst), the per-kind grammar
// catalogue (spelling, priority,
// arity, associativity, category flags), and the Token type itself.
package token

// Kind is a member of the closed token-kind enumeration (spec.md §3). Every
// Kind maps deterministically to exactly one CST node kind; see
// internal/cst.KindOf.
type Kind string

const (
	// KindEOF is the sentinel kind returned by a cursor positioned past the
	// end of the token stream; it never appears in a lexer's output.
	KindEOF Kind = "EOF"

	// Punctuators.
	KindLParen       Kind = "LParen"
	KindRParen       Kind = "RParen"
	KindLBracket     Kind = "LBracket"
	KindRBracket     Kind = "RBracket"
	KindLBrace       Kind = "LBrace"
	KindRBrace       Kind = "RBrace"
	KindComma        Kind = "Comma"
	KindPeriod       Kind = "Period"
	KindEllipsis     Kind = "Ellipsis"
	KindColon        Kind = "Colon"
	KindDoubleColon  Kind = "DoubleColon"
	KindSemicolon    Kind = "Semicolon"
	KindCommercialAt Kind = "CommercialAt"
	KindHash         Kind = "Hash"
	KindDollar       Kind = "Dollar"
	KindQuestion     Kind = "Question"
	KindBacktick     Kind = "Backtick"
	KindBackslash    Kind = "Backslash"

	// Arithmetic.
	KindPlus    Kind = "Plus"
	KindMinus   Kind = "Minus"
	KindStar    Kind = "Star"
	KindSlash   Kind = "Slash"
	KindPercent Kind = "Percent"

	// Bitwise.
	KindAmp  Kind = "Amp"
	KindPipe Kind = "Pipe"
	KindXor  Kind = "Xor"
	KindBnot Kind = "Bnot"
	KindShl  Kind = "Shl"
	KindShr  Kind = "Shr"

	// Assignment, plain and compound.
	KindAssign       Kind = "Assign"
	KindPlusAssign   Kind = "PlusAssign"
	KindMinusAssign  Kind = "MinusAssign"
	KindStarAssign   Kind = "StarAssign"
	KindSlashAssign  Kind = "SlashAssign"
	KindPercentAssign Kind = "PercentAssign"
	KindAmpAssign    Kind = "AmpAssign"
	KindPipeAssign   Kind = "PipeAssign"
	KindXorAssign    Kind = "XorAssign"
	KindShlAssign    Kind = "ShlAssign"
	KindShrAssign    Kind = "ShrAssign"

	// Comparison and spaceship.
	KindEq        Kind = "Eq"
	KindNe        Kind = "Ne"
	KindLt        Kind = "Lt"
	KindGt        Kind = "Gt"
	KindLe        Kind = "Le"
	KindGe        Kind = "Ge"
	KindSpaceship Kind = "Spaceship"

	// Logical.
	KindLogicalAnd Kind = "LogicalAnd"
	KindLogicalOr  Kind = "LogicalOr"
	KindBang       Kind = "Bang"

	// Increment / decrement.
	KindInc Kind = "Inc"
	KindDec Kind = "Dec"

	// Literals.
	KindIntLit    Kind = "IntLit"
	KindUintLit   Kind = "UintLit"
	KindRealLit   Kind = "RealLit"
	KindBoolLit   Kind = "BoolLit"
	KindCharLit   Kind = "CharLit"
	KindByteLit   Kind = "ByteLit"
	KindStringLit Kind = "StringLit"

	// Identifier.
	KindIdent Kind = "Ident"

	// Keywords. Spelling is recorded in the catalogue, not in the Kind name.
	KindKwDef       Kind = "KwDef"
	KindKwFn        Kind = "KwFn"
	KindKwClass     Kind = "KwClass"
	KindKwMain      Kind = "KwMain"
	KindKwImport    Kind = "KwImport"
	KindKwNamespace Kind = "KwNamespace"
	KindKwUsing     Kind = "KwUsing"
	KindKwLib       Kind = "KwLib"
	KindKwDll       Kind = "KwDll"
	KindKwIf        Kind = "KwIf"
	KindKwElif      Kind = "KwElif"
	KindKwElse      Kind = "KwElse"
	KindKwCxif      Kind = "KwCxif"
	KindKwCxelif    Kind = "KwCxelif"
	KindKwCxelse    Kind = "KwCxelse"
	KindKwSwitch    Kind = "KwSwitch"
	KindKwCase      Kind = "KwCase"
	KindKwDefault   Kind = "KwDefault"
	KindKwWhile     Kind = "KwWhile"
	KindKwFor       Kind = "KwFor"
	KindKwReturn    Kind = "KwReturn"
	KindKwBreak     Kind = "KwBreak"
	KindKwContinue  Kind = "KwContinue"
	KindKwInt       Kind = "KwInt"
	KindKwUint      Kind = "KwUint"
	KindKwReal      Kind = "KwReal"
	KindKwBool      Kind = "KwBool"
	KindKwChar      Kind = "KwChar"
	KindKwByte      Kind = "KwByte"
	KindKwCstr      Kind = "KwCstr"
	KindKwStr       Kind = "KwStr"
	KindKwPtr       Kind = "KwPtr"
	KindKwList      Kind = "KwList"
	KindKwArray     Kind = "KwArray"
	KindKwTrue      Kind = "KwTrue"
	KindKwFalse     Kind = "KwFalse"
	KindKwNone      Kind = "KwNone"
	KindKwVoid      Kind = "KwVoid"
	KindKwIn        Kind = "KwIn"
	KindKwAs        Kind = "KwAs"
	KindKwCin       Kind = "KwCin"
	KindKwCout      Kind = "KwCout"
	KindKwNative    Kind = "KwNative"
	KindKwConst     Kind = "KwConst"
	KindKwRef       Kind = "KwRef"
	KindKwPrivate   Kind = "KwPrivate"
	KindKwPublic    Kind = "KwPublic"
	KindKwStatic    Kind = "KwStatic"
	KindKwAny       Kind = "KwAny"
	KindKwAuto      Kind = "KwAuto"
	KindKwType      Kind = "KwType"
	KindKwValue     Kind = "KwValue"
	KindKwTemplate  Kind = "KwTemplate"

	// Directives. Only KindDirInclude is acted on by the build orchestrator;
	// the rest are recognized and passed through unchanged (spec.md §6).
	KindDirInclude  Kind = "DirInclude"
	KindDirDefmacro Kind = "DirDefmacro"
	KindDirEndmacro Kind = "DirEndmacro"
	KindDirIf       Kind = "DirIf"
	KindDirElse     Kind = "DirElse"
	KindDirElif     Kind = "DirElif"
	KindDirEndif    Kind = "DirEndif"
	KindDirIfdef    Kind = "DirIfdef"
	KindDirIfndef   Kind = "DirIfndef"
	KindDirUndef    Kind = "DirUndef"

	// Elided before reaching any consumer above the lexer's internal
	// dispatch loop; never appear in a Lexer.Run result.
	kindWhitespace   Kind = "Whitespace"
	kindNewline      Kind = "Newline"
	kindLineComment  Kind = "LineComment"
	kindBlockComment Kind = "BlockComment"
)
