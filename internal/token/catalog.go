package token

// Arity classifies how an operator combines with operands.
type Arity int

const (
	// ArityNone is the arity of non-operator kinds (literals, identifiers,
	// punctuation that never participates in the shift-reduce rewrite).
	ArityNone Arity = iota
	ArityPrefix
	ArityPostfix
	ArityBinary
)

// Assoc is operator associativity.
type Assoc int

const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
)

// Priority is the operator precedence ladder from spec.md §3, low to high.
type Priority int

const (
	PrioNone Priority = iota
	PrioAssignment
	PrioLogicalOr
	PrioLogicalAnd
	PrioBitwiseOr
	PrioBitwiseXor
	PrioBitwiseAnd
	PrioEquality
	PrioThreeWayEquality
	PrioComparison
	PrioBitshift
	PrioTerm
	PrioFactor
	PrioPrefix
	PrioPostfix
	// PrioFunctional is reserved by the precedence ladder in spec.md §3 but
	// is not the priority of any token kind in the closed set: the three
	// postfix trailers ( [ { already carry Postfix priority per the
	// closure-buffer rule in spec.md §3 ("Closure"), leaving nothing at
	// this level to assign it to.
	PrioFunctional
	PrioAccess
	PrioMax
)

// Trait is the catalogue entry for one Kind: canonical spelling (empty for
// kinds with variable spelling, i.e. literals and identifiers), its
// shift-reduce priority/arity/associativity, and category flags consulted
// by the cursor, closure buffer, and parser.
type Trait struct {
	Spelling     string
	Priority     Priority
	Arity        Arity
	Assoc        Assoc
	IsKeyword    bool
	IsModifier   bool
	IsDeclarative bool
	IsOpener     bool
	IsCloser     bool
	IsOperand    bool
	IsDirective  bool
}

var traits = map[Kind]Trait{
	KindEOF: {},

	KindLParen:   {Spelling: "(", Priority: PrioPostfix, Arity: ArityPostfix, Assoc: AssocLeft, IsOpener: true},
	KindRParen:   {Spelling: ")", IsCloser: true},
	KindLBracket: {Spelling: "[", Priority: PrioPostfix, Arity: ArityPostfix, Assoc: AssocLeft, IsOpener: true},
	KindRBracket: {Spelling: "]", IsCloser: true},
	KindLBrace:   {Spelling: "{", Priority: PrioPostfix, Arity: ArityPostfix, Assoc: AssocLeft, IsOpener: true},
	KindRBrace:   {Spelling: "}", IsCloser: true},

	KindComma:        {Spelling: ",", Priority: PrioMax},
	KindPeriod:       {Spelling: ".", Priority: PrioAccess, Arity: ArityBinary, Assoc: AssocLeft},
	KindEllipsis:     {Spelling: "...", Priority: PrioMax, Assoc: AssocRight},
	KindColon:        {Spelling: ":"},
	KindDoubleColon:  {Spelling: "::", Priority: PrioAccess, Arity: ArityBinary, Assoc: AssocLeft},
	KindSemicolon:    {Spelling: ";", Priority: PrioMax},
	KindCommercialAt: {Spelling: "@", Priority: PrioMax, Assoc: AssocRight},
	KindHash:         {Spelling: "#"},
	KindDollar:       {Spelling: "$"},
	KindQuestion:     {Spelling: "?"},
	KindBacktick:     {Spelling: "`"},
	KindBackslash:    {Spelling: "\\"},

	KindPlus:    {Spelling: "+", Priority: PrioTerm, Arity: ArityBinary, Assoc: AssocLeft},
	KindMinus:   {Spelling: "-", Priority: PrioTerm, Arity: ArityBinary, Assoc: AssocLeft},
	KindStar:    {Spelling: "*", Priority: PrioFactor, Arity: ArityBinary, Assoc: AssocLeft},
	KindSlash:   {Spelling: "/", Priority: PrioFactor, Arity: ArityBinary, Assoc: AssocLeft},
	KindPercent: {Spelling: "%", Priority: PrioFactor, Arity: ArityBinary, Assoc: AssocLeft},

	KindAmp:  {Spelling: "&", Priority: PrioBitwiseAnd, Arity: ArityBinary, Assoc: AssocLeft},
	KindPipe: {Spelling: "|", Priority: PrioBitwiseOr, Arity: ArityBinary, Assoc: AssocLeft},
	KindXor:  {Spelling: "^", Priority: PrioBitwiseXor, Arity: ArityBinary, Assoc: AssocLeft},
	KindBnot: {Spelling: "~", Priority: PrioPrefix, Arity: ArityPrefix, Assoc: AssocRight},
	KindShl:  {Spelling: "<<", Priority: PrioBitshift, Arity: ArityBinary, Assoc: AssocLeft},
	KindShr:  {Spelling: ">>", Priority: PrioBitshift, Arity: ArityBinary, Assoc: AssocLeft},

	KindAssign:        {Spelling: "=", Priority: PrioAssignment, Arity: ArityBinary, Assoc: AssocRight},
	KindPlusAssign:    {Spelling: "+=", Priority: PrioAssignment, Arity: ArityBinary, Assoc: AssocRight},
	KindMinusAssign:   {Spelling: "-=", Priority: PrioAssignment, Arity: ArityBinary, Assoc: AssocRight},
	KindStarAssign:    {Spelling: "*=", Priority: PrioAssignment, Arity: ArityBinary, Assoc: AssocRight},
	KindSlashAssign:   {Spelling: "/=", Priority: PrioAssignment, Arity: ArityBinary, Assoc: AssocRight},
	KindPercentAssign: {Spelling: "%=", Priority: PrioAssignment, Arity: ArityBinary, Assoc: AssocRight},
	KindAmpAssign:     {Spelling: "&=", Priority: PrioAssignment, Arity: ArityBinary, Assoc: AssocRight},
	KindPipeAssign:    {Spelling: "|=", Priority: PrioAssignment, Arity: ArityBinary, Assoc: AssocRight},
	KindXorAssign:     {Spelling: "^=", Priority: PrioAssignment, Arity: ArityBinary, Assoc: AssocRight},
	KindShlAssign:     {Spelling: "<<=", Priority: PrioAssignment, Arity: ArityBinary, Assoc: AssocRight},
	KindShrAssign:     {Spelling: ">>=", Priority: PrioAssignment, Arity: ArityBinary, Assoc: AssocRight},

	KindEq:        {Spelling: "==", Priority: PrioEquality, Arity: ArityBinary, Assoc: AssocLeft},
	KindNe:        {Spelling: "!=", Priority: PrioEquality, Arity: ArityBinary, Assoc: AssocLeft},
	KindLt:        {Spelling: "<", Priority: PrioComparison, Arity: ArityBinary, Assoc: AssocLeft},
	KindGt:        {Spelling: ">", Priority: PrioComparison, Arity: ArityBinary, Assoc: AssocLeft},
	KindLe:        {Spelling: "<=", Priority: PrioComparison, Arity: ArityBinary, Assoc: AssocLeft},
	KindGe:        {Spelling: ">=", Priority: PrioComparison, Arity: ArityBinary, Assoc: AssocLeft},
	KindSpaceship: {Spelling: "<=>", Priority: PrioThreeWayEquality, Arity: ArityBinary, Assoc: AssocLeft},

	KindLogicalAnd: {Spelling: "&&", Priority: PrioLogicalAnd, Arity: ArityBinary, Assoc: AssocLeft},
	KindLogicalOr:  {Spelling: "||", Priority: PrioLogicalOr, Arity: ArityBinary, Assoc: AssocLeft},
	KindBang:       {Spelling: "!", Priority: PrioPrefix, Arity: ArityPrefix, Assoc: AssocRight},

	KindInc: {Spelling: "++", Priority: PrioPostfix, Arity: ArityPostfix, Assoc: AssocLeft},
	KindDec: {Spelling: "--", Priority: PrioPostfix, Arity: ArityPostfix, Assoc: AssocLeft},

	KindIntLit:    {Priority: PrioMax, IsOperand: true},
	KindUintLit:   {Priority: PrioMax, IsOperand: true},
	KindRealLit:   {Priority: PrioMax, IsOperand: true},
	KindBoolLit:   {Priority: PrioMax, IsOperand: true},
	KindCharLit:   {Priority: PrioMax, IsOperand: true},
	KindByteLit:   {Priority: PrioMax, IsOperand: true},
	KindStringLit: {Priority: PrioMax, IsOperand: true},
	KindIdent:     {Priority: PrioMax, IsOperand: true},
}

// keywordTraits holds the traits for every keyword kind; spelling doubles
// as the lexer's keyword lookup key (see KeywordKind).
var keywordTraits = map[Kind]Trait{
	KindKwDef:       {Spelling: "def", IsKeyword: true, IsDeclarative: true},
	KindKwFn:        {Spelling: "fn", IsKeyword: true, IsDeclarative: true},
	KindKwClass:     {Spelling: "class", IsKeyword: true, IsDeclarative: true},
	KindKwMain:      {Spelling: "main", IsKeyword: true, IsDeclarative: true},
	KindKwImport:    {Spelling: "import", IsKeyword: true, IsDeclarative: true},
	KindKwNamespace: {Spelling: "namespace", IsKeyword: true, IsDeclarative: true},
	KindKwUsing:     {Spelling: "using", IsKeyword: true, IsDeclarative: true},
	KindKwLib:       {Spelling: "lib", IsKeyword: true, IsDeclarative: true},
	KindKwDll:       {Spelling: "dll", IsKeyword: true},
	KindKwIf:        {Spelling: "if", IsKeyword: true, IsDeclarative: true},
	KindKwElif:      {Spelling: "elif", IsKeyword: true, IsDeclarative: true},
	KindKwElse:      {Spelling: "else", IsKeyword: true, IsDeclarative: true},
	KindKwCxif:      {Spelling: "cxif", IsKeyword: true, IsDeclarative: true},
	KindKwCxelif:    {Spelling: "cxelif", IsKeyword: true, IsDeclarative: true},
	KindKwCxelse:    {Spelling: "cxelse", IsKeyword: true, IsDeclarative: true},
	KindKwSwitch:    {Spelling: "switch", IsKeyword: true, IsDeclarative: true},
	KindKwCase:      {Spelling: "case", IsKeyword: true, IsDeclarative: true},
	KindKwDefault:   {Spelling: "default", IsKeyword: true, IsDeclarative: true},
	KindKwWhile:     {Spelling: "while", IsKeyword: true, IsDeclarative: true},
	KindKwFor:       {Spelling: "for", IsKeyword: true, IsDeclarative: true},
	KindKwReturn:    {Spelling: "return", IsKeyword: true, IsDeclarative: true},
	KindKwBreak:     {Spelling: "break", IsKeyword: true, IsDeclarative: true},
	KindKwContinue:  {Spelling: "continue", IsKeyword: true, IsDeclarative: true},
	KindKwInt:       {Spelling: "int", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwUint:      {Spelling: "uint", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwReal:      {Spelling: "real", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwBool:      {Spelling: "bool", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwChar:      {Spelling: "char", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwByte:      {Spelling: "byte", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwCstr:      {Spelling: "cstr", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwStr:       {Spelling: "str", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwPtr:       {Spelling: "ptr", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwList:      {Spelling: "list", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwArray:     {Spelling: "array", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwTrue:      {Spelling: "true", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwFalse:     {Spelling: "false", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwNone:      {Spelling: "none", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwVoid:      {Spelling: "void", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwIn:        {Spelling: "in", IsKeyword: true},
	KindKwAs:        {Spelling: "as", IsKeyword: true},
	KindKwCin:       {Spelling: "cin", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwCout:      {Spelling: "cout", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwNative:    {Spelling: "native", IsKeyword: true},
	KindKwConst:     {Spelling: "const", IsKeyword: true, IsModifier: true},
	KindKwRef:       {Spelling: "ref", IsKeyword: true, IsModifier: true},
	KindKwPrivate:   {Spelling: "private", IsKeyword: true, IsModifier: true},
	KindKwPublic:    {Spelling: "public", IsKeyword: true, IsModifier: true},
	KindKwStatic:    {Spelling: "static", IsKeyword: true, IsModifier: true},
	KindKwAny:       {Spelling: "any", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwAuto:      {Spelling: "auto", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwType:      {Spelling: "type", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwValue:     {Spelling: "value", IsKeyword: true, IsOperand: true, Priority: PrioMax},
	KindKwTemplate:  {Spelling: "template", IsKeyword: true, IsDeclarative: true},
}

var directiveTraits = map[Kind]Trait{
	KindDirInclude:  {Spelling: "#include", IsDirective: true},
	KindDirDefmacro: {Spelling: "#defmacro", IsDirective: true},
	KindDirEndmacro: {Spelling: "#endmacro", IsDirective: true},
	KindDirIf:       {Spelling: "#if", IsDirective: true},
	KindDirElse:     {Spelling: "#else", IsDirective: true},
	KindDirElif:     {Spelling: "#elif", IsDirective: true},
	KindDirEndif:    {Spelling: "#endif", IsDirective: true},
	KindDirIfdef:    {Spelling: "#ifdef", IsDirective: true},
	KindDirIfndef:   {Spelling: "#ifndef", IsDirective: true},
	KindDirUndef:    {Spelling: "#undef", IsDirective: true},
}

var keywordBySpelling map[string]Kind
var directiveBySpelling map[string]Kind

func init() {
	keywordBySpelling = make(map[string]Kind, len(keywordTraits))
	for k, t := range keywordTraits {
		traits[k] = t
		keywordBySpelling[t.Spelling] = k
	}
	directiveBySpelling = make(map[string]Kind, len(directiveTraits))
	for k, t := range directiveTraits {
		traits[k] = t
		directiveBySpelling[t.Spelling] = k
	}
}

// TraitOf returns the catalogue entry for kind. Unknown kinds (there are
// none in normal operation, since Kind is a closed set) return the zero
// Trait.
func TraitOf(k Kind) Trait { return traits[k] }

// KeywordKind returns the keyword Kind spelled exactly as spelling, if any.
func KeywordKind(spelling string) (Kind, bool) {
	k, ok := keywordBySpelling[spelling]
	return k, ok
}

// DirectiveKind returns the directive Kind spelled exactly as spelling
// (including the leading '#'), if any.
func DirectiveKind(spelling string) (Kind, bool) {
	k, ok := directiveBySpelling[spelling]
	return k, ok
}

// IsClosingOf reports whether candidate is the canonical closer for opener.
// True for exactly the three canonical pairs (spec.md §4.B contract).
func IsClosingOf(opener, candidate Kind) bool {
	switch opener {
	case KindLParen:
		return candidate == KindRParen
	case KindLBracket:
		return candidate == KindRBracket
	case KindLBrace:
		return candidate == KindRBrace
	default:
		return false
	}
}

// IsPrimary reports whether a token of this kind may start a primary
// expression: an operand, a prefix operator, or '(' (spec.md §4.B contract).
func IsPrimary(k Kind) bool {
	t := TraitOf(k)
	return t.IsOperand || t.Arity == ArityPrefix || k == KindLParen
}
