// Package cerr implements the error taxonomy of spec.md §7: four categories
// (Build, Lexer, Parser, Impl) each with one or more distinct kinds, every
// diagnostic carrying the source location when one is known. It follows
// the teacher codebase's CLIError / sentinel-error split: a uniform,
// JSON-renderable payload for user-visible diagnostics, plus a handful of
// errors.New sentinels for conditions calling code tests with errors.Is.
package cerr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Category is one of the four taxonomy buckets from spec.md §7.
type Category string

const (
	CategoryBuild  Category = "Build"
	CategoryLexer  Category = "Lexer"
	CategoryParser Category = "Parser"
	CategoryImpl   Category = "Impl"
)

// Kind is a machine-readable error identifier, one per leaf of the
// taxonomy in spec.md §7.
type Kind string

const (
	// Build.
	KindFailedToReadFile  Kind = "FailedToReadFile"
	KindInvalidCliArg     Kind = "InvalidCliArg"
	KindInclusionFailure  Kind = "InclusionFailure"
	KindForbiddenSourceChar Kind = "ForbiddenSourceChar"

	// Lexer.
	KindLexerUnknownChar      Kind = "LexerUnknownChar"
	KindLexerUnknownDirective Kind = "LexerUnknownDirective"
	KindLexerUnknownElement   Kind = "LexerUnknownElement"
	KindUnclosedComment       Kind = "UnclosedComment"

	// Parser.
	KindMismatchedScope               Kind = "MismatchedScope"
	KindExpectedPragmaticDeclaration  Kind = "ExpectedPragmaticDeclaration"
	KindExpectedPrimaryExpression     Kind = "ExpectedPrimaryExpression"
	KindParserExpectedToken           Kind = "ParserExpectedToken"
	KindInvalidForLoopSyntax          Kind = "InvalidForLoopSyntax"
	KindUserSyntaxError               Kind = "UserSyntaxError"
	KindNotImplemented                Kind = "NotImplemented"

	// Implementation-impossible: these signal a bug in the compiler, not
	// in the user's source.
	KindImplExpectedToken        Kind = "ImplExpectedToken"
	KindInvalidSingularOperand   Kind = "InvalidSingularOperand"
)

// Location is the file/line/column a diagnostic points to. A zero
// Location means "unknown" (e.g. a CLI argument error has no file).
type Location struct {
	File string `json:"file,omitempty"`
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
}

func (l Location) known() bool { return l.File != "" || l.Line != 0 || l.Col != 0 }

// Error is the uniform diagnostic payload for the front-end. It prints as
// "<Category>.<Kind>: message (file:line:col)" and renders as JSON via
// its JSON method, matching the teacher's dual human/JSON CLIError shape.
type Error struct {
	Category Category `json:"category"`
	Kind     Kind     `json:"kind"`
	Message  string   `json:"message"`
	Location Location `json:"location,omitempty"`
	Cause    error    `json:"-"`
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%s.%s: %s", e.Category, e.Kind, e.Message)
	if e.Location.known() {
		s += fmt.Sprintf(" (%s:%d:%d)", e.Location.File, e.Location.Line, e.Location.Col)
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// JSON renders the error as a JSON object for tooling that wants
// structured diagnostics instead of the human-readable string.
func (e *Error) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// New builds an Error with no known location.
func New(cat Category, kind Kind, msg string) *Error {
	return &Error{Category: cat, Kind: kind, Message: msg}
}

// At builds an Error located at loc.
func At(cat Category, kind Kind, msg string, loc Location) *Error {
	return &Error{Category: cat, Kind: kind, Message: msg, Location: loc}
}

// Wrap builds an Error that carries an underlying cause, unwrappable with
// errors.Is/errors.As.
func Wrap(cat Category, kind Kind, msg string, loc Location, cause error) *Error {
	return &Error{Category: cat, Kind: kind, Message: msg, Location: loc, Cause: cause}
}

// Sentinel errors for conditions calling code needs to branch on without
// inspecting a formatted message.
var (
	ErrSelfInclude        = errors.New("a file may not include itself")
	ErrRootReinclude      = errors.New("a file may not re-include the root")
	ErrCircularDependency = errors.New("circular dependency")
	ErrNamedMainNotImplemented = errors.New("named main is not implemented")
)
