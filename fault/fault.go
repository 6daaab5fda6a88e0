package fault

import "fmt"

type Code string

const (
	UnknownCode           Code = "unknown"
	LexErrorCode          Code = "lex_error"
	ParseErrorCode        Code = "parse_error"
	DuplicateKeyCode      Code = "duplicate_key"
	UndefinedConstantCode Code = "undefined_constant"
	DuplicateConstantCode Code = "duplicate_constant"
)

type Fault struct {
	code     Code
	message  string
	metadata any
	original error
}

func New(code Code, message string) Fault {
	return Fault{
		code:    code,
		message: message,
	}
}

func (f Fault) WithMetadata(metadata any) Fault {
	e := f
	e.metadata = metadata
	return e
}

func (f Fault) WithOriginal(original error) Fault {
	e := f
	e.original = original
	return e
}

func (f Fault) Code() Code {
	return f.code
}

func (f Fault) Message() string {
	return f.message
}

func (f Fault) Metadata() any {
	return f.metadata
}

func (f Fault) Original() error {
	return f.original
}

func (f Fault) Error() string {
	if f.original != nil {
		return fmt.Sprintf("%s: %v", f.message, f.original)
	}
	return f.message
}
