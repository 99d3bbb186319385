package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLine covers malformed input: missing article, price, or a
	// non-positive quantity, and references to articles that do not exist.
	ErrInvalidLine = errors.New("invalid order line")

	// ErrInsufficientStock is the business-rule rejection: the article exists
	// but its stock is below the requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// LineError pins a batch rejection to the offending line. It wraps one of the
// sentinels above so callers can branch with errors.Is while the message still
// names the line and article.
type LineError struct {
	Line    int   // zero-based index into the submitted batch
	Article int64 // 0 when the article itself was missing
	Reason  string
	Err     error
}

func (e *LineError) Error() string {
	if e.Article != 0 {
		return fmt.Sprintf("line %d (article %d): %s", e.Line, e.Article, e.Reason)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *LineError) Unwrap() error { return e.Err }

func NewInvalidLine(line int, article int64, reason string) *LineError {
	return &LineError{Line: line, Article: article, Reason: reason, Err: ErrInvalidLine}
}

func NewInsufficientStock(line int, article int64, available, requested int) *LineError {
	return &LineError{
		Line:    line,
		Article: article,
		Reason:  fmt.Sprintf("insufficient stock: %d available, %d requested", available, requested),
		Err:     ErrInsufficientStock,
	}
}
