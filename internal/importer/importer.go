// Package importer reads product lists from delimited text files into the
// catalog.
package importer

import (
	"errors"
	"io"

	"github.com/MrJamesThe3rd/gelato/internal/catalog"
)

var (
	ErrNoProfile  = errors.New("no known product columns found")
	ErrInvalidRow = errors.New("invalid row")
)

type Parser interface {
	Parse(r io.Reader) ([]catalog.AddParams, error)
}
