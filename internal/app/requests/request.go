// Package requests fronts every write and list route with a request object
// that authorizes the caller, binds the input and validates it before the
// handler touches the store.
package requests

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/revams/api/internal/pkg/apperrors"
	"github.com/revams/api/internal/pkg/validation"
)

// ErrNotValidated is the panic value of an accessor called before Validate
// succeeded.
var ErrNotValidated = errors.New("request accessed before successful validation")

// Source says where a request reads its input from.
type Source int

const (
	SourceBody Source = iota
	SourceQuery
)

// Request is implemented by every route's request object. Embed Base to get
// the defaults.
type Request interface {
	// Authorize reports whether the caller may perform the action.
	Authorize(c *gin.Context) bool
	// Rules returns a pointer to the input struct; its validate tags are
	// the schema.
	Rules() any
	Source() Source
	// Prepare runs after binding and before validation.
	Prepare(c *gin.Context) error

	markValidated()
}

// Base provides permissive defaults: everyone is authorized, input comes from
// the JSON body and nothing is prepared.
type Base struct {
	validated bool
}

func (b *Base) Authorize(*gin.Context) bool { return true }

func (b *Base) Source() Source { return SourceBody }

func (b *Base) Prepare(*gin.Context) error { return nil }

func (b *Base) markValidated() { b.validated = true }

// mustBeValidated guards every accessor.
func (b *Base) mustBeValidated() {
	if !b.validated {
		panic(ErrNotValidated)
	}
}

// QueryBase is Base for requests read from the query string.
type QueryBase struct {
	Base
}

func (QueryBase) Source() Source { return SourceQuery }

var validator = validation.New()

// Validate authorizes, binds and validates req. On success the input is kept
// on req and its accessors become usable.
func Validate(c *gin.Context, req Request) error {
	if !req.Authorize(c) {
		return apperrors.NewForbiddenError("This action is unauthorized")
	}

	input := req.Rules()
	switch req.Source() {
	case SourceQuery:
		if err := c.ShouldBindQuery(input); err != nil {
			return apperrors.NewBadRequestError("Invalid query parameters")
		}
	default:
		if err := c.ShouldBindJSON(input); err != nil {
			return apperrors.NewBadRequestError("Invalid request body")
		}
	}

	if len(c.Params) > 0 {
		if err := c.ShouldBindUri(input); err != nil {
			return apperrors.NewBadRequestError("Invalid path parameter")
		}
	}

	if err := req.Prepare(c); err != nil {
		return err
	}

	if err := validator.Struct(input); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	req.markValidated()
	return nil
}

// trimSet trims the strings a partial update carries, leaving absent fields nil.
func trimSet(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

// PageQuery is embedded by paginated list requests.
type PageQuery struct {
	Page  int `form:"page,default=1" validate:"min=1"`
	Limit int `form:"limit,default=10" validate:"min=1,max=100"`
}
