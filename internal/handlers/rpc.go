// rpc.go
//
// guardroster: guard, inspection and exercise records service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of guardroster.
// guardroster is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// guardroster is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with guardroster.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/guardroster/internal/middleware"
	"github.com/localnerve/guardroster/internal/models"
	"github.com/localnerve/guardroster/internal/types"
)

// Kind selects the HTTP method a procedure is served on
type Kind int

const (
	// Query procedures are served on GET and take no input
	Query Kind = iota
	// Mutation procedures are served on POST with a JSON input body
	Mutation
)

// Procedure declares one RPC endpoint, addressed as "<resource>.<name>"
type Procedure struct {
	Path      string
	Kind      Kind
	Protected bool
	Handler   fiber.Handler
}

// Mount registers procedures on router. Protected procedures get the auth gate.
func Mount(router fiber.Router, auth middleware.Authenticator, procedures []Procedure) {
	for _, p := range procedures {
		chain := []fiber.Handler{}
		if p.Protected {
			chain = append(chain, middleware.Auth(auth))
		}
		chain = append(chain, p.Handler)

		switch p.Kind {
		case Query:
			router.Get("/"+p.Path, chain...)
		case Mutation:
			router.Post("/"+p.Path, chain...)
		}
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
		r, ok := fl.Field().Interface().(models.RatingValue)
		return ok && r.Valid()
	})
	_ = v.RegisterValidation("qualitative", func(fl validator.FieldLevel) bool {
		q, ok := fl.Field().Interface().(models.QualitativeRating)
		return ok && q.Valid()
	})

	return v
}

// superjsonEnvelope is the {"json": ...} wrapper sent by tRPC clients using superjson
type superjsonEnvelope struct {
	JSON json.RawMessage `json:"json"`
}

// bindInput decodes and validates a mutation body before anything else runs
func bindInput[T any](c *fiber.Ctx) (T, error) {
	var in T

	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return in, types.NewValidationError("Missing input")
	}

	var envelope superjsonEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.JSON) > 0 {
		body = envelope.JSON
	}

	if err := c.App().Config().JSONDecoder(body, &in); err != nil {
		return in, types.NewValidationError(fmt.Sprintf("Malformed input: %v", err))
	}

	if err := validate.Struct(in); err != nil {
		return in, validationError(err)
	}

	return in, nil
}

func validationError(err error) *types.CustomError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return types.NewValidationError(err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fieldPath(fe.Namespace()), fe.Tag()))
	}
	return types.NewValidationError("Invalid input: " + strings.Join(msgs, "; "))
}

// fieldPath drops the struct name prefix from a validator namespace
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
