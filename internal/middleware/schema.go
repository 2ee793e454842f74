package middleware

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/qri-io/jsonschema"

	"github.com/yigit/campus-survey/internal/pkg/apperrors"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// Body schema names
const (
	SurveySchema   = "survey"
	FeedbackSchema = "feedback"
)

func readSchema(name string) ([]byte, error) {
	raw, err := schemaFiles.ReadFile("schemas/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown body schema %q: %w", name, err)
	}
	return raw, nil
}

// LoadSchema compiles one of the embedded body schemas
func LoadSchema(name string) (*jsonschema.Schema, error) {
	raw, err := readSchema(name)
	if err != nil {
		return nil, err
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(raw, rs); err != nil {
		return nil, fmt.Errorf("invalid body schema %q: %w", name, err)
	}
	return rs, nil
}

// ValidateBody coerces scalar fields of the request body toward the types of the named
// schema (2 -> "2" for text, "4" -> 4 and 4.0 -> 4 for numbers), checks the result
// against the schema and hands it on for binding. Missing fields are left to the model
// validation so that the error names the field as required.
func ValidateBody(name string) gin.HandlerFunc {
	schema, err := LoadSchema(name)
	if err != nil {
		panic(err)
	}
	node, err := loadSchemaNode(name)
	if err != nil {
		panic(err)
	}

	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			HandleSubmissionError(c, apperrors.NewValidationError("", "unable to read request body"))
			return
		}

		body, err = checkBody(c, schema, node, body)
		if err != nil {
			HandleSubmissionError(c, err)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Request.ContentLength = int64(len(body))
		c.Next()
	}
}

// checkBody returns the coerced body, or a ValidationError for the first offending field
func checkBody(c *gin.Context, schema *jsonschema.Schema, node *schemaNode, body []byte) ([]byte, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, apperrors.NewValidationError("", "request body is required")
	}
	if !json.Valid(body) {
		return nil, apperrors.NewValidationError("", "request body is not valid JSON")
	}

	body, err := node.coerceBody(body)
	if err != nil {
		return nil, apperrors.NewValidationError("", "request body is not valid JSON")
	}

	keyErrs, err := schema.ValidateBytes(c.Request.Context(), body)
	if err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if len(keyErrs) > 0 {
		first := keyErrs[0]
		return nil, apperrors.NewValidationError(schemaField(first.PropertyPath), first.Message)
	}
	return body, nil
}

// schemaField turns a JSON pointer such as "/budgetAllocation/support" into "budgetAllocation.support"
func schemaField(pointer string) string {
	return strings.ReplaceAll(strings.TrimPrefix(pointer, "/"), "/", ".")
}
