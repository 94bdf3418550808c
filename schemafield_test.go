package schemafield

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithNilSchema(t *testing.T) {
	field, err := New(nil)
	require.NoError(t, err)

	for _, value := range []any{nil, 5, "x", map[string]any{"a": 1}} {
		require.NoError(t, field.Validate(value, Attributes{}))
	}
}

func TestNewWithLiteralSchema(t *testing.T) {
	field, err := New(map[string]any{"type": "integer"})
	require.NoError(t, err)

	require.NoError(t, field.Validate(5, Attributes{}))

	err = field.Validate("x", Attributes{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidData, verr.Code)
}

func TestNewWithJSONTextSchema(t *testing.T) {
	field, err := New(`{"type": "integer"}`)
	require.NoError(t, err)

	require.NoError(t, field.Validate(5, Attributes{}))
	require.Error(t, field.Validate("x", Attributes{}))
}

func TestNewWithReferenceSchema(t *testing.T) {
	instance := Attributes{
		"json_schema_field": map[string]any{"type": "integer"},
	}

	field, err := New("json_schema_field")
	require.NoError(t, err)

	require.NoError(t, field.Validate(5, instance))

	err = field.Validate("x", instance)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidData, verr.Code)
}

func TestNewWithRelatedReferenceSchema(t *testing.T) {
	instance := Attributes{
		"model_a": Attributes{
			"json_schema_field": map[string]any{"type": "string"},
		},
	}

	field, err := New("model_a.json_schema_field")
	require.NoError(t, err)

	require.NoError(t, field.Validate("hello", instance))
	require.Error(t, field.Validate(5, instance))
}

func TestNewWithComputedSchema(t *testing.T) {
	field, err := New(func(Instance) (map[string]any, error) {
		return map[string]any{"type": "string"}, nil
	})
	require.NoError(t, err)

	require.NoError(t, field.Validate("hello", Attributes{}))
	require.Error(t, field.Validate(5, Attributes{}))
}

func TestNewWithUnsupportedSchema(t *testing.T) {
	_, err := New(42)

	var specErr *UnsupportedSpecError
	require.ErrorAs(t, err, &specErr)
	assert.Equal(t, 42, specErr.Spec)
}

func TestValidateUnresolvedReferenceIsNotAValidationError(t *testing.T) {
	field, err := New("missing_field")
	require.NoError(t, err)

	err = field.Validate(5, Attributes{})

	var refErr *UnresolvedReferenceError
	require.ErrorAs(t, err, &refErr)

	var verr *ValidationError
	require.False(t, errors.As(err, &verr))
}

func TestValidateReferenceToNonSchemaValue(t *testing.T) {
	instance := Attributes{"a": Attributes{"b": 5}}

	field, err := New("a.b")
	require.NoError(t, err)

	err = field.Validate(5, instance)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidSchemaDefinition, verr.Code)
}

func TestValidateJSON(t *testing.T) {
	field, err := New(map[string]any{"type": "integer"})
	require.NoError(t, err)

	require.NoError(t, field.ValidateJSON([]byte(`5`), Attributes{}))

	err = field.ValidateJSON([]byte(`"x"`), Attributes{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidData, verr.Code)
}

func TestValidateJSONRejectsInvalidJSON(t *testing.T) {
	field, err := New(nil)
	require.NoError(t, err)

	err = field.ValidateJSON([]byte(`{not json`), Attributes{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalid, verr.Code)
	assert.Equal(t, DefaultMessages[CodeInvalid], verr.Error())
}

func TestDeconstruct(t *testing.T) {
	source := `{"type": "integer"}`
	field, err := New(source, WithFormatChecker(Draft202012))
	require.NoError(t, err)

	schema, checker := field.Deconstruct()
	assert.Equal(t, source, schema)
	assert.Same(t, Draft202012, checker)
}

func TestDeconstructWithoutOptions(t *testing.T) {
	field, err := New(nil)
	require.NoError(t, err)

	schema, checker := field.Deconstruct()
	assert.Nil(t, schema)
	assert.Nil(t, checker)
}

func TestWithColumnDecodesSpecText(t *testing.T) {
	field, err := New(`{"type": "integer"}`, WithColumn(jsonColumn{}))
	require.NoError(t, err)

	require.NoError(t, field.Validate(5, Attributes{}))
}
