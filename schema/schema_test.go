package schema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wireMap serializes a schema's wire form and decodes it into generic maps.
func wireMap(t *testing.T, s Schema) map[string]any {
	t.Helper()
	data, err := s.WireForm().JSON()
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func definitionMap(t *testing.T, s Schema) map[string]any {
	t.Helper()
	def, ok := wireMap(t, s)["schema"].(map[string]any)
	require.True(t, ok, "schema key must be an object")
	return def
}

func propertyMap(t *testing.T, def map[string]any, name string) map[string]any {
	t.Helper()
	props, ok := def["properties"].(map[string]any)
	require.True(t, ok, "properties must be an object")
	prop, ok := props[name].(map[string]any)
	require.True(t, ok, "property %q must be present", name)
	return prop
}

func TestNewObject(t *testing.T) {
	s := NewObject("test_object")

	assert.Equal(t, "test_object", s.Name())
	assert.True(t, s.Strict())
	assert.False(t, s.AdditionalProperties())
	assert.Empty(t, s.Required())
	assert.Empty(t, s.PropertyNames())
}

func TestObjectSchemaWireForm(t *testing.T) {
	t.Run("empty schema has no required key", func(t *testing.T) {
		out := wireMap(t, NewObject("empty"))

		assert.Equal(t, "empty", out["name"])
		assert.Equal(t, true, out["strict"])

		def := out["schema"].(map[string]any)
		assert.Equal(t, "object", def["type"])
		assert.Equal(t, map[string]any{}, def["properties"])
		assert.Equal(t, false, def["additionalProperties"])
		assert.NotContains(t, def, "required")
	})

	t.Run("optional array property only has no required key", func(t *testing.T) {
		s := NewObject("history").
			AddArrayProperty("accessHistory", Object(Properties(
				Prop("timestamp", String("")),
				Prop("success", Boolean("")),
			)), "Access history", false)

		def := definitionMap(t, s)
		assert.NotContains(t, def, "required")
		assert.Nil(t, s.WireForm().Schema.Required)

		arr := propertyMap(t, def, "accessHistory")
		assert.Equal(t, "array", arr["type"])
		assert.Equal(t, "Access history", arr["description"])
		items := arr["items"].(map[string]any)
		assert.Equal(t, "object", items["type"])
		assert.NotContains(t, items, "required")
	})

	t.Run("array of scalars", func(t *testing.T) {
		s := NewObject("user").
			AddArrayProperty("skills", String("A skill"), "User skills", false)

		require.NoError(t, Validate(s))
		arr := propertyMap(t, definitionMap(t, s), "skills")
		assert.Equal(t, "array", arr["type"])
		items := arr["items"].(map[string]any)
		assert.Equal(t, "string", items["type"])
		assert.Equal(t, "A skill", items["description"])
		assert.NotContains(t, items, "items")
	})

	t.Run("required keeps marking order", func(t *testing.T) {
		s := NewObject("ordered").
			AddProperty("c", TypeString, "", true).
			AddProperty("skip", TypeString, "", false).
			AddProperty("a", TypeInteger, "", true).
			AddEnumProperty("b", []string{"x"}, "", true)

		def := definitionMap(t, s)
		assert.Equal(t, []any{"c", "a", "b"}, def["required"])
		assert.Equal(t, []string{"c", "a", "b"}, s.Required())
	})

	t.Run("properties keep insertion order", func(t *testing.T) {
		s := NewObject("ordered").
			AddProperty("zeta", TypeString, "", false).
			AddProperty("alpha", TypeString, "", false).
			AddProperty("mid", TypeString, "", false)

		data, err := s.WireForm().JSON()
		require.NoError(t, err)
		raw := string(data)
		assert.Less(t, strings.Index(raw, `"zeta"`), strings.Index(raw, `"alpha"`))
		assert.Less(t, strings.Index(raw, `"alpha"`), strings.Index(raw, `"mid"`))
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, s.PropertyNames())
	})
}

func TestAddProperty(t *testing.T) {
	t.Run("adds typed properties with descriptions", func(t *testing.T) {
		s := NewObject("test_object").
			AddProperty("name", TypeString, "Person name", true).
			AddProperty("age", TypeInteger, "Person age", false)

		def := definitionMap(t, s)
		name := propertyMap(t, def, "name")
		assert.Equal(t, "string", name["type"])
		assert.Equal(t, "Person name", name["description"])

		age := propertyMap(t, def, "age")
		assert.Equal(t, "integer", age["type"])
		assert.Equal(t, "Person age", age["description"])

		assert.Equal(t, []any{"name"}, def["required"])
	})

	t.Run("empty description is omitted", func(t *testing.T) {
		def := definitionMap(t, NewObject("x").AddProperty("flag", TypeBoolean, "", false))
		assert.NotContains(t, propertyMap(t, def, "flag"), "description")
	})

	t.Run("overwrite keeps position and replaces node", func(t *testing.T) {
		s := NewObject("x").
			AddProperty("first", TypeString, "old", false).
			AddProperty("second", TypeString, "", false).
			AddProperty("first", TypeNumber, "new", false)

		assert.Equal(t, []string{"first", "second"}, s.PropertyNames())
		node, ok := s.Property("first")
		require.True(t, ok)
		assert.Equal(t, "number", node.Type)
		assert.Equal(t, "new", node.Description)
	})

	t.Run("repeated required name is not de-duplicated", func(t *testing.T) {
		s := NewObject("x").
			AddProperty("id", TypeString, "", true).
			AddProperty("id", TypeString, "", true)

		assert.Equal(t, []string{"id", "id"}, s.Required())
	})

	t.Run("property options", func(t *testing.T) {
		s := NewObject("x").AddProperty("when", TypeString, "Timestamp", false,
			WithFormat("date-time"),
			WithPattern(`^\d{4}`),
			WithDefault("2024"),
			WithExtra("x-label", "When"),
		)

		when := propertyMap(t, definitionMap(t, s), "when")
		assert.Equal(t, "date-time", when["format"])
		assert.Equal(t, `^\d{4}`, when["pattern"])
		assert.Equal(t, "2024", when["default"])
		assert.Equal(t, "When", when["x-label"])
	})

	t.Run("items option", func(t *testing.T) {
		s := NewObject("x").AddProperty("tags", TypeArray, "", false, WithItems(String("")))

		tags := propertyMap(t, definitionMap(t, s), "tags")
		assert.Equal(t, "array", tags["type"])
		assert.Equal(t, map[string]any{"type": "string"}, tags["items"])
	})
}

func TestWithExtra(t *testing.T) {
	t.Run("standard keyword replaces the field", func(t *testing.T) {
		s := NewObject("x").AddProperty("t", TypeString, "d", false,
			WithExtra("type", "integer"),
			WithExtra("description", "replaced"),
		)

		data, err := s.WireForm().JSON()
		require.NoError(t, err)
		raw := string(data)
		assert.Equal(t, 1, strings.Count(raw, `"type":"integer"`))
		assert.NotContains(t, raw, `"type":"string"`)
		assert.Equal(t, 1, strings.Count(raw, `"description"`))

		prop := propertyMap(t, definitionMap(t, s), "t")
		assert.Equal(t, map[string]any{"type": "integer", "description": "replaced"}, prop)
	})

	t.Run("enum and items", func(t *testing.T) {
		s := NewObject("x").
			AddProperty("level", TypeString, "", false, WithExtra("enum", []string{"a", "b"})).
			AddProperty("tags", TypeArray, "", false, WithExtra("items", String("")))

		def := definitionMap(t, s)
		assert.Equal(t, []any{"a", "b"}, propertyMap(t, def, "level")["enum"])
		assert.Equal(t, map[string]any{"type": "string"}, propertyMap(t, def, "tags")["items"])
	})

	t.Run("unexpected value type is written once", func(t *testing.T) {
		s := NewObject("x").AddProperty("t", TypeString, "", false, WithExtra("type", []string{"string", "null"}))

		data, err := s.WireForm().JSON()
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(data), `"type":["string","null"]`))
		assert.Equal(t, 2, strings.Count(string(data), `"type"`), "root object plus the property")
	})

	t.Run("other keywords go to extras", func(t *testing.T) {
		s := NewObject("x").AddProperty("n", TypeInteger, "", false,
			WithExtra("minimum", 1),
			WithExtra("minimum", 2),
		)

		data, err := s.WireForm().JSON()
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(data), `"minimum"`))
		assert.Equal(t, float64(2), propertyMap(t, definitionMap(t, s), "n")["minimum"])
	})

	t.Run("nested additional properties", func(t *testing.T) {
		s := NewObject("x").
			AddObjectProperty("closed", Properties(Prop("a", String(""))), []string{"a"}, "", true,
				WithAdditionalProperties(false)).
			AddObjectProperty("open", Properties(Prop("a", String(""))), nil, "", false,
				WithExtra("additionalProperties", true))

		def := definitionMap(t, s)
		assert.Equal(t, false, propertyMap(t, def, "closed")["additionalProperties"])
		assert.Equal(t, true, propertyMap(t, def, "open")["additionalProperties"])
	})
}

func TestAddEnumProperty(t *testing.T) {
	statuses := []string{"active", "inactive", "pending"}
	s := NewObject("test_object").AddEnumProperty("status", statuses, "Account status", true)

	def := definitionMap(t, s)
	status := propertyMap(t, def, "status")
	assert.Equal(t, "string", status["type"])
	assert.Equal(t, "Account status", status["description"])
	assert.Equal(t, []any{"active", "inactive", "pending"}, status["enum"])
	assert.Equal(t, []any{"status"}, def["required"])
}

func TestAddObjectProperty(t *testing.T) {
	address := Properties(
		Prop("street", String("Street name")),
		Prop("city", String("City name")),
		Prop("zipcode", String("Postal code")),
	)

	t.Run("round trip", func(t *testing.T) {
		s := NewObject("test_object").
			AddProperty("name", TypeString, "", true).
			AddObjectProperty("address", address, []string{"street", "city"}, "Mailing address", true)

		def := definitionMap(t, s)
		nested := propertyMap(t, def, "address")
		assert.Equal(t, "object", nested["type"])
		assert.Equal(t, "Mailing address", nested["description"])
		assert.Equal(t, []any{"street", "city"}, nested["required"])
		assert.Equal(t, map[string]any{
			"street":  map[string]any{"type": "string", "description": "Street name"},
			"city":    map[string]any{"type": "string", "description": "City name"},
			"zipcode": map[string]any{"type": "string", "description": "Postal code"},
		}, nested["properties"])
		assert.NotContains(t, nested, "additionalProperties")

		assert.Equal(t, []any{"name", "address"}, def["required"])
	})

	t.Run("empty nested required is omitted", func(t *testing.T) {
		s := NewObject("x").AddObjectProperty("address", address, nil, "", false)

		nested := propertyMap(t, definitionMap(t, s), "address")
		assert.NotContains(t, nested, "required")
		assert.NotContains(t, nested, "description")
	})

	t.Run("unknown nested required passes through", func(t *testing.T) {
		s := NewObject("x").AddObjectProperty("address", address, []string{"country"}, "", false)

		nested := propertyMap(t, definitionMap(t, s), "address")
		assert.Equal(t, []any{"country"}, nested["required"])
	})
}

func TestSetAdditionalProperties(t *testing.T) {
	s := NewObject("x").AddProperty("a", TypeString, "", true)

	s.SetAdditionalProperties(true)
	first, err := s.WireForm().JSON()
	require.NoError(t, err)

	s.SetAdditionalProperties(true)
	second, err := s.WireForm().JSON()
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
	assert.Equal(t, true, definitionMap(t, s)["additionalProperties"])

	s.SetAdditionalProperties(false)
	assert.Equal(t, false, definitionMap(t, s)["additionalProperties"])
}

func TestSetStrict(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		s := NewObject("x").SetStrict(false)
		first, err := s.WireForm().JSON()
		require.NoError(t, err)

		second, err := s.SetStrict(false).WireForm().JSON()
		require.NoError(t, err)

		assert.JSONEq(t, string(first), string(second))
		assert.Equal(t, false, wireMap(t, s)["strict"])
	})

	t.Run("categorization", func(t *testing.T) {
		s := NewCategorization("x", []string{"a"})
		assert.True(t, s.Strict())

		s.SetStrict(false).SetStrict(false)
		assert.False(t, s.Strict())
		assert.Equal(t, false, wireMap(t, s)["strict"])
	})
}

func TestWireFormIsSnapshot(t *testing.T) {
	s := NewObject("x").AddProperty("a", TypeString, "", true)
	wire := s.WireForm()

	s.AddProperty("b", TypeString, "", true).SetAdditionalProperties(true)

	assert.Equal(t, 1, wire.Schema.Properties.Len())
	assert.Equal(t, []string{"a"}, wire.Schema.Required)
	assert.Equal(t, 2, s.WireForm().Schema.Properties.Len())
}

func TestWireFormSharesNoNodes(t *testing.T) {
	t.Run("nodes read back from the builder", func(t *testing.T) {
		s := NewObject("x").AddProperty("t", TypeString, "original", false)
		first := s.WireForm()

		node, ok := s.Property("t")
		require.True(t, ok)
		node.Description = "mutated"

		data, err := first.JSON()
		require.NoError(t, err)
		assert.NotContains(t, string(data), "mutated")
		assert.Contains(t, string(data), "original")

		later, err := s.WireForm().JSON()
		require.NoError(t, err)
		assert.Contains(t, string(later), "mutated")
	})

	t.Run("caller fragments", func(t *testing.T) {
		street := String("Street")
		items := Object(Properties(Prop("id", Integer(""))))
		s := NewObject("x").
			AddObjectProperty("address", Properties(Prop("street", street)), nil, "", false).
			AddArrayProperty("rows", items, "", false)

		street.Description = "changed"
		items.Required = []string{"id"}
		wire := s.WireForm()

		address, _ := wire.Schema.Properties.Get("address")
		nested, _ := address.Properties.Get("street")
		assert.Equal(t, "Street", nested.Description)

		rows, _ := wire.Schema.Properties.Get("rows")
		assert.Nil(t, rows.Items.Required)
	})

	t.Run("wire forms are independent", func(t *testing.T) {
		s := NewObject("x").AddArrayProperty("tags", String(""), "", false)
		first := s.WireForm()
		second := s.WireForm()

		tags, _ := first.Schema.Properties.Get("tags")
		tags.Items.Description = "edited"

		other, _ := second.Schema.Properties.Get("tags")
		assert.Empty(t, other.Items.Description)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  Schema
		wantErr error
	}{
		{
			name:   "valid object",
			schema: NewObject("x").AddProperty("a", TypeString, "", true),
		},
		{
			name:   "categorization",
			schema: NewCategorization("x", []string{"a", "b"}),
		},
		{
			name: "nested required not defined",
			schema: NewObject("x").AddObjectProperty("profile", Properties(
				Prop("name", String("")),
			), []string{"age"}, "", false),
			wantErr: ErrUnknownRequired,
		},
		{
			name:    "array without items",
			schema:  NewObject("x").AddArrayProperty("tags", nil, "", false),
			wantErr: ErrNilItems,
		},
		{
			name: "array items checked recursively",
			schema: NewObject("x").AddArrayProperty("people",
				Object(Properties(Prop("name", String(""))), "name", "role"), "", false),
			wantErr: ErrUnknownRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.schema)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.NotEmpty(t, verr.Path)
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := &ValidationError{Path: "profile", Message: "bad", Err: ErrUnknownRequired}
		assert.Equal(t, "schema: profile: bad", err.Error())
		assert.ErrorIs(t, err, ErrUnknownRequired)
	})

	t.Run("without path", func(t *testing.T) {
		err := &ValidationError{Message: "bad"}
		assert.Equal(t, "schema: bad", err.Error())
	})
}
