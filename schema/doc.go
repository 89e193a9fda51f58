// Package schema builds JSON Schema documents that constrain a model's
// structured output.
//
// Two schema kinds implement [Schema]: [ObjectSchema], built property by
// property, and [CategorizationSchema], a fixed {category, reason} shape.
// Both produce a [Wire] document ({name, strict, schema}) on demand.
//
// # Object Schemas
//
//	s := schema.NewObject("user_analysis").
//		AddProperty("username", schema.TypeString, "Username of the user", true).
//		AddEnumProperty("role", []string{"admin", "user", "guest"}, "User role", true).
//		AddObjectProperty("profile", schema.Properties(
//			schema.Prop("fullName", schema.String("Full name of the user")),
//			schema.Prop("age", schema.Integer("Age of the user")),
//		), []string{"fullName"}, "User profile information", true,
//			schema.WithAdditionalProperties(false)).
//		AddArrayProperty("skills", schema.String("A skill"), "User skills", false)
//
// Properties keep insertion order in the serialized document. The required
// list keeps marking order and is omitted when empty. Nothing is validated
// while building; call [Validate] to check required names and array items.
//
// # Categorization
//
//	s := schema.NewCategorization("contact_categorization", []string{"Real", "Fake"})
//
// # Strict Mode
//
// Schemas are strict by default. Strict only sets the wire flag; nested
// objects are sent as built, so strict OpenAI requests need
// [WithAdditionalProperties](false) on each nested object.
package schema
