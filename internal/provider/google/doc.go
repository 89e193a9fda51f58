// Package google provides a Gemini completion capability for structured
// output, on either the Gemini API or Vertex AI.
//
// The response schema is converted to a genai.Schema and sent with the
// application/json response MIME type. Property order is preserved with
// PropertyOrdering.
//
//	c, err := google.New(ctx, os.Getenv("GOOGLE_API_KEY"))
//	c, err := google.NewVertex(ctx, "my-project", "us-central1")
package google
