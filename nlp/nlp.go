package nlp

import (
	"context"
	"encoding/base64"
	"fmt"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"
)

// Extractor finds place names in free-text scenario descriptions so they
// can be geocoded.
type Extractor struct {
	client *language.Client
}

// NewExtractor creates a Natural Language client from base64-encoded
// service-account JSON.
func NewExtractor(ctx context.Context, encodedCreds string) (*Extractor, error) {
	creds, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("failed to decode natural language credentials: %w", err)
	}

	client, err := language.NewClient(ctx, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create natural language client: %w", err)
	}
	return &Extractor{client: client}, nil
}

func (e *Extractor) Close() error {
	return e.client.Close()
}

// FirstLocation returns the first LOCATION or ADDRESS entity in the text,
// or "" when none is found.
func (e *Extractor) FirstLocation(ctx context.Context, text string) (string, error) {
	req := &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := e.client.AnalyzeEntities(ctx, req)
	if err != nil {
		return "", fmt.Errorf("AnalyzeEntities error: %w", err)
	}

	for _, entity := range resp.Entities {
		t := entity.Type.String()
		if t == "LOCATION" || t == "ADDRESS" {
			return entity.Name, nil
		}
	}
	return "", nil
}
