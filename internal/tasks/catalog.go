package tasks

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const (
	catalogType    = "AMAZON.MusicPlaylist"
	catalogVersion = 2.0
	popularity     = 90
)

// CatalogDocument is the voice platform's playlist catalog upload format.
type CatalogDocument struct {
	Type     string          `json:"type"`
	Version  float64         `json:"version"`
	Locales  []CatalogLocale `json:"locales"`
	Entities []CatalogEntity `json:"entities"`
}

type CatalogLocale struct {
	Country  string `json:"country"`
	Language string `json:"language"`
}

type CatalogEntity struct {
	ID              string            `json:"id"`
	Names           []CatalogName     `json:"names"`
	Popularity      CatalogPopularity `json:"popularity"`
	LastUpdatedTime string            `json:"lastUpdatedTime"`
}

type CatalogName struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

type CatalogPopularity struct {
	Default int `json:"default"`
}

// BuildCatalog lists each playlist name as an entity updated at now.
func BuildCatalog(names []string, now time.Time) *CatalogDocument {
	updated := now.UTC().Format("2006-01-02T15:04:05.000Z")

	doc := &CatalogDocument{
		Type:     catalogType,
		Version:  catalogVersion,
		Locales:  []CatalogLocale{{Country: "US", Language: "en"}},
		Entities: make([]CatalogEntity, 0, len(names)),
	}
	for _, name := range names {
		doc.Entities = append(doc.Entities, CatalogEntity{
			ID:              name,
			Names:           []CatalogName{{Language: "en", Value: name}},
			Popularity:      CatalogPopularity{Default: popularity},
			LastUpdatedTime: updated,
		})
	}
	return doc
}

// WriteCatalog writes doc as indented JSON to path.
func WriteCatalog(doc *CatalogDocument, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}
