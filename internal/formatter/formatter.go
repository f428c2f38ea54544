// package formatter provides functions to export catalog data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/spring01/music/internal/models"
)

// Export formats accepted by [ExportCatalog].
const (
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatText     = "txt"
)

// catalogFields splits a row key for display. Keys that do not decode are shown whole as the title.
func catalogFields(row models.CatalogRow) (artist, album, title string) {
	artist, album, title, err := models.DecodeKey(row.ArtistAlbumTitle)
	if err != nil {
		return "", "", row.ArtistAlbumTitle
	}
	return artist, album, title
}

// ExportCatalogToCSV converts catalog rows to CSV format with columns: Artist, Album, Title, Link
func ExportCatalogToCSV(rows []models.CatalogRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Artist", "Album", "Title", "Link"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, row := range rows {
		artist, album, title := catalogFields(row)
		if err := writer.Write([]string{artist, album, title, row.Link}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportCatalogToMarkdown converts catalog rows to a Markdown document grouped by artist
func ExportCatalogToMarkdown(heading string, rows []models.CatalogRow) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", heading))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n", len(rows)))

	current := "\x00"
	for _, row := range rows {
		artist, album, title := catalogFields(row)
		if artist != current {
			buf.WriteString(fmt.Sprintf("\n## %s\n\n", artist))
			current = artist
		}
		albumPart := ""
		if album != "" {
			albumPart = fmt.Sprintf(" (%s)", album)
		}
		buf.WriteString(fmt.Sprintf("- [%s](%s)%s\n", title, row.Link, albumPart))
	}

	return buf.Bytes(), nil
}

// ExportCatalogToText converts catalog rows to plain text format
func ExportCatalogToText(rows []models.CatalogRow) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(rows)))
	for i, row := range rows {
		artist, album, title := catalogFields(row)
		buf.WriteString(fmt.Sprintf("%d. %s - %s [%s]\n", i+1, artist, title, album))
	}

	return buf.Bytes(), nil
}

// ExportCatalog renders rows in format. Unknown formats fail.
func ExportCatalog(format string, rows []models.CatalogRow) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatCSV:
		return ExportCatalogToCSV(rows)
	case FormatMarkdown, "md":
		return ExportCatalogToMarkdown("All music", rows)
	case FormatText, "text":
		return ExportCatalogToText(rows)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// WriteCatalogExport renders rows in format and writes them to path.
func WriteCatalogExport(format string, rows []models.CatalogRow, path string) error {
	data, err := ExportCatalog(format, rows)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// FormatEntry renders an entry on one line for terminal output
func FormatEntry(entry *models.Entry) string {
	return fmt.Sprintf("[%s] %s - %s (%s)\n    %s", entry.ID, entry.Artist, entry.Title, entry.Album, entry.URI)
}
