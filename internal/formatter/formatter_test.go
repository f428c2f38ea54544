package formatter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spring01/music/internal/models"
	th "github.com/spring01/music/internal/testing"
)

func testRows() []models.CatalogRow {
	return []models.CatalogRow{
		{ArtistAlbumTitle: models.MustEncodeKey("Abba", "Gold", "Dancing Queen"), IsMusic: 1, Link: "https://music.youtube.com/watch?v=a"},
		{ArtistAlbumTitle: models.MustEncodeKey("Abba", "Arrival", "Money, Money, Money"), IsMusic: 1, Link: "https://music.youtube.com/watch?v=b"},
		{ArtistAlbumTitle: models.MustEncodeKey("Cure", "", "Lovesong"), IsMusic: 1, Link: "https://music.youtube.com/watch?v=c"},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportCatalogToCSV", func(t *testing.T) {
		data, err := ExportCatalogToCSV(testRows())
		if err != nil {
			t.Fatalf("ExportCatalogToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "Artist,Album,Title,Link\n") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, `Abba,Arrival,"Money, Money, Money",https://music.youtube.com/watch?v=b`) {
			t.Errorf("CSV should quote fields with commas, got: %s", output)
		}
		if lines := strings.Count(output, "\n"); lines != 4 {
			t.Errorf("expected 4 lines, got %d", lines)
		}
	})

	t.Run("ExportCatalogToMarkdown", func(t *testing.T) {
		data, err := ExportCatalogToMarkdown("All music", testRows())
		if err != nil {
			t.Fatalf("ExportCatalogToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# All music",
			"**Songs**: 3",
			"## Abba",
			"- [Dancing Queen](https://music.youtube.com/watch?v=a) (Gold)",
			"## Cure",
			"- [Lovesong](https://music.youtube.com/watch?v=c)\n",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("markdown missing %q, got: %s", want, output)
			}
		}
		if strings.Count(output, "## Abba") != 1 {
			t.Errorf("expected one Abba section, got: %s", output)
		}
	})

	t.Run("ExportCatalogToText", func(t *testing.T) {
		data, err := ExportCatalogToText(testRows())
		if err != nil {
			t.Fatalf("ExportCatalogToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Songs: 3") || !strings.Contains(output, "1. Abba - Dancing Queen [Gold]") {
			t.Errorf("unexpected text output: %s", output)
		}
	})

	t.Run("undecodable keys are shown whole", func(t *testing.T) {
		data, err := ExportCatalogToText([]models.CatalogRow{{ArtistAlbumTitle: "legacy", Link: "l"}})
		if err != nil {
			t.Fatalf("ExportCatalogToText failed: %v", err)
		}
		if !strings.Contains(string(data), " - legacy") {
			t.Errorf("unexpected output: %s", data)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		data, err := ExportCatalogToCSV(nil)
		if err != nil {
			t.Fatalf("ExportCatalogToCSV failed: %v", err)
		}
		if string(data) != "Artist,Album,Title,Link\n" {
			t.Errorf("expected only headers, got: %s", data)
		}
	})
}

func TestExportCatalog(t *testing.T) {
	rows := testRows()
	for _, format := range []string{"csv", "CSV", "markdown", "md", "txt", "text"} {
		if _, err := ExportCatalog(format, rows); err != nil {
			t.Errorf("format %s: unexpected error %v", format, err)
		}
	}
	if _, err := ExportCatalog("xml", rows); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestWriters(t *testing.T) {
	t.Run("WriteCatalogExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.csv")
		if err := WriteCatalogExport(FormatCSV, testRows(), path); err != nil {
			t.Fatalf("WriteCatalogExport failed: %v", err)
		}

		th.AssertFileExists(t, path)
		if content := th.MustReadFile(t, path); !strings.Contains(content, "Dancing Queen") {
			t.Errorf("unexpected file content: %s", content)
		}
	})

	t.Run("WriteCatalogExport fails on unwritable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "catalog.csv")
		if err := WriteCatalogExport(FormatCSV, testRows(), path); err == nil {
			t.Error("expected write error")
		}
	})

	t.Run("WriteCatalogExport rejects unknown format", func(t *testing.T) {
		if err := WriteCatalogExport("xml", testRows(), filepath.Join(t.TempDir(), "x")); err == nil {
			t.Error("expected format error")
		}
	})
}

func TestFormatEntry(t *testing.T) {
	got := FormatEntry(&models.Entry{ID: "2", Artist: "A", Album: "B", Title: "C", URI: "u"})
	if got != "[2] A - C (B)\n    u" {
		t.Errorf("unexpected entry line %q", got)
	}
}
