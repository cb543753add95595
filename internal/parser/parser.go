package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"

	"contract-rag/internal/chunker"
	"contract-rag/internal/models"
)

// ExtractPages reads a contract PDF and returns one cleaned Page per PDF
// page that yielded text. Pages whose extraction comes back empty are
// dropped here, before chunking.
func ExtractPages(filePath string) ([]models.Page, error) {
	if strings.ToLower(filepath.Ext(filePath)) != ".pdf" {
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(filePath))
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	reader, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return nil, err
	}

	var pages []models.Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Err(err).Int("page", i).Msg("Failed to extract page text")
			continue
		}
		cleaned := chunker.Clean(pageText)
		if cleaned == "" {
			continue
		}
		pages = append(pages, models.Page{PageNumber: i, Text: cleaned})
	}

	log.Debug().Int("pages", len(pages)).Str("file", filePath).Msg("Extracted pages")
	return pages, nil
}
