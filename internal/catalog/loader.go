package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go-shop-sync/internal/model"

	"github.com/rs/zerolog/log"
)

const (
	idColumn = iota
	nameColumn
	ingredientsColumn
	categoryColumn
	minColumns
)

const (
	defaultProductName  = "Unnamed Product"
	defaultCategoryName = "Other"
	ingredientSeparator = "/"
)

func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w, path: %s", err, path)
	}
	defer f.Close()

	return Load(f)
}

// Load reads "productId,name,ingredients,category" rows after a header line.
// Malformed rows are skipped and blank fields get defaults instead of failing the load.
func Load(r io.Reader) (*Snapshot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return New(nil, nil), nil
		}
		return nil, fmt.Errorf("load catalog: read header: %w", err)
	}

	products := []model.Product{}
	categories := []model.Category{}
	categoryIds := map[string]string{}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn().Err(err).Int("line", line).Msg("catalog: skipping unreadable row")
			continue
		}
		if len(record) < minColumns {
			log.Warn().Int("line", line).Int("fields", len(record)).Msg("catalog: skipping short row")
			continue
		}

		id := strings.TrimSpace(record[idColumn])
		if id == "" {
			log.Warn().Int("line", line).Msg("catalog: skipping row without product id")
			continue
		}

		categoryName := orDefault(record[categoryColumn], defaultCategoryName)
		categoryId, ok := categoryIds[categoryName]
		if !ok {
			categoryId = fmt.Sprintf("cat%d", len(categories)+1)
			categoryIds[categoryName] = categoryId
			categories = append(categories, model.Category{Id: categoryId, Name: categoryName})
		}

		products = append(products, model.Product{
			Id:          id,
			Name:        orDefault(record[nameColumn], defaultProductName),
			CategoryId:  categoryId,
			Ingredients: parseIngredients(record[ingredientsColumn]),
		})
	}

	if len(products) == 0 {
		log.Warn().Msg("catalog: no products loaded")
	}

	return New(products, categories), nil
}

func parseIngredients(field string) []string {
	ingredients := []string{}
	for _, part := range strings.Split(field, ingredientSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			ingredients = append(ingredients, part)
		}
	}
	return ingredients
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
