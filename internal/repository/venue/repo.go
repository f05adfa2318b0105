package venue

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/aliskhannn/happy-hour-mailer/internal/model"
)

var ErrNoVenuesFound = errors.New("no venues found")

// Repository reads venues from a CSV file with a "name,weight" header.
type Repository struct {
	path string
}

// NewRepository creates a new venue repository backed by the file at path.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// GetVenues parses every row of the venues file.
func (r *Repository) GetVenues() ([]model.Venue, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open venues file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var venues []model.Venue
	if err := gocsv.UnmarshalCSV(reader, &venues); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, ErrNoVenuesFound
		}
		return nil, fmt.Errorf("failed to parse venues file %s: %w", r.path, err)
	}

	if len(venues) == 0 {
		return nil, ErrNoVenuesFound
	}

	return venues, nil
}
