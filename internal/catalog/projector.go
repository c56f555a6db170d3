package catalog

// Document is one flat search-index record: a sellable leaf
// configuration (a trim, or a trimless model-year standing in as its
// own trim).
type Document struct {
	ID          string  `json:"id"`
	ModelID     string  `json:"model_id"`
	BrandID     int     `json:"brand_id"`
	ModelYearID string  `json:"model_year_id"`
	TrimID      *string `json:"trim_id"`
	Year        int     `json:"year"`
	Title       string  `json:"title"`
}

// Project flattens the model tree of one brand file into documents:
// one per trim, plus one per trimless model-year. The emitted count is
// always sum over model-years of max(1, len(trims)).
func Project(models []ModelRecord, brandID int) []Document {
	var documents []Document

	for i := range models {
		m := &models[i]

		for j := range m.ModelYears {
			my := &m.ModelYears[j]

			if len(my.Trims) == 0 {
				documents = append(documents, Document{
					ID:          my.ID,
					ModelID:     m.ID,
					BrandID:     brandID,
					ModelYearID: my.ID,
					TrimID:      nil,
					Year:        my.Year,
					Title:       firstOf(my.Title, my.FullName, my.Name, m.Name),
				})
				continue
			}

			for k := range my.Trims {
				t := &my.Trims[k]
				trimID := t.ID
				documents = append(documents, Document{
					ID:          t.ID,
					ModelID:     m.ID,
					BrandID:     brandID,
					ModelYearID: my.ID,
					TrimID:      &trimID,
					Year:        my.Year,
					Title:       firstOf(t.Title, t.FullName, nil, t.Name),
				})
			}
		}
	}

	return documents
}

// firstOf resolves a title fallback chain, ending on the required name.
func firstOf(a, b, c *string, name string) string {
	for _, v := range []*string{a, b, c} {
		if v != nil && *v != "" {
			return *v
		}
	}
	return name
}
