package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestProjectTrims(t *testing.T) {
	models := []ModelRecord{
		{
			ID:   "m-1",
			Name: "Vios",
			ModelYears: []ModelYearRecord{
				{
					ID:   "my-1",
					Year: 2024,
					Trims: []TrimRecord{
						{ID: "t-1", Name: "1.5 Entry", Title: strptr("Vios 1.5 Entry 2024")},
						{ID: "t-2", Name: "1.5 Smart", FullName: strptr("Vios 1.5 Smart")},
						{ID: "t-3", Name: "1.5 Premium"},
					},
				},
			},
		},
	}

	docs := Project(models, 3)
	require.Len(t, docs, 3)

	require.Equal(t, "t-1", docs[0].ID)
	require.Equal(t, "m-1", docs[0].ModelID)
	require.Equal(t, 3, docs[0].BrandID)
	require.Equal(t, "my-1", docs[0].ModelYearID)
	require.NotNil(t, docs[0].TrimID)
	require.Equal(t, "t-1", *docs[0].TrimID)
	require.Equal(t, 2024, docs[0].Year)

	// Title fallback: title, then full_name, then the trim name.
	require.Equal(t, "Vios 1.5 Entry 2024", docs[0].Title)
	require.Equal(t, "Vios 1.5 Smart", docs[1].Title)
	require.Equal(t, "1.5 Premium", docs[2].Title)
}

func TestProjectTrimlessModelYear(t *testing.T) {
	models := []ModelRecord{
		{
			ID:   "m-1",
			Name: "Vios",
			ModelYears: []ModelYearRecord{
				{ID: "my-1", Year: 2022},
			},
		},
	}

	docs := Project(models, 3)
	require.Len(t, docs, 1)

	// The model-year stands in as its own leaf.
	require.Equal(t, "my-1", docs[0].ID)
	require.Equal(t, "my-1", docs[0].ModelYearID)
	require.Nil(t, docs[0].TrimID)
	require.Equal(t, "Vios", docs[0].Title)
}

func TestProjectTrimlessTitleFallback(t *testing.T) {
	models := []ModelRecord{
		{
			ID:   "m-1",
			Name: "Vios",
			ModelYears: []ModelYearRecord{
				{ID: "my-1", Year: 2022, Title: strptr("Vios 2022 Mid")},
				{ID: "my-2", Year: 2021, FullName: strptr("Vios Facelift")},
				{ID: "my-3", Year: 2020, Name: strptr("Vios Classic")},
			},
		},
	}

	docs := Project(models, 3)
	require.Len(t, docs, 3)
	require.Equal(t, "Vios 2022 Mid", docs[0].Title)
	require.Equal(t, "Vios Facelift", docs[1].Title)
	require.Equal(t, "Vios Classic", docs[2].Title)
}

func TestProjectCardinality(t *testing.T) {
	models := []ModelRecord{
		{
			ID:   "m-1",
			Name: "A",
			ModelYears: []ModelYearRecord{
				{ID: "my-1", Year: 2024, Trims: []TrimRecord{{ID: "t-1", Name: "x"}, {ID: "t-2", Name: "y"}}},
				{ID: "my-2", Year: 2023},
			},
		},
		{
			ID:   "m-2",
			Name: "B",
			ModelYears: []ModelYearRecord{
				{ID: "my-3", Year: 2024, Trims: []TrimRecord{{ID: "t-3", Name: "z"}}},
			},
		},
	}

	// One document per trim plus one per trimless model-year.
	docs := Project(models, 1)
	require.Len(t, docs, 4)
}

func TestProjectEmpty(t *testing.T) {
	require.Empty(t, Project(nil, 1))
	require.Empty(t, Project([]ModelRecord{{ID: "m-1", Name: "A"}}, 1))
}
