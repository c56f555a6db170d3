package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModelRow(t *testing.T) {
	m := &ModelRecord{ID: "m-1", Name: "Mirage G4", BodyType: strptr("sedan")}

	row := modelRow(7, m)
	require.Equal(t, "m-1", row.ID)
	require.Equal(t, uint(7), row.BrandID)
	require.Equal(t, "Mirage G4", row.Name)
	require.Equal(t, "mirage-g4", row.Slug)
	require.Equal(t, "sedan", *row.BodyType)

	// An explicit slug wins over the derived one.
	m.Slug = strptr("mirage-g4-sedan")
	require.Equal(t, "mirage-g4-sedan", modelRow(7, m).Slug)
}

func TestModelYearRowTitleDefault(t *testing.T) {
	m := &ModelRecord{ID: "m-1", Name: "Vios"}
	my := &ModelYearRecord{ID: "my-1", Year: 2024}

	row := modelYearRow(m, my)
	require.Equal(t, "my-1", row.ID)
	require.Equal(t, "m-1", row.ModelID)
	require.Equal(t, 2024, row.Year)
	require.Equal(t, "Vios 2024", *row.Title)

	my.Title = strptr("Vios 2024 Mid")
	require.Equal(t, "Vios 2024 Mid", *modelYearRow(m, my).Title)
}

func TestTrimRowsSynthetic(t *testing.T) {
	m := &ModelRecord{ID: "m-1", Name: "Vios", Fuel: strptr("gasoline")}
	my := &ModelYearRecord{ID: "my-1", Year: 2022}

	rows := trimRows(m, my)
	require.Len(t, rows, 1)

	// The synthetic trim reuses the model-year id and the model name.
	require.Equal(t, "my-1", rows[0].ID)
	require.Equal(t, "my-1", rows[0].ModelYearID)
	require.Equal(t, "Vios", rows[0].TrimName)
	require.Equal(t, "gasoline", rows[0].Fuel)
	require.Equal(t, "FWD", rows[0].Drive)
}

func TestTrimRowsFuelAndDriveDefaults(t *testing.T) {
	m := &ModelRecord{ID: "m-1", Name: "VF 8"}
	my := &ModelYearRecord{
		ID:   "my-1",
		Year: 2024,
		Trims: []TrimRecord{
			{ID: "t-1", Name: "Eco", Fuel: strptr("electric"), Drive: strptr("AWD")},
			{ID: "t-2", Name: "Plus"},
		},
	}

	rows := trimRows(m, my)
	require.Len(t, rows, 2)

	require.Equal(t, "electric", rows[0].Fuel)
	require.Equal(t, "AWD", rows[0].Drive)

	// No trim fuel, no model fuel: fall back to the defaults.
	require.Equal(t, "gasoline", rows[1].Fuel)
	require.Equal(t, "FWD", rows[1].Drive)

	// A model-level fuel covers trims that omit their own.
	m.Fuel = strptr("electric")
	rows = trimRows(m, my)
	require.Equal(t, "electric", rows[1].Fuel)
}

func TestSyntheticTrimFuelFallsBackToModelYear(t *testing.T) {
	m := &ModelRecord{ID: "m-1", Name: "VF 8"}
	my := &ModelYearRecord{ID: "my-1", Year: 2024, Fuel: strptr("electric"), Drive: strptr("RWD")}

	row := syntheticTrimRow(m, my)
	require.Equal(t, "electric", row.Fuel)
	require.Equal(t, "RWD", row.Drive)
}

func TestSpecFieldsBodyTypeFallback(t *testing.T) {
	attrs := &SpecAttrs{Transmission: strptr("CVT")}

	fields := specFields(attrs, strptr("hatchback"))
	require.Equal(t, "CVT", *fields.Transmission)
	require.Equal(t, "hatchback", *fields.BodyType)

	attrs.BodyType = strptr("suv")
	require.Equal(t, "suv", *specFields(attrs, strptr("hatchback")).BodyType)
}

func TestCoalesce(t *testing.T) {
	empty := ""
	require.Equal(t, "a", coalesce(strptr("a"), strptr("b"), "c"))
	require.Equal(t, "b", coalesce(nil, strptr("b"), "c"))
	require.Equal(t, "b", coalesce(&empty, strptr("b"), "c"))
	require.Equal(t, "c", coalesce(nil, nil, "c"))
}
