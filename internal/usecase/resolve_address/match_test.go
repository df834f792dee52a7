package resolve_address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WizardService/internal/domain"
)

func testCatalog() *domain.CatalogSnapshot {
	return &domain.CatalogSnapshot{
		Cities: []domain.ActiveCity{
			{
				ID:   "city-bucharest",
				Name: "București",
				Areas: []domain.CityArea{
					{ID: "area-s1", Name: "Sectorul 1"},
					{ID: "area-s2", Name: "Sectorul 2"},
					{ID: "area-s3", Name: "Sectorul 3"},
				},
			},
			{
				ID:   "city-cluj",
				Name: "Cluj-Napoca",
				Areas: []domain.CityArea{
					{ID: "area-centru", Name: "Centru"},
				},
			},
		},
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"București", "bucuresti"},
		{"BUCUREȘTI", "bucuresti"},
		{"  bucuresti  ", "bucuresti"},
		{"Timișoara", "timisoara"},
		{"Cluj-Napoca", "cluj-napoca"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeText(tt.input))
	}
}

func TestMatchCity(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name     string
		input    string
		expected string // id города или "" если не найден
	}{
		{"exact name", "București", "city-bucharest"},
		{"without diacritics", "bucuresti", "city-bucharest"},
		{"upper case", "BUCURESTI", "city-bucharest"},
		{"hyphenated city", "cluj-napoca", "city-cluj"},
		{"unsupported city", "Constanța", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city := matchCity(catalog, tt.input)
			if tt.expected == "" {
				assert.Nil(t, city)
				return
			}
			require.NotNil(t, city)
			assert.Equal(t, tt.expected, city.ID)
		})
	}
}

func TestMatchArea(t *testing.T) {
	catalog := testCatalog()
	city := catalog.FindCityByID("city-bucharest")
	require.NotNil(t, city)

	tests := []struct {
		name         string
		neighborhood string
		expected     string // id района или "" если район не распознан
	}{
		{"exact match", "Sectorul 2", "area-s2"},
		{"short form matches by containment", "Sector 1", "area-s1"},
		{"without diacritics", "sectorul 3", "area-s3"},
		{"unknown stays unresolved", "Pipera", ""},
		{"empty stays unresolved", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := matchArea(city, tt.neighborhood)
			if tt.expected == "" {
				assert.Nil(t, area)
				return
			}
			require.NotNil(t, area)
			assert.Equal(t, tt.expected, area.ID)
		})
	}
}

func TestMatchArea_NoAreas(t *testing.T) {
	city := &domain.ActiveCity{ID: "city-empty", Name: "Empty"}
	assert.Nil(t, matchArea(city, "anything"))
}
