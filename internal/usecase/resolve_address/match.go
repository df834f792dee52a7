package resolve_address

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/m04kA/SMC-WizardService/internal/domain"
)

// foldTransformer снимает диакритику: разложение NFD, удаление
// комбинируемых знаков, сборка обратно в NFC
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText приводит строку к сравнимой форме:
// без диакритики, в нижнем регистре, без крайних пробелов
// "București" и "bucuresti" дают одинаковый результат
func normalizeText(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// matchCity ищет город в каталоге по имени без учета регистра и диакритики
// Возвращает nil, если город не обслуживается
func matchCity(catalog *domain.CatalogSnapshot, name string) *domain.ActiveCity {
	target := normalizeText(name)
	if target == "" {
		return nil
	}
	for i := range catalog.Cities {
		if normalizeText(catalog.Cities[i].Name) == target {
			return &catalog.Cities[i]
		}
	}
	return nil
}

// matchArea ищет район города по названию из адреса
// Сначала точное совпадение нормализованных названий, затем вхождение
// подстроки в обе стороны ("Sector 1" находит "Sectorul 1")
// При отсутствии совпадений возвращается nil: район остается неопределенным,
// и клиент выбирает его вручную из списка
func matchArea(city *domain.ActiveCity, neighborhood string) *domain.CityArea {
	target := normalizeText(neighborhood)
	if target == "" {
		return nil
	}

	for i := range city.Areas {
		if normalizeText(city.Areas[i].Name) == target {
			return &city.Areas[i]
		}
	}
	for i := range city.Areas {
		areaName := normalizeText(city.Areas[i].Name)
		if containsLoose(areaName, target) || containsLoose(target, areaName) {
			return &city.Areas[i]
		}
	}

	return nil
}

// containsLoose проверяет, что haystack содержит needle как подстроку
// или пословно как префиксы: "sectorul 1" содержит "sector 1",
// хотя буквального вхождения подстроки нет
func containsLoose(haystack, needle string) bool {
	if strings.Contains(haystack, needle) {
		return true
	}

	hw := strings.Fields(haystack)
	nw := strings.Fields(needle)
	if len(nw) == 0 || len(nw) != len(hw) {
		return false
	}
	for i := range nw {
		if !strings.HasPrefix(hw[i], nw[i]) {
			return false
		}
	}
	return true
}
