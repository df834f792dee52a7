package domain

import "strings"

// CityArea район (сектор) поддерживаемого города
type CityArea struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CityID   string `json:"cityId"`
	CityName string `json:"cityName"`
}

// ActiveCity поддерживаемый город с районами
// Поставляется каталогом; для мастера - только чтение
type ActiveCity struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	County   string     `json:"county"`
	IsActive bool       `json:"isActive"`
	Areas    []CityArea `json:"areas"`
}

// ServiceInfo активная услуга из каталога
type ServiceInfo struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	MinHours float64 `json:"minHours"`
}

// ExtraInfo активная дополнительная услуга из каталога
type ExtraInfo struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CatalogSnapshot снимок каталога, сделанный один раз на сессию мастера
// Передается явно в резолвер адресов и генераторы, чтобы те оставались чистыми
type CatalogSnapshot struct {
	Services []ServiceInfo `json:"services"`
	Extras   []ExtraInfo   `json:"extras"`
	Cities   []ActiveCity  `json:"cities"`
}

// FindService возвращает услугу по идентификатору
func (c *CatalogSnapshot) FindService(serviceType string) *ServiceInfo {
	for i := range c.Services {
		if c.Services[i].ID == serviceType {
			return &c.Services[i]
		}
	}
	return nil
}

// FindCityByID возвращает город по идентификатору
func (c *CatalogSnapshot) FindCityByID(cityID string) *ActiveCity {
	for i := range c.Cities {
		if c.Cities[i].ID == cityID {
			return &c.Cities[i]
		}
	}
	return nil
}

// FindCityByName возвращает город по имени без учета регистра
func (c *CatalogSnapshot) FindCityByName(name string) *ActiveCity {
	for i := range c.Cities {
		if strings.EqualFold(c.Cities[i].Name, name) {
			return &c.Cities[i]
		}
	}
	return nil
}
