package catalogservice

import "github.com/m04kA/SMC-WizardService/internal/domain"

// Catalog снимок каталога из CatalogService
type Catalog struct {
	Services []Service `json:"services"`
	Extras   []Extra   `json:"extras"`
	Cities   []City    `json:"cities"`
}

// Service активная услуга
type Service struct {
	ID       string  `json:"id"` // например, "STANDARD_CLEANING"
	Name     string  `json:"name"`
	MinHours float64 `json:"min_hours"`
	IsActive bool    `json:"is_active"`
}

// Extra активная дополнительная услуга
type Extra struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	IsActive bool    `json:"is_active"`
}

// City активный город с районами
type City struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	County   string `json:"county"`
	IsActive bool   `json:"is_active"`
	Areas    []Area `json:"areas"`
}

// Area район города
type Area struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CityID   string `json:"city_id"`
	CityName string `json:"city_name"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует снимок каталога в доменную модель
// Неактивные услуги и города отбрасываются
func (c *Catalog) ToDomain() *domain.CatalogSnapshot {
	snapshot := &domain.CatalogSnapshot{
		Services: make([]domain.ServiceInfo, 0, len(c.Services)),
		Extras:   make([]domain.ExtraInfo, 0, len(c.Extras)),
		Cities:   make([]domain.ActiveCity, 0, len(c.Cities)),
	}

	for _, s := range c.Services {
		if !s.IsActive {
			continue
		}
		snapshot.Services = append(snapshot.Services, domain.ServiceInfo{
			ID:       s.ID,
			Name:     s.Name,
			MinHours: s.MinHours,
		})
	}

	for _, e := range c.Extras {
		if !e.IsActive {
			continue
		}
		snapshot.Extras = append(snapshot.Extras, domain.ExtraInfo{
			ID:    e.ID,
			Name:  e.Name,
			Price: e.Price,
		})
	}

	for _, city := range c.Cities {
		if !city.IsActive {
			continue
		}
		areas := make([]domain.CityArea, 0, len(city.Areas))
		for _, a := range city.Areas {
			areas = append(areas, domain.CityArea{
				ID:       a.ID,
				Name:     a.Name,
				CityID:   a.CityID,
				CityName: a.CityName,
			})
		}
		snapshot.Cities = append(snapshot.Cities, domain.ActiveCity{
			ID:       city.ID,
			Name:     city.Name,
			County:   city.County,
			IsActive: city.IsActive,
			Areas:    areas,
		})
	}

	return snapshot
}
