package resolve_address

import (
	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionModels "github.com/m04kA/SMC-WizardService/internal/service/sessions/models"
	resolveAddress "github.com/m04kA/SMC-WizardService/internal/usecase/resolve_address"
)

// AddressCandidateResponse кандидат адреса из автодополнения
type AddressCandidateResponse struct {
	StreetAddress string   `json:"streetAddress"`
	City          string   `json:"city"`
	County        string   `json:"county"`
	Neighborhood  string   `json:"neighborhood,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// SuggestAddressResponse HTTP response model автодополнения
type SuggestAddressResponse struct {
	Candidates []AddressCandidateResponse `json:"candidates"`
}

// ResolveAddressRequest HTTP request model привязки введенного адреса
type ResolveAddressRequest struct {
	StreetAddress string   `json:"streetAddress"`
	City          string   `json:"city"`
	County        string   `json:"county,omitempty"`
	Neighborhood  string   `json:"neighborhood,omitempty"`
	Floor         string   `json:"floor,omitempty"`
	Apartment     string   `json:"apartment,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// SelectSavedAddressRequest HTTP request model выбора сохраненного адреса
type SelectSavedAddressRequest struct {
	AddressID string `json:"addressId"`
}

// AddressResponse HTTP response model с результатом привязки
// Пустой areaId означает, что район не распознан и клиент должен
// предложить выбор района вручную
type AddressResponse struct {
	Session  *sessionModels.SessionResponse `json:"session"`
	CityID   string                         `json:"cityId"`
	CityName string                         `json:"cityName"`
	AreaID   string                         `json:"areaId,omitempty"`
	AreaName string                         `json:"areaName,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ResolveAddressRequest) ToUseCaseRequest(sessionID string) *resolveAddress.ResolveRequest {
	return &resolveAddress.ResolveRequest{
		SessionID: sessionID,
		Address: domain.FreeformAddress{
			StreetAddress: r.StreetAddress,
			City:          r.City,
			County:        r.County,
			Floor:         r.Floor,
			Apartment:     r.Apartment,
			Latitude:      r.Latitude,
			Longitude:     r.Longitude,
		},
		Neighborhood: r.Neighborhood,
	}
}

// FromSuggestResponse конвертирует кандидатов в HTTP response
func FromSuggestResponse(resp *resolveAddress.SuggestResponse) *SuggestAddressResponse {
	candidates := make([]AddressCandidateResponse, 0, len(resp.Candidates))
	for _, c := range resp.Candidates {
		candidates = append(candidates, AddressCandidateResponse{
			StreetAddress: c.StreetAddress,
			City:          c.City,
			County:        c.County,
			Neighborhood:  c.Neighborhood,
			Latitude:      c.Latitude,
			Longitude:     c.Longitude,
		})
	}
	return &SuggestAddressResponse{Candidates: candidates}
}

// FromUseCaseResponse конвертирует результат привязки в HTTP response
func FromUseCaseResponse(resp *resolveAddress.Response) *AddressResponse {
	out := &AddressResponse{
		Session:  sessionModels.FromDomainSession(resp.Session),
		CityID:   resp.City.ID,
		CityName: resp.City.Name,
	}
	if resp.Area != nil {
		out.AreaID = resp.Area.ID
		out.AreaName = resp.Area.Name
	}
	return out
}
