package update_form

import (
	"fmt"

	"github.com/m04kA/SMC-WizardService/internal/domain"
)

// validateRequest валидирует частичное обновление формы
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	u := req.Update

	if u.NumRooms != nil && *u.NumRooms < domain.MinRooms {
		return fmt.Errorf("%w: numRooms must be >= %d", ErrInvalidInput, domain.MinRooms)
	}
	if u.NumBathrooms != nil && *u.NumBathrooms < domain.MinBathrooms {
		return fmt.Errorf("%w: numBathrooms must be >= %d", ErrInvalidInput, domain.MinBathrooms)
	}
	if u.SpecialInstructions != nil && len(*u.SpecialInstructions) > domain.MaxSpecialInstructionsLength {
		return fmt.Errorf("%w: specialInstructions exceeds %d characters",
			ErrInvalidInput, domain.MaxSpecialInstructionsLength)
	}
	if u.Extras != nil {
		for _, e := range *u.Extras {
			if e.ExtraID == "" {
				return fmt.Errorf("%w: extra with empty extraId", ErrInvalidInput)
			}
		}
	}
	if u.SelectedAreaID != nil && *u.SelectedAreaID == "" {
		return fmt.Errorf("%w: selectedAreaId must not be empty", ErrInvalidInput)
	}
	if u.SelectedCityID != nil && *u.SelectedCityID == "" {
		return fmt.Errorf("%w: selectedCityId must not be empty", ErrInvalidInput)
	}

	return nil
}

// validateAreaSelection сверяет ручной выбор города/района со снимком
// каталога сессии: город должен существовать, район - принадлежать городу
func validateAreaSelection(session *domain.WizardSession, u domain.FormUpdate) error {
	if u.SelectedCityID == nil && u.SelectedAreaID == nil {
		return nil
	}
	if session.Catalog == nil {
		return fmt.Errorf("%w: session has no catalog snapshot", ErrInvalidInput)
	}

	cityID := session.Form.SelectedCityID
	if u.SelectedCityID != nil {
		cityID = *u.SelectedCityID
	}
	city := session.Catalog.FindCityByID(cityID)
	if city == nil {
		return fmt.Errorf("%w: unknown city %q", ErrInvalidInput, cityID)
	}

	if u.SelectedAreaID != nil {
		for i := range city.Areas {
			if city.Areas[i].ID == *u.SelectedAreaID {
				return nil
			}
		}
		return fmt.Errorf("%w: area %q does not belong to city %q", ErrInvalidInput, *u.SelectedAreaID, cityID)
	}
	return nil
}
