package get_slot_options

import getSlotOptions "github.com/m04kA/SMC-WizardService/internal/usecase/get_slot_options"

// SlotOptionsResponse HTTP response model
type SlotOptionsResponse struct {
	StartTimes         []string `json:"startTimes"`
	EndTimes           []string `json:"endTimes"`
	MinDurationMinutes int      `json:"minDurationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotOptions.Response) *SlotOptionsResponse {
	startTimes := make([]string, 0, len(resp.StartTimes))
	for _, t := range resp.StartTimes {
		startTimes = append(startTimes, t.String())
	}
	endTimes := make([]string, 0, len(resp.EndTimes))
	for _, t := range resp.EndTimes {
		endTimes = append(endTimes, t.String())
	}

	return &SlotOptionsResponse{
		StartTimes:         startTimes,
		EndTimes:           endTimes,
		MinDurationMinutes: resp.MinDurationMinutes,
	}
}
