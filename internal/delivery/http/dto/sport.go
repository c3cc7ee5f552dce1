package dto

import "sportmed/internal/domain/sport"

type SelectSportRequest struct {
	Sport string `json:"sport" validate:"required"`
}

type SportResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
}

func NewSportResponse(s sport.Sport) SportResponse {
	return SportResponse{ID: s.ID, Name: s.Name, Description: s.Description, Benefits: s.Benefits}
}

func NewSportResponses(items []sport.Sport) []SportResponse {
	out := make([]SportResponse, 0, len(items))
	for _, s := range items {
		out = append(out, NewSportResponse(s))
	}
	return out
}
