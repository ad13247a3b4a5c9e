package tokens

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

type tokenSequencer struct {
	PatientRepository contracts.PatientRepository
}

func NewTokenSequencer(patientRepository contracts.PatientRepository) contracts.TokenSequencer {
	return &tokenSequencer{PatientRepository: patientRepository}
}

// NextToken is a preview, not a reservation: two callers can see the same
// value, and only the first registration with it wins the unique index.
func (uc *tokenSequencer) NextToken(ctx context.Context) (int, error) {
	highest, err := uc.PatientRepository.FindHighestTokenNumber(ctx)
	if err != nil {
		return 0, err
	}
	return highest + 1, nil
}

func (uc *tokenSequencer) ListTokens(ctx context.Context) ([]responses.TokenEntry, error) {
	patients, err := uc.PatientRepository.FindAllByTokenOrder(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]responses.TokenEntry, 0, len(patients))
	for _, patient := range patients {
		entries = append(entries, responses.TokenEntry{
			PatientID:   patient.ID,
			Name:        patient.Name,
			TokenNumber: patient.TokenNumber,
			CreatedAt:   patient.CreatedAt,
		})
	}
	return entries, nil
}
