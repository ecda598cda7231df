package mechanic

import (
	"context"
	"fmt"

	mechanicRepo "github.com/Mareeswari-2005/Sara-The-road-assist/database/repository/mechanic"
	"github.com/Mareeswari-2005/Sara-The-road-assist/models"

	"go.uber.org/zap"
)

// DefaultMechanicService implements MechanicService on top of a repository.
type DefaultMechanicService struct {
	Repo   mechanicRepo.MechanicRepository
	Logger *zap.Logger
}

// NewMechanicService wires a service to its repository.
func NewMechanicService(repo mechanicRepo.MechanicRepository, logger *zap.Logger) *DefaultMechanicService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultMechanicService{Repo: repo, Logger: logger}
}

// Create stores a new mechanic. Validation failures are returned as
// *models.ValidationError.
func (s *DefaultMechanicService) Create(ctx context.Context, m models.Mechanic) (*models.Mechanic, error) {
	if err := s.Repo.Create(ctx, &m); err != nil {
		if models.IsValidationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create mechanic: %w", err)
	}
	s.Logger.Info("mechanic created", zap.String("id", m.ID.Hex()), zap.String("name", m.Name))
	return &m, nil
}
