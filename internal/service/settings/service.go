package settings

import (
	"context"
	"fmt"

	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/internal/service/settings/models"
)

// Service сервис для работы с настройками политик
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает текущие настройки
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(current), nil
}

// Update накладывает частичное обновление на текущие настройки,
// валидирует результат и сохраняет его
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings")

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	req.ApplyTo(&current)

	if err := validateSettings(current); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.settingsRepo.Update(ctx, current); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings updated")
	return models.FromDomainSettings(current), nil
}

func validateSettings(s domain.Settings) error {
	if s.MaxEventsPerDay < 1 {
		return fmt.Errorf("maxEventsPerDay must be at least 1")
	}
	if s.MinNoticeDays < 0 {
		return fmt.Errorf("minNoticeDays must not be negative")
	}
	if s.ReminderDays < 1 {
		return fmt.Errorf("reminderDays must be at least 1")
	}
	if s.FreeCancellationDays < 0 {
		return fmt.Errorf("freeCancellationDays must not be negative")
	}
	if s.CancellationFeeType != domain.FeeFlat && s.CancellationFeeType != domain.FeePercent {
		return fmt.Errorf("cancellationFeeType must be flat or percent")
	}
	if s.NoShowFeeType != domain.FeeFlat && s.NoShowFeeType != domain.FeePercent {
		return fmt.Errorf("noShowFeeType must be flat or percent")
	}
	if s.CancellationFeeFlat < 0 || s.NoShowFeeFlat < 0 || s.StripeFeeFlatCents < 0 {
		return fmt.Errorf("flat fees must not be negative")
	}
	if s.CancellationFeePercent < 0 || s.CancellationFeePercent > 100 {
		return fmt.Errorf("cancellationFeePercent must be between 0 and 100")
	}
	if s.NoShowFeePercent < 0 || s.NoShowFeePercent > 100 {
		return fmt.Errorf("noShowFeePercent must be between 0 and 100")
	}
	if s.CCSurchargePercent < 0 || s.CCSurchargePercent > 100 {
		return fmt.Errorf("ccSurchargePercent must be between 0 and 100")
	}
	if s.CashDepositPercent < 0 || s.CashDepositPercent > 100 {
		return fmt.Errorf("cashDepositPercent must be between 0 and 100")
	}
	if s.StripeFeePercent < 0 || s.StripeFeePercent > 100 {
		return fmt.Errorf("stripeFeePercent must be between 0 and 100")
	}
	return nil
}
