package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/quesarica/QR-BookingService/internal/domain"
	bookingRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/booking"
	"github.com/quesarica/QR-BookingService/internal/integrations/notifier"
	"github.com/quesarica/QR-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	notifier     Notifier
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	notif Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		notifier:     notif,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID. Доступно только владельцу бизнеса.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByToken получает бронирование по self-service токену.
// Токен принимается любой из пары cancel/reschedule: клиенту для
// просмотра достаточно любой из ссылок письма.
func (s *Service) GetByToken(ctx context.Context, token string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByToken: no booking matches token")
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByToken: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByToken - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByToken: fetched booking id=%d", booking.ID)
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по статусу и периоду.
// Доступно только владельцу бизнеса.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Confirm вручную подтверждает ожидающее бронирование.
// Используется владельцем, когда оплата согласована вне платежной
// сессии. Допустим только переход pending -> confirmed.
func (s *Service) Confirm(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if booking.Status != domain.StatusPending {
		s.logger.Warn("Confirm: booking id=%d is not pending, status=%s", id, booking.Status)
		return nil, ErrNotPending
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed

	s.notifier.Send(ctx, notifier.KindBookingConfirmed, booking.CustomerEmail, map[string]interface{}{
		"reference":  booking.Reference,
		"event_date": booking.EventDate.Format(domain.DateFormat),
	})

	s.logger.Info("Confirm: successfully confirmed booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование. Разрешено только для отмененных:
// активные бронирования сначала проходят отмену, чтобы не потерять
// финансовый след.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !booking.IsCancelled() {
		s.logger.Warn("Delete: booking id=%d is not cancelled, status=%s", id, booking.Status)
		return ErrNotCancelled
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
