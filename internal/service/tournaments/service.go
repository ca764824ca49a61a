package tournaments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	tournamentRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/tournament"
	"github.com/m04kA/SMC-CourtService/internal/service/tournaments/models"
)

// Service сервис для работы с турнирами и регистрациями
type Service struct {
	tournamentRepo TournamentRepository
	logger         Logger
	now            func() time.Time
}

// NewService создает новый экземпляр сервиса турниров
func NewService(tournamentRepo TournamentRepository, logger Logger) *Service {
	return &Service{
		tournamentRepo: tournamentRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// List возвращает турниры, упорядоченные по дате начала
func (s *Service) List(ctx context.Context) (*models.TournamentListResponse, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTournaments(tournaments), nil
}

// ListForAdmin возвращает турниры для админ-панели, свежесозданные первыми
func (s *Service) ListForAdmin(ctx context.Context) (*models.TournamentListResponse, error) {
	tournaments, err := s.tournamentRepo.ListRecent(ctx)
	if err != nil {
		s.logger.Error("ListForAdmin: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForAdmin - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTournaments(tournaments), nil
}

// Create создает новый турнир
func (s *Service) Create(ctx context.Context, req *models.CreateTournamentRequest) (*models.TournamentResponse, error) {
	t, err := s.buildTournament(req)
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, err
	}

	created, err := s.tournamentRepo.Create(ctx, t)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: tournament=%d created", created.ID)
	return models.FromDomainTournament(created), nil
}

// Update частично обновляет турнир: nil-поля запроса не меняются
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTournamentRequest) (*models.TournamentResponse, error) {
	t, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			s.logger.Warn("Update: tournament=%d not found", id)
			return nil, ErrTournamentNotFound
		}
		s.logger.Error("Update: repository error for tournament=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.applyUpdate(t, req); err != nil {
		s.logger.Warn("Update: invalid request for tournament=%d: %v", id, err)
		return nil, err
	}

	if err := s.tournamentRepo.Update(ctx, t); err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		s.logger.Error("Update: failed to update tournament=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload tournament=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: tournament=%d updated", id)
	return models.FromDomainTournament(updated), nil
}

// Delete удаляет турнир вместе с регистрациями
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			s.logger.Warn("Delete: tournament=%d not found", id)
			return ErrTournamentNotFound
		}
		s.logger.Error("Delete: repository error for tournament=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: tournament=%d deleted", id)
	return nil
}

// Register записывает пользователя в лигу турнира
// Лига должна проводиться в турнире, турнир должен принимать заявки.
// Повторная регистрация в ту же лигу отклоняется, в другую лигу - разрешена
func (s *Service) Register(ctx context.Context, userID int64, tournamentID int64, req *models.RegisterRequest) (*models.RegistrationResponse, error) {
	league := domain.League(req.League)
	if !league.IsValid() {
		s.logger.Warn("Register: invalid league=%s for user=%d", req.League, userID)
		return nil, fmt.Errorf("%w: unknown league %q", ErrInvalidInput, req.League)
	}

	t, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			s.logger.Warn("Register: tournament=%d not found", tournamentID)
			return nil, ErrTournamentNotFound
		}
		s.logger.Error("Register: repository error for tournament=%d: %v", tournamentID, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	if !t.HasLeague(league) {
		s.logger.Warn("Register: league=%s not available in tournament=%d", league, tournamentID)
		return nil, ErrLeagueUnavailable
	}

	if !t.IsOpenForRegistration(s.now()) {
		s.logger.Warn("Register: registration closed for tournament=%d (status=%s)", tournamentID, t.Status)
		return nil, ErrRegistrationClosed
	}

	reg, err := s.tournamentRepo.CreateRegistration(ctx, &domain.TournamentRegistration{
		UserID:       userID,
		TournamentID: tournamentID,
		League:       league,
	})
	if err != nil {
		if errors.Is(err, tournamentRepo.ErrAlreadyRegistered) {
			s.logger.Warn("Register: user=%d already registered in tournament=%d league=%s", userID, tournamentID, league)
			return nil, ErrAlreadyRegistered
		}
		s.logger.Error("Register: repository error for user=%d tournament=%d: %v", userID, tournamentID, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user=%d registered in tournament=%d league=%s", userID, tournamentID, league)
	return models.FromDomainRegistration(reg), nil
}

// MyRegistrations возвращает регистрации пользователя
func (s *Service) MyRegistrations(ctx context.Context, userID int64) (*models.RegistrationListResponse, error) {
	regs, err := s.tournamentRepo.GetRegistrationsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("MyRegistrations: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: MyRegistrations - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRegistrations(regs), nil
}

func (s *Service) buildTournament(req *models.CreateTournamentRequest) (*domain.Tournament, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	sport := domain.Sport(req.Sport)
	if !sport.IsValid() {
		return nil, fmt.Errorf("%w: unknown sport %q", ErrInvalidInput, req.Sport)
	}

	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startDate %q", ErrInvalidInput, req.StartDate)
	}

	t := &domain.Tournament{
		Name:        req.Name,
		Description: req.Description,
		Sport:       sport,
		StartDate:   startDate,
		HasGold:     req.HasGold,
		HasSilver:   req.HasSilver,
		HasBronze:   req.HasBronze,
		Status:      domain.TournamentUpcoming,
	}

	if req.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endDate %q", ErrInvalidInput, *req.EndDate)
		}
		t.EndDate = &endDate
	}

	if req.RegistrationEndDate != nil {
		regEnd, err := time.Parse(domain.DateFormat, *req.RegistrationEndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid registrationEndDate %q", ErrInvalidInput, *req.RegistrationEndDate)
		}
		t.RegistrationEndDate = &regEnd
	}

	if req.Status != nil {
		status := domain.TournamentStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		t.Status = status
	}

	return t, nil
}

func (s *Service) applyUpdate(t *domain.Tournament, req *models.UpdateTournamentRequest) error {
	if req.Name != nil {
		if *req.Name == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		t.Name = *req.Name
	}

	if req.Description != nil {
		t.Description = req.Description
	}

	if req.Sport != nil {
		sport := domain.Sport(*req.Sport)
		if !sport.IsValid() {
			return fmt.Errorf("%w: unknown sport %q", ErrInvalidInput, *req.Sport)
		}
		t.Sport = sport
	}

	if req.StartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *req.StartDate)
		if err != nil {
			return fmt.Errorf("%w: invalid startDate %q", ErrInvalidInput, *req.StartDate)
		}
		t.StartDate = startDate
	}

	if req.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *req.EndDate)
		if err != nil {
			return fmt.Errorf("%w: invalid endDate %q", ErrInvalidInput, *req.EndDate)
		}
		t.EndDate = &endDate
	}

	if req.RegistrationEndDate != nil {
		regEnd, err := time.Parse(domain.DateFormat, *req.RegistrationEndDate)
		if err != nil {
			return fmt.Errorf("%w: invalid registrationEndDate %q", ErrInvalidInput, *req.RegistrationEndDate)
		}
		t.RegistrationEndDate = &regEnd
	}

	if req.HasGold != nil {
		t.HasGold = *req.HasGold
	}
	if req.HasSilver != nil {
		t.HasSilver = *req.HasSilver
	}
	if req.HasBronze != nil {
		t.HasBronze = *req.HasBronze
	}

	if req.Status != nil {
		status := domain.TournamentStatus(*req.Status)
		if !status.IsValid() {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		t.Status = status
	}

	return nil
}
