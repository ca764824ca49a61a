package tournaments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	tournamentRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/tournament"
	"github.com/m04kA/SMC-CourtService/internal/service/tournaments/models"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type regKey struct {
	userID       int64
	tournamentID int64
	league       domain.League
}

type fakeTournamentRepo struct {
	tournaments   map[int64]*domain.Tournament
	registrations map[regKey]*domain.TournamentRegistration
	nextID        int64
}

func newFakeTournamentRepo(tournaments ...*domain.Tournament) *fakeTournamentRepo {
	repo := &fakeTournamentRepo{
		tournaments:   make(map[int64]*domain.Tournament),
		registrations: make(map[regKey]*domain.TournamentRegistration),
	}
	for _, tt := range tournaments {
		repo.tournaments[tt.ID] = tt
	}
	return repo
}

func (f *fakeTournamentRepo) Create(_ context.Context, t *domain.Tournament) (*domain.Tournament, error) {
	f.nextID++
	created := *t
	created.ID = f.nextID
	f.tournaments[created.ID] = &created
	return &created, nil
}

func (f *fakeTournamentRepo) GetByID(_ context.Context, id int64) (*domain.Tournament, error) {
	t, ok := f.tournaments[id]
	if !ok {
		return nil, tournamentRepo.ErrTournamentNotFound
	}
	return t, nil
}

func (f *fakeTournamentRepo) List(context.Context) ([]*domain.Tournament, error) {
	var result []*domain.Tournament
	for _, t := range f.tournaments {
		result = append(result, t)
	}
	return result, nil
}

func (f *fakeTournamentRepo) ListRecent(ctx context.Context) ([]*domain.Tournament, error) {
	return f.List(ctx)
}

func (f *fakeTournamentRepo) Update(_ context.Context, t *domain.Tournament) error {
	if _, ok := f.tournaments[t.ID]; !ok {
		return tournamentRepo.ErrTournamentNotFound
	}
	f.tournaments[t.ID] = t
	return nil
}

func (f *fakeTournamentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.tournaments[id]; !ok {
		return tournamentRepo.ErrTournamentNotFound
	}
	delete(f.tournaments, id)
	return nil
}

func (f *fakeTournamentRepo) CreateRegistration(_ context.Context, reg *domain.TournamentRegistration) (*domain.TournamentRegistration, error) {
	key := regKey{userID: reg.UserID, tournamentID: reg.TournamentID, league: reg.League}
	if _, ok := f.registrations[key]; ok {
		return nil, tournamentRepo.ErrAlreadyRegistered
	}

	f.nextID++
	created := *reg
	created.ID = f.nextID
	f.registrations[key] = &created
	return &created, nil
}

func (f *fakeTournamentRepo) GetRegistrationsByUser(_ context.Context, userID int64) ([]*domain.TournamentRegistration, error) {
	var result []*domain.TournamentRegistration
	for _, reg := range f.registrations {
		if reg.UserID == userID {
			result = append(result, reg)
		}
	}
	return result, nil
}

func openTournament() *domain.Tournament {
	return &domain.Tournament{
		ID:        1,
		Name:      "Copa Verao",
		Sport:     domain.SportBeachTennis,
		StartDate: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		HasGold:   true,
		HasSilver: true,
		Status:    domain.TournamentUpcoming,
	}
}

func newService(repo *fakeTournamentRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.now = func() time.Time {
		return time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestRegister(t *testing.T) {
	repo := newFakeTournamentRepo(openTournament())
	svc := newService(repo)

	resp, err := svc.Register(context.Background(), 7, 1, &models.RegisterRequest{League: "GOLD"})
	require.NoError(t, err)
	assert.Equal(t, "GOLD", resp.League)
	assert.Equal(t, int64(7), resp.UserID)
}

func TestRegister_DuplicateLeague(t *testing.T) {
	repo := newFakeTournamentRepo(openTournament())
	svc := newService(repo)

	_, err := svc.Register(context.Background(), 7, 1, &models.RegisterRequest{League: "GOLD"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 7, 1, &models.RegisterRequest{League: "GOLD"})
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	// Другая лига того же турнира разрешена
	_, err = svc.Register(context.Background(), 7, 1, &models.RegisterRequest{League: "SILVER"})
	assert.NoError(t, err)
}

func TestRegister_LeagueUnavailable(t *testing.T) {
	repo := newFakeTournamentRepo(openTournament())
	svc := newService(repo)

	_, err := svc.Register(context.Background(), 7, 1, &models.RegisterRequest{League: "BRONZE"})
	assert.ErrorIs(t, err, ErrLeagueUnavailable)
}

func TestRegister_RegistrationClosed(t *testing.T) {
	finished := openTournament()
	finished.Status = domain.TournamentFinished
	svc := newService(newFakeTournamentRepo(finished))

	_, err := svc.Register(context.Background(), 7, 1, &models.RegisterRequest{League: "GOLD"})
	assert.ErrorIs(t, err, ErrRegistrationClosed)
}

func TestRegister_DeadlinePassed(t *testing.T) {
	expired := openTournament()
	deadline := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	expired.RegistrationEndDate = &deadline
	svc := newService(newFakeTournamentRepo(expired))

	_, err := svc.Register(context.Background(), 7, 1, &models.RegisterRequest{League: "GOLD"})
	assert.ErrorIs(t, err, ErrRegistrationClosed)
}

func TestRegister_InvalidLeague(t *testing.T) {
	svc := newService(newFakeTournamentRepo(openTournament()))

	_, err := svc.Register(context.Background(), 7, 1, &models.RegisterRequest{League: "PLATINUM"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_TournamentNotFound(t *testing.T) {
	svc := newService(newFakeTournamentRepo())

	_, err := svc.Register(context.Background(), 7, 404, &models.RegisterRequest{League: "GOLD"})
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestCreate(t *testing.T) {
	svc := newService(newFakeTournamentRepo())

	resp, err := svc.Create(context.Background(), &models.CreateTournamentRequest{
		Name:      "Copa Verao",
		Sport:     "BEACH_TENNIS",
		StartDate: "2025-11-01",
		HasGold:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "UPCOMING", resp.Status)
	assert.Equal(t, "2025-11-01", resp.StartDate)
}

func TestCreate_Validation(t *testing.T) {
	svc := newService(newFakeTournamentRepo())

	_, err := svc.Create(context.Background(), &models.CreateTournamentRequest{
		Sport:     "BEACH_TENNIS",
		StartDate: "2025-11-01",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateTournamentRequest{
		Name:      "Copa",
		Sport:     "CHESS",
		StartDate: "2025-11-01",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateTournamentRequest{
		Name:      "Copa",
		Sport:     "BEACH_TENNIS",
		StartDate: "01/11/2025",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_PartialApply(t *testing.T) {
	repo := newFakeTournamentRepo(openTournament())
	svc := newService(repo)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateTournamentRequest{
		Status:    ptr.Ptr("ONGOING"),
		HasBronze: ptr.Ptr(true),
	})
	require.NoError(t, err)

	// Незатронутые поля сохраняются
	assert.Equal(t, "Copa Verao", resp.Name)
	assert.Equal(t, "ONGOING", resp.Status)
	assert.True(t, resp.HasBronze)
	assert.True(t, resp.HasGold)
}

func TestDelete(t *testing.T) {
	repo := newFakeTournamentRepo(openTournament())
	svc := newService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrTournamentNotFound)
}
