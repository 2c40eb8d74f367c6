package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/domain"
	pkgerrors "github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/errors"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/usecase"
)

// MockSystemRepository is a mock of SystemRepository
type MockSystemRepository struct {
	mock.Mock
}

func (m *MockSystemRepository) GetByID(ctx context.Context, systemID int64) (*domain.SolarSystem, error) {
	args := m.Called(ctx, systemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SolarSystem), args.Error(1)
}

func (m *MockSystemRepository) Insert(ctx context.Context, system *domain.SolarSystem) error {
	args := m.Called(ctx, system)
	return args.Error(0)
}

func (m *MockSystemRepository) Touch(ctx context.Context, systemID int64) error {
	args := m.Called(ctx, systemID)
	return args.Error(0)
}

// MockESIRepository is a mock of ESIRepository
type MockESIRepository struct {
	mock.Mock
}

func (m *MockESIRepository) GetSystem(ctx context.Context, systemID int64) (*domain.SolarSystem, error) {
	args := m.Called(ctx, systemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SolarSystem), args.Error(1)
}

func TestSystemUseCase_Resolve_StoreHit(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns stored system without calling ESI", func(t *testing.T) {
		mockRepo := &MockSystemRepository{}
		mockESI := &MockESIRepository{}
		uc := usecase.NewSystemUseCase(mockRepo, mockESI, logger)

		stored := &domain.SolarSystem{
			SystemID:   30000142,
			Name:       "Jita",
			X:          -129400292875304960.0,
			Y:          61596815791300400.0,
			Z:          1720986748719556600.0,
			Added:      time.Now(),
			LastUpdate: time.Now(),
		}

		mockRepo.On("GetByID", ctx, int64(30000142)).Return(stored, nil).Once()
		mockRepo.On("Touch", ctx, int64(30000142)).Return(nil).Once()

		system, err := uc.Resolve(ctx, 30000142)

		require.NoError(t, err)
		assert.Equal(t, stored, system)

		mockESI.AssertNotCalled(t, "GetSystem", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("touch failure does not fail the request", func(t *testing.T) {
		mockRepo := &MockSystemRepository{}
		mockESI := &MockESIRepository{}
		uc := usecase.NewSystemUseCase(mockRepo, mockESI, logger)

		stored := &domain.SolarSystem{SystemID: 30000142, Name: "Jita"}

		mockRepo.On("GetByID", ctx, int64(30000142)).Return(stored, nil).Once()
		mockRepo.On("Touch", ctx, int64(30000142)).Return(errors.New("connection reset")).Once()

		system, err := uc.Resolve(ctx, 30000142)

		require.NoError(t, err)
		assert.Equal(t, stored, system)
		mockRepo.AssertExpectations(t)
	})

	t.Run("store read error aborts resolution", func(t *testing.T) {
		mockRepo := &MockSystemRepository{}
		mockESI := &MockESIRepository{}
		uc := usecase.NewSystemUseCase(mockRepo, mockESI, logger)

		mockRepo.On("GetByID", ctx, int64(30000142)).Return(nil, errors.New("database error")).Once()

		system, err := uc.Resolve(ctx, 30000142)

		assert.Error(t, err)
		assert.Nil(t, system)
		assert.Contains(t, err.Error(), "database error")
		mockESI.AssertNotCalled(t, "GetSystem", mock.Anything, mock.Anything)
	})
}

func TestSystemUseCase_Resolve_StoreMiss(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	fetched := &domain.SolarSystem{
		SystemID: 30000144,
		Name:     "Perimeter",
		X:        -138189558519784640.0,
		Y:        60723429265814160.0,
		Z:        1718712998507996800.0,
	}
	stored := &domain.SolarSystem{
		SystemID:   30000144,
		Name:       "Perimeter",
		X:          -138189558519784640.0,
		Y:          60723429265814160.0,
		Z:          1718712998507996800.0,
		Added:      time.Now(),
		LastUpdate: time.Now(),
	}

	t.Run("fetches from ESI and persists", func(t *testing.T) {
		mockRepo := &MockSystemRepository{}
		mockESI := &MockESIRepository{}
		uc := usecase.NewSystemUseCase(mockRepo, mockESI, logger)

		mockRepo.On("GetByID", ctx, int64(30000144)).Return(nil, nil).Once()
		mockESI.On("GetSystem", ctx, int64(30000144)).Return(fetched, nil).Once()
		mockRepo.On("Insert", ctx, fetched).Return(nil).Once()
		mockRepo.On("GetByID", ctx, int64(30000144)).Return(stored, nil).Once()

		system, err := uc.Resolve(ctx, 30000144)

		require.NoError(t, err)
		// The caller gets the re-read row, not the in-memory ESI payload
		assert.Equal(t, stored, system)

		mockRepo.AssertNotCalled(t, "Touch", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
		mockESI.AssertExpectations(t)
	})

	t.Run("concurrent insert falls back to stored row", func(t *testing.T) {
		mockRepo := &MockSystemRepository{}
		mockESI := &MockESIRepository{}
		uc := usecase.NewSystemUseCase(mockRepo, mockESI, logger)

		mockRepo.On("GetByID", ctx, int64(30000144)).Return(nil, nil).Once()
		mockESI.On("GetSystem", ctx, int64(30000144)).Return(fetched, nil).Once()
		mockRepo.On("Insert", ctx, fetched).Return(pkgerrors.ErrSystemExists).Once()
		mockRepo.On("GetByID", ctx, int64(30000144)).Return(stored, nil).Once()

		system, err := uc.Resolve(ctx, 30000144)

		require.NoError(t, err)
		assert.Equal(t, stored, system)
		mockRepo.AssertExpectations(t)
	})

	t.Run("insert failure aborts resolution", func(t *testing.T) {
		mockRepo := &MockSystemRepository{}
		mockESI := &MockESIRepository{}
		uc := usecase.NewSystemUseCase(mockRepo, mockESI, logger)

		mockRepo.On("GetByID", ctx, int64(30000144)).Return(nil, nil).Once()
		mockESI.On("GetSystem", ctx, int64(30000144)).Return(fetched, nil).Once()
		mockRepo.On("Insert", ctx, fetched).Return(errors.New("disk full")).Once()

		system, err := uc.Resolve(ctx, 30000144)

		assert.Error(t, err)
		assert.Nil(t, system)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("row missing after insert", func(t *testing.T) {
		mockRepo := &MockSystemRepository{}
		mockESI := &MockESIRepository{}
		uc := usecase.NewSystemUseCase(mockRepo, mockESI, logger)

		mockRepo.On("GetByID", ctx, int64(30000144)).Return(nil, nil).Once()
		mockESI.On("GetSystem", ctx, int64(30000144)).Return(fetched, nil).Once()
		mockRepo.On("Insert", ctx, fetched).Return(nil).Once()
		mockRepo.On("GetByID", ctx, int64(30000144)).Return(nil, nil).Once()

		system, err := uc.Resolve(ctx, 30000144)

		assert.Nil(t, system)
		assert.Equal(t, pkgerrors.ErrStoreInconsistent, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestSystemUseCase_Resolve_ESIErrors(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	tests := []struct {
		name   string
		esiErr *pkgerrors.AppError
	}{
		{"system not found", pkgerrors.ErrSystemNotFound},
		{"esi unavailable", pkgerrors.ErrESIUnavailable},
		{"esi invalid response", pkgerrors.ErrESIInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockSystemRepository{}
			mockESI := &MockESIRepository{}
			uc := usecase.NewSystemUseCase(mockRepo, mockESI, logger)

			mockRepo.On("GetByID", ctx, int64(30000500)).Return(nil, nil).Once()
			mockESI.On("GetSystem", ctx, int64(30000500)).Return(nil, tt.esiErr).Once()

			system, err := uc.Resolve(ctx, 30000500)

			assert.Nil(t, system)
			// Classification made by the ESI client is passed through untouched
			assert.Equal(t, tt.esiErr, err)
			mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestSystemUseCase_Resolve_DeduplicatesConcurrentFetches(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	mockRepo := &MockSystemRepository{}
	mockESI := &MockESIRepository{}
	uc := usecase.NewSystemUseCase(mockRepo, mockESI, logger)

	const callers = 10
	systemID := int64(30002187)

	fetched := &domain.SolarSystem{SystemID: systemID, Name: "Amarr", X: 1, Y: 2, Z: 3}
	stored := &domain.SolarSystem{SystemID: systemID, Name: "Amarr", X: 1, Y: 2, Z: 3, Added: time.Now(), LastUpdate: time.Now()}

	// Every caller misses the store first; reads after the insert hit
	var entered sync.WaitGroup
	entered.Add(callers)
	mockRepo.On("GetByID", mock.Anything, systemID).Return(nil, nil).Times(callers).Run(func(args mock.Arguments) {
		entered.Done()
	})
	mockRepo.On("GetByID", mock.Anything, systemID).Return(stored, nil)
	mockRepo.On("Insert", mock.Anything, fetched).Return(nil)

	// ESI blocks until every caller had a chance to join the in-flight fetch
	release := make(chan time.Time)
	mockESI.On("GetSystem", mock.Anything, systemID).WaitUntil(release).Return(fetched, nil)

	var wg sync.WaitGroup
	results := make([]*domain.SolarSystem, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = uc.Resolve(ctx, systemID)
		}(i)
	}

	entered.Wait()
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, stored, results[i])
	}

	mockESI.AssertNumberOfCalls(t, "GetSystem", 1)
}
