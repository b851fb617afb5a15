package location

import (
	"context"

	"github.com/piresc/festshare/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/festshare/services/location LocationUC

// LocationUC defines the location sharing business logic
type LocationUC interface {
	// session lifecycle
	StartSharing(ctx context.Context, req models.StartSharingRequest) (*models.StartSharingResult, error)
	StopSharing(ctx context.Context, userID, festivalID string) (bool, error)
	GetSharingStatus(ctx context.Context, userID, festivalID string) (*models.SessionStatusResponse, error)

	// position samples
	IngestSample(ctx context.Context, userID, festivalID string, pos models.Position) (models.SampleDecision, error)

	// proximity
	GetNearby(ctx context.Context, viewerID, festivalID string, pos models.Position, opts models.NearbyOptions) (*models.NearbyResult, error)

	// check-in suggestions
	GetSuggestion(ctx context.Context, viewerID, festivalID string) (models.Suggestion, error)
	DismissSuggestion(ctx context.Context, viewerID, tentID string) (models.SuggestionState, error)
	ClearSuggestion(ctx context.Context, userID, tentID string) error

	// background maintenance
	ExpireSessions(ctx context.Context) int
	RunSweeper(ctx context.Context)
	RestoreSessions(ctx context.Context) (int, error)
}
