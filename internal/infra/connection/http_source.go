package connection

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"pindrop/internal/domain/entity"
	"pindrop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// httpSource reads connection statuses from the social service's internal
// batch API. Used when the social graph lives in another deployment.
type httpSource struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPSource creates a ConnectionService backed by the social service API.
func NewHTTPSource(endpoint string, logger *slog.Logger) service.ConnectionService {
	return &httpSource{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type statusBatchRequest struct {
	ViewerID string   `json:"viewer_id"`
	UserIDs  []string `json:"user_ids"`
}

type statusBatchResponse struct {
	Statuses map[string]string `json:"statuses"`
}

// Status returns the relationship from viewer to owner.
func (s *httpSource) Status(ctx context.Context, viewerID, ownerID uuid.UUID) (entity.ConnectionStatus, error) {
	statuses, err := s.Statuses(ctx, viewerID, []uuid.UUID{ownerID})
	if err != nil {
		return entity.ConnectionNone, err
	}

	return statuses[ownerID], nil
}

// Statuses resolves the viewer's relationship to a batch of owners with a
// single API call.
func (s *httpSource) Statuses(ctx context.Context, viewerID uuid.UUID, ownerIDs []uuid.UUID) (map[uuid.UUID]entity.ConnectionStatus, error) {
	statuses := make(map[uuid.UUID]entity.ConnectionStatus, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return statuses, nil
	}

	userIDs := make([]string, 0, len(ownerIDs))
	for _, ownerID := range ownerIDs {
		userIDs = append(userIDs, ownerID.String())
	}

	body, err := json.Marshal(statusBatchRequest{
		ViewerID: viewerID.String(),
		UserIDs:  userIDs,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/internal/connections/status", bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "social service request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("social service returned status %d", resp.StatusCode)
	}

	var batchResp statusBatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&batchResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode social service response")
	}

	for _, ownerID := range ownerIDs {
		if ownerID == viewerID {
			statuses[ownerID] = entity.ConnectionConnected

			continue
		}
		statuses[ownerID] = toConnectionStatus(batchResp.Statuses[ownerID.String()])
	}

	return statuses, nil
}
