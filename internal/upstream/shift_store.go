package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/locvowork/hospitality_backoffice/internal/domain"
)

type shiftStore struct {
	client *Client
}

// NewShiftStore creates a store backed by the /shifts-manage/ endpoints.
func NewShiftStore(client *Client) domain.ShiftStore {
	return &shiftStore{client: client}
}

func (s *shiftStore) ListRange(ctx context.Context, fromDate, toDate string) ([]domain.Shift, error) {
	query := url.Values{
		"from_date": {fromDate},
		"to_date":   {toDate},
	}
	raws, err := s.client.FetchAllPages(ctx, "shifts-manage/", query)
	if err != nil {
		return nil, err
	}

	shifts := make([]domain.Shift, 0, len(raws))
	for _, raw := range raws {
		var sh domain.Shift
		if err := json.Unmarshal(raw, &sh); err != nil {
			return nil, fmt.Errorf("decode shift record: %w", err)
		}
		shifts = append(shifts, sh)
	}
	return shifts, nil
}

func (s *shiftStore) Create(ctx context.Context, in *domain.CreateShift) (*domain.Shift, error) {
	var created domain.Shift
	if err := s.client.doJSON(ctx, http.MethodPost, "shifts-manage/", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *shiftStore) Update(ctx context.Context, id int, patch *domain.ShiftPatch) error {
	return s.client.doJSON(ctx, http.MethodPatch, fmt.Sprintf("shifts-manage/%d/", id), patch, nil)
}

func (s *shiftStore) Delete(ctx context.Context, id int) error {
	return s.client.doJSON(ctx, http.MethodDelete, fmt.Sprintf("shifts-manage/%d/", id), nil, nil)
}
