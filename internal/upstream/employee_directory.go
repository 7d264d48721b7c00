package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/locvowork/hospitality_backoffice/internal/domain"
)

type employeeDirectory struct {
	client *Client
}

// NewEmployeeDirectory creates a directory backed by GET /employees/.
func NewEmployeeDirectory(client *Client) domain.EmployeeDirectory {
	return &employeeDirectory{client: client}
}

func (d *employeeDirectory) List(ctx context.Context) ([]domain.Employee, error) {
	raws, err := d.client.FetchAllPages(ctx, "employees/", nil)
	if err != nil {
		return nil, err
	}

	employees := make([]domain.Employee, 0, len(raws))
	for _, raw := range raws {
		var e domain.Employee
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode employee record: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, nil
}
