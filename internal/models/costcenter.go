package models

import "time"

// CostCenter is the storage-layer shape of a classification bucket.
type CostCenter struct {
	CostCenterID  string    `db:"cost_center_id"`
	Name          string    `db:"name"`
	Kind          string    `db:"kind"`
	SubItems      []string  `db:"sub_items"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
