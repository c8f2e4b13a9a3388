package metric

import (
	"context"
	"time"

	"careerhub/src-server/model"
	"careerhub/src-server/utils"
)

func database(ctx context.Context, as *utils.AppState) (time.Duration, error) {
	start := time.Now()
	if _, err := as.BunDB.NewSelect().
		Model((*model.Campaign)(nil)).
		Where("id = ?", "").
		Exists(ctx); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
