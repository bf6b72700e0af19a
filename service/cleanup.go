package service

import (
	"context"
	"time"

	"github.com/dilshat/zalo-sender/dao"
	"github.com/dilshat/zalo-sender/log"
)

// CleanupDb drops send logs older than storeDays and expired refresh tokens, then
// repeats every interval until ctx is done.
func CleanupDb(ctx context.Context, sendLogDao dao.SendLogDao, tokenDao dao.RefreshTokenDao, storeDays int, interval time.Duration) {
	for {
		log.ErrIfErr("Error cleaning up send logs", sendLogDao.RemoveOlderThanDays(storeDays))
		log.ErrIfErr("Error cleaning up refresh tokens", tokenDao.RemoveExpired(time.Now()))

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}
