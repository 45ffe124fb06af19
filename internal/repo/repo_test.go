package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rewardhub/internal/pg"
	accountrepo "github.com/GlebRadaev/rewardhub/internal/repo/account-repo"
	couponrepo "github.com/GlebRadaev/rewardhub/internal/repo/coupon-repo"
	followrepo "github.com/GlebRadaev/rewardhub/internal/repo/follow-repo"
	intentrepo "github.com/GlebRadaev/rewardhub/internal/repo/intent-repo"
	referralrepo "github.com/GlebRadaev/rewardhub/internal/repo/referral-repo"
	rewardrepo "github.com/GlebRadaev/rewardhub/internal/repo/reward-repo"
	userrepo "github.com/GlebRadaev/rewardhub/internal/repo/user-repo"
	winnerrepo "github.com/GlebRadaev/rewardhub/internal/repo/winner-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, pg.NewMockTXManager(ctrl)), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &accountrepo.Repository{}, repo.AccountRepo)
	assert.IsType(t, &couponrepo.Repository{}, repo.CouponRepo)
	assert.IsType(t, &rewardrepo.Repository{}, repo.RewardRepo)
	assert.IsType(t, &intentrepo.Repository{}, repo.IntentRepo)
	assert.IsType(t, &followrepo.Repository{}, repo.FollowRepo)
	assert.IsType(t, &winnerrepo.Repository{}, repo.WinnerRepo)
	assert.IsType(t, &referralrepo.Repository{}, repo.ReferralRepo)

	assert.NoError(t, mock.ExpectationsWereMet())
}
