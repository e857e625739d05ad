package domain

import (
	"fmt"
	"math"
)

// PointsPerLevel is the number of points that roll over into one level.
const PointsPerLevel = 100

// Account is the signed-in user's profile snapshot.
//
// Points is always in [0, PointsPerLevel) and Level is at least 1.
type Account struct {
	AccountID int    `json:"account_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Level     int    `json:"level"`
	Points    int    `json:"points"`
}

// NewAccount returns an account at level 1 with no points.
func NewAccount(id int, username, email string) Account {
	return Account{
		AccountID: id,
		Username:  username,
		Email:     email,
		Level:     1,
	}
}

// AddPoints returns the account with amount points added and reports
// whether at least one level was gained. A single call can cross several
// levels. The receiver is not modified.
func (a Account) AddPoints(amount int) (Account, bool, error) {
	if amount < 0 {
		return a, false, ErrInvalidPoints.WithDetails(fmt.Sprintf("got %d", amount))
	}
	if amount > math.MaxInt-a.Points {
		return a, false, ErrPointsOverflow.WithDetails(fmt.Sprintf("%d + %d", a.Points, amount))
	}

	total := a.Points + amount
	gained := total / PointsPerLevel
	if a.Level > math.MaxInt-gained {
		return a, false, ErrPointsOverflow.WithDetails(fmt.Sprintf("level %d + %d", a.Level, gained))
	}
	a.Level += gained
	a.Points = total % PointsPerLevel
	return a, total >= PointsPerLevel, nil
}

// Validate checks the level and points invariants.
func (a Account) Validate() error {
	if a.Level < 1 {
		return ErrInvalidAccount.WithDetails(fmt.Sprintf("level %d below 1", a.Level))
	}
	if a.Points < 0 || a.Points >= PointsPerLevel {
		return ErrInvalidAccount.WithDetails(fmt.Sprintf("points %d outside [0,%d)", a.Points, PointsPerLevel))
	}
	return nil
}
