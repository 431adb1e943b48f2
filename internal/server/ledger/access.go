package ledger

import (
	"context"
	"unicode/utf8"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Input bounds.
const (
	MaxNameLength     = 64
	MaxPositionLength = 32
	MaxMarketIDLength = 64
	MaxQuestionLength = 256
	MinDurationMonths = 1
	MaxDurationMonths = 120
)

func (l *Ledger) isOwner(addr ethcommon.Address) bool { return addr == l.cfg.Owner }

func (l *Ledger) requireOwner(caller ethcommon.Address) error {
	if !l.isOwner(caller) {
		return errors.Wrapf(common.ErrUnauthorized, "%s is not the ledger owner", caller.Hex())
	}
	return nil
}

// requireManager admits the team's manager and the owner.
func (l *Ledger) requireManager(caller ethcommon.Address, t *models.Team) error {
	if caller != t.Manager && !l.isOwner(caller) {
		return errors.Wrapf(common.ErrUnauthorized, "%s does not manage team %d", caller.Hex(), t.ID)
	}
	return nil
}

func checkText(field, v string, max int, optional bool) error {
	n := utf8.RuneCountInString(v)
	if !utf8.ValidString(v) || (n == 0 && !optional) || n > max {
		return errors.Wrapf(common.ErrInvalidInput, "%s must be 1..%d characters", field, max)
	}
	return nil
}

func checkAddress(field string, a ethcommon.Address) error {
	if a == (ethcommon.Address{}) {
		return errors.Wrapf(common.ErrInvalidInput, "%s is the zero address", field)
	}
	return nil
}

func checkMonths(m uint32) error {
	if m < MinDurationMonths || m > MaxDurationMonths {
		return errors.Wrapf(common.ErrInvalidInput, "duration %d months outside %d..%d", m, MinDurationMonths, MaxDurationMonths)
	}
	return nil
}

func checkMarketID(id string) error {
	if id == "" || len(id) > MaxMarketIDLength {
		return errors.Wrapf(common.ErrInvalidInput, "market id must be 1..%d bytes", MaxMarketIDLength)
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return errors.Wrapf(common.ErrInvalidInput, "market id %q has character %q", id, r)
		}
	}
	return nil
}

func (a *action) team(ctx context.Context, id uint64) (*models.Team, error) {
	if id == 0 {
		return nil, errors.Wrap(common.ErrNotFound, "team 0")
	}
	t, err := a.teams().Get(ctx, id)
	if err != nil {
		return nil, repoErr(err, "team %d", id)
	}
	return t, nil
}

func (a *action) activeTeam(ctx context.Context, id uint64) (*models.Team, error) {
	t, err := a.team(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.Active {
		return nil, errors.Wrapf(common.ErrInactive, "team %d", id)
	}
	return t, nil
}

func (a *action) athlete(ctx context.Context, id uint64) (*models.Athlete, error) {
	if id == 0 {
		return nil, errors.Wrap(common.ErrNotFound, "athlete 0")
	}
	ath, err := a.athletes().Get(ctx, id)
	if err != nil {
		return nil, repoErr(err, "athlete %d", id)
	}
	return ath, nil
}

func (a *action) activeAthlete(ctx context.Context, id uint64) (*models.Athlete, error) {
	ath, err := a.athlete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ath.Active {
		return nil, errors.Wrapf(common.ErrInactive, "athlete %d", id)
	}
	return ath, nil
}

func (a *action) proposal(ctx context.Context, id uint64) (*models.Proposal, error) {
	if id == 0 {
		return nil, errors.Wrap(common.ErrNotFound, "proposal 0")
	}
	p, err := a.proposals().Get(ctx, id)
	if err != nil {
		return nil, repoErr(err, "proposal %d", id)
	}
	return p, nil
}

func (a *action) market(ctx context.Context, id string) (*models.Market, error) {
	m, err := a.markets().Get(ctx, id)
	if err != nil {
		return nil, repoErr(err, "market %q", id)
	}
	return m, nil
}

func (a *action) vote(ctx context.Context, marketID string, voter ethcommon.Address) (*models.Vote, error) {
	v, err := a.votes().Get(ctx, marketID, voter)
	if err != nil {
		return nil, repoErr(err, "vote of %s in market %q", voter.Hex(), marketID)
	}
	return v, nil
}

func (a *action) request(ctx context.Context, id uint64) (*models.DecryptionRequest, error) {
	if id == 0 {
		return nil, errors.Wrap(common.ErrNotFound, "request 0")
	}
	r, err := a.requests().Get(ctx, id)
	if err != nil {
		return nil, repoErr(err, "request %d", id)
	}
	return r, nil
}
