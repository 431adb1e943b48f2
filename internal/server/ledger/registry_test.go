package ledger

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/server/events"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTeam(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name    string
		caller  ethcommon.Address
		params  RegisterTeamParams
		wantErr error
	}{
		{
			name:    "not owner",
			caller:  manager,
			params:  RegisterTeamParams{Name: "A", Manager: manager, SalaryCap: h.input(1, fhe.TypeUint64, manager)},
			wantErr: common.ErrUnauthorized,
		},
		{
			name:    "empty name",
			caller:  owner,
			params:  RegisterTeamParams{Name: "", Manager: manager, SalaryCap: h.input(1, fhe.TypeUint64, owner)},
			wantErr: common.ErrInvalidInput,
		},
		{
			name:    "long name",
			caller:  owner,
			params:  RegisterTeamParams{Name: strings.Repeat("x", MaxNameLength+1), Manager: manager, SalaryCap: h.input(1, fhe.TypeUint64, owner)},
			wantErr: common.ErrInvalidInput,
		},
		{
			name:    "zero manager",
			caller:  owner,
			params:  RegisterTeamParams{Name: "A", SalaryCap: h.input(1, fhe.TypeUint64, owner)},
			wantErr: common.ErrInvalidInput,
		},
		{
			name:    "cap encrypted for someone else",
			caller:  owner,
			params:  RegisterTeamParams{Name: "A", Manager: manager, SalaryCap: h.input(1, fhe.TypeUint64, manager)},
			wantErr: common.ErrInvalidProof,
		},
		{
			name:    "cap of wrong type",
			caller:  owner,
			params:  RegisterTeamParams{Name: "A", Manager: manager, SalaryCap: h.input(1, fhe.TypeUint32, owner)},
			wantErr: common.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.l.RegisterTeam(h.ctx, tt.caller, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	id := h.team(5000)
	assert.Equal(t, uint64(1), id)
	assert.Equal(t, uint64(2), h.team(6000))

	team, err := h.l.GetTeam(h.ctx, id)
	require.NoError(t, err)
	assert.True(t, team.Active)
	assert.Equal(t, manager, team.Manager)
	assert.Equal(t, uint64(0), h.payroll(id))
	assert.Equal(t, uint64(5000), h.reveal(team.SalaryCap, manager))

	ev, ok := h.events.Last(events.TeamRegistered)
	require.True(t, ok)
	assert.Equal(t, uint64(2), ev.Fields["team_id"])
}

func TestRegisterAthlete(t *testing.T) {
	h := newHarness(t)
	teamID := h.team(5000)
	closed := h.team(5000)
	require.NoError(t, h.l.DeactivateTeam(h.ctx, owner, closed))

	valid := func() RegisterAthleteParams {
		return RegisterAthleteParams{
			TeamID:         teamID,
			Name:           "Ada",
			Wallet:         player,
			Salary:         h.input(100, fhe.TypeUint32, manager),
			Bonus:          h.input(10, fhe.TypeUint32, manager),
			DurationMonths: 12,
		}
	}
	tests := []struct {
		name    string
		caller  ethcommon.Address
		mutate  func(p *RegisterAthleteParams)
		wantErr error
	}{
		{"unknown team", manager, func(p *RegisterAthleteParams) { p.TeamID = 99 }, common.ErrNotFound},
		{"team zero", manager, func(p *RegisterAthleteParams) { p.TeamID = 0 }, common.ErrNotFound},
		{"inactive team", manager, func(p *RegisterAthleteParams) { p.TeamID = closed }, common.ErrInactive},
		{"stranger", stranger, func(p *RegisterAthleteParams) {}, common.ErrUnauthorized},
		{"zero wallet", manager, func(p *RegisterAthleteParams) { p.Wallet = ethcommon.Address{} }, common.ErrInvalidInput},
		{"long position", manager, func(p *RegisterAthleteParams) { p.Position = strings.Repeat("p", MaxPositionLength+1) }, common.ErrInvalidInput},
		{"no months", manager, func(p *RegisterAthleteParams) { p.DurationMonths = 0 }, common.ErrInvalidInput},
		{"too many months", manager, func(p *RegisterAthleteParams) { p.DurationMonths = MaxDurationMonths + 1 }, common.ErrInvalidInput},
		{"salary of wrong type", manager, func(p *RegisterAthleteParams) { p.Salary = h.input(100, fhe.TypeUint64, manager) }, common.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)
			_, err := h.l.RegisterAthlete(h.ctx, tt.caller, p)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	id, err := h.l.RegisterAthlete(h.ctx, manager, valid())
	require.NoError(t, err)
	ath, err := h.l.GetAthlete(h.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, genesis, ath.ContractStart)
	assert.Equal(t, genesis.Add(12*Month), ath.ContractEnd)
	assert.Equal(t, uint64(100), h.reveal(ath.Salary, player), "athlete reads own salary")
	assert.Equal(t, uint64(10), h.reveal(ath.Bonus, manager))
	assert.Equal(t, uint64(110), h.payroll(teamID))

	// the owner may register too
	p := valid()
	p.Wallet = player2
	p.Salary = h.input(5, fhe.TypeUint32, owner)
	p.Bonus = h.input(5, fhe.TypeUint32, owner)
	_, err = h.l.RegisterAthlete(h.ctx, owner, p)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), h.payroll(teamID))

	roster, err := h.l.ListAthletes(h.ctx, teamID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, player, roster[0].Wallet)
	assert.Equal(t, player2, roster[1].Wallet)
}

func TestSalaryCapCompliance(t *testing.T) {
	h := newHarness(t)
	teamID := h.team(1000)
	h.athlete(teamID, player, 500, 100, 12)
	h.athlete(teamID, player2, 300, 100, 12)

	ok, err := h.l.CheckCompliance(h.ctx, manager, teamID)
	require.NoError(t, err)
	assert.Equal(t, fhe.TypeBool, ok.Type())
	assert.Equal(t, uint64(1), h.reveal(ok, manager), "payroll equal to the cap complies")

	h.athlete(teamID, stranger, 1, 0, 12)
	over, err := h.l.CheckCompliance(h.ctx, owner, teamID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), h.reveal(over, owner), "one over the cap does not")

	_, err = h.l.UserDecrypt(h.ctx, manager, over)
	assert.ErrorIs(t, err, common.ErrUnauthorized, "result is granted to the caller only")

	_, err = h.l.CheckCompliance(h.ctx, stranger, teamID)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestRecomputePayroll_Idempotent(t *testing.T) {
	h := newHarness(t)
	teamID := h.team(1000)
	h.athlete(teamID, player, 40, 2, 12)
	h.athlete(teamID, player2, 50, 8, 12)

	first, err := h.l.RecomputePayroll(h.ctx, manager, teamID)
	require.NoError(t, err)
	second, err := h.l.RecomputePayroll(h.ctx, owner, teamID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	team, err := h.l.GetTeam(h.ctx, teamID)
	require.NoError(t, err)
	assert.Equal(t, first, team.Payroll)
	assert.Equal(t, uint64(100), h.reveal(first, owner))

	_, err = h.l.RecomputePayroll(h.ctx, player, teamID)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestUpdateCompensation(t *testing.T) {
	h := newHarness(t)
	teamID := h.team(1000)
	athleteID := h.athlete(teamID, player, 100, 0, 12)

	err := h.l.UpdateCompensation(h.ctx, stranger, athleteID,
		h.input(1, fhe.TypeUint32, stranger), h.input(1, fhe.TypeUint32, stranger))
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	require.NoError(t, h.l.UpdateCompensation(h.ctx, player, athleteID,
		h.input(200, fhe.TypeUint32, player), h.input(20, fhe.TypeUint32, player)))
	assert.Equal(t, uint64(220), h.payroll(teamID))

	ath, err := h.l.GetAthlete(h.ctx, athleteID)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), h.reveal(ath.Salary, manager), "manager keeps read access")

	require.NoError(t, h.l.UpdateCompensation(h.ctx, manager, athleteID,
		h.input(150, fhe.TypeUint32, manager), h.input(0, fhe.TypeUint32, manager)))
	assert.Equal(t, uint64(150), h.payroll(teamID))

	_, ok := h.events.Last(events.CompensationUpdated)
	assert.True(t, ok)
}

func TestDeactivate(t *testing.T) {
	h := newHarness(t)
	teamID := h.team(1000)
	a1 := h.athlete(teamID, player, 100, 0, 12)
	h.athlete(teamID, player2, 30, 0, 12)
	require.Equal(t, uint64(130), h.payroll(teamID))

	assert.ErrorIs(t, h.l.DeactivateAthlete(h.ctx, player, a1), common.ErrUnauthorized)
	require.NoError(t, h.l.DeactivateAthlete(h.ctx, manager, a1))
	assert.Equal(t, uint64(30), h.payroll(teamID))
	assert.ErrorIs(t, h.l.DeactivateAthlete(h.ctx, owner, a1), common.ErrInactive)

	err := h.l.UpdateCompensation(h.ctx, player, a1, h.input(1, fhe.TypeUint32, player), h.input(1, fhe.TypeUint32, player))
	assert.ErrorIs(t, err, common.ErrInactive)

	assert.ErrorIs(t, h.l.DeactivateTeam(h.ctx, manager, teamID), common.ErrUnauthorized)
	require.NoError(t, h.l.DeactivateTeam(h.ctx, owner, teamID))
	assert.ErrorIs(t, h.l.DeactivateTeam(h.ctx, owner, teamID), common.ErrInactive)

	_, err = h.l.CheckCompliance(h.ctx, manager, teamID)
	assert.ErrorIs(t, err, common.ErrInactive)

	team, err := h.l.GetTeam(h.ctx, teamID)
	require.NoError(t, err)
	assert.False(t, team.Active)
}

func TestStartNewSeason(t *testing.T) {
	h := newHarness(t)
	t1 := h.team(1000)
	t2 := h.team(1000)
	short := h.athlete(t1, player, 100, 0, 1)
	h.athlete(t1, player2, 40, 0, 12)
	h.athlete(t2, stranger, 70, 0, 12)

	_, _, err := h.l.StartNewSeason(h.ctx, manager)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	season, retired, err := h.l.StartNewSeason(h.ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), season)
	assert.Empty(t, retired)

	h.clock.Add(Month)
	season, retired, err = h.l.StartNewSeason(h.ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), season)
	assert.Equal(t, []uint64{short}, retired)
	assert.Equal(t, uint64(40), h.payroll(t1))
	assert.Equal(t, uint64(70), h.payroll(t2))

	ath, err := h.l.GetAthlete(h.ctx, short)
	require.NoError(t, err)
	assert.False(t, ath.Active)

	s, err := h.l.Settings(h.ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), s.Season)
	assert.Equal(t, h.clock.Now(), s.SeasonStartedAt)

	ev, ok := h.events.Last(events.SeasonStarted)
	require.True(t, ok)
	assert.Equal(t, 1, ev.Fields["retired"])
}
