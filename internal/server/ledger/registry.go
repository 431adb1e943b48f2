package ledger

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/server/events"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/counters"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

type RegisterTeamParams struct {
	Name    string
	Manager ethcommon.Address
	// SalaryCap is a Uint64 ciphertext encrypted by the caller.
	SalaryCap fhe.Input
}

// RegisterTeam creates a team with an empty payroll. Owner only.
func (l *Ledger) RegisterTeam(ctx context.Context, caller ethcommon.Address, p RegisterTeamParams) (uint64, error) {
	var id uint64
	err := l.exec(ctx, "register_team", func(ctx context.Context, a *action) error {
		if err := l.requireOwner(caller); err != nil {
			return err
		}
		if err := checkText("team name", p.Name, MaxNameLength, false); err != nil {
			return err
		}
		if err := checkAddress("manager", p.Manager); err != nil {
			return err
		}

		salaryCap, err := a.engine().VerifyInput(ctx, p.SalaryCap, caller, fhe.TypeUint64)
		if err != nil {
			return errors.Wrap(err, "salary cap")
		}
		if err := a.engine().Allow(ctx, salaryCap, p.Manager); err != nil {
			return err
		}
		payroll, err := a.engine().TrivialEncrypt(ctx, 0, fhe.TypeUint64)
		if err != nil {
			return err
		}
		if err := a.grant(ctx, payroll, p.Manager, caller); err != nil {
			return err
		}

		if id, err = a.counters().Next(ctx, counters.Teams); err != nil {
			return err
		}
		team := &models.Team{
			ID:        id,
			Name:      p.Name,
			Manager:   p.Manager,
			SalaryCap: salaryCap,
			Payroll:   payroll,
			Active:    true,
			CreatedAt: a.now,
			UpdatedAt: a.now,
		}
		if err := a.teams().Create(ctx, team); err != nil {
			return errors.Wrapf(err, "create team %d", id)
		}
		a.emit(events.TeamRegistered, "team_id", id, "name", p.Name, "manager", p.Manager.Hex())
		return nil
	})
	return id, err
}

type RegisterAthleteParams struct {
	TeamID   uint64
	Name     string
	Position string
	Wallet   ethcommon.Address
	// Salary and Bonus are Uint32 ciphertexts encrypted by the caller.
	Salary         fhe.Input
	Bonus          fhe.Input
	DurationMonths uint32
}

// RegisterAthlete adds an athlete to an active team and folds its
// compensation into the team payroll. Team manager or owner.
func (l *Ledger) RegisterAthlete(ctx context.Context, caller ethcommon.Address, p RegisterAthleteParams) (uint64, error) {
	var id uint64
	err := l.exec(ctx, "register_athlete", func(ctx context.Context, a *action) error {
		team, err := a.activeTeam(ctx, p.TeamID)
		if err != nil {
			return err
		}
		if err := l.requireManager(caller, team); err != nil {
			return err
		}
		if err := checkText("athlete name", p.Name, MaxNameLength, false); err != nil {
			return err
		}
		if err := checkText("position", p.Position, MaxPositionLength, true); err != nil {
			return err
		}
		if err := checkAddress("wallet", p.Wallet); err != nil {
			return err
		}
		if err := checkMonths(p.DurationMonths); err != nil {
			return err
		}

		salary, bonus, err := a.compensation(ctx, caller, p.Salary, p.Bonus, p.Wallet, team.Manager)
		if err != nil {
			return err
		}

		if id, err = a.counters().Next(ctx, counters.Athletes); err != nil {
			return err
		}
		ath := &models.Athlete{
			ID:            id,
			TeamID:        team.ID,
			Name:          p.Name,
			Position:      p.Position,
			Wallet:        p.Wallet,
			Salary:        salary,
			Bonus:         bonus,
			ContractStart: a.now,
			ContractEnd:   a.now.Add(time.Duration(p.DurationMonths) * Month),
			Active:        true,
			CreatedAt:     a.now,
			UpdatedAt:     a.now,
		}
		if err := a.athletes().Create(ctx, ath); err != nil {
			return errors.Wrapf(err, "create athlete %d", id)
		}
		a.emit(events.AthleteRegistered, "athlete_id", id, "team_id", team.ID, "wallet", p.Wallet.Hex())
		return a.recomputePayroll(ctx, team)
	})
	return id, err
}

// UpdateCompensation replaces an athlete's encrypted salary and bonus. The
// athlete, the team manager and the owner may call it.
func (l *Ledger) UpdateCompensation(ctx context.Context, caller ethcommon.Address, athleteID uint64, salary, bonus fhe.Input) error {
	return l.exec(ctx, "update_compensation", func(ctx context.Context, a *action) error {
		ath, err := a.activeAthlete(ctx, athleteID)
		if err != nil {
			return err
		}
		team, err := a.activeTeam(ctx, ath.TeamID)
		if err != nil {
			return err
		}
		if caller != ath.Wallet {
			if err := l.requireManager(caller, team); err != nil {
				return err
			}
		}

		if ath.Salary, ath.Bonus, err = a.compensation(ctx, caller, salary, bonus, ath.Wallet, team.Manager); err != nil {
			return err
		}
		ath.UpdatedAt = a.now
		if err := a.athletes().Update(ctx, ath); err != nil {
			return errors.Wrapf(err, "update athlete %d", ath.ID)
		}
		a.emit(events.CompensationUpdated, "athlete_id", ath.ID, "team_id", team.ID, "by", caller.Hex())
		return a.recomputePayroll(ctx, team)
	})
}

// compensation verifies a salary/bonus pair submitted by caller and lets
// the listed readers decrypt both.
func (a *action) compensation(ctx context.Context, caller ethcommon.Address, salaryIn, bonusIn fhe.Input, readers ...ethcommon.Address) (fhe.Handle, fhe.Handle, error) {
	salary, err := a.engine().VerifyInput(ctx, salaryIn, caller, fhe.TypeUint32)
	if err != nil {
		return fhe.Handle{}, fhe.Handle{}, errors.Wrap(err, "salary")
	}
	bonus, err := a.engine().VerifyInput(ctx, bonusIn, caller, fhe.TypeUint32)
	if err != nil {
		return fhe.Handle{}, fhe.Handle{}, errors.Wrap(err, "bonus")
	}
	for _, h := range []fhe.Handle{salary, bonus} {
		if err := a.grant(ctx, h, readers...); err != nil {
			return fhe.Handle{}, fhe.Handle{}, err
		}
	}
	return salary, bonus, nil
}

// grant gives each distinct non-zero address read access to h.
func (a *action) grant(ctx context.Context, h fhe.Handle, addrs ...ethcommon.Address) error {
	seen := make(map[ethcommon.Address]bool, len(addrs))
	for _, addr := range addrs {
		if addr == (ethcommon.Address{}) || seen[addr] {
			continue
		}
		seen[addr] = true
		if err := a.engine().Allow(ctx, h, addr); err != nil {
			return errors.Wrapf(err, "allow %s", addr.Hex())
		}
	}
	return nil
}

// DeactivateTeam retires a team. Owner only; a second call fails with
// ErrInactive.
func (l *Ledger) DeactivateTeam(ctx context.Context, caller ethcommon.Address, teamID uint64) error {
	return l.exec(ctx, "deactivate_team", func(ctx context.Context, a *action) error {
		if err := l.requireOwner(caller); err != nil {
			return err
		}
		team, err := a.activeTeam(ctx, teamID)
		if err != nil {
			return err
		}
		team.Active = false
		team.UpdatedAt = a.now
		if err := a.teams().Update(ctx, team); err != nil {
			return errors.Wrapf(err, "update team %d", team.ID)
		}
		a.emit(events.TeamDeactivated, "team_id", team.ID)
		return nil
	})
}

// DeactivateAthlete removes an athlete from its team's payroll. Team
// manager or owner; a second call fails with ErrInactive.
func (l *Ledger) DeactivateAthlete(ctx context.Context, caller ethcommon.Address, athleteID uint64) error {
	return l.exec(ctx, "deactivate_athlete", func(ctx context.Context, a *action) error {
		ath, err := a.activeAthlete(ctx, athleteID)
		if err != nil {
			return err
		}
		team, err := a.team(ctx, ath.TeamID)
		if err != nil {
			return err
		}
		if err := l.requireManager(caller, team); err != nil {
			return err
		}
		return a.deactivateAthlete(ctx, ath, team)
	})
}

func (a *action) deactivateAthlete(ctx context.Context, ath *models.Athlete, team *models.Team) error {
	ath.Active = false
	ath.UpdatedAt = a.now
	if err := a.athletes().Update(ctx, ath); err != nil {
		return errors.Wrapf(err, "update athlete %d", ath.ID)
	}
	a.emit(events.AthleteDeactivated, "athlete_id", ath.ID, "team_id", team.ID)
	return a.recomputePayroll(ctx, team)
}

// RecomputePayroll refolds a team's payroll and returns the new handle. Team
// manager or owner.
func (l *Ledger) RecomputePayroll(ctx context.Context, caller ethcommon.Address, teamID uint64) (fhe.Handle, error) {
	var payroll fhe.Handle
	err := l.exec(ctx, "recompute_payroll", func(ctx context.Context, a *action) error {
		team, err := a.activeTeam(ctx, teamID)
		if err != nil {
			return err
		}
		if err := l.requireManager(caller, team); err != nil {
			return err
		}
		if err := a.recomputePayroll(ctx, team); err != nil {
			return err
		}
		payroll = team.Payroll
		return nil
	})
	return payroll, err
}

// recomputePayroll sums salary and bonus of the team's active athletes in
// ascending id order, starting from an encrypted zero. Handles are derived
// from their inputs, so an unchanged roster yields the same handle.
func (a *action) recomputePayroll(ctx context.Context, team *models.Team) error {
	sum, err := a.engine().TrivialEncrypt(ctx, 0, fhe.TypeUint64)
	if err != nil {
		return err
	}
	roster, err := a.athletes().ListByTeam(ctx, team.ID)
	if err != nil {
		return errors.Wrapf(err, "list athletes of team %d", team.ID)
	}
	members := 0
	for _, ath := range roster {
		if !ath.Active {
			continue
		}
		if sum, err = a.engine().Add(ctx, sum, ath.Salary); err != nil {
			return errors.Wrapf(err, "add salary of athlete %d", ath.ID)
		}
		if sum, err = a.engine().Add(ctx, sum, ath.Bonus); err != nil {
			return errors.Wrapf(err, "add bonus of athlete %d", ath.ID)
		}
		members++
	}
	if err := a.grant(ctx, sum, team.Manager, a.l.cfg.Owner); err != nil {
		return err
	}

	team.Payroll = sum
	team.UpdatedAt = a.now
	if err := a.teams().Update(ctx, team); err != nil {
		return errors.Wrapf(err, "update team %d", team.ID)
	}
	a.emit(events.PayrollRecomputed, "team_id", team.ID, "members", members, "payroll", sum.Hex())
	return nil
}

// CheckCompliance returns an encrypted boolean "payroll <= salary cap" that
// the caller may decrypt. Team manager or owner.
func (l *Ledger) CheckCompliance(ctx context.Context, caller ethcommon.Address, teamID uint64) (fhe.Handle, error) {
	var result fhe.Handle
	err := l.exec(ctx, "check_compliance", func(ctx context.Context, a *action) error {
		team, err := a.activeTeam(ctx, teamID)
		if err != nil {
			return err
		}
		if err := l.requireManager(caller, team); err != nil {
			return err
		}
		if result, err = a.engine().Le(ctx, team.Payroll, team.SalaryCap); err != nil {
			return errors.Wrapf(err, "compare payroll of team %d", team.ID)
		}
		return a.grant(ctx, result, caller)
	})
	return result, err
}

// StartNewSeason advances the season counter, deactivates every athlete
// whose contract has ended and recomputes the affected payrolls. Owner only.
// It returns the new season number and the deactivated athlete ids.
func (l *Ledger) StartNewSeason(ctx context.Context, caller ethcommon.Address) (uint64, []uint64, error) {
	var (
		season  uint64
		retired []uint64
	)
	err := l.exec(ctx, "start_new_season", func(ctx context.Context, a *action) error {
		if err := l.requireOwner(caller); err != nil {
			return err
		}
		s, err := a.loadSettings(ctx)
		if err != nil {
			return err
		}

		expired, err := a.athletes().ListExpired(ctx, a.now)
		if err != nil {
			return errors.Wrap(err, "list expired contracts")
		}
		var affected []uint64
		seen := make(map[uint64]bool)
		for _, ath := range expired {
			ath.Active = false
			ath.UpdatedAt = a.now
			if err := a.athletes().Update(ctx, ath); err != nil {
				return errors.Wrapf(err, "update athlete %d", ath.ID)
			}
			a.emit(events.AthleteDeactivated, "athlete_id", ath.ID, "team_id", ath.TeamID, "reason", "contract_ended")
			retired = append(retired, ath.ID)
			if !seen[ath.TeamID] {
				seen[ath.TeamID] = true
				affected = append(affected, ath.TeamID)
			}
		}
		for _, teamID := range affected {
			team, err := a.team(ctx, teamID)
			if err != nil {
				return err
			}
			if err := a.recomputePayroll(ctx, team); err != nil {
				return err
			}
		}

		s.Season++
		s.SeasonStartedAt = a.now
		s.UpdatedAt = a.now
		if err := a.settingsRepo().Save(ctx, s); err != nil {
			return errors.Wrap(err, "save settings")
		}
		season = s.Season
		a.emit(events.SeasonStarted, "season", season, "retired", len(retired))
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return season, retired, nil
}

// GetTeam returns a team, active or not.
func (l *Ledger) GetTeam(ctx context.Context, id uint64) (*models.Team, error) {
	var out *models.Team
	err := l.view(ctx, func(ctx context.Context, a *action) (err error) {
		out, err = a.team(ctx, id)
		return err
	})
	return out, err
}

// GetAthlete returns an athlete, active or not.
func (l *Ledger) GetAthlete(ctx context.Context, id uint64) (*models.Athlete, error) {
	var out *models.Athlete
	err := l.view(ctx, func(ctx context.Context, a *action) (err error) {
		out, err = a.athlete(ctx, id)
		return err
	})
	return out, err
}

// ListAthletes returns the roster of a team by ascending id.
func (l *Ledger) ListAthletes(ctx context.Context, teamID uint64) ([]*models.Athlete, error) {
	var out []*models.Athlete
	err := l.view(ctx, func(ctx context.Context, a *action) error {
		if _, err := a.team(ctx, teamID); err != nil {
			return err
		}
		var err error
		out, err = a.athletes().ListByTeam(ctx, teamID)
		return err
	})
	return out, err
}
