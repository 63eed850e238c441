package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.SavingsGoal
}

func newFakeGoalRepo(goals ...*entity.SavingsGoal) *fakeGoalRepo {
	r := &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.SavingsGoal)}
	for _, g := range goals {
		r.goals[g.ID] = g
	}
	return r
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.SavingsGoal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.SavingsGoal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", domainerror.ErrGoalNotFound)
	}
	return g, nil
}

func (r *fakeGoalRepo) FindAll(_ context.Context) ([]*entity.SavingsGoal, error) {
	out := make([]*entity.SavingsGoal, 0, len(r.goals))
	for _, g := range r.goals {
		out = append(out, g)
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.SavingsGoal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) SaveBatch(_ context.Context, goals []*entity.SavingsGoal) error {
	for _, g := range goals {
		r.goals[g.ID] = g
	}
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

func (r *fakeGoalRepo) ReplaceAll(_ context.Context, goals []*entity.SavingsGoal) error {
	r.goals = make(map[uuid.UUID]*entity.SavingsGoal)
	for _, g := range goals {
		r.goals[g.ID] = g
	}
	return nil
}

func (r *fakeGoalRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.goals)), nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestContributeToGoal(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)}

	t.Run("partial contribution accumulates", func(t *testing.T) {
		g := entity.NewSavingsGoal("Laptop", 20000, "Tecnología", entity.PriorityMedium, "sky")
		repo := newFakeGoalRepo(g)
		uc := NewContributeToGoalUseCase(repo, clock)

		out, err := uc.Execute(ctx, ContributeToGoalInput{GoalID: g.ID, Amount: 5000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Goal.SavedAmount != 5000 {
			t.Errorf("expected saved amount 5000, got %v", out.Goal.SavedAmount)
		}
		if out.Completed {
			t.Error("partial contribution must not complete the goal")
		}
		if out.SpawnedGoal != nil {
			t.Error("partial contribution must not spawn a successor")
		}
	})

	t.Run("overflow clamps at the target", func(t *testing.T) {
		g := entity.NewSavingsGoal("Laptop", 20000, "Tecnología", entity.PriorityMedium, "sky")
		g.SavedAmount = 19000
		repo := newFakeGoalRepo(g)
		uc := NewContributeToGoalUseCase(repo, clock)

		out, err := uc.Execute(ctx, ContributeToGoalInput{GoalID: g.ID, Amount: 5000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Goal.SavedAmount != 20000 {
			t.Errorf("expected saved amount clamped at 20000, got %v", out.Goal.SavedAmount)
		}
		if !out.Completed {
			t.Error("reaching the target must complete the goal")
		}
	})

	t.Run("completing a recurring goal spawns a successor", func(t *testing.T) {
		targetDate := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
		g := entity.NewSavingsGoal("Fondo", 5000, "Ahorro", entity.PriorityHigh, "rose")
		g.SavedAmount = 4000
		g.Projection = &entity.Projection{Amount: 1000, Frequency: entity.FrequencyMonthly, TargetDate: &targetDate}
		repo := newFakeGoalRepo(g)
		uc := NewContributeToGoalUseCase(repo, clock)

		out, err := uc.Execute(ctx, ContributeToGoalInput{GoalID: g.ID, Amount: 1000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Completed {
			t.Fatal("expected the goal to complete")
		}
		if out.SpawnedGoal == nil {
			t.Fatal("expected a successor goal")
		}
		if out.Goal.Projection.Frequency != entity.FrequencyOneTime {
			t.Errorf("original projection must freeze to one-time, got %q", out.Goal.Projection.Frequency)
		}
		if out.SpawnedGoal.SavedAmount != 0 {
			t.Errorf("successor must start empty, got %v", out.SpawnedGoal.SavedAmount)
		}
		if out.SpawnedGoal.TargetAmount != 5000 {
			t.Errorf("successor keeps the target, got %v", out.SpawnedGoal.TargetAmount)
		}
		wantDate := time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC)
		if !out.SpawnedGoal.Projection.TargetDate.Equal(wantDate) {
			t.Errorf("successor target date = %v, want %v", out.SpawnedGoal.Projection.TargetDate, wantDate)
		}
		if len(repo.goals) != 2 {
			t.Errorf("expected both goals persisted, got %d", len(repo.goals))
		}
	})

	t.Run("completing without a projection spawns nothing", func(t *testing.T) {
		g := entity.NewSavingsGoal("Laptop", 1000, "Tecnología", entity.PriorityMedium, "sky")
		repo := newFakeGoalRepo(g)
		uc := NewContributeToGoalUseCase(repo, clock)

		out, err := uc.Execute(ctx, ContributeToGoalInput{GoalID: g.ID, Amount: 1000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Completed {
			t.Error("expected the goal to complete")
		}
		if out.SpawnedGoal != nil {
			t.Error("one-off goal must not spawn a successor")
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		g := entity.NewSavingsGoal("Laptop", 1000, "Tecnología", entity.PriorityMedium, "sky")
		uc := NewContributeToGoalUseCase(newFakeGoalRepo(g), clock)

		_, err := uc.Execute(ctx, ContributeToGoalInput{GoalID: g.ID, Amount: 0})
		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidContribution {
			t.Errorf("expected invalid contribution error, got %v", err)
		}
	})

	t.Run("unknown goal id", func(t *testing.T) {
		uc := NewContributeToGoalUseCase(newFakeGoalRepo(), clock)

		_, err := uc.Execute(ctx, ContributeToGoalInput{GoalID: uuid.New(), Amount: 100})
		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("expected goal not found error, got %v", err)
		}
	})
}
