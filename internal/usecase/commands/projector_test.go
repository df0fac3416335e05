//go:build unit

package commands_test

import (
	"context"
	"testing"

	"projector-reservation/internal/domain/projector"
	"projector-reservation/internal/infra"
	"projector-reservation/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjectorRepo struct {
	projectors map[uuid.UUID]*projector.Projector
	inUse      map[uuid.UUID]bool
}

func newFakeProjectorRepo() *fakeProjectorRepo {
	return &fakeProjectorRepo{
		projectors: make(map[uuid.UUID]*projector.Projector),
		inUse:      make(map[uuid.UUID]bool),
	}
}

func (f *fakeProjectorRepo) Create(_ context.Context, p *projector.Projector) error {
	f.projectors[p.ID()] = p
	return nil
}

func (f *fakeProjectorRepo) Update(_ context.Context, p *projector.Projector) error {
	if _, ok := f.projectors[p.ID()]; !ok {
		return infra.WrapRepoErr("projector not found", nil, infra.KindNotFound)
	}
	f.projectors[p.ID()] = p
	return nil
}

func (f *fakeProjectorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.projectors[id]; !ok {
		return infra.WrapRepoErr("projector not found", nil, infra.KindNotFound)
	}
	if f.inUse[id] {
		return infra.WrapRepoErr("projector has reservations", nil, infra.KindForeignKeyViolated)
	}
	delete(f.projectors, id)
	return nil
}

func (f *fakeProjectorRepo) FindByID(_ context.Context, id uuid.UUID) (*projector.Projector, error) {
	p, ok := f.projectors[id]
	if !ok {
		return nil, infra.WrapRepoErr("projector not found", nil, infra.KindNotFound)
	}
	return p, nil
}

func (f *fakeProjectorRepo) Count(_ context.Context) (int, error) {
	return len(f.projectors), nil
}

func TestCreateProjector(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProjectorRepo()
	uc := commands.NewProjectorCommands(repo)

	t.Run("creates available projector", func(t *testing.T) {
		entity, err := uc.CreateProjector(ctx, commands.CreateProjectorParams{Name: "Projetor 01"})
		require.NoError(t, err)
		assert.True(t, entity.IsAvailable())
		assert.Contains(t, repo.projectors, entity.ID())
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := uc.CreateProjector(ctx, commands.CreateProjectorParams{Name: "  "})
		assert.ErrorIs(t, err, commands.ErrValidation)
	})
}

func TestUpdateProjector(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fakeProjectorRepo, commands.ProjectorCommands, *projector.Projector) {
		t.Helper()
		repo := newFakeProjectorRepo()
		uc := commands.NewProjectorCommands(repo)
		entity, err := uc.CreateProjector(ctx, commands.CreateProjectorParams{Name: "Projetor 01"})
		require.NoError(t, err)
		return repo, uc, entity
	}

	t.Run("rename and status change", func(t *testing.T) {
		_, uc, entity := seed(t)

		updated, err := uc.UpdateProjector(ctx, entity.ID(), commands.UpdateProjectorParams{
			Name:   "Projetor A",
			Status: "unavailable",
		})
		require.NoError(t, err)
		assert.Equal(t, "Projetor A", updated.Name())
		assert.False(t, updated.IsAvailable())
	})

	t.Run("empty fields leave values untouched", func(t *testing.T) {
		_, uc, entity := seed(t)

		updated, err := uc.UpdateProjector(ctx, entity.ID(), commands.UpdateProjectorParams{})
		require.NoError(t, err)
		assert.Equal(t, "Projetor 01", updated.Name())
		assert.True(t, updated.IsAvailable())
	})

	t.Run("invalid status", func(t *testing.T) {
		_, uc, entity := seed(t)

		_, err := uc.UpdateProjector(ctx, entity.ID(), commands.UpdateProjectorParams{Status: "broken"})
		assert.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("unknown projector", func(t *testing.T) {
		_, uc, _ := seed(t)

		_, err := uc.UpdateProjector(ctx, uuid.New(), commands.UpdateProjectorParams{Name: "X"})
		assert.ErrorIs(t, err, commands.ErrProjectorNotFound)
	})
}

func TestDeleteProjector(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProjectorRepo()
	uc := commands.NewProjectorCommands(repo)

	entity, err := uc.CreateProjector(ctx, commands.CreateProjectorParams{Name: "Projetor 01"})
	require.NoError(t, err)

	t.Run("with reservations attached", func(t *testing.T) {
		repo.inUse[entity.ID()] = true
		err := uc.DeleteProjector(ctx, entity.ID())
		assert.ErrorIs(t, err, commands.ErrProjectorInUse)
	})

	t.Run("free projector", func(t *testing.T) {
		repo.inUse[entity.ID()] = false
		err := uc.DeleteProjector(ctx, entity.ID())
		require.NoError(t, err)
		assert.NotContains(t, repo.projectors, entity.ID())
	})

	t.Run("unknown projector", func(t *testing.T) {
		err := uc.DeleteProjector(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrProjectorNotFound)
	})
}

func TestSeedProjectors(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds five units into an empty inventory", func(t *testing.T) {
		repo := newFakeProjectorRepo()
		uc := commands.NewProjectorCommands(repo)

		seeded, err := uc.SeedProjectors(ctx)
		require.NoError(t, err)
		assert.Len(t, seeded, 5)
		assert.Len(t, repo.projectors, 5)

		for _, p := range seeded {
			assert.True(t, p.IsAvailable())
		}
	})

	t.Run("refuses when inventory is not empty", func(t *testing.T) {
		repo := newFakeProjectorRepo()
		uc := commands.NewProjectorCommands(repo)

		_, err := uc.CreateProjector(ctx, commands.CreateProjectorParams{Name: "Projetor 01"})
		require.NoError(t, err)

		_, err = uc.SeedProjectors(ctx)
		assert.ErrorIs(t, err, commands.ErrAlreadySeeded)
		assert.Len(t, repo.projectors, 1, "a refused seed must not create units")
	})
}
