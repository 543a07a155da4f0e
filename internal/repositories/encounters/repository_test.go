package encounters_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/repositories/encounters"
	"github.com/KirkDiggler/rpg-forge/internal/testutils"
	"github.com/KirkDiggler/rpg-forge/internal/testutils/builders"
)

var baseTime = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func testEncounter(id string, offset time.Duration) *entities.Encounter {
	return builders.NewEncounterBuilder().
		WithID(id).
		WithRegion("Neverwinter Wood").
		WithTags("forest", "ambush").
		WithCreatedAt(baseTime.Add(offset)).
		Build()
}

// RepositoryContractSuite runs the same behavior checks against every backend
type RepositoryContractSuite struct {
	suite.Suite
	newRepo func() (encounters.Repository, func())
	repo    encounters.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RepositoryContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo()
}

func (s *RepositoryContractSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() (encounters.Repository, func()) {
			return encounters.NewInMemory(), func() {}
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() (encounters.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := encounters.NewRedis(&encounters.RedisConfig{Client: client})
			if err != nil {
				t.Fatalf("failed to create redis repository: %v", err)
			}
			return repo, cleanup
		},
	})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() (encounters.Repository, func()) {
			path := filepath.Join(t.TempDir(), fmt.Sprintf("encounters-%d.db", time.Now().UnixNano()))
			repo, err := encounters.NewSQLite(&encounters.SQLiteConfig{Path: path})
			if err != nil {
				t.Fatalf("failed to open sqlite repository: %v", err)
			}
			return repo, func() { _ = repo.Close() }
		},
	})
}

func TestCachedRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() (encounters.Repository, func()) {
			repo, err := encounters.NewCached(&encounters.CachedConfig{Next: encounters.NewInMemory()})
			if err != nil {
				t.Fatalf("failed to create cached repository: %v", err)
			}
			return repo, func() {}
		},
	})
}

func (s *RepositoryContractSuite) TestUpsertAndGet() {
	want := testEncounter("enc_1", 0)

	_, err := s.repo.Upsert(s.ctx, &encounters.UpsertInput{Encounter: want})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &encounters.GetInput{ID: "enc_1"})
	s.Require().NoError(err)
	s.Equal(want.ID, got.Encounter.ID)
	s.Equal(want.Text, got.Encounter.Text)
	s.Equal(want.Party, got.Encounter.Party)
	s.Equal(want.Tags, got.Encounter.Tags)
	s.Equal(want.Validation, got.Encounter.Validation)
	s.Equal(want.Outcome, got.Encounter.Outcome)
	s.True(want.CreatedAt.Equal(got.Encounter.CreatedAt))
}

func (s *RepositoryContractSuite) TestUpsertReplaces() {
	first := testEncounter("enc_1", 0)
	_, err := s.repo.Upsert(s.ctx, &encounters.UpsertInput{Encounter: first})
	s.Require().NoError(err)
	_, err = s.repo.Get(s.ctx, &encounters.GetInput{ID: "enc_1"})
	s.Require().NoError(err)

	second := testEncounter("enc_1", 0)
	second.Text = "rewritten"
	second.Outcome = entities.OutcomeUnvalidated
	_, err = s.repo.Upsert(s.ctx, &encounters.UpsertInput{Encounter: second})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &encounters.GetInput{ID: "enc_1"})
	s.Require().NoError(err)
	s.Equal("rewritten", got.Encounter.Text)
	s.Equal(entities.OutcomeUnvalidated, got.Encounter.Outcome)

	list, err := s.repo.List(s.ctx, &encounters.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Encounters, 1)
}

func (s *RepositoryContractSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, &encounters.GetInput{ID: "missing"})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestInvalidInput() {
	_, err := s.repo.Upsert(s.ctx, &encounters.UpsertInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Upsert(s.ctx, &encounters.UpsertInput{Encounter: &entities.Encounter{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &encounters.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, &encounters.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryContractSuite) TestListNewestFirstWithLimit() {
	for i := range 5 {
		e := testEncounter(fmt.Sprintf("enc_%d", i), time.Duration(i)*time.Minute)
		_, err := s.repo.Upsert(s.ctx, &encounters.UpsertInput{Encounter: e})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, &encounters.ListInput{Limit: 3})
	s.Require().NoError(err)

	s.Require().Len(out.Encounters, 3)
	s.Equal("enc_4", out.Encounters[0].ID)
	s.Equal("enc_3", out.Encounters[1].ID)
	s.Equal("enc_2", out.Encounters[2].ID)
}

func (s *RepositoryContractSuite) TestListEmpty() {
	out, err := s.repo.List(s.ctx, nil)

	s.Require().NoError(err)
	s.NotNil(out.Encounters)
	s.Empty(out.Encounters)
}

func (s *RepositoryContractSuite) TestDelete() {
	_, err := s.repo.Upsert(s.ctx, &encounters.UpsertInput{Encounter: testEncounter("enc_1", 0)})
	s.Require().NoError(err)
	_, err = s.repo.Get(s.ctx, &encounters.GetInput{ID: "enc_1"})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &encounters.DeleteInput{ID: "enc_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &encounters.GetInput{ID: "enc_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, &encounters.DeleteInput{ID: "enc_1"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(list.Encounters)
}

func (s *RepositoryContractSuite) TestStoredCopyIsIsolated() {
	e := testEncounter("enc_1", 0)
	_, err := s.repo.Upsert(s.ctx, &encounters.UpsertInput{Encounter: e})
	s.Require().NoError(err)

	e.Text = "mutated after save"
	got, err := s.repo.Get(s.ctx, &encounters.GetInput{ID: "enc_1"})
	s.Require().NoError(err)
	s.NotEqual("mutated after save", got.Encounter.Text)

	got.Encounter.Text = "mutated after read"
	again, err := s.repo.Get(s.ctx, &encounters.GetInput{ID: "enc_1"})
	s.Require().NoError(err)
	s.NotEqual("mutated after read", again.Encounter.Text)
}

func TestRedisRepository_KeysAndIndex(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisServer(t)
	defer cleanup()

	repo, err := encounters.NewRedis(&encounters.RedisConfig{Client: client})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Upsert(ctx, &encounters.UpsertInput{Encounter: testEncounter("enc_1", 0)})
	require.NoError(t, err)
	require.True(t, mr.Exists("encounter:enc_1"))

	members, err := mr.ZMembers("encounter:index:created")
	require.NoError(t, err)
	require.Equal(t, []string{"enc_1"}, members)

	// an index entry whose record vanished is skipped, not an error
	mr.Del("encounter:enc_1")
	out, err := repo.List(ctx, &encounters.ListInput{})
	require.NoError(t, err)
	require.Empty(t, out.Encounters)
}
